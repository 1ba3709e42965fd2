// Package progress tracks in-flight upload progress for polling clients.
package progress

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"blogapi/internal/model"
)

// DefaultTTL is how long a finished or abandoned entry stays readable.
const DefaultTTL = 10 * time.Minute

// Tracker maps client-chosen upload ids to their latest progress.
// Entries expire after the TTL and the oldest are evicted beyond size.
type Tracker struct {
	cache *expirable.LRU[string, model.UploadProgress]
}

// NewTracker creates a tracker holding at most size entries for ttl each.
func NewTracker(size int, ttl time.Duration) *Tracker {
	if size <= 0 {
		size = 1024
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{cache: expirable.NewLRU[string, model.UploadProgress](size, nil, ttl)}
}

// Reporter returns a callback recording percentages for id. An empty id yields nil.
func (t *Tracker) Reporter(id string) func(percent float64) {
	if t == nil || id == "" {
		return nil
	}
	t.cache.Add(id, model.UploadProgress{})
	return func(percent float64) {
		t.cache.Add(id, model.UploadProgress{Percent: percent})
	}
}

// Finish marks id as done, recording errMsg when the upload failed.
func (t *Tracker) Finish(id string, errMsg string) {
	if t == nil || id == "" {
		return
	}
	p, _ := t.cache.Peek(id)
	if errMsg == "" {
		p.Percent = 100
	}
	p.Done = true
	p.Error = errMsg
	t.cache.Add(id, p)
}

// Get returns the latest progress for id.
func (t *Tracker) Get(id string) (model.UploadProgress, bool) {
	if t == nil {
		return model.UploadProgress{}, false
	}
	return t.cache.Get(id)
}
