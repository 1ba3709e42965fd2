package repository

import (
	"context"
	"sync"
)

// Broker fans change signals out to subscribers per collection.
// It is safe for concurrent use by multiple goroutines.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

// NewBroker creates an empty Broker.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[chan struct{}]struct{})}
}

var (
	_ ChangeFeed        = (*Broker)(nil)
	_ SubscriberCounter = (*Broker)(nil)
)

// Subscribe registers a listener for collection until ctx is done.
func (b *Broker) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	set, ok := b.subs[collection]
	if !ok {
		set = make(map[chan struct{}]struct{})
		b.subs[collection] = set
	}
	set[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs[collection], ch)
		close(ch)
		b.mu.Unlock()
	}()
	return ch, nil
}

// Publish signals every listener of collection. Pending signals are coalesced.
func (b *Broker) Publish(collection string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// PublishAll signals every listener of every collection.
func (b *Broker) PublishAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, set := range b.subs {
		for ch := range set {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// Subscribers returns the number of live listeners on collection.
func (b *Broker) Subscribers(collection string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[collection])
}
