package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// PostMemory is an in-process implementation of repository.PostRepository
// used for local development and tests.
type PostMemory struct {
	mu     sync.RWMutex
	posts  map[string]model.Post
	order  []string
	now    func() time.Time
	broker *repository.Broker
}

// NewPostMemory creates an empty store publishing changes to broker (may be nil).
func NewPostMemory(broker *repository.Broker, now func() time.Time) *PostMemory {
	if now == nil {
		now = time.Now
	}
	return &PostMemory{posts: make(map[string]model.Post), now: now, broker: broker}
}

var _ repository.PostRepository = (*PostMemory)(nil)

func (r *PostMemory) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := *p
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	ts := r.now().UTC()
	out.CreatedAt = ts
	out.UpdatedAt = ts

	r.mu.Lock()
	if _, exists := r.posts[out.ID]; !exists {
		r.order = append(r.order, out.ID)
	}
	r.posts[out.ID] = out
	r.mu.Unlock()

	r.publish()
	return &out, nil
}

func (r *PostMemory) Update(ctx context.Context, id string, patch model.PostPatch) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	p, ok := r.posts[id]
	if !ok {
		r.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	patch.Apply(&p)
	p.UpdatedAt = r.now().UTC()
	r.posts[id] = p
	r.mu.Unlock()

	r.publish()
	return &p, nil
}

func (r *PostMemory) FindByID(ctx context.Context, id string) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *PostMemory) List(ctx context.Context, q repository.Query) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	items := make([]model.Post, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.posts[id])
	}
	r.mu.RUnlock()
	return apply(items, q, repository.PostSchema)
}

func (r *PostMemory) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts), nil
}

func (r *PostMemory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	_, ok := r.posts[id]
	if ok {
		delete(r.posts, id)
		for i, oid := range r.order {
			if oid == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		r.publish()
	}
	return nil
}

func (r *PostMemory) publish() {
	if r.broker != nil {
		r.broker.Publish(repository.CollectionPosts)
	}
}
