package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// CategoryMemory is an in-process implementation of repository.CategoryRepository.
type CategoryMemory struct {
	mu     sync.RWMutex
	items  []model.Category
	broker *repository.Broker
}

// NewCategoryMemory creates an empty store publishing changes to broker (may be nil).
func NewCategoryMemory(broker *repository.Broker) *CategoryMemory {
	return &CategoryMemory{broker: broker}
}

var _ repository.CategoryRepository = (*CategoryMemory)(nil)

func (r *CategoryMemory) Create(ctx context.Context, c *model.Category) (*model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := *c
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	r.mu.Lock()
	r.items = append(r.items, out)
	r.mu.Unlock()

	r.publish()
	return &out, nil
}

func (r *CategoryMemory) FindByID(ctx context.Context, id string) (*model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CategoryMemory) List(ctx context.Context, q repository.Query) ([]model.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	items := append([]model.Category(nil), r.items...)
	r.mu.RUnlock()
	return apply(items, q, repository.CategorySchema)
}

func (r *CategoryMemory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	removed := false
	r.mu.Lock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			removed = true
			break
		}
	}
	r.mu.Unlock()

	if removed {
		r.publish()
	}
	return nil
}

func (r *CategoryMemory) publish() {
	if r.broker != nil {
		r.broker.Publish(repository.CollectionCategories)
	}
}
