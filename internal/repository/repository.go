// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, memory, sqlite) inside this directory.
package repository

import (
	"context"
	"errors"

	"blogapi/internal/model"
)

// Collection names as exposed to clients and change feeds.
const (
	CollectionPosts      = "posts"
	CollectionCategories = "categories"
)

// ErrNotFound is returned when a document or setting does not exist.
var ErrNotFound = errors.New("document not found")

// PostRepository defines data access for posts. No business logic here,
// strictly persistence operations.
type PostRepository interface {
	// Create stores a new post. The store assigns ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, p *model.Post) (*model.Post, error)

	// Update merges the patch into an existing post and refreshes UpdatedAt.
	// Returns ErrNotFound if the post does not exist.
	Update(ctx context.Context, id string, patch model.PostPatch) (*model.Post, error)

	// FindByID returns a post by its ID or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Post, error)

	// List returns posts matching q in the order q defines.
	List(ctx context.Context, q Query) ([]model.Post, error)

	// Count returns the number of stored posts.
	Count(ctx context.Context) (int, error)

	// Delete removes a post by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context, q Query) ([]model.Category, error)
	// Delete removes a category by ID. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}

// SettingsRepository is a small key/value store for locally persisted settings.
type SettingsRepository interface {
	// Get returns the stored value or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// ChangeFeed notifies subscribers when a collection changes.
type ChangeFeed interface {
	// Subscribe returns a channel receiving a signal after each change to collection.
	// Signals may be coalesced. The channel is closed once ctx is done.
	Subscribe(ctx context.Context, collection string) (<-chan struct{}, error)
}

// SubscriberCounter is implemented by feeds that can report how many live
// listeners a collection has.
type SubscriberCounter interface {
	Subscribers(collection string) int
}
