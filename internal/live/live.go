// Package live keeps a continuously updated result set for a collection query.
package live

import (
	"context"
	"fmt"

	"blogapi/internal/repository"
)

// Snapshot is one full result set pushed by a Source. Err is set when the
// backend failed to produce the set.
type Snapshot[T any] struct {
	Items []T
	Err   error
}

// Source pushes snapshots for q until ctx is done, then closes the channel.
type Source[T any] interface {
	Watch(ctx context.Context, q repository.Query) (<-chan Snapshot[T], error)
}

// FeedSource re-runs List every time Feed signals a change to Collection.
type FeedSource[T any] struct {
	Collection string
	Feed       repository.ChangeFeed
	List       func(ctx context.Context, q repository.Query) ([]T, error)
}

var _ Source[struct{}] = FeedSource[struct{}]{}

// Watch implements Source. The first snapshot reflects the state at subscription time.
func (s FeedSource[T]) Watch(ctx context.Context, q repository.Query) (<-chan Snapshot[T], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if s.Feed == nil || s.List == nil {
		return nil, fmt.Errorf("live source for %q is not configured", s.Collection)
	}
	changes, err := s.Feed.Subscribe(ctx, s.Collection)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", s.Collection, err)
	}

	out := make(chan Snapshot[T])
	go func() {
		defer close(out)
		for {
			items, err := s.List(ctx, q)
			if ctx.Err() != nil {
				return
			}
			select {
			case out <- Snapshot[T]{Items: items, Err: err}:
			case <-ctx.Done():
				return
			}
			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
