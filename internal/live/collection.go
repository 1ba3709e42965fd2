package live

import (
	"context"
	"sync"

	"blogapi/internal/repository"
)

// State is what a subscriber sees: the latest result set and its status.
type State[T any] struct {
	Data    []T    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Collection holds the live state of one query over a Source.
// It is safe for concurrent use by multiple goroutines.
type Collection[T any] struct {
	source Source[T]

	// subMu serializes Subscribe and Close.
	subMu sync.Mutex

	mu     sync.Mutex
	state  State[T]
	key    string
	active bool
	cancel context.CancelFunc
	done   chan struct{}
	notify chan struct{}
	closed bool
}

// NewCollection creates an idle collection over source.
func NewCollection[T any](source Source[T]) *Collection[T] {
	return &Collection[T]{
		source: source,
		state:  State[T]{Data: []T{}},
		notify: make(chan struct{}, 1),
	}
}

// Subscribe starts watching q. Subscribing again with an equal query is a
// no-op; a different query replaces the previous subscription, which is
// fully released before this returns.
func (c *Collection[T]) Subscribe(ctx context.Context, q repository.Query) error {
	key := q.Key()

	c.subMu.Lock()
	defer c.subMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return context.Canceled
	}
	if c.active && c.key == key {
		c.mu.Unlock()
		return nil
	}
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	wctx, wcancel := context.WithCancel(ctx)
	snaps, err := c.source.Watch(wctx, q)

	c.mu.Lock()
	if err != nil {
		wcancel()
		c.active, c.cancel, c.done, c.key = false, nil, nil, ""
		c.state = State[T]{Data: []T{}, Error: err.Error()}
		c.mu.Unlock()
		c.signal()
		return err
	}
	done = make(chan struct{})
	c.active, c.cancel, c.done, c.key = true, wcancel, done, key
	c.state = State[T]{Data: []T{}, Loading: true}
	c.mu.Unlock()
	c.signal()

	go c.consume(wctx, snaps, done)
	return nil
}

func (c *Collection[T]) consume(ctx context.Context, snaps <-chan Snapshot[T], done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-snaps:
			if !ok {
				c.mu.Lock()
				if c.done == done {
					c.active = false
				}
				c.mu.Unlock()
				return
			}
			c.apply(s)
		}
	}
}

func (c *Collection[T]) apply(s Snapshot[T]) {
	c.mu.Lock()
	if s.Err != nil {
		c.state.Error = s.Err.Error()
		c.state.Loading = false
	} else {
		items := s.Items
		if items == nil {
			items = []T{}
		}
		c.state = State[T]{Data: items}
	}
	c.mu.Unlock()
	c.signal()
}

func (c *Collection[T]) signal() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// State returns a copy of the current state.
func (c *Collection[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Data = append(make([]T, 0, len(c.state.Data)), c.state.Data...)
	return st
}

// Changes signals after every state change. Signals are coalesced; read
// State after receiving.
func (c *Collection[T]) Changes() <-chan struct{} {
	return c.notify
}

// Close releases the subscription. It is safe to call more than once.
func (c *Collection[T]) Close() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel, done := c.cancel, c.done
	c.active, c.cancel, c.done = false, nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
