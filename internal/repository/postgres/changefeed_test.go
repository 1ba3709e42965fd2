package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/logging"
	"blogapi/internal/repository"
)

type fakeListener struct {
	ch     chan *pq.Notification
	closed bool
}

func (f *fakeListener) NotificationChannel() <-chan *pq.Notification { return f.ch }
func (f *fakeListener) Ping() error                                  { return errors.New("not connected") }
func (f *fakeListener) Close() error {
	f.closed = true
	return nil
}

func recv(t *testing.T, ch <-chan struct{}) bool {
	t.Helper()
	select {
	case <-ch:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func TestChangeFeed_RoutesByTable(t *testing.T) {
	l := &fakeListener{ch: make(chan *pq.Notification)}
	feed := newChangeFeed(l, logging.Discard())
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	posts, err := feed.Subscribe(ctx, repository.CollectionPosts)
	require.NoError(t, err)
	cats, err := feed.Subscribe(ctx, repository.CollectionCategories)
	require.NoError(t, err)

	l.ch <- &pq.Notification{Channel: NotifyChannel, Extra: "posts"}
	assert.True(t, recv(t, posts))

	select {
	case <-cats:
		t.Fatal("categories should not be signalled for a posts change")
	default:
	}

	// Reconnect: everyone refreshes.
	l.ch <- nil
	assert.True(t, recv(t, posts))
	assert.True(t, recv(t, cats))
}

func TestChangeFeed_CloseIsIdempotent(t *testing.T) {
	l := &fakeListener{ch: make(chan *pq.Notification)}
	feed := newChangeFeed(l, logging.Discard())

	assert.NoError(t, feed.Close())
	assert.NoError(t, feed.Close())
	assert.True(t, l.closed)
}
