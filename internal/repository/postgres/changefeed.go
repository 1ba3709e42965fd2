package postgres

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"

	"blogapi/internal/repository"
)

// NotifyChannel is the LISTEN channel the collection triggers publish on.
// The notification payload is the table name.
const NotifyChannel = "collection_changes"

const pingInterval = 90 * time.Second

// listener is the subset of *pq.Listener used by ChangeFeed.
type listener interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// ChangeFeed turns PostgreSQL notifications into per-collection signals.
type ChangeFeed struct {
	broker   *repository.Broker
	listener listener
	logger   *slog.Logger
	done     chan struct{}
	once     sync.Once
}

var _ repository.ChangeFeed = (*ChangeFeed)(nil)

// NewChangeFeed opens a dedicated LISTEN connection on dsn.
func NewChangeFeed(dsn string, logger *slog.Logger) (*ChangeFeed, error) {
	l := pq.NewListener(dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("changefeed_event", "event", int(ev), "error", err.Error())
		}
	})
	if err := l.Listen(NotifyChannel); err != nil {
		_ = l.Close()
		return nil, err
	}
	return newChangeFeed(l, logger), nil
}

func newChangeFeed(l listener, logger *slog.Logger) *ChangeFeed {
	f := &ChangeFeed{
		broker:   repository.NewBroker(),
		listener: l,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go f.run()
	return f
}

// Subscribe implements repository.ChangeFeed.
func (f *ChangeFeed) Subscribe(ctx context.Context, collection string) (<-chan struct{}, error) {
	return f.broker.Subscribe(ctx, collection)
}

// Close stops listening and releases the connection.
// Subscribers implements repository.SubscriberCounter.
func (f *ChangeFeed) Subscribers(collection string) int {
	return f.broker.Subscribers(collection)
}

func (f *ChangeFeed) Close() error {
	var err error
	f.once.Do(func() {
		close(f.done)
		err = f.listener.Close()
	})
	return err
}

func (f *ChangeFeed) run() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-f.done:
			return
		case n, ok := <-f.listener.NotificationChannel():
			if !ok {
				return
			}
			// nil after a reconnect: notifications may have been missed.
			if n == nil {
				f.broker.PublishAll()
				continue
			}
			f.broker.Publish(n.Extra)
		case <-ticker.C:
			if err := f.listener.Ping(); err != nil {
				f.logger.Warn("changefeed_ping_failed", "error", err.Error())
			}
		}
	}
}
