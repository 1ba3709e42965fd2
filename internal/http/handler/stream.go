package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/live"
	"blogapi/internal/repository"
)

// HeartbeatInterval is how often an idle stream writes a comment line. A
// failed write means the client has gone and the subscription is released.
var HeartbeatInterval = 15 * time.Second

// StreamCollection godoc
// @Summary Live collection snapshots
// @Description Server-Sent Events. Every state change is sent as a "snapshot" event holding {data,loading,error}.
// @Tags admin
// @Security BearerAuth
// @Produce text/event-stream
// @Param q query string false "JSON query {filters,orderBy,limit}"
// @Router /admin/posts/stream [get]
// @Router /admin/categories/stream [get]
func StreamCollection[T any](source live.Source[T], schema repository.Schema, done <-chan struct{}, defaultOrder ...repository.Order) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseQuery(c, schema, defaultOrder...)
		if err != nil {
			return fail(c, err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		coll := live.NewCollection(source)
		if err := coll.Subscribe(ctx, q); err != nil {
			coll.Close()
			cancel()
			return fail(c, err)
		}

		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")
		c.Set("X-Accel-Buffering", "no")

		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			defer cancel()
			defer coll.Close()
			streamSnapshots(w, coll, done)
		})
		return nil
	}
}

func streamSnapshots[T any](w *bufio.Writer, coll *live.Collection[T], done <-chan struct{}) {
	ticker := time.NewTicker(HeartbeatInterval)
	defer ticker.Stop()

	send := func() error {
		b, err := json.Marshal(coll.State())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", b); err != nil {
			return err
		}
		return w.Flush()
	}

	if send() != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-coll.Changes():
			if send() != nil {
				return
			}
		case <-ticker.C:
			if _, err := w.WriteString(": ping\n\n"); err != nil {
				return
			}
			if w.Flush() != nil {
				return
			}
		}
	}
}
