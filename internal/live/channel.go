// Package live maintains the real-time subscription for server-pushed task
// updates.
//
// The channel is additive to fetches: consumers still fetch on their own
// schedule, the channel covers changes that land while they are already
// watching. There is no acknowledgement or replay; reconnection is whatever
// the transport does by default.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"roster/internal/service"
	"roster/internal/state"
)

// EventTasksUpdated is the event name carrying a refreshed task snapshot.
const EventTasksUpdated = "tasks_updated"

// frame is one JSON event on the wire.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Channel is one open subscription. A tasks_updated event replaces the Tasks
// provider's snapshot wholesale, exactly as a fetch would.
type Channel struct {
	conn   *websocket.Conn
	tasks  *state.TasksProvider
	log    *slog.Logger
	done   chan struct{}
	closed sync.Once
}

// Dial opens the subscription and starts the read loop.
func Dial(ctx context.Context, url string, tasks *state.TasksProvider, log *slog.Logger) (*Channel, error) {
	if log == nil {
		log = slog.Default()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	ch := &Channel{
		conn:  conn,
		tasks: tasks,
		log:   log,
		done:  make(chan struct{}),
	}
	go ch.read()
	return ch, nil
}

// Done is closed when the read loop has exited, whether by Close or by the
// connection dropping.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// Close detaches the listener and closes the socket. Safe to call more than
// once.
func (c *Channel) Close() {
	c.closed.Do(func() {
		c.conn.Close()
	})
}

func (c *Channel) read() {
	defer close(c.done)
	defer c.Close()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("live channel closed", slog.String("error", err.Error()))
			}
			return
		}
		c.handle(data)
	}
}

func (c *Channel) handle(data []byte) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		c.log.Warn("discarding malformed live event", slog.String("error", err.Error()))
		return
	}
	if f.Event != EventTasksUpdated {
		c.log.Debug("ignoring live event", slog.String("event", f.Event))
		return
	}

	var snap service.TaskSnapshot
	if err := json.Unmarshal(f.Data, &snap); err != nil {
		c.log.Warn("discarding malformed task snapshot", slog.String("error", err.Error()))
		return
	}
	c.tasks.Replace(snap)
	c.log.Debug("applied pushed task snapshot", slog.Int("tasks", len(snap.Tasks)))
}
