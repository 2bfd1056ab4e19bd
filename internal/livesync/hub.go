// internal/livesync/hub.go
//
// Fan-out hub for change events.
//
// Context
// -------
// Public pages hold an SSE stream per watched table; the hub relays every
// decoded notification to the subscribers of that table.  Channel-based
// register/unregister/broadcast with a guarded subscriber map; a
// subscriber whose buffer is full simply misses the event.  The pages
// re-fetch rows by id anyway, and a stalled browser must never block the
// listener loop.
package livesync

import (
	"context"
	"sync"

	"github.com/primenumber-jp/datasummit-site/internal/metrics"
)

// subscriberBuffer is per-client; small because events are tiny and a
// lagging client is dropped rather than queued without bound.
const subscriberBuffer = 16

// Subscriber receives the events of one table.
type Subscriber struct {
	table string
	ch    chan Event
}

// Events returns the receive channel.  It is closed on Unsubscribe or
// hub shutdown.
func (s *Subscriber) Events() <-chan Event { return s.ch }

// Hub fans events out to table subscribers.
type Hub struct {
	register   chan *Subscriber
	unregister chan *Subscriber
	broadcast  chan Event
	done       chan struct{} // closed when Run exits

	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

// NewHub returns a ready Hub; call Run to start it.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Subscriber),
		unregister: make(chan *Subscriber),
		broadcast:  make(chan Event, 64),
		done:       make(chan struct{}),
		subs:       make(map[*Subscriber]struct{}),
	}
}

// Run services the hub until ctx is cancelled, then closes every
// subscriber channel.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for s := range h.subs {
				close(s.ch)
				delete(h.subs, s)
			}
			h.mu.Unlock()
			metrics.StreamClients.Set(0)
			return

		case s := <-h.register:
			h.mu.Lock()
			h.subs[s] = struct{}{}
			h.mu.Unlock()
			metrics.StreamClients.Inc()

		case s := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.subs[s]; ok {
				close(s.ch)
				delete(h.subs, s)
				metrics.StreamClients.Dec()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.RLock()
			for s := range h.subs {
				if s.table != evt.Table {
					continue
				}
				select {
				case s.ch <- evt:
				default: // lagging client misses this event
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Subscribe registers a new subscriber for table.  After shutdown the
// returned subscriber's channel is already closed.
func (h *Hub) Subscribe(table string) *Subscriber {
	s := &Subscriber{table: table, ch: make(chan Event, subscriberBuffer)}
	select {
	case h.register <- s:
	case <-h.done:
		close(s.ch)
	}
	return s
}

// Unsubscribe removes s and closes its channel.  Safe to call after
// shutdown.
func (h *Hub) Unsubscribe(s *Subscriber) {
	select {
	case h.unregister <- s:
	case <-h.done:
	}
}

// Broadcast queues evt for fan-out.
func (h *Hub) Broadcast(evt Event) {
	select {
	case h.broadcast <- evt:
	default: // hub saturated; SSE consumers re-fetch on reconnect
	}
}
