// internal/livesync/listener.go
//
// Postgres LISTEN/NOTIFY consumer.
//
// Context
// -------
// One pq.Listener per process subscribes to the summit_changes channel
// and patches the admin dashboard's in-memory collections, then relays
// the event to the hub for SSE clients.  The apply rules come from the
// dashboard and are idempotent, so duplicate or re-ordered notifications
// (which LISTEN/NOTIFY permits after reconnects) are harmless:
//
//   - insert: re-fetch the full row by id (the payload is only a key) and
//     append-or-replace.
//   - update: re-fetch and replace when present, ignore when absent.
//   - delete: remove when present, ignore when absent.
//
// A row already deleted by the time its insert/update notification is
// processed simply fails the re-fetch with NotFound and is skipped.
package livesync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/primenumber-jp/datasummit-site/internal/admin"
	"github.com/primenumber-jp/datasummit-site/internal/content"
	"github.com/primenumber-jp/datasummit-site/internal/metrics"
)

// tableTabs maps store table names to dashboard tabs.
var tableTabs = map[string]admin.Tab{
	"downloads_sp": admin.TabDownloads,
	"faqs_sp":      admin.TabFAQ,
	"forms_sp":     admin.TabForms,
}

// Listener consumes notifications and applies them.
type Listener struct {
	pl   *pq.Listener
	dash *admin.Dashboard
	hub  *Hub
	log  *zap.SugaredLogger

	// fetchTimeout bounds the row re-fetch triggered by one notification.
	fetchTimeout time.Duration
}

// NewListener connects a pq.Listener for dsn.  Connection problems are
// reported through the event callback and retried internally by pq.
func NewListener(dsn string, dash *admin.Dashboard, hub *Hub, log *zap.SugaredLogger) (*Listener, error) {
	l := &Listener{
		dash:         dash,
		hub:          hub,
		log:          log,
		fetchTimeout: 5 * time.Second,
	}
	l.pl = pq.NewListener(dsn, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Warnw("livesync: listener connection event", "event", ev, "err", err)
			}
		})
	if err := l.pl.Listen(Channel); err != nil {
		_ = l.pl.Close()
		return nil, err
	}
	return l, nil
}

// Run consumes notifications until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	defer l.pl.Close()

	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case n := <-l.pl.Notify:
			if n == nil {
				// Reconnect marker: notifications may have been lost, but
				// idempotent applies plus per-id re-fetch keep state sane.
				l.log.Infow("livesync: listener reconnected")
				continue
			}
			l.handle(ctx, n.Extra)

		case <-ping.C:
			if err := l.pl.Ping(); err != nil {
				l.log.Warnw("livesync: ping failed", "err", err)
			}
		}
	}
}

// handle decodes and applies one raw notification payload.
func (l *Listener) handle(ctx context.Context, payload string) {
	var evt Event
	if err := json.Unmarshal([]byte(payload), &evt); err != nil {
		l.log.Warnw("livesync: undecodable notification", "payload", payload, "err", err)
		return
	}
	tab, ok := tableTabs[evt.Table]
	if !ok {
		l.log.Debugw("livesync: notification for unwatched table", "table", evt.Table)
		return
	}
	metrics.SyncEventsTotal.WithLabelValues(evt.Op).Inc()

	switch evt.Op {
	case OpInsert:
		rec, err := l.fetch(ctx, tab, evt.ID)
		if err != nil {
			l.log.Warnw("livesync: insert re-fetch failed", "table", evt.Table, "id", evt.ID, "err", err)
			return
		}
		l.dash.ApplyInsert(tab, rec)

	case OpUpdate:
		rec, err := l.fetch(ctx, tab, evt.ID)
		if err != nil {
			l.log.Warnw("livesync: update re-fetch failed", "table", evt.Table, "id", evt.ID, "err", err)
			return
		}
		l.dash.ApplyUpdate(tab, rec)

	case OpDelete:
		l.dash.ApplyDelete(tab, evt.ID)

	default:
		l.log.Warnw("livesync: unknown operation", "op", evt.Op)
		return
	}

	if l.hub != nil {
		l.hub.Broadcast(evt)
	}
}

// fetch re-reads the full row named by a notification.  The payload may
// be partial or stale, so the repository is the source of truth.
func (l *Listener) fetch(ctx context.Context, tab admin.Tab, id string) (content.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, l.fetchTimeout)
	defer cancel()
	return l.dash.Resource(tab).Get(ctx, id)
}
