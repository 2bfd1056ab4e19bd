// internal/livesync/sse.go
//
// Server-sent events endpoint.
//
// GET /api/stream/{table} holds the connection open and writes one
// "change" event per notification on that table.  Establish on mount,
// tear down on unmount: the subscription dies with the request context,
// and a response arriving for a gone client is simply dropped by the
// select below.
package livesync

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// keepAliveEvery is the interval between SSE comment lines that keep
// proxies and other intermediaries from timing the idle stream out.
const keepAliveEvery = 25 * time.Second

// StreamHandler serves one SSE subscription per request.
func StreamHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table := chi.URLParam(r, "table")
		if _, ok := tableTabs[table]; !ok {
			http.Error(w, "unknown table", http.StatusNotFound)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		sub := hub.Subscribe(table)
		defer hub.Unsubscribe(sub)

		keepAlive := time.NewTicker(keepAliveEvery)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return

			case evt, open := <-sub.Events():
				if !open {
					return
				}
				body, err := json.Marshal(evt)
				if err != nil {
					continue
				}
				if _, err := w.Write([]byte("event: change\ndata: " + string(body) + "\n\n")); err != nil {
					return
				}
				flusher.Flush()

			case <-keepAlive.C:
				if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
