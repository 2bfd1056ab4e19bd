// internal/server/timeouts.go
//
// HTTP server helper with robust timeouts.
//
// Production hardening recommends:
//
//   - ReadHeaderTimeout – abort slow-loris headers (10 s)
//   - IdleTimeout       – close keep-alives on idle clients (60 s)
//
// WriteTimeout stays zero on purpose: /api/stream holds SSE connections
// open indefinitely and a per-response cap would sever them.  Handlers
// bound their own store work with request contexts instead.
//
// This helper centralises those defaults so cmd/web doesn't repeat
// boilerplate.

package server

import (
	"net/http"
	"time"
)

// New constructs an *http.Server with sensible defaults.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
