// internal/middleware/requestlog.go
//
// Structured access log.
//
// Context
// -------
// One INFO line per request: method, path, status, bytes, duration,
// request id, plus coarse user-agent classification (browser, OS, device
// class) from uasurfer.  The UA fields matter for the admin surface,
// where "which editor's browser saw the stale list" is a recurring
// support question.
//
// Notes
// -----
//   - SSE requests log on disconnect, so their duration is the stream
//     lifetime.  That is intended.

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/avct/uasurfer"
	"go.uber.org/zap"
)

// statusWriter captures the status code and byte count for the log line.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Flush forwards to the wrapped writer so SSE keeps working through the
// middleware chain.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLog emits one access-log line per completed request.
func RequestLog(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			browser, osName, device := classifyUA(r.UserAgent())
			log.Infow("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"bytes", sw.bytes,
				"dur_ms", time.Since(start).Milliseconds(),
				"request_id", GetRequestID(r.Context()),
				"browser", browser,
				"os", osName,
				"device", device,
			)
		})
	}
}

// classifyUA reduces a raw User-Agent to three coarse labels.  The
// stringer names carry type prefixes ("BrowserChrome"), trimmed here for
// readable log lines.
func classifyUA(raw string) (browser, osName, device string) {
	if raw == "" {
		return "unknown", "unknown", "unknown"
	}
	ua := uasurfer.Parse(raw)
	browser = strings.TrimPrefix(ua.Browser.Name.String(), "Browser")
	osName = strings.TrimPrefix(ua.OS.Name.String(), "OS")
	device = strings.TrimPrefix(ua.DeviceType.String(), "Device")
	return strings.ToLower(browser), strings.ToLower(osName), strings.ToLower(device)
}
