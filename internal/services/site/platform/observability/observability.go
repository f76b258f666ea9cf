// Package observability provides request logging for the site service.
package observability

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
)

// statusWriter captures the response status and body size for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(payload []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(payload)
	w.bytes += n
	return n, err
}

// RequestLogger logs one line per request: method, path, status, response
// bytes, latency and request id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			requestID := "-"
			path := "-"
			method := "-"
			if r != nil {
				method = r.Method
				path = r.URL.Path
				if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
					requestID = rid
				}
			}
			if logger == nil {
				logger = log.Default()
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				method,
				path,
				status,
				sw.bytes,
				time.Since(start).Round(time.Microsecond),
				requestID,
			)
		})
	}
}
