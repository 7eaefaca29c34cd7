package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
)

// withLogging writes one access-log line per request through the
// trace-scoped logger: uri, method, status, duration and response size.
// It sits behind withTraceID so every line carries the trace ID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
