package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/dorm-management/pkg/logger"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// RequestLogger logs every request with method, path, status and duration.
// The chi request id, when present, is attached to a context-scoped logger
// so downstream log lines can be correlated.
func RequestLogger(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			ctx := r.Context()
			requestID := chiMiddleware.GetReqID(ctx)
			if requestID != "" {
				ctx = logger.With(ctx, "request_id", requestID)
			}

			next.ServeHTTP(rec, r.WithContext(ctx))

			lg.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"bytes", rec.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
				"request_id", requestID)
		})
	}
}
