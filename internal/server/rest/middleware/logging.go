package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/google/uuid"
)

// statusWriter wraps http.ResponseWriter to capture the response status
// and size.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Logging logs one line per request, tagged with a generated request id.
// 5xx responses log at error level, 4xx at warn, the rest at info.
func Logging(next http.Handler, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqLog := log.With("request_id", uuid.NewString())

		// default status if the handler never calls WriteHeader
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"duration", time.Since(start).String(),
		}

		switch {
		case sw.status >= http.StatusInternalServerError:
			reqLog.Error(r.Context(), "request", args...)
		case sw.status >= http.StatusBadRequest:
			reqLog.Warn(r.Context(), "request", args...)
		default:
			reqLog.Info(r.Context(), "request", args...)
		}
	})
}
