package middleware

import (
	"net/http"

	"github.com/dmitrijs2005/taskify/internal/logging"
	"github.com/dmitrijs2005/taskify/internal/server/rest"
)

// Rescue turns a handler panic into a 500 response instead of killing the
// connection. The panic value is logged, never sent to the client.
func Rescue(next http.Handler, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				log.Error(r.Context(), "handler panic", "panic", p, "path", r.URL.Path)
				rest.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
