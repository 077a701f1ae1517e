package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"polyglot/internal/platform/logger"
)

// RequestScope copies the chi request id into the logger context so logger.C picks it up
// place it after RequestID
func RequestScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chimw.GetReqID(r.Context())
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), id)))
	})
}
