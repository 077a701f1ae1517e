package middleware

import (
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/logger"
	phttp "polyglot/internal/platform/net/http"
)

// RecoverJSON converts panics into a 500 envelope and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			reqID := chimw.GetReqID(r.Context())

			// indent the stack like chi recover does
			stack := strings.ReplaceAll(string(debug.Stack()), "\n", "\n\t")
			logger.Named("http").Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
