// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"polyglot/internal/platform/logger"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow marks requests taking >= Slow as warn level, 0 disables slow marking
	Slow time.Duration
	// Logger overrides the request scoped logger, mostly for tests
	Logger *logger.Logger
}

// AccessLogZerolog logs one line per request with status, route, elapsed and bytes
// 5xx logs at error, 4xx and slow requests at warn, everything else at info
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log := opt.Logger
			if log == nil {
				log = logger.C(r.Context())
			}
			var evt *zerolog.Event
			switch {
			case status >= 500:
				evt = log.Error()
			case status >= 400, opt.Slow > 0 && elapsed >= opt.Slow:
				evt = log.Warn()
			default:
				evt = log.Info()
			}
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				evt = evt.Str("route", rc.RoutePattern())
			}
			evt.Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}
