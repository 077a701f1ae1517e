// Package middleware adapts chi and go-chi/cors middleware for the API stacks
// callers never import chi directly
package middleware

import (
	"net/http"
	"time"

	pstrings "polyglot/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Func wraps a handler
type Func = func(http.Handler) http.Handler

func passthrough(next http.Handler) http.Handler { return next }

// RequestID reuses an inbound X-Request-Id or mints one, see RequestScope for the echo
func RequestID() Func { return chimw.RequestID }

// RealIP trusts X-Real-IP and X-Forwarded-For, run it only behind a proxy you control
func RealIP() Func { return chimw.RealIP }

// Timeout cancels the request context after d and answers 504 once it passes
func Timeout(d time.Duration) Func { return chimw.Timeout(d) }

// NoCache marks every response uncacheable
func NoCache() Func { return chimw.NoCache }

// Compress negotiates gzip or deflate at the given flate level
func Compress(level int) Func {
	return chimw.NewCompressor(level).Handler
}

// StripSlashes drops one trailing slash before routing
func StripSlashes() Func { return chimw.StripSlashes }

// AllowContentType answers 415 to a body of any other type, bodyless requests pass
func AllowContentType(ct ...string) Func { return chimw.AllowContentType(ct...) }

// InFlight caps concurrent requests at limit, queueing up to backlog for at most wait
// a limit of zero or less disables the cap
func InFlight(limit, backlog int, wait time.Duration) Func {
	if limit <= 0 {
		return passthrough
	}
	return chimw.ThrottleBacklog(limit, max(backlog, 0), wait)
}

// Heartbeat answers GET path with a bare 200 before routing
func Heartbeat(path string) Func { return chimw.Heartbeat(path) }

// CORSOptions holds the allow lists, empty ones fall back to the defaults in CORS
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS allows GET and POST from any origin unless AllowedOrigins narrows it
func CORS(o CORSOptions) Func {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{"GET", "POST", "OPTIONS"}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
