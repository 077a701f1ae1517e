package httpkit

import (
	"compress/flate"
	"time"

	"polyglot/internal/platform/net/middleware"
)

// StackOptions tunes the middleware stacks
type StackOptions struct {
	Slow    time.Duration // access log marks requests at or above this as warn, 0 disables
	Timeout time.Duration // per request deadline, 0 means 30s
	Origins []string      // CORS allow list, empty allows any origin
}

func stackOptions(opts []StackOptions) StackOptions {
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// front is shared by both stacks: correlation, recovery and access logging
func front(o StackOptions) []Middleware {
	return []Middleware{
		middleware.RequestID(),
		middleware.RequestScope,
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
	}
}

// CommonStack is the middleware for the JSON API
// trailing slashes are stripped rather than redirected so POST bodies survive
func CommonStack(opts ...StackOptions) []Middleware {
	o := stackOptions(opts)
	return append(front(o),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	)
}

// FormStack is the middleware for the HTML form at the root
func FormStack(opts ...StackOptions) []Middleware {
	o := stackOptions(opts)
	return append(front(o), middleware.Compress(flate.BestSpeed), middleware.Timeout(o.Timeout))
}
