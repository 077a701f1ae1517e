// Package logger wraps zerolog for the service and carries request-scoped fields
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"polyglot/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Options configures the logger
type Options struct {
	Level     string
	Format    string // "console" or "json"
	Service   string
	Component string
	// Output is "stdout" or "stderr", ignored when Writer is set
	Output      string
	Writer      io.Writer
	WithCaller  bool
	SampleEvery int
	Fields      map[string]string
}

// FromEnv reads LOG_* through the raw view, config itself logs so it cannot be used here
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "info"),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", "polyglot"),
		Component:   rc.Get("COMPONENT", ""),
		Output:      strings.ToLower(rc.Get("OUTPUT", "stdout")),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

// New builds a logger from opt without touching the process root
func New(opt Options) Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
		if opt.Output == "stderr" {
			w = os.Stderr
		}
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	fields := map[string]any{}
	for k, v := range opt.Fields {
		fields[k] = v
	}
	if opt.Service != "" {
		fields["service"] = opt.Service
	}
	if opt.Component != "" {
		fields["component"] = opt.Component
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}

	c := zerolog.New(w).Level(level(opt.Level)).With().Timestamp().Fields(fields)
	if opt.WithCaller {
		c = c.Caller()
	}
	l := c.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

// level maps a level name to zerolog, unknown names become info
func level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

var (
	once sync.Once
	root atomic.Pointer[Logger]
)

// Init installs the process root logger, only the first call has an effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the process root logger, initialising it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

type ctxKey struct{}

// WithRequest annotates ctx with the request id picked up by C
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, reqID)
}

// RequestID returns the id set by WithRequest, or ""
func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(ctxKey{}).(string)
	return s
}

// C returns the root logger, with request_id when ctx carries one
func C(ctx context.Context) *Logger {
	id := RequestID(ctx)
	if id == "" {
		return Get()
	}
	l := Get().With().Str("request_id", id).Logger()
	return &l
}

// Named returns a child logger tagged with component
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
