// Package modkit is the small contract API modules are assembled from
package modkit

import (
	"slices"

	"polyglot/internal/modkit/httpkit"
	phttp "polyglot/internal/platform/net/http"
)

// Module mounts its routes and exposes a port set for cross wiring
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// Option configures Build
type Option func(*Built)

// WithName sets the name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the path the module mounts under
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module middleware, it runs inside the API stack
func WithMiddlewares(mw ...httpkit.Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts sets the ports a module is built around, the receiving module owns T
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// Built is the resolved module configuration
type Built struct {
	Name   string
	Prefix string
	Mw     []httpkit.Middleware
	Ports  any
}

// Build applies opts in order
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.Mw = slices.Clip(b.Mw)
	return b
}

// Mount registers routes under Prefix with Mw applied
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	httpkit.Scope(r, b.Prefix, b.Mw, register)
}
