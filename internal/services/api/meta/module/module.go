// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"polyglot/internal/core/version"
	modkit "polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	str "polyglot/internal/platform/strings"

	metahttp "polyglot/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps      modkit.Deps
	built     modkit.Built
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		deps: deps,
		built: modkit.Build(append([]modkit.Option{
			modkit.WithName("meta"),
			modkit.WithPrefix("/meta"),
		}, opts...)...),
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   m.startedAt,
			Probes:      m.deps.Probes,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
