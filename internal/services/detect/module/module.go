// Package module wires the detect presentation layer into the API using modkit
package module

import (
	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	str "polyglot/internal/platform/strings"
	"polyglot/internal/services/detect/domain"
	dhttp "polyglot/internal/services/detect/http"
	"polyglot/internal/services/detect/service"
)

// Ports exposed by the detect module
type Ports struct {
	Detector domain.DetectorPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	svc   *service.Svc
	ports Ports
}

// New constructs the detect module, WithPorts(domain.Ports) must carry the runner
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detect"),
		modkit.WithPrefix("/detect"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("detect module: expected WithPorts(detect/domain.Ports)")
	}
	if ports.Runner == nil {
		panic("detect module: Ports missing Runner")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(ports.Runner, service.Config{Top: cfg.Top})

	return &Module{
		deps:  deps,
		built: b,
		svc:   svc,
		ports: Ports{Detector: svc},
	}
}

// MountRoutes mounts the JSON routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { dhttp.Register(rr, m.svc) })
}

// MountForm mounts the interactive form on a root router, outside the versioned API
func (m *Module) MountForm(r httpkit.Router) {
	dhttp.RegisterForm(r, "/", m.svc)
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return str.MustString(m.built.Name, "detect") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
