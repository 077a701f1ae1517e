package modkit

import (
	"context"
	"sort"

	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
)

// Probe reports whether a startup-loaded resource is usable
type Probe func(context.Context) error

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Probes map[string]Probe // readiness checks keyed by resource name
}

// ProbeNames returns the registered probe names in sorted order
func (d Deps) ProbeNames() []string {
	out := make([]string, 0, len(d.Probes))
	for k := range d.Probes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
