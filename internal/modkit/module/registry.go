// Package module keeps the port sets modules expose while the API is assembled
package module

import (
	"slices"
	"sync"
)

// Registry maps module names to their port sets
type Registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{ports: map[string]any{}} }

// Register stores the port set for name, replacing any earlier one
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ports[name] = ports
}

// Names lists registered module names in order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ports))
	for n := range r.ports {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) lookup(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.ports[name]
	return v, ok
}

// PortsAs fetches the port set for name as T, false when missing or of another type
func PortsAs[T any](r *Registry, name string) (T, bool) {
	v, _ := r.lookup(name)
	out, ok := v.(T)
	return out, ok
}
