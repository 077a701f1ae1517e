// Package http serves the meta endpoints: liveness, readiness, build and uptime
package http

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"polyglot/internal/core/version"
	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
)

// ProbeTimeout bounds a whole readiness pass
const ProbeTimeout = 2 * time.Second

// now is swapped in tests
var now = time.Now

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      map[string]modkit.Probe
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	m := meta(d)
	httpkit.Get(r, "/health", m.health)
	httpkit.Get(r, "/ready", m.ready)
	httpkit.Get(r, "/version", func(*http.Request) (any, error) { return version.Info(), nil })
	httpkit.Get(r, "/service", m.service)
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"polyglot-api"`
	Started string `json:"started" example:"2026-10-14T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-14T13:05:00Z"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name   string `json:"name"            example:"classifier"`
	Status string `json:"status"          example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"onnx backend not compiled in"`
}

// ReadyResponse is ok only when every check is
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-14T13:05:00Z"`
}

// ServiceResponse reports uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"polyglot-api"`
	Started string `json:"started" example:"2026-10-14T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

type meta Deps

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func (m meta) health(*http.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: stamp(m.StartedAt), Now: stamp(now())}, nil
}

func (m meta) service(*http.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(now().Sub(m.StartedAt) / time.Second),
	}, nil
}

// ready runs every probe concurrently under one deadline, checks are sorted by name
func (m meta) ready(r *http.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), ProbeTimeout)
	defer cancel()

	checks := make([]ReadyCheck, 0, len(m.Probes))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, probe := range m.Probes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := ReadyCheck{Name: name, Status: "ok"}
			if err := probe(ctx); err != nil {
				c.Status, c.Error = "fail", err.Error()
			}
			mu.Lock()
			checks = append(checks, c)
			mu.Unlock()
		}()
	}
	wg.Wait()

	slices.SortFunc(checks, func(a, b ReadyCheck) int { return strings.Compare(a.Name, b.Name) })
	out := ReadyResponse{Status: "ok", Checks: checks, Now: stamp(now())}
	for _, c := range checks {
		if c.Status != "ok" {
			out.Status = "fail"
		}
	}
	return out, nil
}
