// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	phttp "polyglot/internal/platform/net/http"

	"polyglot/internal/modkit"
	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/modkit/module"
	"polyglot/internal/platform/net/middleware"
	"polyglot/internal/modkit/swaggerkit"

	"polyglot/internal/core/script"
	perr "polyglot/internal/platform/errors"
	metamod "polyglot/internal/services/api/meta/module"
	detectdom "polyglot/internal/services/detect/domain"
	detectmod "polyglot/internal/services/detect/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Runtime        *detectmod.Runtime
	Logger         *logger.Logger
	AccessSlow     time.Duration
	Origins        []string // CORS allow list for the JSON API
	MaxInFlight    int      // concurrent detect requests, 0 disables the limit
	Backlog        int      // requests allowed to wait for a slot
	BacklogWait    time.Duration
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router and returns the port registry it filled
func Mount(r phttp.Router, opt Options) *module.Registry {
	if opt.Runtime == nil || opt.Runtime.Pipeline == nil {
		panic("api.Mount requires a loaded detect runtime")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:    opt.Logger,
		Cfg:    opt.Config,
		Probes: probes(opt.Runtime),
	}

	detect := detectmod.New(deps,
		modkit.WithPorts(detectdom.Ports{Runner: opt.Runtime.Pipeline}),
		modkit.WithMiddlewares(
			middleware.AllowContentType("application/json"),
			middleware.InFlight(opt.MaxInFlight, opt.Backlog, opt.BacklogWait),
		),
	)

	mods := []modkit.Module{
		metamod.New(deps),
		detect,
	}

	reg := module.NewRegistry()
	stack := httpkit.StackOptions{Slow: opt.AccessSlow, Origins: opt.Origins}
	if opt.Logger != nil {
		opt.Logger.Info().Strs("probes", deps.ProbeNames()).Msg("mounting api")
	}

	// the form lives at the root, outside the versioned API
	r.Group(func(root phttp.Router) {
		root.Use(httpkit.FormStack(stack)...)
		detect.MountForm(root)
	})

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(stack), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			reg.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
	return reg
}

// probes reports the startup-loaded resources to the readiness endpoint
func probes(rt *detectmod.Runtime) map[string]modkit.Probe {
	return map[string]modkit.Probe{
		"classifier": func(context.Context) error {
			if rt.Model == nil {
				return perr.Newf(perr.ErrorCodeUnavailable, "no classifier loaded")
			}
			return nil
		},
		"tokenizers": func(context.Context) error {
			d := rt.Pipeline.Dispatcher()
			for _, c := range []script.Category{script.CJK, script.Kana, script.Thai} {
				if !d.Has(c) {
					return perr.Newf(perr.ErrorCodeUnavailable, "no %s tokenizer", c)
				}
			}
			return nil
		},
	}
}
