// @title         Polyglot API
// @version       0.1.0
// @description   Script aware tokenization and language identification

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"polyglot/internal/platform/config"
	"polyglot/internal/platform/logger"
	phttp "polyglot/internal/platform/net/http"

	"polyglot/internal/services/api"
	detectmod "polyglot/internal/services/detect/module"
)

func main() {
	// .env first so every reader below sees it
	loaded, envErr := config.LoadDotenv()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()
	if envErr != nil {
		l.Panic().Err(envErr).Msg("load .env failed")
	}
	if len(loaded) > 0 {
		l.Info().Strs("files", loaded).Msg("env files loaded")
	}

	// one blocking startup phase: tokenizers + classifier, fatal on failure
	rt, err := detectmod.Load(detectmod.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("detect runtime load failed")
	}
	defer func() {
		if err := rt.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close classifier")
		}
	}()

	// http server (reads CORE_API_PORT / CORE_API_SHARE)
	srv := phttp.NewServer(root)
	if apiCfg.MayBool("SHARE", false) {
		l.Warn().Str("addr", srv.Addr()).Msg("share mode binds all interfaces without authentication")
	}

	// mount our API
	reg := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Runtime:        rt,
			Logger:         l,
			AccessSlow:     apiCfg.MayDuration("ACCESS_SLOW", 0),
			Origins:        apiCfg.MayCSV("CORS_ORIGINS", nil),
			MaxInFlight:    apiCfg.MayInt("MAX_INFLIGHT", 0),
			Backlog:        apiCfg.MayInt("BACKLOG", 0),
			BacklogWait:    apiCfg.MayDuration("BACKLOG_WAIT", 5*time.Second),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)
	l.Info().Strs("modules", reg.Names()).Str("addr", srv.Addr()).Msg("api ready")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// run
	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
