// @title         Voicejournal API
// @version       0.1.0
// @description   Voice journaling backend: entries, analytics and AI analysis

package main

import (
	"context"
	"os/signal"
	"syscall"

	"voicejournal/internal/modkit/repokit"
	"voicejournal/internal/platform/config"
	"voicejournal/internal/platform/logger"
	phttp "voicejournal/internal/platform/net/http"
	"voicejournal/internal/platform/store"
	"voicejournal/internal/platform/store/schema"

	"voicejournal/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "voicejournal-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if pgCfg.MayBool("AUTO_MIGRATE", false) {
		if err := schema.Apply(ctx, st.PG); err != nil {
			l.Panic().Err(err).Msg("schema apply failed")
		}
	}
	repokit.MustGuard(ctx, st)

	// http server (reads CORE_API_PORT, ":8080" or bare "8080" form)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
