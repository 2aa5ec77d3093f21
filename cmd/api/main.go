package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/userhub/accounts-api/docs"
	"github.com/userhub/accounts-api/internal/api"
	"github.com/userhub/accounts-api/internal/infrastructure/db/postgres"
	redisdb "github.com/userhub/accounts-api/internal/infrastructure/db/redis"
	"github.com/userhub/accounts-api/internal/pkg/config"
	"github.com/userhub/accounts-api/pkg/logger"
)

// @title        Accounts API
// @version      1.0
// @description  Authenticated-user REST backend.
// @BasePath     /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to redis")
	}
	defer rdb.Close()
	log.Info().Msg("connected to redis")

	e := api.NewRouter(pool, rdb, cfg, log)

	// Production binds every interface; development stays on loopback.
	host := "127.0.0.1"
	if cfg.IsProduction() {
		host = "0.0.0.0"
	}
	addr := host + ":" + cfg.Port

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
