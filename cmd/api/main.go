package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listing-wizard/internal/config"
	"listing-wizard/internal/infrastructure/cache"
	"listing-wizard/internal/interfaces/router"
	"listing-wizard/internal/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logger.Setup(cfg.LogLevel, cfg.Env)

	app, db, rdb, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	// Verify connections before accepting traffic
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("Postgres: get DB")
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatal().Err(err).Msg("Postgres connection failed")
		}
		log.Info().Msg("Postgres connected")
	}
	if rdb != nil {
		if err := cache.Ping(context.Background(), rdb); err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("Shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info().Str("port", cfg.Port).Str("health", "/health/json").Msg("Server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
