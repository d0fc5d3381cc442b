package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/harshydv24/event-nexus-backend/config"
	"github.com/harshydv24/event-nexus-backend/internal/bootstrap"
	cronjob "github.com/harshydv24/event-nexus-backend/internal/events/cron"
	"github.com/harshydv24/event-nexus-backend/internal/storage/postgres"
)

const serviceName = "event-nexus-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setupLogger(cfg)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		JWTSecret:   cfg.Auth.JWTSecret,
		SessionTTL:  time.Duration(cfg.Auth.SessionTTLMins) * time.Minute,
		Redis:       redisClient,
	}

	// Postgres carries the venue catalog and the decision log. The
	// portal still runs without it, minus those two features.
	sqlDB, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Warn().Err(err).Msg("postgres unavailable, venue catalog and decision log disabled")
	} else {
		defer sqlDB.Close()
		if err := postgres.Migrate(ctx, sqlDB); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		deps.DB = sqlDB

		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: postgres.DSN(&cfg.Database)})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open pgx pool")
		}
		defer pool.Close()
		deps.Pool = pool
	}

	if err := bootstrap.Seed(ctx, redisClient); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	services := bootstrap.BuildServices(deps)

	scheduler := cronjob.NewScheduler(services.Events)
	scheduler.Start()
	defer scheduler.Stop()

	router := bootstrap.BuildRouter(deps, services)

	log.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Environment).Msg("server starting")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.App.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
