// Arcadia zoo API server.
//
// @title        Arcadia Zoo API
// @version      1.0
// @description  REST backend for the Arcadia zoo management application.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/arcadia-zoo/zoo-api/internal/api"
	"github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/mongo"
	"github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/postgres"
	"github.com/arcadia-zoo/zoo-api/internal/infrastructure/db/redis"
	"github.com/arcadia-zoo/zoo-api/internal/pkg/config"
	"github.com/arcadia-zoo/zoo-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := postgres.Connect(postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(pg); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	mongoClient, mdb, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(pg, mdb, rdb, api.ThrottleSettings{
		MaxAttempts: cfg.Auth.MaxLoginAttempts,
		Window:      cfg.Auth.ThrottleWindow,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := e.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
