// Package main is the entry point for the catalogue API.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/investasi/catalogue-api/internal/api"
	"github.com/investasi/catalogue-api/internal/infrastructure/config"
	mongodb "github.com/investasi/catalogue-api/internal/infrastructure/db/mongo"
	redisdb "github.com/investasi/catalogue-api/internal/infrastructure/db/redis"
	"github.com/investasi/catalogue-api/internal/infrastructure/queue"
	"github.com/investasi/catalogue-api/internal/infrastructure/storage"
	"github.com/investasi/catalogue-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	store, err := storage.NewStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store initialisation failed")
	}

	reclaimer := queue.NewReclaimer(0, store, log)
	reclaimer.Start(ctx)

	e := api.NewRouter(db, rdb, store, reclaimer, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
