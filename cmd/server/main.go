package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventservice/user-directory/internal/api"
	"github.com/eventservice/user-directory/internal/api/metrics"
	"github.com/eventservice/user-directory/internal/core/service"
	"github.com/eventservice/user-directory/internal/infrastructure/config"
	mongodb "github.com/eventservice/user-directory/internal/infrastructure/db/mongo"
	"github.com/eventservice/user-directory/internal/infrastructure/upstream"
	"github.com/eventservice/user-directory/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	userService := service.NewUserService(userRepo, cfg.DefaultRole, metrics.NewRecorder(), log)
	geoClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log)

	e := api.NewRouter(api.Dependencies{
		DB:                 db,
		Users:              userService,
		Geo:                geoClient,
		Logger:             log,
		LegacyFindNotFound: cfg.LegacyFindNotFound,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
