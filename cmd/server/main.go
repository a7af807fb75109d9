// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Command server runs the Shelfmark recommendation API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shelfmark/shelfmark/internal/api"
	"github.com/shelfmark/shelfmark/internal/config"
	"github.com/shelfmark/shelfmark/internal/database"
	"github.com/shelfmark/shelfmark/internal/logging"
	"github.com/shelfmark/shelfmark/internal/recommend"
	"github.com/shelfmark/shelfmark/internal/supervisor"
	"github.com/shelfmark/shelfmark/internal/supervisor/services"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Shelfmark")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedDemoData {
		if err := db.SeedDemoData(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
	}

	engine := recommend.NewEngine(db, recommend.Options{
		NeighborhoodSize: cfg.Recommend.NeighborhoodSize,
		MaxUsers:         cfg.Recommend.MaxUsers,
		UniverseTTL:      cfg.Recommend.UniverseTTL,
	})
	service := recommend.NewService(engine, db, recommend.ServiceConfig{
		DefaultTopN: cfg.Recommend.DefaultTopN,
		MaxTopN:     cfg.Recommend.MaxTopN,
		RelatedTopN: cfg.Recommend.RelatedTopN,
	})

	handler := api.NewHandler(service, db, version)
	router := api.NewRouter(handler, &cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if cfg.Recommend.UniverseTTL > 0 {
		tree.AddBackgroundService(services.NewRefreshService(engine, cfg.Recommend.UniverseTTL, logging.Logger()))
		logging.Info().
			Dur("interval", cfg.Recommend.UniverseTTL).
			Msg("Universe refresher service added")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	logging.Info().Msg("Shutdown complete")
}
