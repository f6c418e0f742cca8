// Vocallytics - Voice Transcription Usage Analytics
// Copyright 2026 Vocallytics Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vocallytics/vocallytics

// Package main is the entry point for the Vocallytics server.
//
// Vocallytics ingests voice-transcription usage data (users and
// transcription events) into DuckDB and serves derived analytics over a
// REST API: per-user segmentation, negative-experience detection,
// weekly cohort retention, and duration distribution.
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, then environment
//     variables (Koanf v2, VOCALLYTICS_ prefix)
//  2. Logging: zerolog, JSON or console format
//  3. Database: DuckDB snapshot store
//  4. HTTP server: chi router under a suture supervision tree
//
// Shutdown is graceful on SIGINT and SIGTERM: the listener stops
// accepting connections, in-flight requests get the configured
// shutdown timeout, then the database is closed.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vocallytics/vocallytics/internal/api"
	"github.com/vocallytics/vocallytics/internal/config"
	"github.com/vocallytics/vocallytics/internal/database"
	"github.com/vocallytics/vocallytics/internal/logging"
	"github.com/vocallytics/vocallytics/internal/supervisor"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (overrides VOCALLYTICS_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Config is not available yet, so the default logger reports this.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Addr()).
		Str("db_path", cfg.Database.Path).
		Float64("rate_per_minute", cfg.Analytics.RatePerMinute).
		Msg("Configuration loaded")

	db, err := database.New(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized")

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

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

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Stopped gracefully")
}
