// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the TPN locations HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open storage (PostgreSQL or SQLite, from DATABASE_URL) and apply the schema.
//  4. Load and validate the seed dataset.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/taibuivan/tpnlocations/internal/api"
	"github.com/taibuivan/tpnlocations/internal/location"
	"github.com/taibuivan/tpnlocations/internal/platform/config"
	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context: cancelled on shutdown, stops background workers.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	storage, err := location.OpenStorage(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "open storage")
	defer func() {
		log.Info("closing storage", slog.String("driver", storage.Driver))
		storage.Close()
	}()

	// ── 4. Seed dataset ───────────────────────────────────────────────────
	dataset, err := location.LoadDataset(cfg.SeedDatasetPath)
	must(log, err, "load seed dataset")
	log.Info("seed_dataset_loaded", slog.Int("records", len(dataset)))

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	locationService := location.NewService(storage.Repository, log)
	seeder := location.NewSeeder(storage.Repository, dataset, log)
	locationHandler := location.NewHandler(locationService, seeder)

	index, liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Driver:         storage.Driver,
		CheckDatabase:  storage.Ping,
		CountLocations: locationService.CountLocations,
	}, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, api.Handlers{
		Index:      index,
		Liveness:   liveness,
		Readiness:  readiness,
		Location:   locationHandler,
		SeedSecret: sec.NewSharedSecret(cfg.SeedSecret),
		Registry:   registry,
	})

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
