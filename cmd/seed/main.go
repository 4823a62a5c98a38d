// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads the location dataset straight into the database,
// without going through the HTTP API or its shared secret.
//
// Usage:
//
//	seed [--database-url URL] [--dataset FILE] [--dry-run]
//	seed hash-secret SECRET
//
// Flags default to DATABASE_URL and SEED_DATASET_PATH. The schema is applied
// first, and nothing is inserted if the table already holds rows.
//
// hash-secret prints a bcrypt hash that can be used as SEED_SECRET in place
// of the plain value.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/tpnlocations/internal/location"
	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/sec"
)

// seedConfig is the subset of the server environment this command reads.
type seedConfig struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://locations.db"`
	DatasetPath string `env:"SEED_DATASET_PATH"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := env.ParseAs[seedConfig]()
	if err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}

	var dryRun bool

	rootCmd := &cobra.Command{
		Use:           "seed",
		Short:         "Load the location dataset into an empty database",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), cfg, dryRun, out)
		},
	}

	rootCmd.Flags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "postgres://, postgresql:// or sqlite:// URL")
	rootCmd.Flags().StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "JSON or YAML dataset (bundled dataset when empty)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the dataset without touching the database")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "hash-secret SECRET",
		Short: "Print a bcrypt hash of the seed secret for SEED_SECRET",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			hash, err := sec.HashSecret(args[0])
			if err != nil {
				return fmt.Errorf("hashing secret: %w", err)
			}
			fmt.Fprintln(out, hash)
			return nil
		},
	})

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	return rootCmd.ExecuteContext(ctx)
}

func runSeed(ctx context.Context, cfg seedConfig, dryRun bool, out io.Writer) error {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName+"-seed"))

	dataset, err := location.LoadDataset(cfg.DatasetPath)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintf(out, "Dataset OK: %d locations\n", len(dataset))
		return nil
	}

	storage, err := location.OpenStorage(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer storage.Close()

	inserted, err := location.NewSeeder(storage.Repository, dataset, logger).Seed(ctx)
	if errors.Is(err, location.ErrAlreadyPopulated) {
		fmt.Fprintln(out, "Database already populated, nothing inserted.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seeding: %w", err)
	}

	fmt.Fprintf(out, "Inserted %d locations.\n", inserted)
	return nil
}
