// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (storage, seed gate) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage drivers selected from the DATABASE_URL scheme.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// # Configuration Schema

// Config holds all runtime configuration for the locations API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL or SQLite)
	DatabaseURL string `env:"DATABASE_URL" envDefault:"sqlite://locations.db"`

	// SeedSecret gates POST /api/seed. It may be a bcrypt hash.
	SeedSecret string `env:"SEED_SECRET,required,notEmpty,unset"`

	// SeedDatasetPath overrides the bundled dataset with a JSON or YAML file.
	SeedDatasetPath string `env:"SEED_DATASET_PATH"`

	// Cross-Origin Resource Sharing, comma-separated origin suffixes.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if _, _, err := ParseDatabaseURL(cfg.DatabaseURL); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginAllowed reports whether a browser origin may call the API in
// non-development environments.
func (c *Config) OriginAllowed(origin string) bool {
	for _, suffix := range c.AllowedOrigins {
		suffix = strings.TrimSpace(suffix)
		if suffix != "" && strings.HasSuffix(origin, suffix) {
			return true
		}
	}
	return false
}

// # Storage Selection

// ParseDatabaseURL splits DATABASE_URL into a driver name and the DSN that
// driver expects.
//
//   - postgres://… and postgresql://… are passed to pgx unchanged.
//   - sqlite://path, sqlite:///abs/path and sqlite://:memory: become a file path.
func ParseDatabaseURL(raw string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DriverPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("config: DATABASE_URL %q has no sqlite path", raw)
		}
		return DriverSQLite, path, nil
	default:
		return "", "", fmt.Errorf("config: unsupported DATABASE_URL scheme in %q", raw)
	}
}
