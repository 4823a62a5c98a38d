// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults when only the required secret is set.
*/
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "ENVIRONMENT", "DATABASE_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("SEED_SECRET", "minerva")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite://locations.db", cfg.DatabaseURL)
	assert.Equal(t, "minerva", cfg.SeedSecret)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_MissingSecret verifies that the seed secret is mandatory.
*/
func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SEED_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_BadDatabaseURL verifies that unknown schemes fail at startup.
*/
func TestLoad_BadDatabaseURL(t *testing.T) {
	t.Setenv("SEED_SECRET", "minerva")
	t.Setenv("DATABASE_URL", "mysql://localhost/tpn")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		driver  string
		dsn     string
		wantErr bool
	}{
		{"postgres://user:pw@localhost:5432/tpn", config.DriverPostgres, "postgres://user:pw@localhost:5432/tpn", false},
		{"postgresql://localhost/tpn", config.DriverPostgres, "postgresql://localhost/tpn", false},
		{"sqlite://locations.db", config.DriverSQLite, "locations.db", false},
		{"sqlite:///var/lib/tpn/locations.db", config.DriverSQLite, "/var/lib/tpn/locations.db", false},
		{"sqlite://:memory:", config.DriverSQLite, ":memory:", false},
		{"sqlite://", "", "", true},
		{"locations.db", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			driver, dsn, err := config.ParseDatabaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestOriginAllowed(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"tpn.example", " grace-field.app"}}

	assert.True(t, cfg.OriginAllowed("https://api.tpn.example"))
	assert.True(t, cfg.OriginAllowed("https://grace-field.app"))
	assert.False(t, cfg.OriginAllowed("https://evil.example"))
	assert.False(t, (&config.Config{}).OriginAllowed("https://tpn.example"))
}
