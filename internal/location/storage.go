// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/tpnlocations/internal/platform/config"
	"github.com/taibuivan/tpnlocations/internal/platform/migration"
	pgstore "github.com/taibuivan/tpnlocations/internal/platform/postgres"
	"github.com/taibuivan/tpnlocations/internal/platform/sqlite"
)

// Storage is an open, migrated database behind a Repository.
type Storage struct {
	Repository Repository
	Driver     string

	ping  func(ctx context.Context) error
	close func()
}

// OpenStorage connects to the database named by databaseURL, applies the
// embedded schema and returns the matching Repository.
func OpenStorage(ctx context.Context, databaseURL string, logger *slog.Logger) (*Storage, error) {
	driver, dsn, err := config.ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.DriverPostgres:
		pool, err := pgstore.NewPool(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		if err := migration.RunUp(dsn, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{
			Repository: NewPostgresRepository(pool),
			Driver:     driver,
			ping:       func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		if err := migration.RunUpSQLite(db, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Storage{
			Repository: NewSQLiteRepository(db),
			Driver:     driver,
			ping:       func(ctx context.Context) error { return sqlite.Ping(ctx, db) },
			close: func() {
				if err := db.Close(); err != nil {
					logger.Error("sqlite close error", slog.Any("error", err))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("storage: unsupported driver %q", driver)
	}
}

// Ping checks that the database is reachable.
func (storage *Storage) Ping(ctx context.Context) error {
	return storage.ping(ctx)
}

// Close releases the underlying pool or handle.
func (storage *Storage) Close() {
	storage.close()
}
