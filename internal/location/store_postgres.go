// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/database/schema"
	"github.com/taibuivan/tpnlocations/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLocations(ctx context.Context, filter Filter) ([]*Location, error) {
	query, args := BuildListQuery(Postgres, filter)

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_locations")
	}

	locations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Location, error) {
		return scanLocation(row)
	})
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "scan_locations")
	}
	return locations, nil
}

func (repository *PostgresRepository) GetLocation(ctx context.Context, id int64) (*Location, error) {
	location, err := scanLocation(repository.db.QueryRow(ctx, BuildGetQuery(Postgres), id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_location")
	}
	return location, nil
}

func (repository *PostgresRepository) CreateLocation(ctx context.Context, location *Location) error {
	row := repository.db.QueryRow(ctx, BuildInsertQuery(Postgres), insertArgs(location)...)
	return dberr.Wrap(scanInto(row, location), resourceName, "create_location")
}

func (repository *PostgresRepository) UpdateLocation(ctx context.Context, id int64, in UpdateInput) (*Location, error) {
	query, args, ok := BuildUpdateQuery(Postgres, id, in)
	if !ok {
		return nil, ErrNoChanges
	}

	location, err := scanLocation(repository.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "update_location")
	}
	return location, nil
}

func (repository *PostgresRepository) DeleteLocation(ctx context.Context, id int64) error {
	cmd, err := repository.db.Exec(ctx, BuildDeleteQuery(Postgres), id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_location")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *PostgresRepository) CountLocations(ctx context.Context) (int, error) {
	var total int
	err := repository.db.QueryRow(ctx, BuildCountQuery()).Scan(&total)
	return total, dberr.Wrap(err, resourceName, "count_locations")
}

// SeedIfEmpty locks the table against concurrent writers, checks that it is
// empty and bulk loads the records with COPY, all in one transaction.
func (repository *PostgresRepository) SeedIfEmpty(ctx context.Context, locations []*Location) (int, error) {
	t := schema.Locations

	tx, err := repository.db.Begin(ctx)
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_begin")
	}
	// No-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("LOCK TABLE %s IN SHARE ROW EXCLUSIVE MODE", t.Table)); err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_lock")
	}

	var existing int
	if err := tx.QueryRow(ctx, BuildCountQuery()).Scan(&existing); err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_count")
	}
	if existing > 0 {
		return 0, ErrAlreadyPopulated
	}

	inserted, err := tx.CopyFrom(ctx, pgx.Identifier{t.Table}, t.Mutable(),
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			return insertArgs(locations[i]), nil
		}),
	)
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_copy")
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_commit")
	}
	return int(inserted), nil
}
