// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"
	"database/sql"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/dberr"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (repository *SQLiteRepository) ListLocations(ctx context.Context, filter Filter) ([]*Location, error) {
	query, args := BuildListQuery(SQLite, filter)

	rows, err := repository.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_locations")
	}
	defer rows.Close()

	locations := []*Location{}
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_location")
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_locations")
	}
	return locations, nil
}

func (repository *SQLiteRepository) GetLocation(ctx context.Context, id int64) (*Location, error) {
	location, err := scanLocation(repository.db.QueryRowContext(ctx, BuildGetQuery(SQLite), id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_location")
	}
	return location, nil
}

func (repository *SQLiteRepository) CreateLocation(ctx context.Context, location *Location) error {
	row := repository.db.QueryRowContext(ctx, BuildInsertQuery(SQLite), insertArgs(location)...)
	return dberr.Wrap(scanInto(row, location), resourceName, "create_location")
}

func (repository *SQLiteRepository) UpdateLocation(ctx context.Context, id int64, in UpdateInput) (*Location, error) {
	query, args, ok := BuildUpdateQuery(SQLite, id, in)
	if !ok {
		return nil, ErrNoChanges
	}

	location, err := scanLocation(repository.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "update_location")
	}
	return location, nil
}

func (repository *SQLiteRepository) DeleteLocation(ctx context.Context, id int64) error {
	result, err := repository.db.ExecContext(ctx, BuildDeleteQuery(SQLite), id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_location")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_location")
	}
	if affected == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

func (repository *SQLiteRepository) CountLocations(ctx context.Context) (int, error) {
	var total int
	err := repository.db.QueryRowContext(ctx, BuildCountQuery()).Scan(&total)
	return total, dberr.Wrap(err, resourceName, "count_locations")
}

// SeedIfEmpty checks and inserts inside one transaction. SQLite serialises
// writers, so no explicit lock is needed.
func (repository *SQLiteRepository) SeedIfEmpty(ctx context.Context, locations []*Location) (int, error) {
	tx, err := repository.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_begin")
	}
	// No-op once committed
	defer func() { _ = tx.Rollback() }()

	var existing int
	if err := tx.QueryRowContext(ctx, BuildCountQuery()).Scan(&existing); err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_count")
	}
	if existing > 0 {
		return 0, ErrAlreadyPopulated
	}

	statement, err := tx.PrepareContext(ctx, BuildInsertQuery(SQLite))
	if err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_prepare")
	}
	defer statement.Close()

	for _, location := range locations {
		if err := scanInto(statement.QueryRowContext(ctx, insertArgs(location)...), location); err != nil {
			return 0, dberr.Wrap(err, resourceName, "seed_insert")
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, dberr.Wrap(err, resourceName, "seed_commit")
	}
	return len(locations), nil
}
