// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
)

// ErrAlreadyPopulated is returned by SeedIfEmpty when the table holds rows.
var ErrAlreadyPopulated = apperr.Conflict("Database already populated")

// Repository persists locations. Every method is a single statement except
// SeedIfEmpty, which runs in one transaction.
type Repository interface {
	ListLocations(ctx context.Context, filter Filter) ([]*Location, error)
	GetLocation(ctx context.Context, id int64) (*Location, error)

	// CreateLocation inserts location and fills in the assigned ID.
	CreateLocation(ctx context.Context, location *Location) error
	UpdateLocation(ctx context.Context, id int64, in UpdateInput) (*Location, error)
	DeleteLocation(ctx context.Context, id int64) error
	CountLocations(ctx context.Context) (int, error)

	// SeedIfEmpty inserts every record, or nothing if the table is not empty.
	SeedIfEmpty(ctx context.Context, locations []*Location) (int, error)
}
