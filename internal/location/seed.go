// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"
	"errors"
	"log/slog"
)

// Seeder loads a validated dataset into an empty table.
type Seeder struct {
	repo    Repository
	dataset []CreateInput
	logger  *slog.Logger
}

func NewSeeder(repo Repository, dataset []CreateInput, logger *slog.Logger) *Seeder {
	return &Seeder{
		repo:    repo,
		dataset: dataset,
		logger:  logger,
	}
}

// Seed inserts the whole dataset with storage-assigned ids. It returns
// ErrAlreadyPopulated, and inserts nothing, when the table holds any row.
func (seeder *Seeder) Seed(ctx context.Context) (int, error) {
	locations := make([]*Location, len(seeder.dataset))
	for i, input := range seeder.dataset {
		locations[i] = input.ToLocation()
	}

	inserted, err := seeder.repo.SeedIfEmpty(ctx, locations)
	if err != nil {
		if errors.Is(err, ErrAlreadyPopulated) {
			seeder.logger.Info("seed_skipped", slog.String("reason", "already_populated"))
		}
		return 0, err
	}

	seeder.logger.Info("seed_completed", slog.Int("inserted", inserted))
	return inserted, nil
}
