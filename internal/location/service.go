// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListLocations never returns a nil slice, so an empty result encodes as [].
func (service *Service) ListLocations(ctx context.Context, filter Filter) ([]*Location, error) {
	locations, err := service.repo.ListLocations(ctx, filter)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*Location{}
	}
	return locations, nil
}

func (service *Service) GetLocation(ctx context.Context, id int64) (*Location, error) {
	return service.repo.GetLocation(ctx, id)
}

func (service *Service) CreateLocation(ctx context.Context, in CreateInput) (*Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	location := in.ToLocation()
	if err := service.repo.CreateLocation(ctx, location); err != nil {
		return nil, err
	}

	service.logger.Info("location_created",
		slog.Int64("location_id", location.ID),
		slog.String("name", location.Name),
	)
	return location, nil
}

// UpdateLocation validates before checking for emptiness so that
// {"name": null} is reported as a validation error, not as an empty body.
// An empty body on a missing id is still NOT_FOUND.
func (service *Service) UpdateLocation(ctx context.Context, id int64, in UpdateInput) (*Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		if _, err := service.repo.GetLocation(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrNoChanges
	}

	location, err := service.repo.UpdateLocation(ctx, id, in)
	if err != nil {
		return nil, err
	}

	service.logger.Info("location_updated", slog.Int64("location_id", id))
	return location, nil
}

func (service *Service) DeleteLocation(ctx context.Context, id int64) error {
	if err := service.repo.DeleteLocation(ctx, id); err != nil {
		return err
	}

	service.logger.Warn("location_deleted", slog.Int64("location_id", id))
	return nil
}

func (service *Service) CountLocations(ctx context.Context) (int, error) {
	return service.repo.CountLocations(ctx)
}
