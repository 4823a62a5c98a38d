// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the probes.
type HealthDependencies struct {
	// Driver names the storage engine in probe output.
	Driver string

	// CheckDatabase pings the database.
	CheckDatabase func(ctx context.Context) error

	// CountLocations reports how many records are stored.
	CountLocations func(ctx context.Context) (int, error)
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /, /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (index, liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.index, handler.liveness, handler.readiness
}

// index handles GET /.
func (handler *healthHandler) index(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"message":              "The Promised Neverland locations API",
		constants.FieldVersion: constants.AppVersion,
		"endpoints": map[string]string{
			"locations": "/locations",
			"health":    "/health",
			"seed":      "/api/seed",
		},
	})
}

// liveness handles GET /health. It also reports the database and record count.
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	if handler.dependencies.CheckDatabase != nil {
		if err := handler.dependencies.CheckDatabase(ctx); err != nil {
			handler.logger.Error("health_check_failed", slog.String("dependency", handler.dependencies.Driver), slog.Any("error", err))
			respond.Error(writer, request, apperr.ServiceUnavailable("Database unreachable", err))
			return
		}
	}

	payload := map[string]any{
		constants.FieldStatus: "healthy",
		"database":            "connected",
	}

	if handler.dependencies.CountLocations != nil {
		total, err := handler.dependencies.CountLocations(ctx)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		payload["locations_count"] = total
	}

	respond.OK(writer, payload)
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, 1)
	isSystemReady := true

	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: handler.dependencies.Driver, IsOK: true}
		if err := handler.dependencies.CheckDatabase(request.Context()); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", handler.dependencies.Driver), slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK
	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	})
}
