// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/tpnlocations/internal/platform/request"
	"github.com/taibuivan/tpnlocations/internal/platform/respond"
)

// Query parameters, with the legacy alias second.
const (
	paramWorld     = "world"
	paramWorldAlt  = "loca"
	paramSearch    = "search"
	paramSort      = "sort"
	paramSortAlt   = "sort_by"
	paramOrder     = "order"
	paramID        = "id"
	seedResultNote = "Database seeded"
)

// SeedResult is the POST /api/seed response.
type SeedResult struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message"`
}

type Handler struct {
	service *Service
	seeder  *Seeder
}

func NewHandler(service *Service, seeder *Seeder) *Handler {
	return &Handler{service: service, seeder: seeder}
}

// RegisterRoutes mounts the CRUD routes. The seed route is mounted
// separately behind the shared-secret gate.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLocations)
	router.Post("/", handler.createLocation)
	router.Get("/{id}", handler.getLocation)
	router.Patch("/{id}", handler.updateLocation)
	router.Delete("/{id}", handler.deleteLocation)
}

func (handler *Handler) listLocations(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		World:  requestutil.Query(request, paramWorld, paramWorldAlt),
		Search: requestutil.Query(request, paramSearch),
		Sort:   ParseSortKey(requestutil.Query(request, paramSort, paramSortAlt)),
		Order:  ParseSortOrder(requestutil.Query(request, paramOrder)),
	}

	locations, err := handler.service.ListLocations(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, locations)
}

func (handler *Handler) getLocation(writer http.ResponseWriter, request *http.Request) {
	locationID, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	location, err := handler.service.GetLocation(request.Context(), locationID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, location)
}

func (handler *Handler) createLocation(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	location, err := handler.service.CreateLocation(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, location)
}

func (handler *Handler) updateLocation(writer http.ResponseWriter, request *http.Request) {
	locationID, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	location, err := handler.service.UpdateLocation(request.Context(), locationID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, location)
}

func (handler *Handler) deleteLocation(writer http.ResponseWriter, request *http.Request) {
	locationID, err := requestutil.ID(request, paramID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteLocation(request.Context(), locationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// Seed handles POST /api/seed. The caller has already passed the secret gate.
func (handler *Handler) Seed(writer http.ResponseWriter, request *http.Request) {
	inserted, err := handler.seeder.Seed(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, SeedResult{Inserted: inserted, Message: seedResultNote})
}
