// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package location implements the single resource of the service: places from
The Promised Neverland, each tagged with the world it belongs to.

Layers:

  - Record mapping: CreateInput / UpdateInput wire schemas and their validation.
  - Query building: dialect-aware SQL for list, insert, update and delete.
  - Storage: a Repository with PostgreSQL (pgx) and SQLite implementations.
  - Service: orchestration and domain events.
  - HTTP: chi handlers for CRUD and the secret-gated seed operation.
*/
package location

// Location is a named place in a world.
type Location struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	World       string  `json:"world"`
	Description string  `json:"description"`
	Img         *string `json:"img"`
	Facilities  *string `json:"facilities"`
	LayoutInfo  *string `json:"layout_info"`
}

// Filter holds the optional list parameters.
type Filter struct {
	World  string    // Exact, case-sensitive match
	Search string    // Case-insensitive substring of name or description
	Sort   SortKey   // Falls back to SortByID
	Order  SortOrder // Falls back to OrderAsc
}

// Global field names for validation
const (
	FieldName        = "name"
	FieldWorld       = "world"
	FieldDescription = "description"
	FieldImg         = "img"
	FieldFacilities  = "facilities"
	FieldLayoutInfo  = "layout_info"
)

// Field limits
const (
	MaxNameLength  = 200
	MaxWorldLength = 100
)

// resourceName is used in NOT_FOUND messages.
const resourceName = "Location"
