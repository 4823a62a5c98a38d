// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/database/schema"
	"github.com/taibuivan/tpnlocations/internal/platform/validate"
	"github.com/taibuivan/tpnlocations/pkg/optional"
)

// ErrNoChanges is returned for a PATCH body that names no writable field.
var ErrNoChanges = apperr.BadRequest("No fields to update")

// CreateInput is the POST /locations body.
type CreateInput struct {
	Name        string  `json:"name"`
	World       string  `json:"world"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
	Facilities  *string `json:"facilities"`
	LayoutInfo  *string `json:"layout_info"`
}

// Validate checks required fields and limits.
func (in CreateInput) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, in.Name).MaxLen(FieldName, in.Name, MaxNameLength)
	validator.Required(FieldWorld, in.World).MaxLen(FieldWorld, in.World, MaxWorldLength)
	if in.Img != nil && *in.Img != "" {
		validator.URL(FieldImg, *in.Img)
	}

	return validator.Err()
}

// ToLocation maps the input onto a new, unsaved record. Text is kept verbatim.
func (in CreateInput) ToLocation() *Location {
	location := &Location{
		Name:       in.Name,
		World:      in.World,
		Img:        in.Img,
		Facilities: in.Facilities,
		LayoutInfo: in.LayoutInfo,
	}
	if in.Description != nil {
		location.Description = *in.Description
	}
	return location
}

// UpdateInput is the PATCH /locations/{id} body. Absent keys leave the
// stored value untouched; null clears nullable columns and resets the
// description to an empty string.
type UpdateInput struct {
	Name        optional.Value[string] `json:"name"`
	World       optional.Value[string] `json:"world"`
	Description optional.Value[string] `json:"description"`
	Img         optional.Value[string] `json:"img"`
	Facilities  optional.Value[string] `json:"facilities"`
	LayoutInfo  optional.Value[string] `json:"layout_info"`
}

// IsEmpty reports whether the body named no writable field.
func (in UpdateInput) IsEmpty() bool {
	return len(in.assignments()) == 0
}

// Validate checks every supplied field. name and world cannot be cleared.
func (in UpdateInput) Validate() error {
	validator := &validate.Validator{}

	for _, required := range []struct {
		field string
		value optional.Value[string]
		max   int
	}{
		{FieldName, in.Name, MaxNameLength},
		{FieldWorld, in.World, MaxWorldLength},
	} {
		if !required.value.Set {
			continue
		}
		if required.value.Null {
			validator.Custom(required.field, true, "Must not be null")
			continue
		}
		validator.Required(required.field, required.value.Val).MaxLen(required.field, required.value.Val, required.max)
	}

	if in.Img.Present() && in.Img.Val != "" {
		validator.URL(FieldImg, in.Img.Val)
	}

	return validator.Err()
}

// assignment is one "column = value" pair of an UPDATE statement.
type assignment struct {
	column string
	value  any
}

// assignments lists the supplied fields in column order.
func (in UpdateInput) assignments() []assignment {
	t := schema.Locations
	var out []assignment

	if in.Name.Present() {
		out = append(out, assignment{t.Name, in.Name.Val})
	}
	if in.World.Present() {
		out = append(out, assignment{t.World, in.World.Val})
	}
	if in.Description.Set {
		// NOT NULL column: null resets to the default.
		out = append(out, assignment{t.Description, in.Description.Val})
	}

	for _, nullable := range []struct {
		column string
		value  optional.Value[string]
	}{
		{t.Img, in.Img},
		{t.Facilities, in.Facilities},
		{t.LayoutInfo, in.LayoutInfo},
	} {
		if nullable.value.Set {
			out = append(out, assignment{nullable.column, nullable.value.Ptr()})
		}
	}

	return out
}
