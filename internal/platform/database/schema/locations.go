// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LocationsTable represents the 'locations' table
type LocationsTable struct {
	Table       string
	ID          string
	Name        string
	World       string
	Description string
	Img         string
	Facilities  string
	LayoutInfo  string
}

// Locations is the schema definition for locations
var Locations = LocationsTable{
	Table:       "locations",
	ID:          "id",
	Name:        "name",
	World:       "world",
	Description: "description",
	Img:         "img",
	Facilities:  "facilities",
	LayoutInfo:  "layout_info",
}

// Columns lists every column in scan order.
func (t LocationsTable) Columns() []string {
	return []string{t.ID, t.Name, t.World, t.Description, t.Img, t.Facilities, t.LayoutInfo}
}

// Mutable lists the columns a client may write, in insert order.
func (t LocationsTable) Mutable() []string {
	return []string{t.Name, t.World, t.Description, t.Img, t.Facilities, t.LayoutInfo}
}
