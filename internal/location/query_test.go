// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/location"
	"github.com/taibuivan/tpnlocations/pkg/optional"
)

const selectAll = "SELECT id, name, world, description, img, facilities, layout_info FROM locations"

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name    string
		dialect location.Dialect
		filter  location.Filter
		query   string
		args    []any
	}{
		{
			name:    "no_filter",
			dialect: location.Postgres,
			query:   selectAll + " ORDER BY id ASC",
		},
		{
			name:    "world_postgres",
			dialect: location.Postgres,
			filter:  location.Filter{World: "GF"},
			query:   selectAll + " WHERE world = $1 ORDER BY id ASC",
			args:    []any{"GF"},
		},
		{
			name:    "search_postgres",
			dialect: location.Postgres,
			filter:  location.Filter{Search: "emma"},
			query:   selectAll + ` WHERE (name ILIKE $1 ESCAPE '\' OR description ILIKE $2 ESCAPE '\') ORDER BY id ASC`,
			args:    []any{"%emma%", "%emma%"},
		},
		{
			name:    "both_sqlite_by_name",
			dialect: location.SQLite,
			filter:  location.Filter{World: "GF", Search: "100%_ray", Sort: location.SortByName},
			query:   selectAll + ` WHERE world = ? AND (casefold(name) LIKE casefold(?) ESCAPE '\' OR casefold(description) LIKE casefold(?) ESCAPE '\') ORDER BY name ASC, id ASC`,
			args:    []any{"GF", `%100\%\_ray%`, `%100\%\_ray%`},
		},
		{
			name:    "unknown_sort_desc",
			dialect: location.SQLite,
			filter:  location.Filter{Sort: "world", Order: location.OrderDesc},
			query:   selectAll + " ORDER BY id DESC",
		},
		{
			name:    "injection_is_bound",
			dialect: location.Postgres,
			filter:  location.Filter{World: "x'; DROP TABLE locations; --"},
			query:   selectAll + " WHERE world = $1 ORDER BY id ASC",
			args:    []any{"x'; DROP TABLE locations; --"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := location.BuildListQuery(tt.dialect, tt.filter)
			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, location.SortByName, location.ParseSortKey(" Name "))
	assert.Equal(t, location.SortByID, location.ParseSortKey(""))
	assert.Equal(t, location.SortByID, location.ParseSortKey("description"))

	assert.Equal(t, location.OrderDesc, location.ParseSortOrder("DESC"))
	assert.Equal(t, location.OrderAsc, location.ParseSortOrder("sideways"))
}

func TestBuildInsertQuery(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO locations (name, world, description, img, facilities, layout_info) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, name, world, description, img, facilities, layout_info",
		location.BuildInsertQuery(location.Postgres),
	)
	assert.Equal(t,
		"INSERT INTO locations (name, world, description, img, facilities, layout_info) VALUES (?, ?, ?, ?, ?, ?) RETURNING id, name, world, description, img, facilities, layout_info",
		location.BuildInsertQuery(location.SQLite),
	)
}

/*
TestBuildUpdateQuery verifies that only supplied fields reach the SET clause.
*/
func TestBuildUpdateQuery(t *testing.T) {
	// 1. Single field
	query, args, ok := location.BuildUpdateQuery(location.Postgres, 7, location.UpdateInput{
		Description: optional.Of("A special orphanage"),
	})
	require.True(t, ok)
	assert.Equal(t, "UPDATE locations SET description = $1 WHERE id = $2 RETURNING id, name, world, description, img, facilities, layout_info", query)
	assert.Equal(t, []any{"A special orphanage", int64(7)}, args)

	// 2. Null handling
	query, args, ok = location.BuildUpdateQuery(location.SQLite, 3, location.UpdateInput{
		Name:        optional.Of("Lambda"),
		Description: optional.Null[string](),
		Facilities:  optional.Null[string](),
	})
	require.True(t, ok)
	assert.Equal(t, "UPDATE locations SET name = ?, description = ?, facilities = ? WHERE id = ? RETURNING id, name, world, description, img, facilities, layout_info", query)
	require.Len(t, args, 4)
	assert.Equal(t, "Lambda", args[0])
	assert.Equal(t, "", args[1])
	assert.Nil(t, args[2])
	assert.Equal(t, int64(3), args[3])

	// 3. Nothing supplied
	_, _, ok = location.BuildUpdateQuery(location.Postgres, 1, location.UpdateInput{})
	assert.False(t, ok)
}

func TestBuildSingleRowQueries(t *testing.T) {
	assert.Equal(t, selectAll+" WHERE id = $1", location.BuildGetQuery(location.Postgres))
	assert.Equal(t, "DELETE FROM locations WHERE id = ?", location.BuildDeleteQuery(location.SQLite))
	assert.Equal(t, "SELECT COUNT(*) FROM locations", location.BuildCountQuery())
}
