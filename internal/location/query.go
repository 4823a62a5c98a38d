// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/tpnlocations/internal/platform/database/schema"
	"github.com/taibuivan/tpnlocations/internal/platform/sqlite"
)

// # Sorting

// SortKey is a column the list can be ordered by.
type SortKey string

const (
	SortByID   SortKey = "id"
	SortByName SortKey = "name"
)

// ParseSortKey maps a query value to a SortKey. Unknown keys fall back to id.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByName:
		return SortByName
	default:
		return SortByID
	}
}

// SortOrder is the list direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ParseSortOrder maps a query value to a SortOrder. Unknown values fall back to asc.
func ParseSortOrder(raw string) SortOrder {
	if SortOrder(strings.ToLower(strings.TrimSpace(raw))) == OrderDesc {
		return OrderDesc
	}
	return OrderAsc
}

// # Dialects

// Dialect captures the SQL differences between the supported engines.
type Dialect interface {
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder(n int) string

	// ContainsFold renders a case-insensitive LIKE of column against a
	// pattern whose wildcards were escaped with a backslash.
	ContainsFold(column, placeholder string) string
}

type postgresDialect struct{}

func (postgresDialect) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgresDialect) ContainsFold(column, placeholder string) string {
	return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, placeholder)
}

type sqliteDialect struct{}

func (sqliteDialect) Placeholder(int) string { return "?" }

// SQLite's LIKE only folds ASCII, so both sides go through the registered
// Unicode fold first.
func (sqliteDialect) ContainsFold(column, placeholder string) string {
	return fmt.Sprintf(`%[1]s(%[2]s) LIKE %[1]s(%[3]s) ESCAPE '\'`, sqlite.FoldFunc, column, placeholder)
}

var (
	Postgres Dialect = postgresDialect{}
	SQLite   Dialect = sqliteDialect{}
)

// # Builders

// binder accumulates bind values and hands out matching placeholders.
type binder struct {
	dialect Dialect
	args    []any
}

func (b *binder) bind(value any) string {
	b.args = append(b.args, value)
	return b.dialect.Placeholder(len(b.args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into a LIKE pattern that matches it literally
// anywhere in the value.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

func selectColumns() string {
	return strings.Join(schema.Locations.Columns(), ", ")
}

// BuildListQuery renders the filtered, ordered SELECT for a list request.
// Every value is bound; nothing from the filter is interpolated.
func BuildListQuery(dialect Dialect, filter Filter) (string, []any) {
	t := schema.Locations
	b := &binder{dialect: dialect}

	var conditions []string

	if filter.World != "" {
		conditions = append(conditions, fmt.Sprintf("%s = %s", t.World, b.bind(filter.World)))
	}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		conditions = append(conditions, fmt.Sprintf("(%s OR %s)",
			dialect.ContainsFold(t.Name, b.bind(pattern)),
			dialect.ContainsFold(t.Description, b.bind(pattern)),
		))
	}

	query := fmt.Sprintf("SELECT %s FROM %s", selectColumns(), t.Table)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	direction := "ASC"
	if ParseSortOrder(string(filter.Order)) == OrderDesc {
		direction = "DESC"
	}

	if ParseSortKey(string(filter.Sort)) == SortByName {
		query += fmt.Sprintf(" ORDER BY %s %s, %s %s", t.Name, direction, t.ID, direction)
	} else {
		query += fmt.Sprintf(" ORDER BY %s %s", t.ID, direction)
	}

	return query, b.args
}

// BuildGetQuery renders the SELECT for a single id.
func BuildGetQuery(dialect Dialect) string {
	t := schema.Locations
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s", selectColumns(), t.Table, t.ID, dialect.Placeholder(1))
}

// BuildInsertQuery renders the INSERT for one record. Bind insertArgs.
func BuildInsertQuery(dialect Dialect) string {
	t := schema.Locations
	columns := t.Mutable()

	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = dialect.Placeholder(i + 1)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), selectColumns(),
	)
}

// insertArgs lists the bind values for BuildInsertQuery, in column order.
func insertArgs(location *Location) []any {
	return []any{
		location.Name, location.World, location.Description,
		location.Img, location.Facilities, location.LayoutInfo,
	}
}

// BuildUpdateQuery renders a single UPDATE touching only the supplied fields.
// ok is false when the input names no field.
func BuildUpdateQuery(dialect Dialect, id int64, in UpdateInput) (query string, args []any, ok bool) {
	t := schema.Locations
	assignments := in.assignments()
	if len(assignments) == 0 {
		return "", nil, false
	}

	b := &binder{dialect: dialect}
	sets := make([]string, len(assignments))
	for i, a := range assignments {
		sets[i] = fmt.Sprintf("%s = %s", a.column, b.bind(a.value))
	}

	query = fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s RETURNING %s",
		t.Table, strings.Join(sets, ", "), t.ID, b.bind(id), selectColumns(),
	)
	return query, b.args, true
}

// BuildDeleteQuery renders the DELETE for a single id.
func BuildDeleteQuery(dialect Dialect) string {
	t := schema.Locations
	return fmt.Sprintf("DELETE FROM %s WHERE %s = %s", t.Table, t.ID, dialect.Placeholder(1))
}

// BuildCountQuery renders the row count.
func BuildCountQuery() string {
	return "SELECT COUNT(*) FROM " + schema.Locations.Table
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanInto reads a row produced by selectColumns.
func scanInto(row scanner, location *Location) error {
	return row.Scan(
		&location.ID, &location.Name, &location.World, &location.Description,
		&location.Img, &location.Facilities, &location.LayoutInfo,
	)
}

func scanLocation(row scanner) (*Location, error) {
	location := &Location{}
	if err := scanInto(row, location); err != nil {
		return nil, err
	}
	return location, nil
}
