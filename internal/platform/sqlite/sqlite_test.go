// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/platform/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestOpen_Memory(t *testing.T) {
	db, err := sqlite.Open(context.Background(), ":memory:", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A table created on the single connection stays visible.
	_, err = db.Exec(`CREATE TABLE scratch (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scratch`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.db")

	db, err := sqlite.Open(context.Background(), path, discardLogger())
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "", discardLogger())
	assert.Error(t, err)
}

func TestFold(t *testing.T) {
	db, err := sqlite.Open(context.Background(), ":memory:", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var folded string
	require.NoError(t, db.QueryRow(`SELECT casefold(?)`, "ÉMMA'S ÖLHÜTTE").Scan(&folded))
	assert.Equal(t, "émma's ölhütte", folded)
	assert.Equal(t, sqlite.Fold("émma"), sqlite.Fold("ÉMMA"))

	// Composed and decomposed forms fold alike.
	assert.Equal(t, sqlite.Fold("\u00c9mma"), sqlite.Fold("E\u0301mma"))

	var match bool
	require.NoError(t, db.QueryRow(`SELECT casefold(?) LIKE casefold(?)`, "Goldy Pond", "%GOLDY%").Scan(&match))
	assert.True(t, match)

	var null *string
	require.NoError(t, db.QueryRow(`SELECT casefold(NULL)`).Scan(&null))
	assert.Nil(t, null)
}
