// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/location"
	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/middleware"
	"github.com/taibuivan/tpnlocations/internal/platform/migration"
	"github.com/taibuivan/tpnlocations/internal/platform/sec"
	"github.com/taibuivan/tpnlocations/internal/platform/sqlite"
)

const testSeedSecret = "minerva-was-here"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newRepository returns a repository over a migrated in-memory database.
func newRepository(t *testing.T) *location.SQLiteRepository {
	t.Helper()

	db, err := sqlite.Open(context.Background(), ":memory:", discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.RunUpSQLite(db, discardLogger()))
	return location.NewSQLiteRepository(db)
}

// newRouter wires the handlers the way the API server does, over SQLite.
func newRouter(t *testing.T) (http.Handler, *location.SQLiteRepository) {
	t.Helper()

	repo := newRepository(t)
	dataset, err := location.LoadDataset("")
	require.NoError(t, err)

	handler := location.NewHandler(
		location.NewService(repo, discardLogger()),
		location.NewSeeder(repo, dataset, discardLogger()),
	)

	router := chi.NewRouter()
	router.Route("/locations", handler.RegisterRoutes)
	router.With(middleware.RequireSecret(sec.NewSharedSecret(testSeedSecret))).Post("/api/seed", handler.Seed)
	return router, repo
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func seed(t *testing.T, router http.Handler) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/api/seed", nil)
	request.Header.Set(constants.HeaderSeedSecret, testSeedSecret)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}

// errorBody mirrors the structured error envelope.
type errorBody struct {
	Detail     string `json:"detail"`
	Code       string `json:"code"`
	StatusCode int    `json:"status_code"`
	Errors     []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (body errorBody) fields() []string {
	fields := make([]string, len(body.Errors))
	for i, e := range body.Errors {
		fields[i] = e.Field
	}
	return fields
}
