// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/ctxutil"
	"github.com/taibuivan/tpnlocations/internal/platform/middleware"
	"github.com/taibuivan/tpnlocations/internal/platform/sec"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

/*
TestRequestID verifies that an ID is generated when missing and echoed when supplied.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	// 1. Generated
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))

	// 2. Propagated
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRequestID, "req-isabella")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, "req-isabella", seen)
	assert.Equal(t, "req-isabella", recorder.Header().Get(constants.HeaderXRequestID))
}

/*
TestRequireSecret covers the 401 / 403 / pass-through paths of the seed gate.
*/
func TestRequireSecret(t *testing.T) {
	handler := middleware.RequireSecret(sec.NewSharedSecret("minerva"))(okHandler)

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"missing", "/api/seed", "", http.StatusUnauthorized},
		{"wrong_header", "/api/seed", "norman", http.StatusForbidden},
		{"wrong_query", "/api/seed?secret=norman", "", http.StatusForbidden},
		{"header", "/api/seed", "minerva", http.StatusOK},
		{"query", "/api/seed?secret=minerva", "", http.StatusOK},
		{"header_wins", "/api/seed?secret=norman", "minerva", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, tt.target, nil)
			if tt.header != "" {
				request.Header.Set(constants.HeaderSeedSecret, tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestRateLimiter verifies that a client is cut off once its burst is spent
while other clients keep their own budget.
*/
func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(0.0001, 2)
	handler := limiter.Middleware(okHandler)

	call := func(ip string) int {
		request := httptest.NewRequest(http.MethodGet, "/locations", nil)
		request.Header.Set(constants.HeaderXRealIP, ip)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		return recorder.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2"))
}

/*
TestPanicRecovery verifies that a panicking handler yields a structured 500.
*/
func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("the demons are coming")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/locations", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool { return c.development }

func (c corsConfig) OriginAllowed(origin string) bool { return origin == "https://tpn.example" }

/*
TestCORS checks origin handling in development and production.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		origin      string
		allowed     bool
	}{
		{"dev_any_origin", true, "http://localhost:3000", true},
		{"prod_allowed", false, "https://tpn.example", true},
		{"prod_rejected", false, "https://evil.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(corsConfig{development: tt.development})(okHandler)

			request := httptest.NewRequest(http.MethodOptions, "/locations", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

/*
TestMetrics verifies that requests are counted under their route pattern.
*/
func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)

	router := chi.NewRouter()
	router.Use(metrics.Middleware)
	router.Get("/locations/{id}", okHandler)

	for _, target := range []string{"/locations/1", "/locations/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	count, err := testutil.GatherAndCount(registry, "http_"+middleware.MetricRequestsTotal)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

/*
TestRealIP checks proxy header precedence.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.10:5555"
	assert.Equal(t, "192.0.2.10", middleware.RealIP(request))

	request.Header.Set(constants.HeaderXForwardedFor, "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set(constants.HeaderXRealIP, "198.51.100.3")
	assert.Equal(t, "198.51.100.3", middleware.RealIP(request))
}
