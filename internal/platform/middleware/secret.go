// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
	"github.com/taibuivan/tpnlocations/internal/platform/constants"
	"github.com/taibuivan/tpnlocations/internal/platform/ctxutil"
	"github.com/taibuivan/tpnlocations/internal/platform/respond"
	"github.com/taibuivan/tpnlocations/internal/platform/sec"
)

// RequireSecret gates a route behind the shared secret.
//
// # Flow
//  1. Read the secret from the X-Seed-Secret header, falling back to the
//     "secret" query parameter.
//  2. If absent, abort with HTTP 401 Unauthorized.
//  3. If it does not match, abort with HTTP 403 Forbidden.
func RequireSecret(matcher sec.SecretMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			supplied := SuppliedSecret(request)

			// ── 1. Presence Check ─────────────────────────────────────────────
			if supplied == "" {
				respond.Error(writer, request, apperr.Unauthorized("Seed secret required"))
				return
			}

			// ── 2. Secret Verification ────────────────────────────────────────
			if !matcher.Match(supplied) {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "seed_secret_rejected",
					slog.String("ip", RealIP(request)),
				)
				respond.Error(writer, request, apperr.Forbidden("Invalid seed secret"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// SuppliedSecret extracts the caller's secret from the request.
func SuppliedSecret(request *http.Request) string {
	if secret := strings.TrimSpace(request.Header.Get(constants.HeaderSeedSecret)); secret != "" {
		return secret
	}
	return request.URL.Query().Get(constants.QuerySeedSecret)
}
