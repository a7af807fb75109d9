// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Package middleware provides the HTTP middleware stack: request ID
// propagation, Prometheus instrumentation, and request logging.
package middleware

import (
	"net/http"

	"github.com/shelfmark/shelfmark/internal/logging"
)

// RequestID assigns every request a unique ID, honoring any
// X-Request-ID set by an upstream proxy. The ID is echoed in the
// response header and carried in the request context so all log lines
// for one request share it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
