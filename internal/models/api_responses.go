// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Package models holds the wire types shared between the HTTP layer
// and its clients.
package models

import (
	"time"

	"github.com/shelfmark/shelfmark/internal/media"
)

// APIResponse is the standardized envelope used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"results": [...]},
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z", "query_time_ms": 12}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Fallback    bool      `json:"fallback,omitempty"`
}

// APIError is the structured error payload.
//
// Error codes used by the recommendation endpoints:
//   - VALIDATION_ERROR: invalid path or query parameters
//   - INVALID_CATEGORY: category outside {game, movie, show, book}
//   - DATA_UNAVAILABLE: rating feed or catalog unreachable
//   - NOT_FOUND: unknown route or resource
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendationList is the payload for both recommendation endpoints.
type RecommendationList struct {
	Results []media.Detail `json:"results"`
	Count   int            `json:"count"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Version  string `json:"version,omitempty"`
}
