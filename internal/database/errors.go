// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import "errors"

var (
	// ErrNotFound is returned when a catalog lookup matches no row.
	ErrNotFound = errors.New("media not found")

	// ErrUnavailable is returned when the rating feed cannot be read,
	// either because the query failed or the circuit breaker is open.
	ErrUnavailable = errors.New("rating data unavailable")
)
