// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Package recommend implements the collaborative-filtering core: a
// user-based engine that predicts ratings from positively correlated
// neighbors, and an item-association engine that surfaces what the
// raters of one item also liked.
//
// The package depends only on the media vocabulary and two small
// interfaces (RatingSource, Catalog), typically implemented by the
// database layer. All numerical work happens on an in-memory
// Universe snapshot built per request, so concurrent requests never
// share mutable state.
package recommend
