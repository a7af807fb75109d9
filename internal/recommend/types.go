// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import (
	"sort"

	"github.com/shelfmark/shelfmark/internal/media"
)

// Profile maps each item a user has rated to the rating. A user holds
// at most one rating per key, enforced by the review table keys.
type Profile map[media.Key]float64

// Universe is the complete snapshot of user profiles used for one
// recommendation computation. It is built fresh from the rating feed
// (or served from a short-lived cache) and never mutated afterwards.
type Universe map[int]Profile

// SimilarityScore pairs a user with their similarity to some target.
// Scores live only for the duration of one computation.
type SimilarityScore struct {
	UserID int
	Score  float64
}

// BuildUniverse groups a flat rating feed into per-user profiles.
// When maxUsers > 0, only the maxUsers lowest user ids are kept; the
// cut is by sorted id so the same feed always yields the same
// universe regardless of row order.
func BuildUniverse(ratings []media.Rating, maxUsers int) Universe {
	u := make(Universe)
	for _, r := range ratings {
		p, ok := u[r.UserID]
		if !ok {
			p = make(Profile)
			u[r.UserID] = p
		}
		p[r.Key] = r.Score
	}

	if maxUsers > 0 && len(u) > maxUsers {
		ids := make([]int, 0, len(u))
		for id := range u {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids[maxUsers:] {
			delete(u, id)
		}
	}
	return u
}
