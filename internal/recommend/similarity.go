// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import "math"

// Similarity computes the Pearson correlation between two profiles,
// restricted to the keys both users have rated. It returns 0 when the
// profiles share no keys or when either side has zero variance over
// the shared keys. The result is symmetric and lies in [-1, 1] up to
// floating-point error.
func Similarity(a, b Profile) float64 {
	// Iterate over the smaller profile when intersecting. The formula
	// is symmetric in its two arguments, so the swap does not change
	// the result.
	if len(b) < len(a) {
		a, b = b, a
	}

	var n float64
	var sumA, sumB, sumA2, sumB2, sumAB float64
	for key, av := range a {
		bv, ok := b[key]
		if !ok {
			continue
		}
		n++
		sumA += av
		sumB += bv
		sumA2 += av * av
		sumB2 += bv * bv
		sumAB += av * bv
	}
	if n == 0 {
		return 0
	}

	num := n*sumAB - sumA*sumB
	den := math.Sqrt((n*sumA2 - sumA*sumA) * (n*sumB2 - sumB*sumB))
	if den == 0 {
		return 0
	}
	return num / den
}
