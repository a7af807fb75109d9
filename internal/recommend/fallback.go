// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import (
	"context"
	"errors"

	"github.com/shelfmark/shelfmark/internal/database"
	"github.com/shelfmark/shelfmark/internal/logging"
	"github.com/shelfmark/shelfmark/internal/media"
)

// Fallback samples one random catalog item from each category, up to
// four items total. Categories with no rows are skipped. Used when
// personalized recommendation yields nothing, so the caller can still
// return usable content instead of an empty page.
func Fallback(ctx context.Context, catalog Catalog) ([]media.Detail, error) {
	details := make([]media.Detail, 0, len(media.Categories()))
	for _, c := range media.Categories() {
		d, err := catalog.RandomDetail(ctx, c)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				logging.Ctx(ctx).Debug().
					Str("category", c.String()).
					Msg("Fallback skipping empty category")
				continue
			}
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
