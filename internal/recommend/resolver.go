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

// Catalog looks up full catalog records. Implemented by the database
// layer; missing rows are reported with database.ErrNotFound.
type Catalog interface {
	Detail(ctx context.Context, key media.Key) (media.Detail, error)
	RandomDetail(ctx context.Context, c media.Category) (media.Detail, error)
}

// Resolver expands ranked keys into full catalog records.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a resolver backed by catalog.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve fetches the catalog record for each key, preserving input
// order. Keys with an unknown category or no catalog row are logged
// and skipped so one bad key never aborts the batch. Any other lookup
// failure aborts with the error.
func (r *Resolver) Resolve(ctx context.Context, keys []media.Key) ([]media.Detail, error) {
	details := make([]media.Detail, 0, len(keys))
	for _, key := range keys {
		d, err := r.catalog.Detail(ctx, key)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) || errors.Is(err, media.ErrUnknownCategory) {
				logging.Ctx(ctx).Warn().
					Str("key", key.String()).
					Err(err).
					Msg("Skipping unresolvable media key")
				continue
			}
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
