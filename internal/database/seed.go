// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import (
	"context"
	"fmt"

	"github.com/shelfmark/shelfmark/internal/logging"
	"github.com/shelfmark/shelfmark/internal/media"
)

// demoCatalog is a small cross-category catalog used when
// database.seed_demo_data is enabled. Enough overlap exists between
// the demo reviewers for the recommendation engine to produce
// non-trivial output out of the box.
var demoCatalog = []media.Detail{
	{Key: media.Key{Category: media.CategoryGame, ID: 1}, Title: "Hollow Knight", Maker: "Team Cherry", Genre: "Metroidvania", Year: 2017},
	{Key: media.Key{Category: media.CategoryGame, ID: 2}, Title: "Stardew Valley", Maker: "ConcernedApe", Genre: "Simulation", Year: 2016},
	{Key: media.Key{Category: media.CategoryGame, ID: 3}, Title: "Hades", Maker: "Supergiant Games", Genre: "Roguelike", Year: 2020},
	{Key: media.Key{Category: media.CategoryGame, ID: 4}, Title: "Outer Wilds", Maker: "Mobius Digital", Genre: "Adventure", Year: 2019},
	{Key: media.Key{Category: media.CategoryMovie, ID: 1}, Title: "Arrival", Maker: "Denis Villeneuve", Genre: "Science Fiction", Year: 2016},
	{Key: media.Key{Category: media.CategoryMovie, ID: 2}, Title: "Parasite", Maker: "Bong Joon-ho", Genre: "Thriller", Year: 2019},
	{Key: media.Key{Category: media.CategoryMovie, ID: 3}, Title: "Spirited Away", Maker: "Hayao Miyazaki", Genre: "Animation", Year: 2001},
	{Key: media.Key{Category: media.CategoryMovie, ID: 4}, Title: "Whiplash", Maker: "Damien Chazelle", Genre: "Drama", Year: 2014},
	{Key: media.Key{Category: media.CategoryShow, ID: 1}, Title: "The Wire", Maker: "HBO", Genre: "Crime Drama", Year: 2002},
	{Key: media.Key{Category: media.CategoryShow, ID: 2}, Title: "Severance", Maker: "Apple TV+", Genre: "Science Fiction", Year: 2022},
	{Key: media.Key{Category: media.CategoryShow, ID: 3}, Title: "Chernobyl", Maker: "HBO", Genre: "Historical Drama", Year: 2019},
	{Key: media.Key{Category: media.CategoryBook, ID: 1}, Title: "The Left Hand of Darkness", Maker: "Ursula K. Le Guin", Genre: "Science Fiction", Year: 1969},
	{Key: media.Key{Category: media.CategoryBook, ID: 2}, Title: "Piranesi", Maker: "Susanna Clarke", Genre: "Fantasy", Year: 2020},
	{Key: media.Key{Category: media.CategoryBook, ID: 3}, Title: "The Name of the Rose", Maker: "Umberto Eco", Genre: "Mystery", Year: 1980},
}

var demoRatings = []media.Rating{
	{UserID: 1, Key: media.Key{Category: media.CategoryGame, ID: 1}, Score: 5.0},
	{UserID: 1, Key: media.Key{Category: media.CategoryGame, ID: 3}, Score: 4.5},
	{UserID: 1, Key: media.Key{Category: media.CategoryMovie, ID: 1}, Score: 4.0},
	{UserID: 1, Key: media.Key{Category: media.CategoryBook, ID: 1}, Score: 5.0},
	{UserID: 2, Key: media.Key{Category: media.CategoryGame, ID: 1}, Score: 4.5},
	{UserID: 2, Key: media.Key{Category: media.CategoryGame, ID: 3}, Score: 4.0},
	{UserID: 2, Key: media.Key{Category: media.CategoryMovie, ID: 1}, Score: 4.5},
	{UserID: 2, Key: media.Key{Category: media.CategoryMovie, ID: 2}, Score: 5.0},
	{UserID: 2, Key: media.Key{Category: media.CategoryShow, ID: 2}, Score: 4.5},
	{UserID: 3, Key: media.Key{Category: media.CategoryGame, ID: 2}, Score: 5.0},
	{UserID: 3, Key: media.Key{Category: media.CategoryMovie, ID: 3}, Score: 5.0},
	{UserID: 3, Key: media.Key{Category: media.CategoryBook, ID: 2}, Score: 4.0},
	{UserID: 4, Key: media.Key{Category: media.CategoryGame, ID: 1}, Score: 2.0},
	{UserID: 4, Key: media.Key{Category: media.CategoryMovie, ID: 2}, Score: 4.5},
	{UserID: 4, Key: media.Key{Category: media.CategoryMovie, ID: 4}, Score: 5.0},
	{UserID: 4, Key: media.Key{Category: media.CategoryShow, ID: 1}, Score: 5.0},
	{UserID: 5, Key: media.Key{Category: media.CategoryShow, ID: 1}, Score: 4.5},
	{UserID: 5, Key: media.Key{Category: media.CategoryShow, ID: 3}, Score: 5.0},
	{UserID: 5, Key: media.Key{Category: media.CategoryBook, ID: 1}, Score: 4.0},
	{UserID: 5, Key: media.Key{Category: media.CategoryBook, ID: 3}, Score: 4.5},
}

// SeedDemoData loads the built-in demo catalog and reviews. Existing
// rows with matching keys are replaced, so repeated startups converge
// on the same state.
func (db *DB) SeedDemoData(ctx context.Context) error {
	for _, d := range demoCatalog {
		if err := db.InsertDetail(ctx, d); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	for _, r := range demoRatings {
		if err := db.UpsertRating(ctx, r); err != nil {
			return fmt.Errorf("failed to seed reviews: %w", err)
		}
	}
	logging.Info().
		Int("catalog_items", len(demoCatalog)).
		Int("ratings", len(demoRatings)).
		Msg("Demo data seeded")
	return nil
}
