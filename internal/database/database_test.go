// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfmark/shelfmark/internal/config"
	"github.com/shelfmark/shelfmark/internal/media"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func TestDetailRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	want := media.Detail{
		Key:   media.Key{Category: media.CategoryMovie, ID: 7},
		Title: "Stalker",
		Maker: "Andrei Tarkovsky",
		Genre: "Science Fiction",
		Year:  1979,
	}
	if err := db.InsertDetail(ctx, want); err != nil {
		t.Fatalf("InsertDetail() error = %v", err)
	}

	got, err := db.Detail(ctx, want.Key)
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if got != want {
		t.Errorf("Detail() = %+v, want %+v", got, want)
	}
}

func TestDetailNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Detail(context.Background(), media.Key{Category: media.CategoryBook, ID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Detail() error = %v, want ErrNotFound", err)
	}
}

func TestDetailCategoriesAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	game := media.Detail{
		Key:   media.Key{Category: media.CategoryGame, ID: 1},
		Title: "Celeste", Maker: "Maddy Makes Games", Genre: "Platformer", Year: 2018,
	}
	if err := db.InsertDetail(ctx, game); err != nil {
		t.Fatalf("InsertDetail() error = %v", err)
	}

	// Same id in a different category must not resolve.
	_, err := db.Detail(ctx, media.Key{Category: media.CategoryMovie, ID: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Detail() error = %v, want ErrNotFound", err)
	}
}

func TestRandomDetail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	inserted := map[int]bool{}
	for id := 1; id <= 3; id++ {
		d := media.Detail{
			Key:   media.Key{Category: media.CategoryShow, ID: id},
			Title: "Show", Maker: "Network", Genre: "Drama", Year: 2020,
		}
		if err := db.InsertDetail(ctx, d); err != nil {
			t.Fatalf("InsertDetail() error = %v", err)
		}
		inserted[id] = true
	}

	got, err := db.RandomDetail(ctx, media.CategoryShow)
	if err != nil {
		t.Fatalf("RandomDetail() error = %v", err)
	}
	if got.Key.Category != media.CategoryShow {
		t.Errorf("RandomDetail() category = %s, want show", got.Key.Category)
	}
	if !inserted[got.Key.ID] {
		t.Errorf("RandomDetail() id = %d, not among inserted rows", got.Key.ID)
	}
}

func TestRandomDetailEmptyTable(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.RandomDetail(context.Background(), media.CategoryBook)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RandomDetail() error = %v, want ErrNotFound", err)
	}
}

func TestAllRatingsAcrossCategories(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	in := []media.Rating{
		{UserID: 1, Key: media.Key{Category: media.CategoryGame, ID: 1}, Score: 4.5},
		{UserID: 1, Key: media.Key{Category: media.CategoryBook, ID: 2}, Score: 3.0},
		{UserID: 2, Key: media.Key{Category: media.CategoryMovie, ID: 9}, Score: 5.0},
		{UserID: 3, Key: media.Key{Category: media.CategoryShow, ID: 4}, Score: 2.5},
	}
	for _, r := range in {
		if err := db.UpsertRating(ctx, r); err != nil {
			t.Fatalf("UpsertRating() error = %v", err)
		}
	}

	got, err := db.AllRatings(ctx)
	if err != nil {
		t.Fatalf("AllRatings() error = %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("AllRatings() returned %d rows, want %d", len(got), len(in))
	}

	byUserAndKey := map[int]map[media.Key]float64{}
	for _, r := range got {
		if byUserAndKey[r.UserID] == nil {
			byUserAndKey[r.UserID] = map[media.Key]float64{}
		}
		byUserAndKey[r.UserID][r.Key] = r.Score
	}
	for _, want := range in {
		if score, ok := byUserAndKey[want.UserID][want.Key]; !ok || score != want.Score {
			t.Errorf("rating for user %d key %s = %v (present=%v), want %v",
				want.UserID, want.Key, score, ok, want.Score)
		}
	}
}

func TestUpsertRatingReplaces(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	key := media.Key{Category: media.CategoryGame, ID: 3}
	if err := db.UpsertRating(ctx, media.Rating{UserID: 7, Key: key, Score: 2.0}); err != nil {
		t.Fatalf("UpsertRating() error = %v", err)
	}
	if err := db.UpsertRating(ctx, media.Rating{UserID: 7, Key: key, Score: 4.0}); err != nil {
		t.Fatalf("UpsertRating() error = %v", err)
	}

	got, err := db.AllRatings(ctx)
	if err != nil {
		t.Fatalf("AllRatings() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("AllRatings() returned %d rows, want 1", len(got))
	}
	if got[0].Score != 4.0 {
		t.Errorf("replaced rating = %v, want 4.0", got[0].Score)
	}
}

func TestAllRatingsEmpty(t *testing.T) {
	db := setupTestDB(t)

	got, err := db.AllRatings(context.Background())
	if err != nil {
		t.Fatalf("AllRatings() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("AllRatings() returned %d rows, want 0", len(got))
	}
}

func TestSeedDemoData(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}
	// Seeding twice must not error or duplicate rows.
	if err := db.SeedDemoData(ctx); err != nil {
		t.Fatalf("SeedDemoData() second run error = %v", err)
	}

	ratings, err := db.AllRatings(ctx)
	if err != nil {
		t.Fatalf("AllRatings() error = %v", err)
	}
	if len(ratings) != len(demoRatings) {
		t.Errorf("AllRatings() returned %d rows after double seed, want %d", len(ratings), len(demoRatings))
	}

	for _, c := range media.Categories() {
		if _, err := db.RandomDetail(ctx, c); err != nil {
			t.Errorf("RandomDetail(%s) after seed error = %v", c, err)
		}
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
