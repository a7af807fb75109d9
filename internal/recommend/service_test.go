// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/shelfmark/shelfmark/internal/media"
)

func newTestService(src RatingSource, catalog Catalog) *Service {
	engine := NewEngine(src, Options{})
	return NewService(engine, catalog, ServiceConfig{
		DefaultTopN: 10,
		MaxTopN:     100,
		RelatedTopN: 3,
	})
}

func TestServiceForUserPersonalized(t *testing.T) {
	u, keyC := endToEndUniverse()
	catalog := &stubCatalog{details: map[media.Key]media.Detail{
		keyC: {Key: keyC, Title: "Parasite"},
	}}
	svc := newTestService(&stubSource{ratings: ratingsFromUniverse(u)}, catalog)

	got, fallback, err := svc.ForUser(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if fallback {
		t.Errorf("ForUser() reported fallback for a personalized result")
	}
	if len(got) != 1 || got[0].Title != "Parasite" {
		t.Errorf("ForUser() = %v, want the resolved C detail", got)
	}
}

func TestServiceForUserFallback(t *testing.T) {
	// Unknown user: the engine yields nothing, so the service must
	// substitute one random item per non-empty category.
	u, _ := endToEndUniverse()
	catalog := &stubCatalog{randoms: map[media.Category]media.Detail{
		media.CategoryGame:  {Key: gameKey(1), Title: "Random Game"},
		media.CategoryMovie: {Key: movieKey(1), Title: "Random Movie"},
		media.CategoryBook:  {Key: bookKey(1), Title: "Random Book"},
		// Show category left empty on purpose.
	}}
	svc := newTestService(&stubSource{ratings: ratingsFromUniverse(u)}, catalog)

	got, fallback, err := svc.ForUser(context.Background(), 99, 0)
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if !fallback {
		t.Errorf("ForUser() did not report fallback")
	}
	if len(got) != 3 {
		t.Fatalf("ForUser() fallback returned %d items, want 3 (empty show category skipped)", len(got))
	}
}

func TestServiceForUserFeedDown(t *testing.T) {
	wantErr := errors.New("feed down")
	svc := newTestService(&stubSource{err: wantErr}, &stubCatalog{})

	if _, _, err := svc.ForUser(context.Background(), 1, 0); !errors.Is(err, wantErr) {
		t.Errorf("ForUser() error = %v, want %v", err, wantErr)
	}
}

func TestServiceForUserClampsTopN(t *testing.T) {
	u, _ := endToEndUniverse()
	engine := NewEngine(&stubSource{ratings: ratingsFromUniverse(u)}, Options{})
	svc := NewService(engine, &stubCatalog{
		details: map[media.Key]media.Detail{movieKey(1): {Key: movieKey(1)}},
	}, ServiceConfig{DefaultTopN: 10, MaxTopN: 1, RelatedTopN: 3})

	got, _, err := svc.ForUser(context.Background(), 1, 500)
	if err != nil {
		t.Fatalf("ForUser() error = %v", err)
	}
	if len(got) > 1 {
		t.Errorf("ForUser() returned %d items, want at most MaxTopN=1", len(got))
	}
}

func TestServiceAlsoLiked(t *testing.T) {
	seed := gameKey(1)
	shared := movieKey(1)
	u := Universe{
		1: {seed: 5, shared: 4},
		2: {seed: 3, shared: 5},
	}
	catalog := &stubCatalog{details: map[media.Key]media.Detail{
		shared: {Key: shared, Title: "Shared"},
	}}
	svc := newTestService(&stubSource{ratings: ratingsFromUniverse(u)}, catalog)

	got, err := svc.AlsoLiked(context.Background(), seed, 0)
	if err != nil {
		t.Fatalf("AlsoLiked() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Shared" {
		t.Errorf("AlsoLiked() = %v, want the shared item", got)
	}
}

func TestServiceAlsoLikedEmptyIsNotFallback(t *testing.T) {
	u := Universe{1: {gameKey(1): 5}}
	catalog := &stubCatalog{randoms: map[media.Category]media.Detail{
		media.CategoryGame: {Key: gameKey(9), Title: "Should Not Appear"},
	}}
	svc := newTestService(&stubSource{ratings: ratingsFromUniverse(u)}, catalog)

	got, err := svc.AlsoLiked(context.Background(), movieKey(42), 0)
	if err != nil {
		t.Fatalf("AlsoLiked() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("AlsoLiked() with no raters = %v, want empty without fallback", got)
	}
}
