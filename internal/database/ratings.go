// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/shelfmark/shelfmark/internal/media"
	"github.com/shelfmark/shelfmark/internal/metrics"
)

// selectAllRatings feeds the recommendation engine with every review
// across all four categories in one scan. The category discriminator
// is a literal per branch, matching the media.Category string form.
const selectAllRatings = `
	SELECT 'game' AS category, user_id, media_id, rating FROM game_reviews
	UNION ALL
	SELECT 'movie', user_id, media_id, rating FROM movie_reviews
	UNION ALL
	SELECT 'show', user_id, media_id, rating FROM show_reviews
	UNION ALL
	SELECT 'book', user_id, media_id, rating FROM book_reviews`

const (
	upsertGameReview  = `INSERT OR REPLACE INTO game_reviews (user_id, media_id, rating) VALUES (?, ?, ?)`
	upsertMovieReview = `INSERT OR REPLACE INTO movie_reviews (user_id, media_id, rating) VALUES (?, ?, ?)`
	upsertShowReview  = `INSERT OR REPLACE INTO show_reviews (user_id, media_id, rating) VALUES (?, ?, ?)`
	upsertBookReview  = `INSERT OR REPLACE INTO book_reviews (user_id, media_id, rating) VALUES (?, ?, ?)`
)

func upsertRatingQuery(c media.Category) (string, error) {
	switch c {
	case media.CategoryGame:
		return upsertGameReview, nil
	case media.CategoryMovie:
		return upsertMovieReview, nil
	case media.CategoryShow:
		return upsertShowReview, nil
	case media.CategoryBook:
		return upsertBookReview, nil
	default:
		return "", fmt.Errorf("%w: category %d", media.ErrUnknownCategory, int(c))
	}
}

// AllRatings streams every review row into a slice, routed through the
// ratings circuit breaker. Callers receive ErrUnavailable both when
// the query fails and when the breaker is already open.
func (db *DB) AllRatings(ctx context.Context) ([]media.Rating, error) {
	start := time.Now()
	ratings, err := db.ratingsBreaker.Execute(func() ([]media.Rating, error) {
		return db.scanAllRatings(ctx)
	})
	metrics.RecordDBQuery("all_ratings", time.Since(start), err)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit breaker open", ErrUnavailable)
		}
		return nil, err
	}
	return ratings, nil
}

func (db *DB) scanAllRatings(ctx context.Context) ([]media.Rating, error) {
	rows, err := db.conn.QueryContext(ctx, selectAllRatings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var ratings []media.Rating
	for rows.Next() {
		var (
			category string
			r        media.Rating
		)
		if err := rows.Scan(&category, &r.UserID, &r.Key.ID, &r.Score); err != nil {
			return nil, fmt.Errorf("%w: scan failed: %v", ErrUnavailable, err)
		}
		c, err := media.ParseCategory(category)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		r.Key.Category = c
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ratings, nil
}

// UpsertRating writes a review, replacing any previous rating by the
// same user for the same item.
func (db *DB) UpsertRating(ctx context.Context, r media.Rating) error {
	query, err := upsertRatingQuery(r.Key.Category)
	if err != nil {
		return err
	}
	if _, err := db.conn.ExecContext(ctx, query, r.UserID, r.Key.ID, r.Score); err != nil {
		return fmt.Errorf("failed to upsert rating for %s: %w", r.Key, err)
	}
	return nil
}
