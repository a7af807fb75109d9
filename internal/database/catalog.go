// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shelfmark/shelfmark/internal/media"
)

// Per-category SQL is spelled out as constants rather than built from
// the category name. The category enum is the only way to choose a
// statement, so no request input ever reaches the query text.
const (
	selectGameDetail  = `SELECT id, title, maker, genre, year FROM games WHERE id = ?`
	selectMovieDetail = `SELECT id, title, maker, genre, year FROM movies WHERE id = ?`
	selectShowDetail  = `SELECT id, title, maker, genre, year FROM shows WHERE id = ?`
	selectBookDetail  = `SELECT id, title, maker, genre, year FROM books WHERE id = ?`

	selectRandomGame  = `SELECT id, title, maker, genre, year FROM games ORDER BY random() LIMIT 1`
	selectRandomMovie = `SELECT id, title, maker, genre, year FROM movies ORDER BY random() LIMIT 1`
	selectRandomShow  = `SELECT id, title, maker, genre, year FROM shows ORDER BY random() LIMIT 1`
	selectRandomBook  = `SELECT id, title, maker, genre, year FROM books ORDER BY random() LIMIT 1`

	insertGame  = `INSERT OR REPLACE INTO games (id, title, maker, genre, year) VALUES (?, ?, ?, ?, ?)`
	insertMovie = `INSERT OR REPLACE INTO movies (id, title, maker, genre, year) VALUES (?, ?, ?, ?, ?)`
	insertShow  = `INSERT OR REPLACE INTO shows (id, title, maker, genre, year) VALUES (?, ?, ?, ?, ?)`
	insertBook  = `INSERT OR REPLACE INTO books (id, title, maker, genre, year) VALUES (?, ?, ?, ?, ?)`
)

func detailQuery(c media.Category) (string, error) {
	switch c {
	case media.CategoryGame:
		return selectGameDetail, nil
	case media.CategoryMovie:
		return selectMovieDetail, nil
	case media.CategoryShow:
		return selectShowDetail, nil
	case media.CategoryBook:
		return selectBookDetail, nil
	default:
		return "", fmt.Errorf("%w: category %d", media.ErrUnknownCategory, int(c))
	}
}

func randomDetailQuery(c media.Category) (string, error) {
	switch c {
	case media.CategoryGame:
		return selectRandomGame, nil
	case media.CategoryMovie:
		return selectRandomMovie, nil
	case media.CategoryShow:
		return selectRandomShow, nil
	case media.CategoryBook:
		return selectRandomBook, nil
	default:
		return "", fmt.Errorf("%w: category %d", media.ErrUnknownCategory, int(c))
	}
}

func insertDetailQuery(c media.Category) (string, error) {
	switch c {
	case media.CategoryGame:
		return insertGame, nil
	case media.CategoryMovie:
		return insertMovie, nil
	case media.CategoryShow:
		return insertShow, nil
	case media.CategoryBook:
		return insertBook, nil
	default:
		return "", fmt.Errorf("%w: category %d", media.ErrUnknownCategory, int(c))
	}
}

// Detail fetches the catalog row for one media item. Returns
// ErrNotFound when no row matches.
func (db *DB) Detail(ctx context.Context, key media.Key) (media.Detail, error) {
	query, err := detailQuery(key.Category)
	if err != nil {
		return media.Detail{}, err
	}

	d := media.Detail{Key: media.Key{Category: key.Category}}
	row := db.conn.QueryRowContext(ctx, query, key.ID)
	if err := row.Scan(&d.Key.ID, &d.Title, &d.Maker, &d.Genre, &d.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return media.Detail{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return media.Detail{}, fmt.Errorf("failed to fetch detail for %s: %w", key, err)
	}
	return d, nil
}

// RandomDetail fetches one uniformly random catalog row from the given
// category. Returns ErrNotFound when the category table is empty.
func (db *DB) RandomDetail(ctx context.Context, c media.Category) (media.Detail, error) {
	query, err := randomDetailQuery(c)
	if err != nil {
		return media.Detail{}, err
	}

	d := media.Detail{Key: media.Key{Category: c}}
	row := db.conn.QueryRowContext(ctx, query)
	if err := row.Scan(&d.Key.ID, &d.Title, &d.Maker, &d.Genre, &d.Year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return media.Detail{}, fmt.Errorf("%w: no %s entries", ErrNotFound, c)
		}
		return media.Detail{}, fmt.Errorf("failed to fetch random %s: %w", c, err)
	}
	return d, nil
}

// InsertDetail writes a catalog row, replacing any existing row with
// the same id.
func (db *DB) InsertDetail(ctx context.Context, d media.Detail) error {
	query, err := insertDetailQuery(d.Key.Category)
	if err != nil {
		return err
	}
	if _, err := db.conn.ExecContext(ctx, query, d.Key.ID, d.Title, d.Maker, d.Genre, d.Year); err != nil {
		return fmt.Errorf("failed to insert %s: %w", d.Key, err)
	}
	return nil
}
