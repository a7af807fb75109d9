// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package database

import (
	"context"
	"fmt"
)

// schemaStatements holds the DDL for the catalog and review tables.
// One catalog table and one review table per media category. Review
// tables key on (user_id, media_id) so a user holds at most one
// rating per item.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS games (
		id    INTEGER PRIMARY KEY,
		title VARCHAR NOT NULL,
		maker VARCHAR NOT NULL,
		genre VARCHAR NOT NULL,
		year  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS movies (
		id    INTEGER PRIMARY KEY,
		title VARCHAR NOT NULL,
		maker VARCHAR NOT NULL,
		genre VARCHAR NOT NULL,
		year  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id    INTEGER PRIMARY KEY,
		title VARCHAR NOT NULL,
		maker VARCHAR NOT NULL,
		genre VARCHAR NOT NULL,
		year  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		id    INTEGER PRIMARY KEY,
		title VARCHAR NOT NULL,
		maker VARCHAR NOT NULL,
		genre VARCHAR NOT NULL,
		year  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS game_reviews (
		user_id  INTEGER NOT NULL,
		media_id INTEGER NOT NULL,
		rating   DOUBLE NOT NULL,
		PRIMARY KEY (user_id, media_id)
	)`,
	`CREATE TABLE IF NOT EXISTS movie_reviews (
		user_id  INTEGER NOT NULL,
		media_id INTEGER NOT NULL,
		rating   DOUBLE NOT NULL,
		PRIMARY KEY (user_id, media_id)
	)`,
	`CREATE TABLE IF NOT EXISTS show_reviews (
		user_id  INTEGER NOT NULL,
		media_id INTEGER NOT NULL,
		rating   DOUBLE NOT NULL,
		PRIMARY KEY (user_id, media_id)
	)`,
	`CREATE TABLE IF NOT EXISTS book_reviews (
		user_id  INTEGER NOT NULL,
		media_id INTEGER NOT NULL,
		rating   DOUBLE NOT NULL,
		PRIMARY KEY (user_id, media_id)
	)`,
}

// createSchema runs the DDL statements. All statements are idempotent
// so startup against an existing database file is safe.
func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
