// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

// Package media defines the shared catalog vocabulary: the closed category
// set, composite media keys, ratings, and catalog detail records.
//
// The category set is a fixed enumeration rather than free-form strings so
// that storage dispatch is exhaustive-checked at compile time and table names
// are never built from request input.
package media

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCategory is returned when a category name or key cannot be
// mapped to one of the four catalog categories.
var ErrUnknownCategory = errors.New("unknown media category")

// Category identifies one of the four catalog categories.
type Category int

const (
	// CategoryGame is the video game catalog.
	CategoryGame Category = iota
	// CategoryMovie is the movie catalog.
	CategoryMovie
	// CategoryShow is the TV show catalog.
	CategoryShow
	// CategoryBook is the book catalog.
	CategoryBook

	numCategories
)

// Categories returns all catalog categories in canonical order.
func Categories() [4]Category {
	return [4]Category{CategoryGame, CategoryMovie, CategoryShow, CategoryBook}
}

// Valid reports whether c is one of the four catalog categories.
func (c Category) Valid() bool {
	return c >= CategoryGame && c < numCategories
}

// String returns the canonical lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryGame:
		return "game"
	case CategoryMovie:
		return "movie"
	case CategoryShow:
		return "show"
	case CategoryBook:
		return "book"
	default:
		return "unknown"
	}
}

// MarshalText renders the category name, so JSON output carries
// "movie" rather than an enum ordinal.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: category %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory maps a category name to its Category value.
// Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "game":
		return CategoryGame, nil
	case "movie":
		return CategoryMovie, nil
	case "show":
		return CategoryShow, nil
	case "book":
		return CategoryBook, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Key is the composite identifier for any catalog item across all four
// categories. Two keys are equal iff both category and id match, so Key is
// usable directly as a map key.
type Key struct {
	Category Category `json:"category"`
	ID       int      `json:"id"`
}

// Less gives the deterministic ordering (category rank, then id) used as the
// secondary sort key wherever scores tie.
func (k Key) Less(other Key) bool {
	if k.Category != other.Category {
		return k.Category < other.Category
	}
	return k.ID < other.ID
}

// String renders the key as "category:id".
func (k Key) String() string {
	return k.Category.String() + ":" + strconv.Itoa(k.ID)
}

// ParseKey parses a "category:id" string into a Key.
func ParseKey(s string) (Key, error) {
	cat, id, ok := strings.Cut(s, ":")
	if !ok {
		return Key{}, fmt.Errorf("malformed media key %q", s)
	}
	c, err := ParseCategory(cat)
	if err != nil {
		return Key{}, err
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return Key{}, fmt.Errorf("malformed media key %q: %w", s, err)
	}
	return Key{Category: c, ID: n}, nil
}

// Rating is a single observation: one user's score for one catalog item.
// Ratings are immutable once read from the store; the review tables enforce
// at most one rating per (user, item) pair.
type Rating struct {
	// UserID is the internal user identifier.
	UserID int `json:"user_id"`

	// Key identifies the rated item.
	Key Key `json:"key"`

	// Score is the rating value.
	Score float64 `json:"score"`
}

// Detail is the full catalog record for an item, joined in at output time.
// It is owned by the catalog store and only ever read by the recommendation
// core.
type Detail struct {
	// Key identifies the item.
	Key Key `json:"key"`

	// Title is the item title.
	Title string `json:"title"`

	// Maker is the primary creator: director, author, developer, or network
	// depending on category.
	Maker string `json:"maker,omitempty"`

	// Genre is the primary genre name.
	Genre string `json:"genre,omitempty"`

	// Year is the release year.
	Year int `json:"year,omitempty"`
}
