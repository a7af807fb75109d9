// Shelfmark - Media Catalog Recommendations
// Copyright 2026 Shelfmark Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shelfmark/shelfmark

package media

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "game", input: "game", want: CategoryGame},
		{name: "movie", input: "movie", want: CategoryMovie},
		{name: "show", input: "show", want: CategoryShow},
		{name: "book", input: "book", want: CategoryBook},
		{name: "uppercase", input: "MOVIE", want: CategoryMovie},
		{name: "whitespace", input: " book ", want: CategoryBook},
		{name: "unknown", input: "podcast", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCategory(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrUnknownCategory) {
					t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCategory(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryStringRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q) failed: %v", c.String(), err)
		}
		if got != c {
			t.Errorf("round trip for %v produced %v", c, got)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("%v should be valid", c)
		}
	}
	if Category(99).Valid() {
		t.Error("Category(99) should not be valid")
	}
	if Category(-1).Valid() {
		t.Error("Category(-1) should not be valid")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "movie", input: "movie:42", want: Key{Category: CategoryMovie, ID: 42}},
		{name: "game", input: "game:1", want: Key{Category: CategoryGame, ID: 1}},
		{name: "no separator", input: "movie42", wantErr: true},
		{name: "bad category", input: "podcast:1", wantErr: true},
		{name: "bad id", input: "movie:abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKey(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	k := Key{Category: CategoryBook, ID: 7}
	if got := k.String(); got != "book:7" {
		t.Errorf("String() = %q, want %q", got, "book:7")
	}
}

func TestKeyOrdering(t *testing.T) {
	keys := []Key{
		{Category: CategoryBook, ID: 1},
		{Category: CategoryGame, ID: 9},
		{Category: CategoryMovie, ID: 3},
		{Category: CategoryGame, ID: 2},
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	want := []Key{
		{Category: CategoryGame, ID: 2},
		{Category: CategoryGame, ID: 9},
		{Category: CategoryMovie, ID: 3},
		{Category: CategoryBook, ID: 1},
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("sorted[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestCategoryJSON(t *testing.T) {
	data, err := json.Marshal(Key{Category: CategoryMovie, ID: 42})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"category":"movie","id":42}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var k Key
	if err := json.Unmarshal(data, &k); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if k.Category != CategoryMovie || k.ID != 42 {
		t.Errorf("Unmarshal() = %+v, want movie:42", k)
	}
}

func TestCategoryJSONInvalid(t *testing.T) {
	if _, err := Category(9).MarshalText(); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("MarshalText(9) error = %v, want ErrUnknownCategory", err)
	}
	var c Category
	if err := c.UnmarshalText([]byte("podcast")); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("UnmarshalText(podcast) error = %v, want ErrUnknownCategory", err)
	}
}
