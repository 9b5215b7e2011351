// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestGenreSetOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b GenreSet
		want int
	}{
		{"disjoint", NewGenreSet("Action"), NewGenreSet("Comedy"), 0},
		{"partial", NewGenreSet("Action", "Drama"), NewGenreSet("Action", "Thriller"), 1},
		{"superset", NewGenreSet("Action", "Drama"), NewGenreSet("Action", "Drama", "Thriller"), 2},
		{"empty left", GenreSet{}, NewGenreSet("Action"), 0},
		{"both empty", GenreSet{}, GenreSet{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.a.Overlap(tt.b); got != tt.want {
				t.Errorf("Overlap = %d, want %d", got, tt.want)
			}
			if got := tt.b.Overlap(tt.a); got != tt.want {
				t.Errorf("Overlap is not symmetric: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenreSetContainsAll(t *testing.T) {
	t.Parallel()

	s := NewGenreSet("Action", "Drama", "Thriller")

	tests := []struct {
		name     string
		required GenreSet
		want     bool
	}{
		{"empty requirement", GenreSet{}, true},
		{"single present", NewGenreSet("Drama"), true},
		{"all present", NewGenreSet("Action", "Thriller"), true},
		{"one missing", NewGenreSet("Action", "Comedy"), false},
		{"case sensitive", NewGenreSet("action"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.ContainsAll(tt.required); got != tt.want {
				t.Errorf("ContainsAll(%v) = %v, want %v", tt.required.Sorted(), got, tt.want)
			}
		})
	}
}

func TestGenreSetJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(NewGenreSet("Drama", "Action"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["Action","Drama"]` {
		t.Errorf("Marshal = %s, want sorted array", data)
	}

	empty, err := json.Marshal(GenreSet{})
	if err != nil {
		t.Fatalf("Marshal empty: %v", err)
	}
	if string(empty) != `[]` {
		t.Errorf("Marshal empty = %s, want []", empty)
	}

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "pointer to zero", value: &GenreSet{}, want: `[]`},
		{name: "split of empty string", value: SplitGenres(""), want: `[]`},
		{name: "record field", value: struct {
			Genres GenreSet `json:"genres"`
		}{}, want: `{"genres":[]}`},
		{name: "unmatched join row", value: Join([]Record{{Title: "Nomatch"}}, map[string]GenreSet{})[0].Genres, want: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestRecordPlatformFlags(t *testing.T) {
	t.Parallel()

	flags := Record{Netflix: true}.PlatformFlags()
	if !flags[PlatformNetflix] || flags[PlatformPrimeVideo] {
		t.Errorf("PlatformFlags = %v", flags)
	}
}
