// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"sort"

	"github.com/goccy/go-json"
)

// Platform names used in flag maps and API payloads.
const (
	PlatformNetflix    = "Netflix"
	PlatformPrimeVideo = "PrimeVideo"
)

// Record is one row of the joined catalog.
//
// ID is the zero-based row index in the streaming file and is the only
// unique key; Title is not guaranteed to be unique.
type Record struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Year       int      `json:"year"`
	Netflix    bool     `json:"netflix"`
	PrimeVideo bool     `json:"prime_video"`
	Genres     GenreSet `json:"genres"`
}

// PlatformFlags returns availability keyed by platform name.
func (r Record) PlatformFlags() map[string]bool {
	return map[string]bool{
		PlatformNetflix:    r.Netflix,
		PlatformPrimeVideo: r.PrimeVideo,
	}
}

// GenreSet is an immutable set of genre tokens. The zero value is the empty set.
type GenreSet struct {
	m      map[string]struct{}
	sorted []string
}

// NewGenreSet builds a set from tokens, dropping empty strings and duplicates.
func NewGenreSet(tokens ...string) GenreSet {
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		m[t] = struct{}{}
	}
	sorted := make([]string, 0, len(m))
	for t := range m {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)
	return GenreSet{m: m, sorted: sorted}
}

// Len returns the number of distinct tokens.
func (s GenreSet) Len() int { return len(s.m) }

// Contains reports whether token is in the set.
func (s GenreSet) Contains(token string) bool {
	_, ok := s.m[token]
	return ok
}

// ContainsAll reports whether every required token is present.
// An empty requirement is always satisfied.
func (s GenreSet) ContainsAll(required GenreSet) bool {
	if required.Len() > s.Len() {
		return false
	}
	for t := range required.m {
		if _, ok := s.m[t]; !ok {
			return false
		}
	}
	return true
}

// Overlap returns |s ∩ other|.
func (s GenreSet) Overlap(other GenreSet) int {
	small, large := s.m, other.m
	if len(small) > len(large) {
		small, large = large, small
	}
	n := 0
	for t := range small {
		if _, ok := large[t]; ok {
			n++
		}
	}
	return n
}

// Sorted returns the tokens in lexical order.
func (s GenreSet) Sorted() []string {
	return append(make([]string, 0, len(s.sorted)), s.sorted...)
}

// MarshalJSON encodes the set as a sorted array; the empty set is [].
func (s GenreSet) MarshalJSON() ([]byte, error) {
	if len(s.sorted) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.sorted)
}

// UnmarshalJSON decodes an array of tokens.
func (s *GenreSet) UnmarshalJSON(data []byte) error {
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}
	*s = NewGenreSet(tokens...)
	return nil
}
