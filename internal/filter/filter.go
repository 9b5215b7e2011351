// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package filter narrows a catalog by release year, platform and genres.
//
// The three predicates are independent row filters combined with AND, so
// their order does not matter. Apply evaluates them in one pass and never
// reorders or modifies the input. An empty result is a normal outcome.
package filter

import (
	"sort"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Criteria is one user selection of filter controls.
type Criteria struct {
	// MinYear keeps records with Year >= MinYear.
	MinYear int

	Platform Platform

	// Genres must all be present on a record. Empty means no restriction.
	Genres catalog.GenreSet
}

// Matches reports whether r satisfies every predicate.
func (c Criteria) Matches(r *catalog.Record) bool {
	return r.Year >= c.MinYear &&
		c.Platform.Allows(r) &&
		r.Genres.ContainsAll(c.Genres)
}

// Apply returns the records matching c, in input order, in a new slice.
func Apply(records []catalog.Record, c Criteria) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))
	for i := range records {
		if c.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// Titles returns the sorted distinct titles of records, the choices offered
// for picking the movie to recommend from.
func Titles(records []catalog.Record) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for i := range records {
		t := records[i].Title
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
