// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import "sort"

// Catalog is an immutable, joined movie table.
type Catalog struct {
	records []Record
	genres  []string
	minYear int
	maxYear int
	byTitle map[string]int
}

// New builds a Catalog from records. The slice is copied.
func New(records []Record) *Catalog {
	c := &Catalog{
		records: append([]Record(nil), records...),
		genres:  genreUniverse(records),
		byTitle: make(map[string]int, len(records)),
	}
	for i, r := range c.records {
		if i == 0 || r.Year < c.minYear {
			c.minYear = r.Year
		}
		if i == 0 || r.Year > c.maxYear {
			c.maxYear = r.Year
		}
		if _, seen := c.byTitle[r.Title]; !seen {
			c.byTitle[r.Title] = i
		}
	}
	return c
}

// Records returns a copy of all records in load order.
func (c *Catalog) Records() []Record {
	return append([]Record(nil), c.records...)
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// YearRange returns the smallest and largest release year, or zeros for an
// empty catalog.
func (c *Catalog) YearRange() (minYear, maxYear int) {
	return c.minYear, c.maxYear
}

// Genres returns the sorted union of all genre tokens.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// Lookup returns the first record with exactly this title.
func (c *Catalog) Lookup(title string) (Record, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

func genreUniverse(records []Record) []string {
	seen := make(map[string]struct{})
	for i := range records {
		for t := range records[i].Genres.m {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
