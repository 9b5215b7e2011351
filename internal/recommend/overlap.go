// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Recommend returns up to topN titles most similar to chosenTitle by genre
// overlap. See the package documentation for the exact contract.
func Recommend(records []catalog.Record, chosenTitle string, topN int) ([]string, error) {
	matches, err := Rank(records, chosenTitle, topN)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.Record.Title
	}
	return titles, nil
}

// Rank is Recommend with scores and full records, for callers that need
// platform flags alongside the titles.
func Rank(records []catalog.Record, chosenTitle string, topN int) ([]Match, error) {
	if topN < 1 {
		return nil, &InvariantViolation{Title: chosenTitle, TopN: topN, Reason: "topN must be at least 1"}
	}

	base, ok := baseGenres(records, chosenTitle)
	if !ok {
		return nil, &InvariantViolation{Title: chosenTitle, TopN: topN, Reason: "chosen title not in record set"}
	}

	candidates := make([]Match, 0, len(records))
	for i := range records {
		r := &records[i]
		if r.Title == chosenTitle {
			continue
		}
		if score := base.Overlap(r.Genres); score > 0 {
			candidates = append(candidates, Match{Record: *r, Score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates, nil
}

// baseGenres returns the genres of the first record titled title.
func baseGenres(records []catalog.Record, title string) (catalog.GenreSet, bool) {
	for i := range records {
		if records[i].Title == title {
			return records[i].Genres, true
		}
	}
	return catalog.GenreSet{}, false
}
