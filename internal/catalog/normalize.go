// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"regexp"
	"strings"
)

// GenreDelimiter separates tokens in the metadata genres field.
const GenreDelimiter = "|"

// yearSuffix matches a single whitespace character followed by "(YYYY)" at
// the very end of a title.
var yearSuffix = regexp.MustCompile(`\s\(\d{4}\)$`)

// CleanStreamingTitle normalizes a title from the streaming file.
func CleanStreamingTitle(title string) string {
	return strings.TrimSpace(title)
}

// CleanMetadataTitle removes a trailing " (YYYY)" from a metadata title.
// Nothing else is touched, so "Heat (1995) " keeps its suffix.
func CleanMetadataTitle(title string) string {
	return yearSuffix.ReplaceAllString(title, "")
}

// SplitGenres parses a "|" separated genre string.
func SplitGenres(raw string) GenreSet {
	if raw == "" {
		return NewGenreSet()
	}
	return NewGenreSet(strings.Split(raw, GenreDelimiter)...)
}
