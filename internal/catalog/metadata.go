// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// MetadataSeparator separates movieId, title and genres.
const MetadataSeparator = "::"

const maxMetadataLine = 1 << 20

// metadataIndex maps a cleaned metadata title to its genres.
type metadataIndex struct {
	genres map[string]GenreSet
	rows   int
}

// readMetadata decodes the ISO-8859-1 metadata file and indexes genres by
// cleaned title. The first row for a title wins.
//
// The title is everything between the first and last separator, so a title
// that itself contains "::" still parses.
func readMetadata(r io.Reader, path string) (metadataIndex, error) {
	sc := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxMetadataLine)

	idx := metadataIndex{genres: make(map[string]GenreSet)}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		first := strings.Index(text, MetadataSeparator)
		last := strings.LastIndex(text, MetadataSeparator)
		if first < 0 || first == last {
			return metadataIndex{}, &DataLoadError{
				Source: SourceMetadata,
				Path:   path,
				Line:   line,
				Err:    fmt.Errorf("%w: want movieId::title::genres", ErrMalformedLine),
			}
		}

		title := CleanMetadataTitle(text[first+len(MetadataSeparator) : last])
		idx.rows++
		if _, dup := idx.genres[title]; dup {
			continue
		}
		idx.genres[title] = SplitGenres(text[last+len(MetadataSeparator):])
	}
	if err := sc.Err(); err != nil {
		return metadataIndex{}, &DataLoadError{Source: SourceMetadata, Path: path, Line: line + 1, Err: err}
	}
	return idx, nil
}
