// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// Sources names the two catalog input files.
type Sources struct {
	StreamingPath string
	MetadataPath  string
}

// Load reads both sources and returns the joined records in streaming file
// order. Any failure is a *DataLoadError and no records are returned.
func Load(ctx context.Context, src Sources) ([]Record, error) {
	start := time.Now()
	logger := logging.WithComponent("catalog")

	if err := ctx.Err(); err != nil {
		return nil, &DataLoadError{Source: SourceStreaming, Path: src.StreamingPath, Err: err}
	}
	streaming, err := loadFile(src.StreamingPath, SourceStreaming, readStreaming)
	if err != nil {
		metrics.RecordCatalogLoadError(SourceStreaming)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, &DataLoadError{Source: SourceMetadata, Path: src.MetadataPath, Err: err}
	}

	meta, err := loadFile(src.MetadataPath, SourceMetadata, readMetadata)
	if err != nil {
		metrics.RecordCatalogLoadError(SourceMetadata)
		return nil, err
	}

	records := Join(streaming, meta.genres)

	unmatched := 0
	for i := range records {
		if records[i].Genres.Len() == 0 {
			unmatched++
		}
	}
	genres := genreUniverse(records)
	duration := time.Since(start)
	metrics.RecordCatalogLoad(len(records), unmatched, len(genres), duration)

	logger.Info().
		Int("records", len(records)).
		Int("metadata_rows", meta.rows).
		Int("unmatched", unmatched).
		Int("genres", len(genres)).
		Dur("duration", duration).
		Msg("Catalog loaded")

	return records, nil
}

// Join attaches genres to streaming records by exact title (left-outer).
// Records without a match get an empty set. The input slice is not modified.
func Join(streaming []Record, genres map[string]GenreSet) []Record {
	out := make([]Record, len(streaming))
	for i, r := range streaming {
		if g, ok := genres[r.Title]; ok {
			r.Genres = g
		} else {
			r.Genres = NewGenreSet()
		}
		out[i] = r
	}
	return out
}

func loadFile[T any](path, source string, read func(io.Reader, string) (T, error)) (T, error) {
	var zero T
	if path == "" {
		return zero, &DataLoadError{Source: source, Err: errors.New("path not configured")}
	}

	f, err := os.Open(path)
	if err != nil {
		return zero, &DataLoadError{Source: source, Path: path, Err: err}
	}
	defer f.Close()

	return read(f, path)
}
