// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Required streaming file columns.
const (
	ColumnTitle      = "Title"
	ColumnYear       = "Year"
	ColumnNetflix    = "Netflix"
	ColumnPrimeVideo = "Prime.Video"
)

var requiredStreamingColumns = []string{ColumnTitle, ColumnYear, ColumnNetflix, ColumnPrimeVideo}

// streamingColumns holds header positions of the required columns.
type streamingColumns struct {
	title, year, netflix, prime int
}

// readStreaming parses the streaming availability CSV into records without
// genres. IDs are assigned in file order.
func readStreaming(r io.Reader, path string) ([]Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: file has no header row", ErrMissingColumn)
		}
		return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: 1, Err: err}
	}

	cols, err := locateColumns(header)
	if err != nil {
		var missing *missingColumnError
		column := ""
		if errors.As(err, &missing) {
			column = missing.column
		}
		return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: 1, Column: column, Err: err}
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: line, Err: err}
		}
		line, _ := cr.FieldPos(0)

		year, err := parseYear(row[cols.year])
		if err != nil {
			return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: line, Column: ColumnYear, Err: err}
		}
		netflix, err := parseFlag(row[cols.netflix])
		if err != nil {
			return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: line, Column: ColumnNetflix, Err: err}
		}
		prime, err := parseFlag(row[cols.prime])
		if err != nil {
			return nil, &DataLoadError{Source: SourceStreaming, Path: path, Line: line, Column: ColumnPrimeVideo, Err: err}
		}

		records = append(records, Record{
			ID:         len(records),
			Title:      CleanStreamingTitle(row[cols.title]),
			Year:       year,
			Netflix:    netflix,
			PrimeVideo: prime,
		})
	}
	return records, nil
}

type missingColumnError struct {
	column string
}

func (e *missingColumnError) Error() string {
	return fmt.Sprintf("%v %q", ErrMissingColumn, e.column)
}

func (e *missingColumnError) Unwrap() error { return ErrMissingColumn }

// locateColumns finds the required columns. Header names are trimmed and a
// UTF-8 byte order mark on the first name is ignored.
func locateColumns(header []string) (streamingColumns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}
	for _, col := range requiredStreamingColumns {
		if _, ok := pos[col]; !ok {
			return streamingColumns{}, &missingColumnError{column: col}
		}
	}
	return streamingColumns{
		title:   pos[ColumnTitle],
		year:    pos[ColumnYear],
		netflix: pos[ColumnNetflix],
		prime:   pos[ColumnPrimeVideo],
	}, nil
}

// parseYear accepts integers and integral floats ("1999.0").
func parseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if year, err := strconv.Atoi(raw); err == nil {
		return year, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: year %q", ErrInvalidValue, raw)
	}
	return int(f), nil
}

// parseFlag accepts 0/1, 0.0/1.0 and true/false. An empty cell means the
// title is not available on that platform.
func parseFlag(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "", raw == "0", raw == "0.0", strings.EqualFold(raw, "false"):
		return false, nil
	case raw == "1", raw == "1.0", strings.EqualFold(raw, "true"):
		return true, nil
	default:
		return false, fmt.Errorf("%w: platform flag %q", ErrInvalidValue, raw)
	}
}
