// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Source names used in errors and metrics.
const (
	SourceStreaming = "streaming"
	SourceMetadata  = "metadata"
)

var (
	// ErrMissingColumn is wrapped when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidValue is wrapped when a cell cannot be parsed.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMalformedLine is wrapped when a metadata line has too few fields.
	ErrMalformedLine = errors.New("malformed line")

	// ErrNotInitialized is returned by Current before Init succeeded.
	ErrNotInitialized = errors.New("catalog not initialized")

	// ErrAlreadyInitialized is returned by a second Init.
	ErrAlreadyInitialized = errors.New("catalog already initialized")
)

// DataLoadError reports why a catalog source could not be loaded.
// Line is 1-based and zero when the failure is not tied to a line.
type DataLoadError struct {
	Source string
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *DataLoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %s data", e.Source)
	if e.Path != "" {
		fmt.Fprintf(&b, " from %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *DataLoadError) Unwrap() error { return e.Err }
