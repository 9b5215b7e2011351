// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"io"
)

// Provider names.
const (
	ProviderTMDBAPI = "tmdb-api"
	ProviderTMDBWeb = "tmdb-web"
)

var (
	// ErrNotFound means the provider answered but has no poster.
	ErrNotFound = errors.New("poster not found")

	// ErrDisabled is returned when poster lookup is switched off.
	ErrDisabled = errors.New("poster lookup disabled")

	// ErrNoProviders is returned by New when no provider can be built, and by
	// Lookup on a Service without providers.
	ErrNoProviders = errors.New("no usable poster providers")
)

// Provider resolves a cleaned title to an absolute poster URL.
type Provider interface {
	Name() string
	Poster(ctx context.Context, query string) (string, error)
}

// maxErrorBodySize caps how much of an error response is kept.
const maxErrorBodySize = 512

// readBodyForError returns at most maxErrorBodySize bytes of r for error
// messages.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}
