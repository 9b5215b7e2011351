// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"context"
	"sync"
)

// The process-wide catalog has a single writer (Init, called from main
// before the HTTP server starts) and many readers (request handlers).
var (
	storeMu sync.RWMutex
	current *Catalog
)

// Init loads the catalog and installs it as the process-wide instance.
// It must be called once at startup; the caller should exit on error.
func Init(ctx context.Context, src Sources) (*Catalog, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	if current != nil {
		return current, ErrAlreadyInitialized
	}

	records, err := Load(ctx, src)
	if err != nil {
		return nil, err
	}
	current = New(records)
	return current, nil
}

// Current returns the process-wide catalog.
func Current() (*Catalog, error) {
	storeMu.RLock()
	defer storeMu.RUnlock()

	if current == nil {
		return nil, ErrNotInitialized
	}
	return current, nil
}
