// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// Icon URLs shown next to each recommendation.
const (
	PopcornIconURL = "https://upload.wikimedia.org/wikipedia/commons/c/c8/Popcorn_icon.png"
	NetflixIconURL = "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Netflix_Logomark.png/640px-Netflix_Logomark.png"
	PrimeIconURL   = "https://upload.wikimedia.org/wikipedia/commons/2/27/Amazon_Prime_logo.png"
)

// User-facing messages for empty results.
const (
	MessageNoMovies          = "No movies found. Try adjusting the filters."
	MessageNoRecommendations = "No similar genre matches found."
)

// CatalogSource returns the loaded catalog, or an error before it is ready.
type CatalogSource func() (*catalog.Catalog, error)

// PosterLookup finds a poster URL for a catalog title.
type PosterLookup interface {
	Lookup(ctx context.Context, title string) (poster.Result, error)
}

// Settings are the presentation defaults for recommendation controls.
type Settings struct {
	DefaultTopN    int
	MaxTopN        int
	DefaultMinYear int
}

// DefaultSettings returns top 5 of at most 10 recommendations and
// films from 2000 on.
func DefaultSettings() Settings {
	return Settings{DefaultTopN: 5, MaxTopN: 10, DefaultMinYear: 2000}
}

// Handler serves the API endpoints.
type Handler struct {
	catalog   CatalogSource
	posters   PosterLookup
	settings  Settings
	startTime time.Time
}

// NewHandler creates a handler. posters may be nil when poster lookup is
// disabled.
func NewHandler(source CatalogSource, posters PosterLookup, settings Settings) *Handler {
	if source == nil {
		source = catalog.Current
	}
	return &Handler{
		catalog:   source,
		posters:   posters,
		settings:  settings,
		startTime: time.Now(),
	}
}

// defaultMinYear clamps the configured default into the catalog's range.
func (h *Handler) defaultMinYear(c *catalog.Catalog) int {
	lo, hi := c.YearRange()
	y := h.settings.DefaultMinYear
	if c.Len() == 0 {
		return y
	}
	if y < lo {
		return lo
	}
	if y > hi {
		return hi
	}
	return y
}

// loadCatalog writes a 503 and returns nil when no catalog is available.
func (h *Handler) loadCatalog(rw *ResponseWriter) *catalog.Catalog {
	c, err := h.catalog()
	if err != nil {
		rw.ServiceUnavailable("Catalog is not loaded")
		return nil
	}
	return c
}
