// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/filter"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// PlatformOption is one entry of the platform control.
type PlatformOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TopNBounds describes the result size control.
type TopNBounds struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// Facets is everything a client needs to render the filter controls.
type Facets struct {
	Records        int              `json:"records"`
	YearMin        int              `json:"year_min"`
	YearMax        int              `json:"year_max"`
	DefaultMinYear int              `json:"default_min_year"`
	Platforms      []PlatformOption `json:"platforms"`
	Genres         []string         `json:"genres"`
	TopN           TopNBounds       `json:"top_n"`
}

// MoviesResult is the /movies body.
type MoviesResult struct {
	Movies []catalog.Record `json:"movies"`

	// Titles are the sorted choices for the recommendation title control.
	Titles []string `json:"titles"`
}

// CatalogFacets returns the bounds and options for the filter controls.
func (h *Handler) CatalogFacets(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c := h.loadCatalog(rw)
	if c == nil {
		return
	}

	lo, hi := c.YearRange()
	platforms := make([]PlatformOption, 0, len(filter.Platforms))
	for _, p := range filter.Platforms {
		platforms = append(platforms, PlatformOption{Value: p.String(), Label: p.Label()})
	}

	rw.Success(Facets{
		Records:        c.Len(),
		YearMin:        lo,
		YearMax:        hi,
		DefaultMinYear: h.defaultMinYear(c),
		Platforms:      platforms,
		Genres:         c.Genres(),
		TopN: TopNBounds{
			Min:     1,
			Max:     h.settings.MaxTopN,
			Default: h.settings.DefaultTopN,
		},
	})
}

// Movies applies the filter controls and returns the matching records.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, perr := parseFilterRequest(r.URL.Query())
	if perr != nil {
		writeParamError(rw, perr)
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	c := h.loadCatalog(rw)
	if c == nil {
		return
	}

	crit := req.criteria(h.defaultMinYear(c))
	filtered := filter.Apply(c.Records(), crit)
	metrics.RecordFilter(len(filtered))

	logging.Ctx(r.Context()).Debug().
		Int("min_year", crit.MinYear).
		Str("platform", crit.Platform.String()).
		Strs("genres", crit.Genres.Sorted()).
		Int("results", len(filtered)).
		Msg("Filtered catalog")

	message := ""
	if len(filtered) == 0 {
		message = MessageNoMovies
	}
	rw.SuccessList(MoviesResult{
		Movies: filtered,
		Titles: filter.Titles(filtered),
	}, len(filtered), message)
}
