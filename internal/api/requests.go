// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/filter"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// FilterRequest holds the filter controls shared by /movies and
// /recommendations. A nil MinYear means "use the default".
type FilterRequest struct {
	MinYear  *int     `query:"min_year" validate:"omitempty,min=0,max=9999"`
	Platform string   `query:"platform" validate:"omitempty,platform"`
	Genres   []string `query:"genre" validate:"max=20,dive,genre"`
}

// RecommendationsRequest adds the chosen title and result size.
type RecommendationsRequest struct {
	FilterRequest
	Title string `query:"title" validate:"required,max=500"`
	TopN  *int   `query:"top_n" validate:"omitempty,min=1,max=10"`
}

// PosterRequest is the /posters query.
type PosterRequest struct {
	Title string `query:"title" validate:"required,max=500"`
}

// paramError is a query value that is not even the right type.
type paramError struct {
	Field string
	Value string
}

func (e *paramError) details() map[string]interface{} {
	return map[string]interface{}{"field": e.Field, "tag": "integer", "value": e.Value}
}

func (e *paramError) message() string {
	return e.Field + " must be an integer"
}

func optionalInt(q url.Values, name string) (*int, *paramError) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{Field: name, Value: raw}
	}
	return &v, nil
}

func parseFilterRequest(q url.Values) (FilterRequest, *paramError) {
	minYear, perr := optionalInt(q, "min_year")
	if perr != nil {
		return FilterRequest{}, perr
	}
	return FilterRequest{
		MinYear:  minYear,
		Platform: strings.TrimSpace(q.Get("platform")),
		Genres:   q["genre"],
	}, nil
}

func parseRecommendationsRequest(q url.Values) (RecommendationsRequest, *paramError) {
	fr, perr := parseFilterRequest(q)
	if perr != nil {
		return RecommendationsRequest{}, perr
	}
	topN, perr := optionalInt(q, "top_n")
	if perr != nil {
		return RecommendationsRequest{}, perr
	}
	return RecommendationsRequest{
		FilterRequest: fr,
		Title:         q.Get("title"),
		TopN:          topN,
	}, nil
}

// criteria converts a validated request. defaultMinYear applies when
// min_year was omitted.
func (fr FilterRequest) criteria(defaultMinYear int) filter.Criteria {
	minYear := defaultMinYear
	if fr.MinYear != nil {
		minYear = *fr.MinYear
	}
	// Validated already; the error is impossible here.
	platform, _ := filter.ParsePlatform(fr.Platform)
	return filter.Criteria{
		MinYear:  minYear,
		Platform: platform,
		Genres:   catalog.NewGenreSet(fr.Genres...),
	}
}

// validateRequest writes a 400 and returns false when req is invalid.
func validateRequest(rw *ResponseWriter, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}

func writeParamError(rw *ResponseWriter, perr *paramError) {
	rw.ValidationError(perr.message(), perr.details())
}
