// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// testRecords spans 1999..2015 so the 2000 default min year applies.
func testRecords() []catalog.Record {
	return []catalog.Record{
		{ID: 0, Title: "A", Year: 1999, Netflix: true, Genres: catalog.NewGenreSet("Action", "Drama")},
		{ID: 1, Title: "B", Year: 2005, Netflix: true, PrimeVideo: true, Genres: catalog.NewGenreSet("Action")},
		{ID: 2, Title: "C", Year: 2010, PrimeVideo: true, Genres: catalog.NewGenreSet("Comedy")},
		{ID: 3, Title: "D", Year: 2015, Netflix: true, Genres: catalog.NewGenreSet("Action", "Drama", "Thriller")},
		{ID: 4, Title: "E", Year: 2001},
	}
}

func staticSource(c *catalog.Catalog) CatalogSource {
	return func() (*catalog.Catalog, error) { return c, nil }
}

func missingSource() (*catalog.Catalog, error) {
	return nil, catalog.ErrNotInitialized
}

func newTestHandler(posters PosterLookup) *Handler {
	return NewHandler(staticSource(catalog.New(testRecords())), posters, DefaultSettings())
}

type stubPosters struct {
	res poster.Result
	err error
}

func (s stubPosters) Lookup(_ context.Context, title string) (poster.Result, error) {
	if s.err != nil {
		return poster.Result{}, s.err
	}
	res := s.res
	res.Title = title
	return res, nil
}

var errUpstream = errors.New("upstream down")

// envelope decodes the response wrapper with data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
		Count     *int   `json:"count"`
		Message   string `json:"message"`
	} `json:"meta"`
}

func serve(t *testing.T, h http.HandlerFunc, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec, decodeEnvelope(t, rec)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (data %s)", err, env.Data)
	}
}
