// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// APIProvider queries the TMDB search API.
type APIProvider struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	imageBase string
}

// searchResponse is the subset of /search/movie we read.
type searchResponse struct {
	Results []struct {
		ID         int    `json:"id"`
		Title      string `json:"title"`
		PosterPath string `json:"poster_path"`
	} `json:"results"`
}

// NewAPIProvider creates a TMDB API provider. baseURL is the API root
// (https://api.themoviedb.org/3) and imageBase the sized image root
// (https://image.tmdb.org/t/p/w200).
func NewAPIProvider(baseURL, apiKey, imageBase string, timeout time.Duration) *APIProvider {
	return &APIProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		imageBase: strings.TrimRight(imageBase, "/"),
	}
}

// Name implements Provider.
func (p *APIProvider) Name() string { return ProviderTMDBAPI }

// Poster implements Provider.
func (p *APIProvider) Poster(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("api_key", p.apiKey)
	params.Set("query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search/movie?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("tmdb search: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tmdb search: status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("tmdb search: decode response: %w", err)
	}
	if len(payload.Results) == 0 || payload.Results[0].PosterPath == "" {
		return "", ErrNotFound
	}
	return p.imageBase + "/" + strings.TrimLeft(payload.Results[0].PosterPath, "/"), nil
}
