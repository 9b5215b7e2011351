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

	"github.com/PuerkitoBio/goquery"
)

// posterSelectors are tried in order against the search results page.
var posterSelectors = []string{
	".search_results.movie .card img.poster",
	".search_results .card img.poster",
	"img.poster",
}

// WebProvider scrapes the public TMDB search page.
type WebProvider struct {
	client    *http.Client
	baseURL   *url.URL
	userAgent string
}

// NewWebProvider creates a provider for the site at baseURL
// (https://www.themoviedb.org).
func NewWebProvider(baseURL string, timeout time.Duration) (*WebProvider, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("tmdb web: parse base url: %w", err)
	}
	return &WebProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   u,
		userAgent: "reelmatch-poster/1.0",
	}, nil
}

// Name implements Provider.
func (p *WebProvider) Name() string { return ProviderTMDBWeb }

// Poster implements Provider.
func (p *WebProvider) Poster(ctx context.Context, query string) (string, error) {
	search := p.baseURL.JoinPath("search", "movie")
	search.RawQuery = url.Values{"query": []string{query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, search.String(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("tmdb web: build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb web: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tmdb web: status %d: %s", resp.StatusCode, readBodyForError(resp.Body))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("tmdb web: parse html: %w", err)
	}

	src := firstPosterSrc(doc)
	if src == "" {
		return "", ErrNotFound
	}
	ref, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("tmdb web: poster src %q: %w", src, err)
	}
	return search.ResolveReference(ref).String(), nil
}

// firstPosterSrc returns the first non-empty src or data-src of a poster img.
func firstPosterSrc(doc *goquery.Document) string {
	for _, sel := range posterSelectors {
		var found string
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			for _, attr := range []string{"src", "data-src"} {
				if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
					found = strings.TrimSpace(v)
					return false
				}
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}
