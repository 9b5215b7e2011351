// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Config describes which providers to build and how to shape traffic.
type Config struct {
	Providers     []string      `validate:"dive,oneof=tmdb-api tmdb-web"`
	APIKey        string        `validate:"-"`
	APIBaseURL    string        `validate:"omitempty,url"`
	WebBaseURL    string        `validate:"omitempty,url"`
	ImageBaseURL  string        `validate:"omitempty,url"`
	Timeout       time.Duration `validate:"gt=0"`
	RatePerSecond float64       `validate:"gt=0"`
	Burst         int           `validate:"gte=1"`
	Breaker       BreakerSettings
}

// Result is a successful lookup.
type Result struct {
	Title    string `json:"title"`
	Query    string `json:"query"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
}

// Service looks posters up across an ordered provider chain.
type Service struct {
	providers []Provider
	limiter   *rate.Limiter
}

// New builds a Service from cfg. tmdb-api is skipped without an API key.
func New(cfg Config) (*Service, error) {
	if verr := validation.ValidateStruct(cfg); verr != nil {
		return nil, fmt.Errorf("poster config: %w", verr)
	}

	logger := logging.WithComponent("poster")
	if cfg.Breaker == (BreakerSettings{}) {
		cfg.Breaker = DefaultBreakerSettings()
	}

	var providers []Provider
	for _, name := range cfg.Providers {
		switch name {
		case ProviderTMDBAPI:
			if cfg.APIKey == "" {
				logger.Warn().Msg("TMDB API key not set; skipping tmdb-api poster provider")
				continue
			}
			providers = append(providers, NewAPIProvider(cfg.APIBaseURL, cfg.APIKey, cfg.ImageBaseURL, cfg.Timeout))
		case ProviderTMDBWeb:
			web, err := NewWebProvider(cfg.WebBaseURL, cfg.Timeout)
			if err != nil {
				return nil, err
			}
			providers = append(providers, web)
		default:
			return nil, fmt.Errorf("unknown poster provider %q", name)
		}
	}
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	logger.Info().Strs("providers", names).Msg("Poster lookup enabled")

	return NewService(rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst), cfg.Breaker, providers...), nil
}

// NewService wires already constructed providers. Each is wrapped in its
// own circuit breaker.
func NewService(limiter *rate.Limiter, breaker BreakerSettings, providers ...Provider) *Service {
	wrapped := make([]Provider, len(providers))
	for i, p := range providers {
		wrapped[i] = withBreaker(p, breaker)
	}
	return &Service{providers: wrapped, limiter: limiter}
}

// CleanTitle turns a catalog title into a search query.
func CleanTitle(title string) string {
	return strings.TrimSpace(catalog.CleanMetadataTitle(strings.TrimSpace(title)))
}

// Lookup returns the first poster any provider finds for title. When every
// provider answers without a poster the error is ErrNotFound; when some
// providers fail outright their errors are joined.
func (s *Service) Lookup(ctx context.Context, title string) (Result, error) {
	if len(s.providers) == 0 {
		return Result{}, ErrNoProviders
	}
	query := CleanTitle(title)
	if query == "" {
		return Result{}, fmt.Errorf("%w: empty title", ErrNotFound)
	}

	var failures []error
	for _, p := range s.providers {
		if err := s.limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("poster rate limit: %w", err)
		}

		start := time.Now()
		u, err := p.Poster(ctx, query)
		elapsed := time.Since(start)

		switch {
		case err == nil:
			metrics.RecordPosterLookup(p.Name(), "hit", elapsed)
			return Result{Title: title, Query: query, URL: u, Provider: p.Name()}, nil
		case errors.Is(err, ErrNotFound):
			metrics.RecordPosterLookup(p.Name(), "miss", elapsed)
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.RecordPosterLookup(p.Name(), "rejected", elapsed)
			failures = append(failures, fmt.Errorf("%s: %w", p.Name(), err))
		default:
			metrics.RecordPosterLookup(p.Name(), "error", elapsed)
			logging.Ctx(ctx).Warn().Err(err).Str("provider", p.Name()).Str("query", query).Msg("Poster provider failed")
			failures = append(failures, fmt.Errorf("%s: %w", p.Name(), err))
		}

		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
	}

	if len(failures) == len(s.providers) {
		return Result{}, errors.Join(failures...)
	}
	return Result{}, ErrNotFound
}

// Providers returns the provider names in lookup order.
func (s *Service) Providers() []string {
	names := make([]string, len(s.providers))
	for i, p := range s.providers {
		names[i] = p.Name()
	}
	return names
}

// ConfigFrom maps the application's poster settings.
func ConfigFrom(c config.PosterConfig) Config {
	return Config{
		Providers:     c.Providers,
		APIKey:        c.APIKey,
		APIBaseURL:    c.APIBaseURL,
		WebBaseURL:    c.WebBaseURL,
		ImageBaseURL:  c.ImageBaseURL,
		Timeout:       c.Timeout,
		RatePerSecond: c.RatePerSecond,
		Burst:         c.Burst,
	}
}
