// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// Poster provider names accepted in poster.providers.
const (
	ProviderTMDBAPI = "tmdb-api"
	ProviderTMDBWeb = "tmdb-web"
)

// Bounds for values exposed to clients or outbound traffic.
const (
	maxTopNLimit         = 100
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateRecommend,
		c.validatePoster,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	timeouts := map[string]time.Duration{
		"HTTP_READ_TIMEOUT":  c.Server.ReadTimeout,
		"HTTP_WRITE_TIMEOUT": c.Server.WriteTimeout,
		"HTTP_IDLE_TIMEOUT":  c.Server.IdleTimeout,
		"SHUTDOWN_TIMEOUT":   c.Server.ShutdownTimeout,
		"REQUEST_TIMEOUT":    c.Server.RequestTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	switch c.Server.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.StreamingPath) == "" {
		return fmt.Errorf("CATALOG_STREAMING_PATH is required")
	}
	if strings.TrimSpace(c.Catalog.MetadataPath) == "" {
		return fmt.Errorf("CATALOG_METADATA_PATH is required")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxTopN < 1 || c.Recommend.MaxTopN > maxTopNLimit {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N must be between 1 and %d", maxTopNLimit)
	}
	if c.Recommend.DefaultTopN < 1 || c.Recommend.DefaultTopN > c.Recommend.MaxTopN {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N must be between 1 and RECOMMEND_MAX_TOP_N (%d)", c.Recommend.MaxTopN)
	}
	if c.Recommend.DefaultMinYear < 0 {
		return fmt.Errorf("RECOMMEND_DEFAULT_MIN_YEAR must not be negative")
	}
	return nil
}

func (c *Config) validatePoster() error {
	if !c.Poster.Enabled {
		return nil
	}
	if len(c.Poster.Providers) == 0 {
		return fmt.Errorf("POSTER_PROVIDERS must list at least one provider when POSTER_ENABLED=true")
	}
	for _, p := range c.Poster.Providers {
		if p != ProviderTMDBAPI && p != ProviderTMDBWeb {
			return fmt.Errorf("POSTER_PROVIDERS contains unknown provider %q (want %s or %s)", p, ProviderTMDBAPI, ProviderTMDBWeb)
		}
	}

	urls := []struct{ name, value string }{
		{"TMDB_API_URL", c.Poster.APIBaseURL},
		{"TMDB_WEB_URL", c.Poster.WebBaseURL},
		{"TMDB_IMAGE_URL", c.Poster.ImageBaseURL},
	}
	for _, u := range urls {
		if err := validateHTTPURL(u.value, u.name); err != nil {
			return err
		}
	}

	if c.Poster.Timeout <= 0 {
		return fmt.Errorf("POSTER_TIMEOUT must be positive")
	}
	if c.Poster.RatePerSecond <= 0 {
		return fmt.Errorf("POSTER_RATE_PER_SECOND must be positive")
	}
	if c.Poster.Burst < 1 {
		return fmt.Errorf("POSTER_BURST must be at least 1")
	}
	return nil
}

// PosterAPIUsable reports whether the tmdb-api provider can be used.
func (c *Config) PosterAPIUsable() bool {
	return c.Poster.Enabled && c.Poster.APIKey != ""
}

func (c *Config) validateSecurity() error {
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed with ENVIRONMENT=production; list explicit origins")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL checks for an absolute http(s) URL without query string.
// A path is allowed since API and image bases carry one ("/3", "/t/p/w200").
func validateHTTPURL(rawURL, fieldName string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters", fieldName)
	}
	return nil
}
