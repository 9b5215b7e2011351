// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads Reelmatch configuration.
//
// Sources, lowest to highest precedence:
//  1. Built-in defaults (defaultConfig)
//  2. A .env file (DOTENV_PATH or ./.env), which only fills variables not
//     already set in the process environment
//  3. A YAML file (CONFIG_PATH or one of DefaultConfigPaths)
//  4. Environment variables listed in envTransformFunc
//
// Config is immutable after Load and safe for concurrent reads.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Poster    PosterConfig    `koanf:"poster"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds a single handler, including poster lookups.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// Environment is "development" or "production".
	Environment string `koanf:"environment"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig locates the two catalog source files.
type CatalogConfig struct {
	// StreamingPath is the comma separated availability file
	// (Title, Year, Netflix, Prime.Video).
	StreamingPath string `koanf:"streaming_path"`

	// MetadataPath is the "::" separated movies.dat file.
	MetadataPath string `koanf:"metadata_path"`
}

// RecommendConfig holds presentation defaults and bounds for the recommender.
type RecommendConfig struct {
	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"`

	// DefaultMinYear preselects the year control; it is clamped into the
	// catalog's year range when served.
	DefaultMinYear int `koanf:"default_min_year"`
}

// PosterConfig configures the optional poster lookup.
type PosterConfig struct {
	Enabled bool `koanf:"enabled"`

	// Providers are tried in order: "tmdb-api", "tmdb-web".
	Providers []string `koanf:"providers"`

	// APIKey is required by tmdb-api; without it that provider is skipped.
	APIKey       string        `koanf:"api_key"`
	APIBaseURL   string        `koanf:"api_base_url"`
	WebBaseURL   string        `koanf:"web_base_url"`
	ImageBaseURL string        `koanf:"image_base_url"`
	Timeout      time.Duration `koanf:"timeout"`

	// RatePerSecond and Burst shape outbound requests across all providers.
	RatePerSecond float64 `koanf:"rate_per_second"`
	Burst         int     `koanf:"burst"`
}

// SecurityConfig holds CORS and inbound rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format: json or console.
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// IsProduction reports whether Environment is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
