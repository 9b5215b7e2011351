// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// initPosters returns nil when poster lookup is disabled or cannot be built.
// The API then answers /posters with 503; posters are never required.
func initPosters(cfg *config.Config) api.PosterLookup {
	if !cfg.Poster.Enabled {
		logging.Info().Msg("Poster lookup disabled")
		return nil
	}

	svc, err := poster.New(poster.ConfigFrom(cfg.Poster))
	if err != nil {
		logging.Warn().Err(err).Msg("Poster lookup unavailable")
		return nil
	}
	return svc
}
