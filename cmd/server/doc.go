// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch API server.

Reelmatch joins a streaming availability table with MovieLens style genre
metadata, then serves filtering and genre-overlap recommendations over a
JSON HTTP API.

Startup order:

 1. Configuration: koanf v2 (defaults, .env, YAML, environment)
 2. Logging: zerolog with JSON or console output
 3. Catalog: both source files are loaded once; any error exits non-zero
 4. Poster lookup: optional TMDB providers behind a rate limiter and breaker
 5. Supervisor tree: suture v4 running the chi HTTP server

SIGINT and SIGTERM cancel the tree, which shuts the server down gracefully.

Configuration is described in internal/config. The most common variables:

	HTTP_PORT=8080
	CATALOG_STREAMING_PATH=data/streaming_availability.csv
	CATALOG_METADATA_PATH=data/movies.dat
	TMDB_API_KEY=...        # optional; without it the web provider is used
	LOG_LEVEL=info
	LOG_FORMAT=json
*/
package main
