// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package poster finds a poster image URL for a movie title.
//
// Lookups are a display nicety and play no part in filtering or
// recommending. A Service asks its providers in order and returns the first
// poster found:
//
//   - tmdb-api: TMDB /search/movie with an API key; the first result's
//     poster_path is joined to the image base URL
//   - tmdb-web: the public TMDB search page, parsed with goquery; used when
//     no API key is configured or as a fallback
//
// Titles are cleaned the same way as catalog metadata titles (a trailing
// " (YYYY)" is removed) before searching. Every outbound call waits on a
// shared token bucket and runs through a per-provider circuit breaker. There
// are no retries and results are not cached.
package poster
