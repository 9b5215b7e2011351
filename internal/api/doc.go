// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api exposes the catalog, filter and recommender as a JSON HTTP API.

The API is a thin presentation adapter. Every request re-runs the filter
stage over the immutable process-wide catalog and, for recommendations,
ranks within the filtered set. Nothing is cached between requests.

Routes:

	GET /api/v1/health/live          liveness, always 200
	GET /api/v1/health/ready         503 until the catalog is loaded
	GET /api/v1/catalog/facets       year bounds, platforms, genres, top_n bounds
	GET /api/v1/movies               filtered records and title choices
	GET /api/v1/recommendations      top-N genre overlap matches for a title
	GET /api/v1/posters              poster URL for a title (optional)
	GET /metrics                     Prometheus exposition

Filter parameters shared by /movies and /recommendations:

	min_year   integer 0..9999, defaults to the catalog's default min year
	platform   all | netflix | prime (or the labels "Netflix Only", ...)
	genre      repeatable, every listed genre must be present

Responses use one envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"timestamp": "...", "request_id": "...", "count": 3}
	}

Errors carry a stable code: VALIDATION_ERROR (400), NOT_FOUND (404),
STALE_SELECTION (409, the chosen title is not in the filtered set),
SERVICE_UNAVAILABLE (503) or INTERNAL_ERROR (500).

Middleware:

The router is built on chi. Global middleware adds request IDs, real client
IPs, panic recovery and CORS (go-chi/cors). API routes add per-IP rate
limiting (go-chi/httprate), security headers, Prometheus metrics, gzip and a
request timeout.
*/
package api
