// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the Reelmatch API.

All middleware uses the standard func(http.Handler) http.Handler shape so it
composes directly with chi's Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)          // X-Request-ID + logging context
	r.Use(middleware.PrometheusMetrics)  // request counters and latency
	r.Use(middleware.Compression)        // gzip when the client accepts it

Request ID:

RequestID reuses an upstream X-Request-ID header when present and otherwise
generates a UUID v4. The ID is echoed in the response header and stored in
the request context for both this package (GetRequestID) and the logging
package (logging.RequestIDFromContext), along with a fresh correlation ID.

Prometheus Metrics:

PrometheusMetrics records reelmatch_api_requests_total and
reelmatch_api_request_duration_seconds. The endpoint label is the matched chi
route pattern, not the raw path, so query strings and path parameters never
create new series. Unmatched requests are labelled "unmatched".

Compression:

Compression gzips response bodies for clients that send
Accept-Encoding: gzip. Writers are pooled.
*/
package middleware
