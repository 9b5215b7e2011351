// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package metrics defines the Prometheus metrics exported on /metrics.
//
// All collectors are registered on the default registry through promauto at
// package init. Callers use the Record*/Set* helpers rather than touching the
// collectors directly so label values stay consistent:
//
//	metrics.RecordCatalogLoad(records, unmatched, genres, time.Since(start))
//	metrics.RecordRecommendation(metrics.OutcomeEmpty, time.Since(start))
package metrics
