// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog loads the movie catalog from its two static sources and
// holds it as process-wide, read-only state.
//
// # Sources
//
// The streaming availability file is comma separated with a header row that
// must contain Title, Year, Netflix and Prime.Video; other columns are
// ignored. The metadata file is ISO-8859-1 text with "::" separated
// movieId, title and genres fields and no header. Genres are "|" separated.
//
// # Join
//
// Streaming titles are trimmed. Metadata titles lose a trailing " (YYYY)".
// Every streaming row is kept (left-outer join) and receives the genre set of
// the first metadata row whose cleaned title is exactly equal, or an empty
// set. Matching is case sensitive.
//
// # Lifecycle
//
// Init loads both files once at startup and fails fast with a *DataLoadError;
// there is no partial catalog. After Init the catalog is immutable and
// Current may be called from any goroutine.
package catalog
