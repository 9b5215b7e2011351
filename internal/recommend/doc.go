// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend ranks movies by genre overlap with a chosen title.
//
// # Scoring
//
// The chosen title's genre set is taken from the first record carrying that
// title. Every record with a different title is scored by the size of the
// intersection of its genres with that base set:
//
//	score(r) = |base ∩ r.genres|
//
// Records scoring zero are dropped, the rest are sorted by score descending
// with a stable sort (equal scores keep input order), and the first topN are
// returned. Records that share the chosen title are never candidates, even
// when they are different rows.
//
// # Contract
//
// Recommend and Rank are pure: they do not cache and do not modify their
// input. The chosen title must be present in the records and topN must be at
// least 1; violating either returns an *InvariantViolation. That error
// indicates a caller bug (typically a selection made against a stale filter
// result) and must not be treated as "no matches". An empty, nil-error result
// means no other record shares a genre.
//
// # Usage
//
//	titles, err := recommend.Recommend(filtered, "Heat", 5)
//	if errors.Is(err, recommend.ErrInvariant) {
//	    // caller bug
//	}
package recommend
