// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Match is one ranked candidate.
type Match struct {
	Record catalog.Record
	Score  int
}

// ErrInvariant is matched by every *InvariantViolation via errors.Is.
var ErrInvariant = errors.New("recommend: invariant violation")

// InvariantViolation reports a broken precondition of Recommend or Rank.
type InvariantViolation struct {
	Title  string
	TopN   int
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("recommend: invariant violation: %s (title=%q, topN=%d)", e.Reason, e.Title, e.TopN)
}

// Is makes errors.Is(err, ErrInvariant) true.
func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariant
}
