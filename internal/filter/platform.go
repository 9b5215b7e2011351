// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Platform restricts records by streaming availability.
type Platform int

const (
	// All applies no platform restriction.
	All Platform = iota
	// NetflixOnly keeps records available on Netflix.
	NetflixOnly
	// PrimeOnly keeps records available on Prime Video.
	PrimeOnly
)

// ErrUnknownPlatform is returned by ParsePlatform.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platforms lists every value in display order.
var Platforms = []Platform{All, NetflixOnly, PrimeOnly}

// String returns the API name: all, netflix or prime.
func (p Platform) String() string {
	switch p {
	case All:
		return "all"
	case NetflixOnly:
		return "netflix"
	case PrimeOnly:
		return "prime"
	default:
		return fmt.Sprintf("Platform(%d)", int(p))
	}
}

// Label returns the human readable option label.
func (p Platform) Label() string {
	switch p {
	case NetflixOnly:
		return "Netflix Only"
	case PrimeOnly:
		return "Prime Video Only"
	default:
		return "All"
	}
}

// Allows reports whether r passes the platform restriction.
func (p Platform) Allows(r *catalog.Record) bool {
	switch p {
	case NetflixOnly:
		return r.Netflix
	case PrimeOnly:
		return r.PrimeVideo
	default:
		return true
	}
}

// ParsePlatform accepts the API names (case-insensitive) and the option
// labels. The empty string means All.
func ParsePlatform(s string) (Platform, error) {
	s = strings.TrimSpace(s)
	for _, p := range Platforms {
		if strings.EqualFold(s, p.String()) || strings.EqualFold(s, p.Label()) {
			return p, nil
		}
	}
	if s == "" {
		return All, nil
	}
	return All, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	v, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
