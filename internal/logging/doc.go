// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the zerolog-based structured logger used across
// Reelmatch.
//
// A single global logger is configured once at startup with Init and is safe
// for concurrent use afterwards. Request-scoped fields (request_id,
// correlation_id) travel in the context and are attached by Ctx:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("records", n).Msg("Catalog loaded")
//	logging.Ctx(r.Context()).Warn().Str("title", t).Msg("Stale selection")
//
// Libraries that only speak log/slog (sutureslog) are bridged through
// SlogHandler so every line ends up in the same zerolog stream.
//
// Always terminate event chains with Msg or Send; an unterminated chain
// emits nothing.
package logging
