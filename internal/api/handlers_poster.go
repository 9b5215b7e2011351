// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
)

// Poster looks up a poster image URL for a title.
func (h *Handler) Poster(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if h.posters == nil {
		rw.ServiceUnavailable(poster.ErrDisabled.Error())
		return
	}

	req := PosterRequest{Title: strings.TrimSpace(r.URL.Query().Get("title"))}
	if !validateRequest(rw, &req) {
		return
	}

	res, err := h.posters.Lookup(r.Context(), req.Title)
	switch {
	case err == nil:
		rw.Success(res)
	case errors.Is(err, poster.ErrNotFound):
		rw.NotFound("No poster found for " + req.Title)
	case errors.Is(err, poster.ErrDisabled):
		rw.ServiceUnavailable(poster.ErrDisabled.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Str("title", req.Title).Msg("Poster lookup did not finish")
		rw.ServiceUnavailable("Poster lookup timed out")
	default:
		logging.Ctx(r.Context()).Warn().Err(err).Str("title", req.Title).Msg("Poster providers failed")
		rw.ServiceUnavailable("Poster providers are unavailable")
	}
}
