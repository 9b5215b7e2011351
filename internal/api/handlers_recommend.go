// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/filter"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendationItem is one ranked match with its display icons.
type RecommendationItem struct {
	Rank       int              `json:"rank"`
	Title      string           `json:"title"`
	Year       int              `json:"year"`
	Score      int              `json:"score"`
	Genres     catalog.GenreSet `json:"genres"`
	Netflix    bool             `json:"netflix"`
	PrimeVideo bool             `json:"prime_video"`

	Icon          string   `json:"icon"`
	PlatformIcons []string `json:"platform_icons"`
}

// RecommendationsResult is the /recommendations body.
type RecommendationsResult struct {
	Title string               `json:"title"`
	TopN  int                  `json:"top_n"`
	Items []RecommendationItem `json:"items"`
}

// Recommendations filters the catalog, then ranks the filtered records by
// genre overlap with the chosen title.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req, perr := parseRecommendationsRequest(r.URL.Query())
	if perr != nil {
		writeParamError(rw, perr)
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	topN := h.settings.DefaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}
	if topN < 1 || topN > h.settings.MaxTopN {
		rw.ValidationError("top_n must be between 1 and "+strconv.Itoa(h.settings.MaxTopN), map[string]interface{}{
			"field": "top_n",
			"tag":   "max",
			"value": topN,
		})
		return
	}

	c := h.loadCatalog(rw)
	if c == nil {
		return
	}

	crit := req.criteria(h.defaultMinYear(c))
	filtered := filter.Apply(c.Records(), crit)
	metrics.RecordFilter(len(filtered))

	start := time.Now()
	matches, err := recommend.Rank(filtered, req.Title, topN)
	if err != nil {
		var violation *recommend.InvariantViolation
		if errors.As(err, &violation) {
			metrics.RecordRecommendation(metrics.OutcomeStaleSelection, time.Since(start))
			logging.Ctx(r.Context()).Error().Err(err).
				Str("title", req.Title).
				Int("filtered", len(filtered)).
				Msg("Recommendation requested for a title outside the filtered set")
			rw.StaleSelection("The chosen title is not in the filtered results", map[string]interface{}{
				"title":  violation.Title,
				"reason": violation.Reason,
			})
			return
		}
		rw.InternalError(err)
		return
	}

	outcome := metrics.OutcomeOK
	message := ""
	if len(matches) == 0 {
		outcome = metrics.OutcomeEmpty
		message = MessageNoRecommendations
	}
	metrics.RecordRecommendation(outcome, time.Since(start))

	items := make([]RecommendationItem, len(matches))
	for i := range matches {
		items[i] = newRecommendationItem(i+1, &matches[i])
	}

	rw.SuccessList(RecommendationsResult{
		Title: req.Title,
		TopN:  topN,
		Items: items,
	}, len(items), message)
}

// newRecommendationItem takes platform flags from the matched record itself.
func newRecommendationItem(rank int, m *recommend.Match) RecommendationItem {
	icons := make([]string, 0, 2)
	if m.Record.Netflix {
		icons = append(icons, NetflixIconURL)
	}
	if m.Record.PrimeVideo {
		icons = append(icons, PrimeIconURL)
	}
	return RecommendationItem{
		Rank:          rank,
		Title:         m.Record.Title,
		Year:          m.Record.Year,
		Score:         m.Score,
		Genres:        m.Record.Genres,
		Netflix:       m.Record.Netflix,
		PrimeVideo:    m.Record.PrimeVideo,
		Icon:          PopcornIconURL,
		PlatformIcons: icons,
	}
}
