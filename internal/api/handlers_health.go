// Reelmatch - Streaming Catalog Filtering and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status  string  `json:"status"`
	Uptime  float64 `json:"uptime_seconds"`
	Records int     `json:"records,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// HealthLive reports that the process is serving.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether the catalog has been loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	c, err := h.catalog()
	if err != nil {
		rw.writeJSON(http.StatusServiceUnavailable, APIResponse{
			Success: false,
			Data: HealthStatus{
				Status: "not_ready",
				Uptime: time.Since(h.startTime).Seconds(),
				Reason: err.Error(),
			},
			Error: &APIError{Code: ErrCodeServiceUnavailable, Message: "Catalog is not loaded"},
			Meta:  rw.fillMeta(nil),
		})
		return
	}
	rw.Success(HealthStatus{
		Status:  "ready",
		Uptime:  time.Since(h.startTime).Seconds(),
		Records: c.Len(),
	})
}
