// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinemetrics/internal/models"
)

// Health status values.
const (
	healthHealthy   = "healthy"
	healthDegraded  = "degraded"
	healthUnhealthy = "unhealthy"
)

// healthStatus summarizes the registry.
func (h *Handler) healthStatus() models.HealthStatus {
	status := models.HealthStatus{
		Version:           h.version,
		Uptime:            time.Since(h.startTime).Seconds(),
		DatasetsTotal:     h.registry.Len(),
		DatasetsAvailable: h.registry.Available(),
	}
	for _, st := range h.registry.Status() {
		if !st.Available {
			status.Unavailable = append(status.Unavailable, st.Name)
		}
	}

	switch {
	case status.DatasetsAvailable == 0:
		status.Status = healthUnhealthy
	case status.DatasetsAvailable < status.DatasetsTotal:
		status.Status = healthDegraded
	default:
		status.Status = healthHealthy
	}
	return status
}

// Health reports overall service health. It always answers 200; the status
// field says whether datasets are missing.
//
// @Summary Get service health
// @Description Dataset availability, version and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.healthStatus(), models.Metadata{})
}

// HealthLive is the liveness probe.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{})
}

// HealthReady is the readiness probe: ready while at least one dataset can
// be served.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "No dataset loaded"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.healthStatus()
	if status.Status == healthUnhealthy {
		respondErrorWithDetails(w, http.StatusServiceUnavailable, ErrCodeUnavailable,
			"No datasets available", map[string]interface{}{"unavailable": status.Unavailable})
		return
	}

	respondSuccess(w, r, map[string]interface{}{
		"ready":              true,
		"datasets_available": status.DatasetsAvailable,
		"datasets_total":     status.DatasetsTotal,
	}, models.Metadata{})
}
