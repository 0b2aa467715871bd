// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinemetrics/internal/models"
)

// ListDatasets reports every configured dataset and whether it loaded.
//
// @Summary List datasets
// @Description Load status, row count and column schema of every configured dataset
// @Tags Datasets
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DatasetList}
// @Router /api/v1/datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, &models.DatasetList{
		Total:     h.registry.Len(),
		Available: h.registry.Available(),
		Datasets:  h.registry.Status(),
	}, models.Metadata{})
}

// QueryDataset runs an optional filter, sort and limit over any dataset.
//
// @Summary Query a dataset
// @Description Steps run in order: filter (filtrar_por >= min_valor), sort descending (ordenar_por), limit (limite)
// @Tags Datasets
// @Produce json
// @Param name path string true "Dataset name"
// @Param ordenar_por query string false "Column to sort by, descending"
// @Param limite query int false "Maximum rows to return"
// @Param filtrar_por query string false "Numeric column to filter on"
// @Param min_valor query number false "Inclusive lower bound for filtrar_por"
// @Success 200 {object} models.APIResponse{data=models.RankedResponse}
// @Failure 400 {object} models.APIResponse "Unknown column, non-numeric filter or invalid parameter"
// @Failure 404 {object} models.APIResponse "Unknown dataset"
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /api/v1/datasets/{name} [get]
func (h *Handler) QueryDataset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	p, ok := h.params(w, r)
	if !ok {
		return
	}

	q := p.genericQuery()
	out, ok := h.query(w, r, name, q)
	if !ok {
		return
	}

	resp := &models.RankedResponse{
		Description: out.source.Description,
		Total:       out.result.Total,
		Limit:       q.Limit,
		SortedBy:    q.SortBy,
		Results:     out.result.Rows,
	}
	if q.Filter != nil {
		resp.Filter = &models.FilterSummary{Column: q.Filter.Column, Min: q.Filter.Min}
	}

	meta := models.Metadata{Cached: out.cached}
	if !out.cached {
		meta.QueryTimeMS = out.elapsed.Milliseconds()
	}
	respondSuccess(w, r, resp, meta)
}
