// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"

	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/models"
)

// rootEndpoints is listed by the welcome document.
var rootEndpoints = []string{
	"/top_generos",
	"/roi_por_categoria",
	"/top_directores",
	"/correlaciones_rating",
	"/roi_por_pais",
	"/eje3",
	"/api/v1/datasets",
	"/api/v1/health",
	"/docs/",
}

// Root lists the available endpoints.
//
// @Summary Welcome document
// @Description Names the API and lists its endpoints
// @Tags Core
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSONConditional(w, r, http.StatusOK, &models.RootResponse{
		Message:   "API del Trabajo Final TMDB",
		Endpoints: rootEndpoints,
	})
}

// TopGeneros returns the genre ranking sorted descending.
//
// @Summary Top genres (Eje 1)
// @Description Genres sorted by a numeric column, highest first
// @Tags Eje 1
// @Produce json
// @Param limite query int false "Rows to return" default(10)
// @Param ordenar_por query string false "Column to sort by" default(roi_promedio)
// @Success 200 {object} models.RankedResponse
// @Failure 400 {object} models.APIResponse "Unknown column or invalid parameter"
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /top_generos [get]
func (h *Handler) TopGeneros(w http.ResponseWriter, r *http.Request) {
	p, ok := h.params(w, r)
	if !ok {
		return
	}

	limit := intOr(p.Limit, defaultTopGenerosLimit)
	sortBy := sortColumn(p.SortBy)

	out, ok := h.query(w, r, DatasetTopGeneros, dataset.Query{SortBy: sortBy, Limit: &limit})
	if !ok {
		return
	}

	respondJSONConditional(w, r, http.StatusOK, &models.RankedResponse{
		Description: out.source.Description,
		Total:       out.result.Total,
		Limit:       &limit,
		SortedBy:    sortBy,
		Results:     out.result.Rows,
	})
}

// ROIPorPais returns per-country ROI for countries with enough movies.
//
// @Summary ROI by country (Eje 2)
// @Description Countries with at least min_peliculas movies, sorted descending
// @Tags Eje 2
// @Produce json
// @Param min_peliculas query int false "Minimum movie count" default(20)
// @Param ordenar_por query string false "Column to sort by" default(roi_promedio)
// @Success 200 {object} models.RankedResponse
// @Failure 400 {object} models.APIResponse "Missing cantidad_peliculas, unknown column or invalid parameter"
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /roi_por_pais [get]
func (h *Handler) ROIPorPais(w http.ResponseWriter, r *http.Request) {
	p, ok := h.params(w, r)
	if !ok {
		return
	}

	minMovies := intOr(p.MinMovies, defaultMinMovies)
	sortBy := sortColumn(p.SortBy)

	out, ok := h.query(w, r, DatasetROIPorPais, dataset.Query{
		Required: []string{movieCountColumn},
		SortBy:   sortBy,
		Filter:   &dataset.Threshold{Column: movieCountColumn, Min: float64(minMovies)},
	})
	if !ok {
		return
	}

	respondJSONConditional(w, r, http.StatusOK, &models.RankedResponse{
		Description: out.source.Description,
		Total:       out.result.Total,
		SortedBy:    sortBy,
		MinMovies:   &minMovies,
		Results:     out.result.Rows,
	})
}

// Eje3 returns the first rows of the third analysis in file order.
//
// @Summary Eje 3 results
// @Description Rows of the third analysis in file order
// @Tags Eje 3
// @Produce json
// @Param limite query int false "Rows to return" default(20)
// @Success 200 {object} models.RankedResponse
// @Failure 400 {object} models.APIResponse "Invalid parameter"
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /eje3 [get]
func (h *Handler) Eje3(w http.ResponseWriter, r *http.Request) {
	p, ok := h.params(w, r)
	if !ok {
		return
	}

	limit := intOr(p.Limit, defaultEje3Limit)

	out, ok := h.query(w, r, DatasetEje3, dataset.Query{Limit: &limit})
	if !ok {
		return
	}

	respondJSONConditional(w, r, http.StatusOK, &models.RankedResponse{
		Description: out.source.Description,
		Total:       out.result.Total,
		Limit:       &limit,
		Results:     out.result.Rows,
	})
}

// ROIPorCategoria returns rating and median ROI per budget category.
//
// @Summary ROI by budget category (Eje 2)
// @Tags Eje 2
// @Produce json
// @Success 200 {object} models.ResultsResponse
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /roi_por_categoria [get]
func (h *Handler) ROIPorCategoria(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, DatasetROIPorCategoria)
}

// TopDirectores returns the director ranking.
//
// @Summary Top directors (Eje 4)
// @Tags Eje 4
// @Produce json
// @Success 200 {object} models.ResultsResponse
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /top_directores [get]
func (h *Handler) TopDirectores(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, DatasetTopDirectores)
}

// CorrelacionesRating returns budget and rating correlation coefficients.
//
// @Summary Budget and rating correlations
// @Tags Eje 2
// @Produce json
// @Success 200 {object} models.ResultsResponse
// @Failure 500 {object} models.APIResponse "Dataset unavailable"
// @Router /correlaciones_rating [get]
func (h *Handler) CorrelacionesRating(w http.ResponseWriter, r *http.Request) {
	h.serveAll(w, r, DatasetCorrelaciones)
}

// serveAll writes every row of name in file order.
func (h *Handler) serveAll(w http.ResponseWriter, r *http.Request, name string) {
	out, ok := h.query(w, r, name, dataset.Query{})
	if !ok {
		return
	}
	respondJSONConditional(w, r, http.StatusOK, &models.ResultsResponse{Results: out.result.Rows})
}

func sortColumn(requested string) string {
	if requested == "" {
		return defaultSortColumn
	}
	return requested
}
