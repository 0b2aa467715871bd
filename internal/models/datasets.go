// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package models

import (
	"github.com/tomtom215/cinemetrics/internal/dataset"
)

// RootResponse is the welcome document served at "/".
type RootResponse struct {
	Message   string   `json:"mensaje"`
	Endpoints []string `json:"endpoints_disponibles"`
}

// ResultsResponse is the plain envelope: every row of a dataset in file order.
type ResultsResponse struct {
	Results []dataset.Row `json:"resultados"`
}

// RankedResponse is the envelope for queries with sort, filter or limit steps.
// Optional fields appear only when the corresponding step was applied.
//
//	{
//	  "descripcion": "ROI promedio por país según el análisis del Eje 2.",
//	  "total_registros": 14,
//	  "ordenado_por": "roi_promedio",
//	  "min_peliculas": 20,
//	  "resultados": [{"country": "Japan", "roi_promedio": 3.1, "cantidad_peliculas": 41}]
//	}
type RankedResponse struct {
	Description string `json:"descripcion,omitempty"`
	// Total counts rows after filtering and before the limit.
	Total     int            `json:"total_registros"`
	Limit     *int           `json:"limite,omitempty"`
	SortedBy  string         `json:"ordenado_por,omitempty"`
	MinMovies *int           `json:"min_peliculas,omitempty"`
	Filter    *FilterSummary `json:"filtro,omitempty"`
	Results   []dataset.Row  `json:"resultados"`
}

// FilterSummary echoes a generic threshold filter.
type FilterSummary struct {
	Column string  `json:"columna"`
	Min    float64 `json:"min_valor"`
}

// DatasetList is the payload of GET /api/v1/datasets.
type DatasetList struct {
	Total     int                     `json:"total"`
	Available int                     `json:"available"`
	Datasets  []dataset.DatasetStatus `json:"datasets"`
}

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	Uptime            float64 `json:"uptime_seconds"`
	DatasetsTotal     int     `json:"datasets_total"`
	DatasetsAvailable int     `json:"datasets_available"`
	// Unavailable lists datasets that failed to load.
	Unavailable []string `json:"unavailable,omitempty"`
}
