// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package models

import (
	"time"
)

// APIResponse is the wrapper used by the /api/v1 routes and by every error
// response.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"descripcion": "...", "total_registros": 18, "resultados": [...]},
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z"},
//	  "error": {
//	    "code": "COLUMN_NOT_FOUND",
//	    "message": "Columna 'x' no existe en los datos del Eje 1.",
//	    "details": {"column": "x", "valid_columns": ["genre", "roi_promedio"]}
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
// QueryTimeMS is omitted for cache hits and for errors.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Error codes:
//   - VALIDATION_ERROR: invalid query parameter
//   - COLUMN_NOT_FOUND: ordenar_por names a column the dataset does not have
//   - REQUIRED_COLUMN_MISSING: the endpoint needs a column the dataset lacks
//   - COLUMN_NOT_NUMERIC: a threshold filter on a text or boolean column
//   - DATASET_UNAVAILABLE: the dataset failed to load at startup
//   - NOT_FOUND: unknown dataset or route
//   - METHOD_NOT_ALLOWED, RATE_LIMIT_EXCEEDED, INTERNAL_ERROR
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
