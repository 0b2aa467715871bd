// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

// @title Cinemetrics API
// @version 1.0
// @description Read-only access to the TMDB movie analysis results (Ejes 1 to 4).
// @description
// @description ## Query parameters
// @description
// @description - `limite`: maximum rows to return. Zero returns an empty list.
// @description - `ordenar_por`: numeric column to sort by, highest first, nulls last.
// @description - `filtrar_por` + `min_valor`: keep rows whose column is at least the value.
// @description
// @description ## Errors
// @description
// @description Compatibility routes return their payload bare on success. Every error,
// @description and every `/api/v1` response, uses the envelope:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {"code": "COLUMN_NOT_FOUND", "message": "...", "details": {}},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinemetrics/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description API index, liveness and readiness
// @tag.name Eje 1
// @tag.description Genre profitability
// @tag.name Eje 2
// @tag.description Budget, rating and country results
// @tag.name Eje 3
// @tag.description Eje 3 results
// @tag.name Eje 4
// @tag.description Director rankings
// @tag.name Datasets
// @tag.description Generic access to any configured dataset
package main
