// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package models defines the JSON documents served by the HTTP API.

  - APIResponse, Metadata, APIError: the wrapper used by /api/v1 and by all errors
  - RootResponse: the welcome document at "/"
  - ResultsResponse, RankedResponse: dataset envelopes; field names follow the
    Spanish keys the analysis clients already consume (resultados, descripcion,
    total_registros, limite, ordenado_por, min_peliculas)
  - DatasetList, HealthStatus: operational views of the dataset registry

Rows are dataset.Row values, which serialize as objects in file header order
with nulls as the JSON null literal.
*/
package models
