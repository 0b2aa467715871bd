// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package api serves the analysis results over HTTP.

# Routes

Fixed routes return the documents existing clients already parse, without the
APIResponse wrapper:

  - GET /                      welcome document and endpoint list
  - GET /top_generos           limite (10), ordenar_por (roi_promedio)
  - GET /roi_por_categoria     every row
  - GET /top_directores        every row
  - GET /correlaciones_rating  every row
  - GET /roi_por_pais          min_peliculas (20), ordenar_por (roi_promedio)
  - GET /eje3                  limite (20)

The /api/v1 routes use models.APIResponse:

  - GET /api/v1/datasets         load status of every dataset
  - GET /api/v1/datasets/{name}  ordenar_por, limite, filtrar_por + min_valor
  - GET /api/v1/health[/live|/ready]

Plus /metrics (Prometheus) and /docs (Swagger UI).

# Errors

Every error, on every route, uses the APIResponse error envelope:

	{"status":"error","data":null,"metadata":{"timestamp":"..."},
	 "error":{"code":"COLUMN_NOT_FOUND","message":"Columna 'x' no existe en los datos del Eje 1.",
	          "details":{"column":"x","valid_columns":["genre","roi_promedio"]}}}

A dataset that failed to load answers 500 DATASET_UNAVAILABLE with the same
body on every call; the other datasets keep serving.

# Middleware

Global: request ID with logging context, RealIP, request logging, Recoverer,
CORS and HEAD support. Data routes add per-IP rate limiting (httprate),
security headers, Prometheus metrics and gzip. Health routes have their own,
more permissive, rate limit.

# Usage

	handler := api.NewHandler(registry, queryCache, api.HandlerConfig{MaxLimit: 1000, Version: version})
	router := api.NewRouter(handler, &api.ChiMiddlewareConfig{...})
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
