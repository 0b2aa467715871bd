// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Command cinemetrics serves the results of the TMDB movie analysis as a
read-only JSON API.

The analysis notebook writes one CSV per result table into data.dir. At
startup every configured dataset is loaded into memory; afterwards the
tables never change and requests only sort, filter and truncate them.

# Commands

	cinemetrics serve     load datasets and start the HTTP API (default)
	cinemetrics check     load datasets, print their status, exit 1 on failure
	cinemetrics version   print the build version

# Process Layout

	cinemetrics
	├── data-layer
	│   └── cache-janitor:query (when api.cache_ttl > 0)
	└── api-layer
	    └── http-server

# Configuration

Defaults, then an optional YAML file (--config, CONFIG_PATH, config.yaml,
/etc/cinemetrics/config.yaml), then environment variables such as
HTTP_PORT, DATA_DIR, DATA_FAILURE_POLICY, API_MAX_LIMIT, CORS_ORIGINS and
LOG_LEVEL. See internal/config for the full list.

# Example

	export DATA_DIR=./data_api
	export DATA_FAILURE_POLICY=isolate
	cinemetrics check && cinemetrics serve

	curl 'localhost:8000/top_generos?limite=5&ordenar_por=roi_promedio'
	curl 'localhost:8000/api/v1/datasets/roi_por_pais?filtrar_por=cantidad_peliculas&min_valor=50'

# Signals

SIGINT and SIGTERM stop accepting connections and wait up to
server.shutdown_timeout for in-flight requests.
*/
package main
