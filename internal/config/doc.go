// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package config loads and validates Cinemetrics configuration.

# Configuration Sources

Configuration is layered with Koanf v2, later layers winning:
  - Built-in defaults (defaultConfig), including the six analysis datasets
  - An optional YAML file: the --config flag, else CONFIG_PATH, else the first
    of DefaultConfigPaths that exists
  - Mapped environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Data:
  - DATA_DIR: Base directory for relative dataset paths (default: data_api)
  - DATA_FAILURE_POLICY: isolate or fatal (default: isolate)

API:
  - API_MAX_LIMIT: Largest accepted limite parameter (default: 1000)
  - API_CACHE_TTL: Query result cache TTL, 0 disables (default: 5m)
  - API_CACHE_CAPACITY: Maximum cached query results (default: 256)

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: true disables rate limiting

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Datasets

The dataset list is only configurable from the YAML file, and a file that sets
data.datasets replaces the default list:

	data:
	  dir: /srv/notebook/output
	  failure_policy: fatal
	  datasets:
	    - name: top_generos
	      path: eje1_top_generos_roi.csv
	      description: Top géneros según el análisis del Eje 1.
	      eje: 1
	    - name: roi_por_pais
	      path: eje2_roi_por_pais.tsv
	      required_columns: [cantidad_peliculas]

Entries are checked with go-playground/validator tags (see DatasetConfig).
Config.Sources resolves relative paths against data.dir.

# Usage

	cfg, err := config.LoadWithKoanf(configFlag)
	if err != nil {
	    return fmt.Errorf("load config: %w", err)
	}
	registry, err := dataset.LoadRegistry(cfg.Sources(), policy)
*/
package config
