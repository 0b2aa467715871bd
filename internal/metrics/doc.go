// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

Dataset Metrics:
  - dataset_loads_total: Load attempts (counter)
    Labels: dataset, result (ok, not_found, malformed, missing_columns, error)
  - dataset_load_duration_seconds: Time to read and sanitize a file (histogram)
  - dataset_rows: Rows held in memory (gauge)
  - dataset_sanitized_cells: Cells normalized to null at load (gauge)
  - dataset_available: 1 when loaded, 0 when unavailable (gauge)
  - dataset_query_duration_seconds: Filter, sort and limit time (histogram)
  - dataset_query_errors_total: Rejected queries (counter)
    Labels: dataset, code

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Cache Metrics:
  - cache_hits_total, cache_misses_total, cache_evictions_total (counters)
  - cache_entries (gauge)
    Labels: cache_type

System Metrics:
  - app_info: Version and Go version (gauge)
  - app_uptime_seconds: Process uptime (gauge)

# Usage

	start := time.Now()
	rows, err := q.Apply(table)
	metrics.RecordDatasetQuery(table.Name(), time.Since(start))

# Thread Safety

All functions are safe for concurrent use; Prometheus collectors synchronize internally.
*/
package metrics
