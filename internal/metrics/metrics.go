// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for dataset loads.
const (
	LoadResultOK          = "ok"
	LoadResultNotFound    = "not_found"
	LoadResultMalformed   = "malformed"
	LoadResultMissingCols = "missing_columns"
	LoadResultError       = "error"
)

var (
	// Dataset Load Metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts by result",
		},
		[]string{"dataset", "result"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time spent reading and sanitizing a dataset file",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"dataset"},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of rows held in memory per dataset",
		},
		[]string{"dataset"},
	)

	DatasetSanitizedCells = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_sanitized_cells",
			Help: "Cells normalized to null during load (missing markers, NaN, Inf)",
		},
		[]string{"dataset"},
	)

	DatasetAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_available",
			Help: "1 if the dataset loaded successfully, 0 otherwise",
		},
		[]string{"dataset"},
	)

	// Query Metrics
	DatasetQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_query_duration_seconds",
			Help:    "Duration of in-memory dataset queries (filter, sort, limit)",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"dataset"},
	)

	DatasetQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_query_errors_total",
			Help: "Total number of rejected dataset queries",
		},
		[]string{"dataset", "code"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"}, // "query"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions (TTL expiry)",
		},
		[]string{"cache_type"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDatasetLoad records the outcome of one dataset load. result is one of the
// LoadResult* labels; rows and sanitized are only published for LoadResultOK.
func RecordDatasetLoad(dataset, result string, duration time.Duration, rows, sanitized int) {
	DatasetLoadDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	DatasetLoadsTotal.WithLabelValues(dataset, result).Inc()
	if result != LoadResultOK {
		DatasetAvailable.WithLabelValues(dataset).Set(0)
		DatasetRows.WithLabelValues(dataset).Set(0)
		return
	}
	DatasetAvailable.WithLabelValues(dataset).Set(1)
	DatasetRows.WithLabelValues(dataset).Set(float64(rows))
	DatasetSanitizedCells.WithLabelValues(dataset).Set(float64(sanitized))
}

// RecordDatasetQuery records the duration of a query against a dataset.
func RecordDatasetQuery(dataset string, duration time.Duration) {
	DatasetQueryDuration.WithLabelValues(dataset).Observe(duration.Seconds())
}

// RecordDatasetQueryError counts a rejected query by API error code.
func RecordDatasetQueryError(dataset, code string) {
	DatasetQueryErrors.WithLabelValues(dataset, code).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCacheLookup counts a hit or miss for the named cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
		return
	}
	CacheMisses.WithLabelValues(cacheType).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
