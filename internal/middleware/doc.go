// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package middleware provides the HTTP middleware shared by every route.

  - RequestID: X-Request-ID propagation and logging context
  - PrometheusMetrics: per-route request counters and latency histograms
  - Compression: gzip response bodies (klauspost/compress)

Each middleware has the signature func(http.HandlerFunc) http.HandlerFunc and
is adapted to chi by the api package:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))

PrometheusMetrics labels requests with the chi route pattern, so it must run
inside a chi router. Outside one every request is labeled "unmatched".
*/
package middleware
