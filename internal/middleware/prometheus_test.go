// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinemetrics/internal/metrics"
)

func TestPrometheusMetrics_LabelsRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return PrometheusMetrics(next.ServeHTTP)
		})
		r.Get("/datasets/{name}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/datasets/{name}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/anything", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected counter to increase by 1, got %v", got)
	}
}

func TestPrometheusMetrics_OutsideRouter(t *testing.T) {
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedEndpoint, "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/random/path", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected unmatched counter to increase by 1, got %v", got)
	}
}

func TestPrometheusMetrics_ActiveRequestsReturnToBaseline(t *testing.T) {
	before := testutil.ToFloat64(metrics.APIActiveRequests)

	var during float64
	handler := PrometheusMetrics(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(metrics.APIActiveRequests)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if during != before+1 {
		t.Errorf("Expected %v active requests during handler, got %v", before+1, during)
	}
	if after := testutil.ToFloat64(metrics.APIActiveRequests); after != before {
		t.Errorf("Expected active requests back to %v, got %v", before, after)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
	}{
		{
			name:   "implicit 200",
			write:  func(w http.ResponseWriter) { _, _ = w.Write([]byte("x")) },
			status: http.StatusOK,
		},
		{
			name:   "explicit status",
			write:  func(w http.ResponseWriter) { w.WriteHeader(http.StatusBadRequest) },
			status: http.StatusBadRequest,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusInternalServerError)
				w.WriteHeader(http.StatusOK)
			},
			status: http.StatusInternalServerError,
		},
		{
			name: "status after body is ignored",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("x"))
				w.WriteHeader(http.StatusTeapot)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := &metricsResponseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}
			tt.write(rw)
			if rw.statusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, rw.statusCode)
			}
		})
	}
}
