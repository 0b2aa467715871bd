// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/cinemetrics/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, config *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(config),
	}
}

// chiMiddleware adapts func(http.HandlerFunc) http.HandlerFunc middleware to chi.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi builds the HTTP handler.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger())
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(chimiddleware.GetHead)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Results Endpoints
	// ========================
	// Fixed routes keep the response shapes existing clients parse.
	r.Group(func(r chi.Router) {
		router.useDataMiddleware(r)

		r.Get("/", router.handler.Root)
		r.Get("/top_generos", router.handler.TopGeneros)
		r.Get("/roi_por_categoria", router.handler.ROIPorCategoria)
		r.Get("/top_directores", router.handler.TopDirectores)
		r.Get("/correlaciones_rating", router.handler.CorrelacionesRating)
		r.Get("/roi_por_pais", router.handler.ROIPorPais)
		r.Get("/eje3", router.handler.Eje3)
	})

	r.Route("/api/v1/datasets", func(r chi.Router) {
		router.useDataMiddleware(r)

		r.Get("/", router.handler.ListDatasets)
		r.Get("/{name}", router.handler.QueryDataset)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func (router *Router) useDataMiddleware(r chi.Router) {
	r.Use(router.chiMiddleware.RateLimit())
	r.Use(APISecurityHeaders())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.Compression))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, ErrCodeNotFound, "Ruta no encontrada", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Método no permitido", nil)
}
