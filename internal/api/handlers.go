// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinemetrics/internal/cache"
	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/metrics"
)

// Logical dataset names served by the fixed routes.
const (
	DatasetTopGeneros      = "top_generos"
	DatasetROIPorCategoria = "roi_por_categoria"
	DatasetCorrelaciones   = "correlaciones"
	DatasetTopDirectores   = "top_directores"
	DatasetROIPorPais      = "roi_por_pais"
	DatasetEje3            = "eje3"
)

// Route defaults for the fixed endpoints.
const (
	defaultTopGenerosLimit = 10
	defaultEje3Limit       = 20
	defaultMinMovies       = 20
	defaultSortColumn      = "roi_promedio"
	movieCountColumn       = "cantidad_peliculas"
)

// Handler serves the results API.
//
// Tables are immutable once loaded, so the only shared mutable state is the
// query cache, which carries its own lock. A Handler is safe for concurrent use.
type Handler struct {
	registry  *dataset.Registry
	cache     *cache.Cache
	maxLimit  int
	version   string
	startTime time.Time
}

// HandlerConfig holds the handler settings that come from configuration.
type HandlerConfig struct {
	// MaxLimit caps limite. Zero means uncapped.
	MaxLimit int
	Version  string
}

// NewHandler creates a handler over a loaded registry. queryCache may be nil
// to disable result caching.
func NewHandler(registry *dataset.Registry, queryCache *cache.Cache, cfg HandlerConfig) *Handler {
	return &Handler{
		registry:  registry,
		cache:     queryCache,
		maxLimit:  cfg.MaxLimit,
		version:   cfg.Version,
		startTime: time.Now(),
	}
}

// queryOutcome is a store result plus how it was obtained.
type queryOutcome struct {
	source  dataset.Source
	result  dataset.Result
	cached  bool
	elapsed time.Duration
}

// runQuery resolves name and applies q, consulting the cache first.
// Errors are never cached.
func (h *Handler) runQuery(name string, q dataset.Query) (queryOutcome, error) {
	tbl, err := h.registry.Lookup(name)
	if err != nil {
		return queryOutcome{}, err
	}
	src, _ := h.registry.Source(name)

	key := name + "|" + q.Key()
	if h.cache != nil {
		if v, ok := h.cache.Get(key); ok {
			if res, ok := v.(dataset.Result); ok {
				return queryOutcome{source: src, result: res, cached: true}, nil
			}
		}
	}

	start := time.Now()
	res, err := q.Apply(tbl)
	elapsed := time.Since(start)
	metrics.RecordDatasetQuery(name, elapsed)
	if err != nil {
		return queryOutcome{}, err
	}

	if h.cache != nil {
		h.cache.Set(key, res)
	}
	return queryOutcome{source: src, result: res, elapsed: elapsed}, nil
}

// query runs q and writes the error response on failure.
func (h *Handler) query(w http.ResponseWriter, r *http.Request, name string, q dataset.Query) (queryOutcome, bool) {
	out, err := h.runQuery(name, q)
	if err != nil {
		h.respondDatasetError(w, r, name, err)
		return queryOutcome{}, false
	}
	return out, true
}

// params parses the query string and writes the error response on failure.
func (h *Handler) params(w http.ResponseWriter, r *http.Request) (*QueryParams, bool) {
	p, apiErr := parseQueryParams(r, h.maxLimit)
	if apiErr != nil {
		respondAPIError(w, apiErr)
		return nil, false
	}
	return p, true
}
