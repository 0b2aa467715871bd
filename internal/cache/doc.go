// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package cache provides a thread-safe in-memory cache with TTL expiry and an
optional capacity bound with least-recently-used eviction.

The API layer uses one Cache to hold computed dataset query results keyed by
dataset name and the normalized query (dataset.Query.Key). Tables never change
after startup, so an entry can only be stale by age; the TTL and capacity exist
to bound memory, not to guarantee freshness.

# Metrics

Every lookup and eviction is reported through the metrics package, labelled
with the cache name:
  - cache_hits_total / cache_misses_total
  - cache_evictions_total
  - cache_size

# Cleanup

Expired entries are removed lazily by Get. Serve sweeps them periodically and
implements suture.Service, so the sweep is added to the supervisor tree rather
than started as a free goroutine:

	queryCache := cache.New("query", cfg.API.CacheTTL, cfg.API.CacheCapacity)
	tree.AddAPIService(queryCache)
*/
package cache
