// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinemetrics/internal/api"
	"github.com/tomtom215/cinemetrics/internal/cache"
	"github.com/tomtom215/cinemetrics/internal/config"
	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/logging"
	"github.com/tomtom215/cinemetrics/internal/metrics"
	"github.com/tomtom215/cinemetrics/internal/supervisor"
	"github.com/tomtom215/cinemetrics/internal/supervisor/services"
)

const idleTimeout = 60 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the datasets and start the HTTP API",
		Long: `Serve loads every configured dataset, then listens on server.host:server.port
until SIGINT or SIGTERM. With data.failure_policy=isolate a dataset that fails
to load answers 500 on its routes while the rest keep working. With
data.failure_policy=fatal the server refuses to start.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

// app is everything serve wires together.
type app struct {
	registry   *dataset.Registry
	queryCache *cache.Cache
	server     *http.Server
}

// buildApp loads the datasets and assembles the HTTP server. queryCache is
// nil when api.cache_ttl is zero.
func buildApp(cfg *config.Config) (*app, error) {
	policy, err := cfg.Data.Policy()
	if err != nil {
		return nil, err
	}

	registry, err := dataset.LoadRegistry(cfg.Sources(), policy)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Int("datasets", registry.Len()).
		Int("available", registry.Available()).
		Str("policy", string(policy)).
		Msg("Datasets loaded")

	var queryCache *cache.Cache
	if cfg.API.CacheTTL > 0 {
		queryCache = cache.New("query", cfg.API.CacheTTL, cfg.API.CacheCapacity)
	}

	handler := api.NewHandler(registry, queryCache, api.HandlerConfig{
		MaxLimit: cfg.API.MaxLimit,
		Version:  version,
	})

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled")
	}

	router := api.NewRouter(handler, mwConfig)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}

	return &app{registry: registry, queryCache: queryCache, server: server}, nil
}

// tree puts the cache janitor and the HTTP server under supervision.
func (a *app) tree(cfg *config.Config) *supervisor.SupervisorTree {
	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	if a.queryCache != nil {
		tree.AddDataService(a.queryCache)
	}
	tree.AddAPIService(services.NewHTTPServerService(a.server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
	return tree
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	metrics.SetAppInfo(version, runtime.Version())
	logging.Info().Str("version", version).Str("data_dir", cfg.Data.Dir).Msg("Starting Cinemetrics")

	a, err := buildApp(cfg)
	if err != nil {
		return fmt.Errorf("startup aborted: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tree := a.tree(cfg)
	err = tree.Serve(ctx)
	stop()

	reportUnstopped(tree)
	a.logCacheStats()

	switch {
	case err == nil, errors.Is(err, context.Canceled):
		logging.Info().Msg("Cinemetrics stopped")
		return nil
	case errors.Is(err, suture.ErrTerminateSupervisorTree):
		return errors.New("HTTP server could not start; see the log for the cause")
	default:
		return fmt.Errorf("supervisor: %w", err)
	}
}

// logCacheStats summarizes the query cache once serving has stopped.
func (a *app) logCacheStats() {
	if a.queryCache == nil {
		return
	}
	stats := a.queryCache.GetStats()
	logging.Info().
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Float64("hit_rate", a.queryCache.HitRate()).
		Msg("Query cache summary")
}

func reportUnstopped(tree *supervisor.SupervisorTree) {
	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("Could not collect unstopped services")
		return
	}
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
	}
}
