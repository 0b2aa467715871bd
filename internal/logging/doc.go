// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

// Package logging provides centralized zerolog-based structured logging for Cinemetrics.
//
// A single global logger is configured at startup from the logging section of the
// configuration and used by every package. JSON is the default output; console
// output is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:     cfg.Logging.Level,
//	    Format:    cfg.Logging.Format,
//	    Caller:    cfg.Logging.Caller,
//	    Timestamp: true,
//	})
//
//	logging.Info().Str("dataset", "top_generos").Int("rows", 18).Msg("Dataset loaded")
//	logging.Error().Err(err).Str("path", path).Msg("Dataset failed to load")
//
// Every line carries a "service" field (Config.Service, default "cinemetrics").
//
// # Configuration
//
// Environment Variables (mapped through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// The HTTP request ID middleware stores the request ID in the request context;
// Ctx adds it to every line logged while serving that request:
//
//	logging.Ctx(r.Context()).Warn().Str("dataset", name).Msg("Dataset unavailable")
//
// # slog Bridge
//
// The supervisor tree logs through sutureslog, which requires an *slog.Logger.
// NewSlogLogger returns one that writes through the global zerolog logger.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event is
// never written.
package logging
