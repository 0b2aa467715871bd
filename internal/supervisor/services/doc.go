// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe/Shutdown pair of
// *http.Server into suture's context-driven Serve. The query cache's
// janitor implements suture.Service itself (see cache.Cache.Serve) and needs
// no wrapper.
package services
