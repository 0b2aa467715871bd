// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/validation"
)

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateData checks the failure policy and every dataset entry.
func (c *Config) validateData() error {
	if _, err := c.Data.Policy(); err != nil {
		return fmt.Errorf("DATA_FAILURE_POLICY must be one of: %s, %s", dataset.PolicyIsolate, dataset.PolicyFatal)
	}

	if len(c.Data.Datasets) == 0 {
		return fmt.Errorf("data.datasets must list at least one dataset")
	}

	seen := make(map[string]bool, len(c.Data.Datasets))
	for i := range c.Data.Datasets {
		d := &c.Data.Datasets[i]
		if verr := validation.ValidateStruct(d); verr != nil {
			return fmt.Errorf("data.datasets[%d]: %w", i, verr)
		}
		if seen[d.Name] {
			return fmt.Errorf("data.datasets[%d]: duplicate dataset name %q", i, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}

// API limit bounds
const (
	minAPIMaxLimit = 1
	maxAPIMaxLimit = 100000
)

func (c *Config) validateAPI() error {
	if c.API.MaxLimit < minAPIMaxLimit || c.API.MaxLimit > maxAPIMaxLimit {
		return fmt.Errorf("API_MAX_LIMIT must be between %d and %d", minAPIMaxLimit, maxAPIMaxLimit)
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}
	if c.API.CacheTTL > 0 && c.API.CacheCapacity < 1 {
		return fmt.Errorf("API_CACHE_CAPACITY must be at least 1 when the cache is enabled")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	return c.validateRateLimits()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits is skipped entirely when rate limiting is disabled.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
