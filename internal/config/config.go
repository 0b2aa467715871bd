// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package config

import (
	"net"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/logging"
)

// Config holds all application configuration.
//
// Loading order (Koanf v2):
//  1. Defaults: built-in values, including the six analysis datasets
//  2. Config File: optional YAML file (--config, CONFIG_PATH, config.yaml)
//  3. Environment Variables: override individual settings
//
// Sections:
//   - Server: HTTP listener and shutdown
//   - Data: dataset directory, failure policy, dataset list
//   - API: response limits and the query cache
//   - Security: CORS and rate limiting
//   - Logging: zerolog level and format
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Data     DataConfig     `koanf:"data"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig describes where the analysis results live and how a failed
// load is treated.
//
// Environment Variables:
//   - DATA_DIR: base directory for relative dataset paths (default: data)
//   - DATA_FAILURE_POLICY: isolate or fatal (default: isolate)
//
// The dataset list itself can only be changed from the config file.
type DataConfig struct {
	Dir           string          `koanf:"dir"`
	FailurePolicy string          `koanf:"failure_policy"`
	Datasets      []DatasetConfig `koanf:"datasets"`
}

// DatasetConfig is one logical dataset.
type DatasetConfig struct {
	Name            string   `koanf:"name" validate:"required,dataset_name"`
	Path            string   `koanf:"path" validate:"required"`
	Description     string   `koanf:"description" validate:"max=256"`
	Eje             int      `koanf:"eje" validate:"gte=0,lte=99"`
	RequiredColumns []string `koanf:"required_columns" validate:"dive,required"`
	// Delimiter overrides the extension-based default (comma, or tab for .tsv).
	Delimiter string `koanf:"delimiter" validate:"omitempty,delimiter"`
}

// APIConfig holds response settings
type APIConfig struct {
	// MaxLimit caps the limite query parameter.
	MaxLimit int `koanf:"max_limit"`
	// CacheTTL bounds how long a computed query result is kept. Zero disables the cache.
	CacheTTL time.Duration `koanf:"cache_ttl"`
	// CacheCapacity bounds the number of cached query results.
	CacheCapacity int `koanf:"cache_capacity"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// LoggingOptions converts the section to the logging package's Config.
func (l LoggingConfig) LoggingOptions() logging.Config {
	opts := logging.DefaultConfig()
	opts.Level = l.Level
	opts.Format = l.Format
	opts.Caller = l.Caller
	return opts
}

// Policy returns the parsed failure policy. Validate has already rejected
// unknown values, so the error is only possible on an unvalidated Config.
func (d DataConfig) Policy() (dataset.FailurePolicy, error) {
	return dataset.ParseFailurePolicy(d.FailurePolicy)
}

// Sources converts the dataset list to registry sources, resolving relative
// paths against Data.Dir.
func (c *Config) Sources() []dataset.Source {
	sources := make([]dataset.Source, 0, len(c.Data.Datasets))
	for _, d := range c.Data.Datasets {
		path := d.Path
		if !filepath.IsAbs(path) && c.Data.Dir != "" {
			path = filepath.Join(c.Data.Dir, path)
		}
		var comma rune
		if d.Delimiter != "" {
			comma, _ = utf8.DecodeRuneInString(d.Delimiter)
		}
		sources = append(sources, dataset.Source{
			Name:            d.Name,
			Path:            path,
			Description:     d.Description,
			Eje:             d.Eje,
			RequiredColumns: d.RequiredColumns,
			Comma:           comma,
		})
	}
	return sources
}
