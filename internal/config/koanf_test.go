// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv blanks every mapped variable so the host environment cannot leak in.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, "")
	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Data.Dir != "data_api" {
		t.Errorf("Data.Dir = %q, want data_api", cfg.Data.Dir)
	}
	if cfg.Data.FailurePolicy != "isolate" {
		t.Errorf("Data.FailurePolicy = %q, want isolate", cfg.Data.FailurePolicy)
	}
	if cfg.API.MaxLimit != 1000 {
		t.Errorf("API.MaxLimit = %d, want 1000", cfg.API.MaxLimit)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}

	want := []string{"top_generos", "roi_por_categoria", "correlaciones", "roi_por_pais", "eje3", "top_directores"}
	if len(cfg.Data.Datasets) != len(want) {
		t.Fatalf("got %d default datasets, want %d", len(cfg.Data.Datasets), len(want))
	}
	for i, name := range want {
		if cfg.Data.Datasets[i].Name != name {
			t.Errorf("Datasets[%d].Name = %q, want %q", i, cfg.Data.Datasets[i].Name, name)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_host", "server.host"},
		{"SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},
		{"DATA_DIR", "data.dir"},
		{"DATA_FAILURE_POLICY", "data.failure_policy"},
		{"API_MAX_LIMIT", "api.max_limit"},
		{"API_CACHE_TTL", "api.cache_ttl"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("server: {}"), 0o600); err != nil {
			t.Fatal(err)
		}
		defer os.Remove(filepath.Join(tmpDir, "config.yaml"))

		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := writeConfig(t, "server: {}")
		t.Setenv(ConfigPathEnvVar, customPath)

		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty string", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/srv/results")
	t.Setenv("DATA_FAILURE_POLICY", "fatal")
	t.Setenv("API_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Data.Dir != "/srv/results" {
		t.Errorf("Data.Dir = %q, want /srv/results", cfg.Data.Dir)
	}
	if cfg.Data.FailurePolicy != "fatal" {
		t.Errorf("Data.FailurePolicy = %q, want fatal", cfg.Data.FailurePolicy)
	}
	if cfg.API.CacheTTL != 30*time.Second {
		t.Errorf("API.CacheTTL = %v, want 30s", cfg.API.CacheTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if len(cfg.Data.Datasets) != 6 {
		t.Errorf("got %d datasets, want the 6 defaults", len(cfg.Data.Datasets))
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, `
server:
  port: 8888
  host: "127.0.0.1"

data:
  dir: /srv/notebook
  datasets:
    - name: top_generos
      path: eje1.csv
      eje: 1
    - name: roi_por_pais
      path: /abs/eje2.tsv
      required_columns: [cantidad_peliculas]
    - name: eje3
      path: eje3.txt
      delimiter: ";"

logging:
  level: warn
`)

	cfg, err := LoadWithKoanf(path)
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if len(cfg.Data.Datasets) != 3 {
		t.Fatalf("file datasets should replace defaults, got %d", len(cfg.Data.Datasets))
	}

	sources := cfg.Sources()
	if sources[0].Path != filepath.Join("/srv/notebook", "eje1.csv") {
		t.Errorf("relative path resolved to %q", sources[0].Path)
	}
	if sources[0].Eje != 1 {
		t.Errorf("Eje = %d, want 1", sources[0].Eje)
	}
	if sources[1].Path != "/abs/eje2.tsv" {
		t.Errorf("absolute path changed to %q", sources[1].Path)
	}
	if len(sources[1].RequiredColumns) != 1 || sources[1].RequiredColumns[0] != "cantidad_peliculas" {
		t.Errorf("RequiredColumns = %v", sources[1].RequiredColumns)
	}
	if sources[2].Comma != ';' {
		t.Errorf("Comma = %q, want ';'", sources[2].Comma)
	}
	if sources[0].Comma != 0 {
		t.Errorf("Comma = %q, want zero for the extension default", sources[0].Comma)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeConfig(t, "server:\n  port: 8888\nlogging:\n  level: warn\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7777")

	cfg, err := LoadWithKoanf("")
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("Server.Port = %d, want 7777 (env overrides file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfMissingExplicitFile(t *testing.T) {
	clearConfigEnv(t)
	if _, err := LoadWithKoanf(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing --config file")
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		file    string
		wantErr string
	}{
		{
			name:    "invalid port",
			env:     map[string]string{"HTTP_PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "invalid failure policy",
			env:     map[string]string{"DATA_FAILURE_POLICY": "retry"},
			wantErr: "DATA_FAILURE_POLICY",
		},
		{
			name:    "invalid log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "max limit zero",
			env:     map[string]string{"API_MAX_LIMIT": "0"},
			wantErr: "API_MAX_LIMIT",
		},
		{
			name:    "rate limit window too short",
			env:     map[string]string{"RATE_LIMIT_WINDOW": "10ms"},
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name:    "duplicate dataset",
			file:    "data:\n  datasets:\n    - {name: eje3, path: a.csv}\n    - {name: eje3, path: b.csv}\n",
			wantErr: "duplicate dataset name",
		},
		{
			name:    "bad dataset name",
			file:    "data:\n  datasets:\n    - {name: Eje-3, path: a.csv}\n",
			wantErr: "name debe ser un identificador en minúsculas",
		},
		{
			name:    "dataset without path",
			file:    "data:\n  datasets:\n    - {name: eje3}\n",
			wantErr: "path es obligatorio",
		},
		{
			name:    "empty dataset list",
			file:    "data:\n  datasets: []\n",
			wantErr: "at least one dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}

			_, err := LoadWithKoanf(path)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDisabledRateLimitSkipsBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}

func TestConfigHelpers(t *testing.T) {
	cfg := defaultConfig()

	if got := cfg.Server.Addr(); got != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q", got)
	}
	if !cfg.HasWildcardCORS() {
		t.Error("default CORS should be a wildcard")
	}

	opts := cfg.Logging.LoggingOptions()
	if opts.Level != "info" || opts.Format != "json" || !opts.Timestamp {
		t.Errorf("LoggingOptions() = %+v", opts)
	}
}
