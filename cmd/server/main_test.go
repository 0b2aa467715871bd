// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/cinemetrics/internal/config"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// testConfig points two datasets at dir. roi_por_pais.csv is never written.
func testConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			Timeout:         5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Data: config.DataConfig{
			Dir:           dir,
			FailurePolicy: "isolate",
			Datasets: []config.DatasetConfig{
				{Name: "top_generos", Path: "top_generos.csv", Eje: 1},
				{Name: "roi_por_pais", Path: "roi_por_pais.csv", Eje: 2},
			},
		},
		API: config.APIConfig{MaxLimit: 100, CacheTTL: time.Minute, CacheCapacity: 8},
		Security: config.SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: config.LoggingConfig{Level: "error", Format: "json"},
	}
}

func TestBuildApp_Isolate(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\nAction,3.2\n")

	a, err := buildApp(testConfig(dir))
	if err != nil {
		t.Fatalf("buildApp() error = %v", err)
	}
	if a.registry.Len() != 2 || a.registry.Available() != 1 {
		t.Errorf("registry = %d datasets, %d available; want 2, 1", a.registry.Len(), a.registry.Available())
	}
	if a.queryCache == nil {
		t.Error("query cache should be enabled when cache_ttl > 0")
	}
	if a.server.Addr != "127.0.0.1:0" {
		t.Errorf("server.Addr = %q", a.server.Addr)
	}

	rec := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/top_generos?limite=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/top_generos status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Action") || strings.Contains(rec.Body.String(), "Drama") {
		t.Errorf("/top_generos?limite=1 body = %s, want only Action", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	a.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/roi_por_pais", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("/roi_por_pais status = %d, want 500", rec.Code)
	}
}

func TestBuildApp_Fatal(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\n")

	cfg := testConfig(dir)
	cfg.Data.FailurePolicy = "fatal"

	if _, err := buildApp(cfg); err == nil {
		t.Fatal("buildApp() should fail when a dataset is missing under the fatal policy")
	}
}

func TestBuildApp_CacheDisabled(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\n")

	cfg := testConfig(dir)
	cfg.API.CacheTTL = 0

	a, err := buildApp(cfg)
	if err != nil {
		t.Fatalf("buildApp() error = %v", err)
	}
	if a.queryCache != nil {
		t.Error("query cache should be nil when cache_ttl is 0")
	}
}

func TestAppTree_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\n")

	cfg := testConfig(dir)
	a, err := buildApp(cfg)
	if err != nil {
		t.Fatalf("buildApp() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := a.tree(cfg).ServeBackground(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}
}

func TestRunCheck(t *testing.T) {
	t.Run("reports failures", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\nAction,3.2\n")

		var out bytes.Buffer
		err := runCheck(testConfig(dir), &out)
		if err == nil || !strings.Contains(err.Error(), "1 of 2") {
			t.Errorf("runCheck() error = %v, want 1 of 2 failed", err)
		}

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), out.String())
		}
		if !strings.Contains(lines[1], "top_generos") || !strings.Contains(lines[1], "ok") {
			t.Errorf("top_generos line = %q", lines[1])
		}
		if !strings.Contains(lines[2], "roi_por_pais") || !strings.Contains(lines[2], "error:") {
			t.Errorf("roi_por_pais line = %q", lines[2])
		}
	})

	t.Run("all loaded", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "top_generos.csv", "genre,roi_promedio\nDrama,1.5\n")
		writeCSV(t, dir, "roi_por_pais.csv", "pais,roi_promedio,cantidad_peliculas\nES,1.1,30\n")

		var out bytes.Buffer
		if err := runCheck(testConfig(dir), &out); err != nil {
			t.Fatalf("runCheck() error = %v", err)
		}
		if !strings.Contains(out.String(), "all 2 datasets loaded") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("fatal policy still reports every dataset", func(t *testing.T) {
		dir := t.TempDir()
		cfg := testConfig(dir)
		cfg.Data.FailurePolicy = "fatal"

		var out bytes.Buffer
		err := runCheck(cfg, &out)
		if err == nil || !strings.Contains(err.Error(), "2 of 2") {
			t.Errorf("runCheck() error = %v, want 2 of 2 failed", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "cinemetrics "+version) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"serve", "check", "version"} {
		if sub, _, err := cmd.Find([]string{name}); err != nil || sub.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
}
