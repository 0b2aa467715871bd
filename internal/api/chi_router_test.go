// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	_ "github.com/tomtom215/cinemetrics/docs"
)

func TestRouter_NotFound(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := env.get(t, "/no_existe")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code, _, _ := apiError(t, decodeBody(t, rec)); code != ErrCodeNotFound {
		t.Errorf("code = %s, want %s", code, ErrCodeNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/top_generos", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	code, msg, _ := apiError(t, decodeBody(t, rec))
	if code != ErrCodeMethodNotAllowed {
		t.Errorf("code = %s, want %s", code, ErrCodeMethodNotAllowed)
	}
	if msg != "Método no permitido" {
		t.Errorf("message = %q", msg)
	}
}

func TestRouter_Head(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/top_generos", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("HEAD status = %d, want 200", rec.Code)
	}
}

func TestRouter_RequestID(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	req := httptest.NewRequest(http.MethodGet, "/eje3", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-42" {
		t.Errorf("X-Request-ID = %q, want trace-42", got)
	}
}

func TestRouter_Compression(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	req := httptest.NewRequest(http.MethodGet, "/top_generos", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", rec.Header().Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer zr.Close()

	var sb bytes.Buffer
	if _, err := sb.ReadFrom(zr); err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if !strings.Contains(sb.String(), `"resultados"`) {
		t.Errorf("decompressed body = %s", sb.String())
	}
}

func TestRouter_ConditionalGet(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	first := env.get(t, "/top_generos")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("ETag missing")
	}

	req := httptest.NewRequest(http.MethodGet, "/top_generos", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body length = %d, want 0", rec.Body.Len())
	}
}

func TestRouter_Metrics(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())
	env.get(t, "/top_generos")

	rec := env.get(t, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"api_requests_total", "dataset_rows", "dataset_query_duration_seconds"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics does not expose %s", name)
		}
	}
	if !strings.Contains(body, `endpoint="/top_generos"`) {
		t.Error("/metrics does not label requests by route pattern")
	}
}

func TestRouter_Docs(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := env.get(t, "/docs")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/docs/index.html" {
		t.Errorf("Location = %q, want /docs/index.html", got)
	}

	if rec := env.get(t, "/docs/index.html"); rec.Code != http.StatusOK {
		t.Errorf("/docs/index.html status = %d, want 200", rec.Code)
	}

	rec = env.get(t, "/docs/doc.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("/docs/doc.json status = %d, want 200", rec.Code)
	}
	for _, path := range []string{`"/top_generos"`, `"/api/v1/datasets/{name}"`, `"Cinemetrics API"`} {
		if !strings.Contains(rec.Body.String(), path) {
			t.Errorf("doc.json does not mention %s", path)
		}
	}
}
