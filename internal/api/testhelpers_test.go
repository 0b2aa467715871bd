// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinemetrics/internal/cache"
	"github.com/tomtom215/cinemetrics/internal/dataset"
)

// missingFile marks a fixture whose file is never written.
const missingFile = "\x00missing"

const testMaxLimit = 100

// fixtureSource is one dataset of the test registry.
type fixtureSource struct {
	name        string
	file        string
	content     string
	description string
	eje         int
}

func defaultFixtures() []fixtureSource {
	return []fixtureSource{
		{
			name:        DatasetTopGeneros,
			file:        "eje1_top_generos_roi.csv",
			content:     "genre,roi_promedio,cantidad_peliculas\nAction,5.2,120\nDrama,inf,80\nComedy,3.1,95\nHorror,7.4,40\n",
			description: "Top géneros según el análisis del Eje 1.",
			eje:         1,
		},
		{
			name:    DatasetROIPorCategoria,
			file:    "resultados_presupuesto_rating.csv",
			content: "categoria,rating_promedio,roi_mediano\nBajo,6.1,2.5\nAlto,6.8,\n",
			eje:     2,
		},
		{
			name:    DatasetCorrelaciones,
			file:    "correlaciones_presupuesto_rating.csv",
			content: "variable,pearson\nbudget,0.12\n",
			eje:     2,
		},
		{
			name:    DatasetTopDirectores,
			file:    "resultados_mejores_directores.csv",
			content: missingFile,
			eje:     4,
		},
		{
			name:        DatasetROIPorPais,
			file:        "eje2_roi_por_pais.csv",
			content:     "country,roi_promedio,cantidad_peliculas\nJapan,3.1,41\nFrance,2.4,25\nPeru,9.9,3\nSpain,4.0,20\n",
			description: "ROI promedio por país según el análisis del Eje 2.",
			eje:         2,
		},
		{
			name:        DatasetEje3,
			file:        "eje3_resultados.csv",
			content:     "decada,recaudacion\n1990,100\n2000,200\n2010,300\n",
			description: "Resultados del Eje 3 del análisis.",
			eje:         3,
		},
		{
			name:    "sin_eje",
			file:    "sin_eje.csv",
			content: "country,roi_promedio\nJapan,3.1\n",
		},
	}
}

// withContent replaces the content of one fixture.
func withContent(fixtures []fixtureSource, name, content string) []fixtureSource {
	out := append([]fixtureSource(nil), fixtures...)
	for i := range out {
		if out[i].name == name {
			out[i].content = content
		}
	}
	return out
}

type testEnv struct {
	handler *Handler
	cache   *cache.Cache
	router  http.Handler
}

func newTestEnv(t *testing.T, fixtures []fixtureSource) *testEnv {
	t.Helper()

	dir := t.TempDir()
	sources := make([]dataset.Source, 0, len(fixtures))
	for _, f := range fixtures {
		path := filepath.Join(dir, f.file)
		if f.content != missingFile {
			if err := os.WriteFile(path, []byte(f.content), 0o600); err != nil {
				t.Fatalf("write fixture %s: %v", f.file, err)
			}
		}
		sources = append(sources, dataset.Source{
			Name:        f.name,
			Path:        path,
			Description: f.description,
			Eje:         f.eje,
		})
	}

	registry, err := dataset.LoadRegistry(sources, dataset.PolicyIsolate)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	queryCache := cache.New("api_test", time.Minute, 64)
	handler := NewHandler(registry, queryCache, HandlerConfig{MaxLimit: testMaxLimit, Version: "test"})
	router := NewRouter(handler, &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		RateLimitDisabled:  true,
	})

	return &testEnv{handler: handler, cache: queryCache, router: router.SetupChi()}
}

func (e *testEnv) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}

// results returns the resultados array of a body or of its data field.
func results(t *testing.T, body map[string]interface{}) []map[string]interface{} {
	t.Helper()
	if data, ok := body["data"].(map[string]interface{}); ok {
		body = data
	}
	raw, ok := body["resultados"].([]interface{})
	if !ok {
		t.Fatalf("resultados missing or not an array: %v", body)
	}
	rows := make([]map[string]interface{}, len(raw))
	for i, r := range raw {
		rows[i] = r.(map[string]interface{})
	}
	return rows
}

// column extracts one column from rows.
func column(rows []map[string]interface{}, name string) []interface{} {
	out := make([]interface{}, len(rows))
	for i, r := range rows {
		out[i] = r[name]
	}
	return out
}

// apiError returns code and message of an error envelope.
func apiError(t *testing.T, body map[string]interface{}) (string, string, map[string]interface{}) {
	t.Helper()
	if body["status"] != "error" {
		t.Fatalf("status = %v, want error", body["status"])
	}
	e, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("error object missing: %v", body)
	}
	details, _ := e["details"].(map[string]interface{})
	return e["code"].(string), e["message"].(string), details
}
