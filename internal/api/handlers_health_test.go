// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"net/http"
	"reflect"
	"testing"
)

func TestHealth_Degraded(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := env.get(t, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	if data["status"] != healthDegraded {
		t.Errorf("status = %v, want %s", data["status"], healthDegraded)
	}
	if data["version"] != "test" {
		t.Errorf("version = %v, want test", data["version"])
	}
	if !reflect.DeepEqual(data["unavailable"], []interface{}{DatasetTopDirectores}) {
		t.Errorf("unavailable = %v", data["unavailable"])
	}
}

func TestHealth_AllStates(t *testing.T) {
	tests := []struct {
		name      string
		fixtures  []fixtureSource
		status    string
		readyCode int
	}{
		{
			name:      "healthy",
			fixtures:  withContent(defaultFixtures(), DatasetTopDirectores, "director,rating\nKurosawa,8.1\n"),
			status:    healthHealthy,
			readyCode: http.StatusOK,
		},
		{
			name:      "degraded",
			fixtures:  defaultFixtures(),
			status:    healthDegraded,
			readyCode: http.StatusOK,
		},
		{
			name: "unhealthy",
			fixtures: []fixtureSource{
				{name: DatasetTopGeneros, file: "a.csv", content: missingFile, eje: 1},
				{name: DatasetEje3, file: "b.csv", content: missingFile, eje: 3},
			},
			status:    healthUnhealthy,
			readyCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.fixtures)

			if got := env.handler.healthStatus().Status; got != tt.status {
				t.Errorf("health status = %s, want %s", got, tt.status)
			}
			if rec := env.get(t, "/api/v1/health/ready"); rec.Code != tt.readyCode {
				t.Errorf("ready status = %d, want %d", rec.Code, tt.readyCode)
			}
			if rec := env.get(t, "/api/v1/health/live"); rec.Code != http.StatusOK {
				t.Errorf("live status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestHealth_SecurityHeaders(t *testing.T) {
	env := newTestEnv(t, defaultFixtures())

	rec := env.get(t, "/api/v1/health/live")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("X-Content-Type-Options missing on health endpoint")
	}
}
