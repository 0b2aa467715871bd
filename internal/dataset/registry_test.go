// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSources(t *testing.T) []Source {
	t.Helper()
	dir := t.TempDir()
	good := writeFile(t, "genres.csv", "genero,roi_promedio\nAction,2.5\n")
	return []Source{
		{Name: "top_generos", Path: good, Description: "ROI por genero", Eje: 1},
		{Name: "eje3", Path: filepath.Join(dir, "resultados_eje3.csv"), Description: "Eje 3", Eje: 3},
	}
}

func TestParseFailurePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    FailurePolicy
		wantErr bool
	}{
		{"", PolicyIsolate, false},
		{"isolate", PolicyIsolate, false},
		{"fatal", PolicyFatal, false},
		{"FATAL", "", true},
		{"ignore", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFailurePolicy(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestLoadRegistry_IsolatePolicy(t *testing.T) {
	t.Parallel()

	reg, err := LoadRegistry(testSources(t), PolicyIsolate)
	require.NoError(t, err)

	assert.Equal(t, []string{"top_generos", "eje3"}, reg.Names())
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, reg.Available())

	tbl, err := reg.Lookup("top_generos")
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	// an unavailable dataset fails the same way on every lookup
	for i := 0; i < 3; i++ {
		_, err := reg.Lookup("eje3")
		require.ErrorIs(t, err, ErrDatasetUnavailable)
		require.ErrorIs(t, err, ErrDatasetNotFound)

		var ue *UnavailableError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "eje3", ue.Dataset)
	}
}

func TestLoadRegistry_FatalPolicy(t *testing.T) {
	t.Parallel()

	reg, err := LoadRegistry(testSources(t), PolicyFatal)
	require.Error(t, err)
	assert.Nil(t, reg)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))
	assert.Contains(t, err.Error(), "eje3")
}

func TestLoadRegistry_RejectsDuplicateNames(t *testing.T) {
	t.Parallel()

	src := testSources(t)[0]
	_, err := LoadRegistry([]Source{src, src}, PolicyIsolate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestLoadRegistry_RequiredColumns(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pais.csv", "pais,roi_promedio\nUSA,1.2\n")
	reg, err := LoadRegistry([]Source{
		{Name: "roi_por_pais", Path: path, RequiredColumns: []string{"cantidad_peliculas"}},
	}, PolicyIsolate)
	require.NoError(t, err)

	_, err = reg.Lookup("roi_por_pais")
	require.ErrorIs(t, err, ErrDatasetUnavailable)
	require.ErrorIs(t, err, ErrRequiredColumnMissing)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	t.Parallel()

	reg, err := LoadRegistry(testSources(t), PolicyIsolate)
	require.NoError(t, err)

	_, err = reg.Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownDataset)
	assert.False(t, errors.Is(err, ErrDatasetUnavailable))
}

func TestRegistry_Status(t *testing.T) {
	t.Parallel()

	reg, err := LoadRegistry(testSources(t), PolicyIsolate)
	require.NoError(t, err)

	status := reg.Status()
	require.Len(t, status, 2)

	ok := status[0]
	assert.Equal(t, "top_generos", ok.Name)
	assert.True(t, ok.Available)
	assert.Equal(t, 1, ok.Rows)
	assert.Equal(t, []Column{{Name: "genero", Kind: KindText}, {Name: "roi_promedio", Kind: KindFloat}}, ok.Columns)
	assert.Empty(t, ok.Error)

	bad := status[1]
	assert.Equal(t, "eje3", bad.Name)
	assert.Equal(t, 3, bad.Eje)
	assert.False(t, bad.Available)
	assert.NotEmpty(t, bad.Error)
	assert.NotNil(t, bad.Columns)
}
