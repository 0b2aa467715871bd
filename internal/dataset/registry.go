// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinemetrics/internal/logging"
	"github.com/tomtom215/cinemetrics/internal/metrics"
)

// FailurePolicy decides what happens when a configured dataset fails to load.
type FailurePolicy string

const (
	// PolicyIsolate marks the failed dataset unavailable and keeps serving the others.
	PolicyIsolate FailurePolicy = "isolate"

	// PolicyFatal aborts startup on the first failure.
	PolicyFatal FailurePolicy = "fatal"
)

// ParseFailurePolicy converts a configuration string. Empty selects PolicyIsolate.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(s) {
	case "", PolicyIsolate:
		return PolicyIsolate, nil
	case PolicyFatal:
		return PolicyFatal, nil
	default:
		return "", fmt.Errorf("invalid failure policy %q (must be %q or %q)", s, PolicyIsolate, PolicyFatal)
	}
}

// Source describes one configured dataset.
type Source struct {
	Name            string
	Path            string
	Description     string
	Eje             int
	RequiredColumns []string
	Comma           rune
}

type entry struct {
	source Source
	table  *Table
	err    error
}

// Registry maps logical dataset names to loaded tables. It is built once before
// serving and is read-only afterwards, so concurrent lookups need no locking.
type Registry struct {
	order   []string
	entries map[string]*entry
}

// LoadRegistry loads every source in order. Under PolicyFatal the first failure is
// returned and no registry is built. Under PolicyIsolate failures are recorded and
// the registry is always returned; duplicate names are rejected under both policies.
func LoadRegistry(sources []Source, policy FailurePolicy) (*Registry, error) {
	r := &Registry{entries: make(map[string]*entry, len(sources))}
	for _, src := range sources {
		if src.Name == "" {
			return nil, fmt.Errorf("dataset source with path %q has no name", src.Path)
		}
		if _, dup := r.entries[src.Name]; dup {
			return nil, fmt.Errorf("dataset %q configured more than once", src.Name)
		}

		t, err := loadSource(src)
		if err != nil && policy == PolicyFatal {
			return nil, fmt.Errorf("load dataset %q: %w", src.Name, err)
		}
		r.order = append(r.order, src.Name)
		r.entries[src.Name] = &entry{source: src, table: t, err: err}
	}
	return r, nil
}

func loadSource(src Source) (*Table, error) {
	start := time.Now()
	t, err := Load(src.Path, LoadOptions{
		Name:            src.Name,
		Comma:           src.Comma,
		RequiredColumns: src.RequiredColumns,
	})
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordDatasetLoad(src.Name, loadResult(err), elapsed, 0, 0)
		logging.Error().
			Err(err).
			Str("dataset", src.Name).
			Str("path", src.Path).
			Int("eje", src.Eje).
			Msg("Dataset failed to load")
		return nil, err
	}

	metrics.RecordDatasetLoad(src.Name, metrics.LoadResultOK, elapsed, t.Len(), t.SanitizedCells())
	logging.Info().
		Str("dataset", src.Name).
		Str("path", src.Path).
		Int("eje", src.Eje).
		Int("rows", t.Len()).
		Int("columns", len(t.schema.columns)).
		Int("sanitized_cells", t.SanitizedCells()).
		Dur("duration", elapsed).
		Msg("Dataset loaded")
	return t, nil
}

func loadResult(err error) string {
	switch {
	case errors.Is(err, ErrDatasetNotFound):
		return metrics.LoadResultNotFound
	case errors.Is(err, ErrDatasetMalformed):
		return metrics.LoadResultMalformed
	case errors.Is(err, ErrRequiredColumnMissing):
		return metrics.LoadResultMissingCols
	default:
		return metrics.LoadResultError
	}
}

// Lookup returns the table registered under name. It fails with ErrUnknownDataset
// for names that were never configured and with *UnavailableError for datasets
// whose load failed.
func (r *Registry) Lookup(name string) (*Table, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	if e.err != nil {
		return nil, &UnavailableError{Dataset: name, Cause: e.err}
	}
	return e.table, nil
}

// Source returns the configuration a dataset was registered with.
func (r *Registry) Source(name string) (Source, bool) {
	e, ok := r.entries[name]
	if !ok {
		return Source{}, false
	}
	return e.source, true
}

// Names returns dataset names in configuration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of configured datasets.
func (r *Registry) Len() int { return len(r.order) }

// Available returns how many datasets loaded successfully.
func (r *Registry) Available() int {
	n := 0
	for _, e := range r.entries {
		if e.err == nil {
			n++
		}
	}
	return n
}

// DatasetStatus is the diagnostic view of one registered dataset.
type DatasetStatus struct {
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Eje            int      `json:"eje,omitempty"`
	Path           string   `json:"path"`
	Available      bool     `json:"available"`
	Rows           int      `json:"rows"`
	Columns        []Column `json:"columns"`
	SanitizedCells int      `json:"sanitized_cells"`
	Error          string   `json:"error,omitempty"`
}

// Status reports every dataset in configuration order.
func (r *Registry) Status() []DatasetStatus {
	out := make([]DatasetStatus, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		st := DatasetStatus{
			Name:        name,
			Description: e.source.Description,
			Eje:         e.source.Eje,
			Path:        e.source.Path,
			Columns:     []Column{},
		}
		if e.err != nil {
			st.Error = e.err.Error()
		} else {
			st.Available = true
			st.Rows = e.table.Len()
			st.Columns = e.table.Columns()
			st.SanitizedCells = e.table.SanitizedCells()
		}
		out = append(out, st)
	}
	return out
}
