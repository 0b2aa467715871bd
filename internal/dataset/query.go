// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"slices"
	"strconv"
	"strings"
)

// Fetch returns every row of t in file order. The returned slice is a copy and
// may be reordered by the caller without affecting t.
func Fetch(t *Table) []Row {
	return append(make([]Row, 0, len(t.rows)), t.rows...)
}

// SortDescending returns the rows of t ordered by column, largest first.
// Ties keep file order and null values sort after every non-null value.
func SortDescending(t *Table, column string) ([]Row, error) {
	return t.SortRows(Fetch(t), column)
}

// SortRows sorts rows belonging to t in place, descending by column, and returns them.
func (t *Table) SortRows(rows []Row, column string) ([]Row, error) {
	idx, ok := t.schema.index[column]
	if !ok {
		return nil, &ColumnNotFoundError{Column: column, Valid: t.ColumnNames()}
	}
	sortDescending(rows, idx)
	return rows, nil
}

func sortDescending(rows []Row, idx int) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		av, bv := a.values[idx], b.values[idx]
		switch {
		case av.IsNull() && bv.IsNull():
			return 0
		case av.IsNull():
			return 1
		case bv.IsNull():
			return -1
		default:
			return -compare(av, bv)
		}
	})
}

// FilterByThreshold returns the rows of t whose numeric value in column is at least
// minimum, in file order. Null values never pass.
func FilterByThreshold(t *Table, column string, minimum float64) ([]Row, error) {
	return t.FilterRows(t.rows, column, minimum)
}

// FilterRows keeps the rows belonging to t whose value in column is >= minimum.
// The input slice is not modified.
func (t *Table) FilterRows(rows []Row, column string, minimum float64) ([]Row, error) {
	col, ok := t.Column(column)
	if !ok {
		return nil, &RequiredColumnMissingError{Dataset: t.Name(), Column: column}
	}
	if !col.Kind.Numeric() {
		return nil, &ColumnNotNumericError{Column: column, Kind: col.Kind}
	}
	idx := t.schema.index[column]
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f, ok := r.values[idx].Float(); ok && f >= minimum {
			out = append(out, r)
		}
	}
	return out, nil
}

// Limit returns the first min(n, len(rows)) rows. n <= 0 yields an empty slice.
func Limit(rows []Row, n int) []Row {
	if n <= 0 {
		return []Row{}
	}
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// Threshold is a numeric lower bound on a column.
type Threshold struct {
	Column string
	Min    float64
}

// Query composes the store operations. Steps run in a fixed order:
// required columns, filter, sort, limit.
type Query struct {
	// SortBy sorts descending by this column when non-empty.
	SortBy string

	// Filter keeps rows at or above a threshold when non-nil.
	Filter *Threshold

	// Limit truncates the result when non-nil.
	Limit *int

	// Required columns must exist or the query fails with RequiredColumnMissing.
	Required []string
}

// Result is the outcome of a Query.
type Result struct {
	Rows []Row

	// Total is the number of rows that passed the filter, before the limit.
	Total int
}

// Apply runs q against t. Column references are validated before any work is done.
func (q Query) Apply(t *Table) (Result, error) {
	if err := t.Require(q.Required...); err != nil {
		return Result{}, err
	}
	if q.SortBy != "" && !t.HasColumn(q.SortBy) {
		return Result{}, &ColumnNotFoundError{Column: q.SortBy, Valid: t.ColumnNames()}
	}
	// A filter column the caller chose is a bad parameter, not a malformed dataset.
	// Columns the dataset must have belong in Required.
	if q.Filter != nil && !t.HasColumn(q.Filter.Column) {
		return Result{}, &ColumnNotFoundError{Column: q.Filter.Column, Valid: t.ColumnNames()}
	}

	rows := Fetch(t)
	if q.Filter != nil {
		var err error
		rows, err = t.FilterRows(rows, q.Filter.Column, q.Filter.Min)
		if err != nil {
			return Result{}, err
		}
	}
	total := len(rows)

	if q.SortBy != "" {
		sortDescending(rows, t.schema.index[q.SortBy])
	}
	if q.Limit != nil {
		rows = Limit(rows, *q.Limit)
	}
	return Result{Rows: rows, Total: total}, nil
}

// Key returns a stable string identifying the query, suitable as a cache key.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString("sort=")
	b.WriteString(q.SortBy)
	b.WriteString("|filter=")
	if q.Filter != nil {
		b.WriteString(q.Filter.Column)
		b.WriteString(">=")
		b.WriteString(strconv.FormatFloat(q.Filter.Min, 'g', -1, 64))
	}
	b.WriteString("|limit=")
	if q.Limit != nil {
		b.WriteString(strconv.Itoa(*q.Limit))
	}
	b.WriteString("|require=")
	b.WriteString(strings.Join(q.Required, ","))
	return b.String()
}
