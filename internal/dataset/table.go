// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Column describes one column of a Table.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"-"`
}

// MarshalJSON renders the column kind by name.
func (c Column) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}{Name: c.Name, Type: c.Kind.String()})
}

// schema is shared by every row of a table.
type schema struct {
	columns []Column
	index   map[string]int
}

func newSchema(columns []Column) *schema {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c.Name] = i
	}
	return &schema{columns: columns, index: idx}
}

// Row is one record of a Table. Rows are read-only.
type Row struct {
	schema *schema
	values []Value
}

// Get returns the value of the named column.
func (r Row) Get(column string) (Value, bool) {
	if r.schema == nil {
		return Null, false
	}
	i, ok := r.schema.index[column]
	if !ok {
		return Null, false
	}
	return r.values[i], true
}

// Columns returns the row's column names in header order.
func (r Row) Columns() []string {
	if r.schema == nil {
		return nil
	}
	names := make([]string, len(r.schema.columns))
	for i, c := range r.schema.columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of cells.
func (r Row) Len() int { return len(r.values) }

// MarshalJSON writes the row as an object with keys in header order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if r.schema != nil {
		for i, c := range r.schema.columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(c.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			val, err := r.values[i].MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is an immutable, in-memory ordered collection of rows loaded from one file.
// It is safe for concurrent reads.
type Table struct {
	name      string
	path      string
	schema    *schema
	rows      []Row
	sanitized int
}

// NewTable builds a table from already-typed values. Every record must have one value
// per column. It is mainly useful in tests and for in-process producers.
func NewTable(name string, columns []Column, records [][]Value) (*Table, error) {
	if err := checkHeader(columnNames(columns)); err != nil {
		return nil, err
	}
	s := newSchema(append([]Column(nil), columns...))
	rows := make([]Row, len(records))
	for i, rec := range records {
		if len(rec) != len(columns) {
			return nil, &MalformedError{Path: name, Line: i + 1, Reason: "wrong number of fields"}
		}
		rows[i] = Row{schema: s, values: append([]Value(nil), rec...)}
	}
	return &Table{name: name, schema: s, rows: rows}, nil
}

// Name returns the logical name the table was loaded under, or its path.
func (t *Table) Name() string {
	if t.name != "" {
		return t.name
	}
	return t.path
}

// Path returns the source file path.
func (t *Table) Path() string { return t.path }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns a copy of the column descriptors.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.schema.columns...)
}

// ColumnNames returns column names in header order.
func (t *Table) ColumnNames() []string {
	return columnNames(t.schema.columns)
}

// Column returns the descriptor of the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.schema.index[name]
	if !ok {
		return Column{}, false
	}
	return t.schema.columns[i], true
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.schema.index[name]
	return ok
}

// SanitizedCells returns how many cells were normalized to Null during load.
func (t *Table) SanitizedCells() int { return t.sanitized }

// Require checks that every named column exists.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return &RequiredColumnMissingError{Dataset: t.Name(), Column: c}
		}
	}
	return nil
}

func columnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
