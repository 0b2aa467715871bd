// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadOptions parameterizes Load.
type LoadOptions struct {
	// Name is the logical dataset name used in error messages. Defaults to the path.
	Name string

	// Comma is the field delimiter. Zero selects by extension: tab for .tsv, comma otherwise.
	Comma rune

	// RequiredColumns must all be present in the header or the load fails.
	RequiredColumns []string
}

// Load reads a delimited file with a header row into an immutable Table.
//
// Column types are inferred from content (integer, float, boolean, text) and a
// sanitization pass replaces missing-value markers and non-finite numbers with Null.
// Files ending in .gz are decompressed; a UTF-8 byte-order mark is ignored.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &MalformedError{Path: path, Reason: "invalid gzip stream", Err: err}
		}
		defer func() { _ = gz.Close() }()
		src = gz
	}

	comma := opts.Comma
	if comma == 0 {
		comma = delimiterFor(path)
	}

	t, err := parse(src, path, comma)
	if err != nil {
		return nil, err
	}
	t.name = opts.Name
	if err := t.Require(opts.RequiredColumns...); err != nil {
		return nil, err
	}
	return t, nil
}

// delimiterFor picks the delimiter from the file extension, ignoring a trailing .gz.
func delimiterFor(path string) rune {
	base := strings.ToLower(path)
	base = strings.TrimSuffix(base, ".gz")
	if strings.HasSuffix(base, ".tsv") || strings.HasSuffix(base, ".tab") {
		return '\t'
	}
	return ','
}

// parse reads the header and records, infers column kinds and sanitizes cells.
func parse(r io.Reader, path string, comma rune) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MalformedError{Path: path, Reason: "missing header row"}
	}
	if err != nil {
		return nil, &MalformedError{Path: path, Line: 1, Err: err}
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkHeader(header); err != nil {
		var me *MalformedError
		if errors.As(err, &me) {
			me.Path = path
		}
		return nil, err
	}

	var raw [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &MalformedError{Path: path, Line: pe.Line, Err: pe.Err}
			}
			return nil, &MalformedError{Path: path, Err: err}
		}
		if len(rec) != len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &MalformedError{
				Path:   path,
				Line:   line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(rec)),
			}
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		raw = append(raw, rec)
	}

	kinds := inferKinds(len(header), raw)
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: name, Kind: kinds[i]}
	}

	s := newSchema(columns)
	t := &Table{path: path, schema: s, rows: make([]Row, len(raw))}
	for ri, rec := range raw {
		values := make([]Value, len(rec))
		for ci, cell := range rec {
			v := convert(cell, kinds[ci])
			if v.IsNull() {
				t.sanitized++
			}
			values[ci] = v
		}
		t.rows[ri] = Row{schema: s, values: values}
	}
	return t, nil
}

// checkHeader rejects empty and duplicate column names.
func checkHeader(header []string) error {
	if len(header) == 0 {
		return &MalformedError{Reason: "empty header"}
	}
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if h == "" {
			return &MalformedError{Line: 1, Reason: fmt.Sprintf("column %d has an empty name", i+1)}
		}
		if _, dup := seen[h]; dup {
			return &MalformedError{Line: 1, Reason: fmt.Sprintf("duplicate column %q", h)}
		}
		seen[h] = struct{}{}
	}
	return nil
}

// inferKinds picks the most specific kind every non-missing cell of a column parses as.
// A column without any non-missing cell is treated as float.
func inferKinds(width int, rows [][]string) []Kind {
	kinds := make([]Kind, width)
	for col := 0; col < width; col++ {
		seen := false
		allInt, allFloat, allBool := true, true, true
		for _, r := range rows {
			v := r[col]
			if isMissing(v) {
				continue
			}
			seen = true
			if allInt {
				if _, err := strconv.ParseInt(v, 10, 64); err != nil {
					allInt = false
				}
			}
			if allFloat {
				if _, ok := parseFloat(v); !ok {
					allFloat = false
				}
			}
			if allBool {
				if _, ok := parseBool(v); !ok {
					allBool = false
				}
			}
			if !allInt && !allFloat && !allBool {
				break
			}
		}
		switch {
		case !seen:
			kinds[col] = KindFloat
		case allInt:
			kinds[col] = KindInteger
		case allFloat:
			kinds[col] = KindFloat
		case allBool:
			kinds[col] = KindBool
		default:
			kinds[col] = KindText
		}
	}
	return kinds
}

// convert turns a raw cell into a sanitized Value of the column's kind.
func convert(cell string, kind Kind) Value {
	if isMissing(cell) {
		return Null
	}
	switch kind {
	case KindInteger:
		n, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return Null
		}
		return IntValue(n)
	case KindFloat:
		f, ok := parseFloat(cell)
		if !ok {
			return Null
		}
		return FloatValue(f)
	case KindBool:
		b, _ := parseBool(cell)
		return BoolValue(b)
	default:
		return TextValue(cell)
	}
}

// parseFloat accepts out-of-range literals such as 1e400 as ±Inf, the way
// they are written by pandas, so FloatValue nulls them instead of the
// column degrading to text.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
