// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	// ErrDatasetNotFound indicates the source file does not exist.
	ErrDatasetNotFound = errors.New("dataset file not found")

	// ErrDatasetMalformed indicates the file is not valid delimited tabular data.
	ErrDatasetMalformed = errors.New("dataset malformed")

	// ErrColumnNotFound indicates a caller-supplied column is not in the table.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRequiredColumnMissing indicates the table lacks a structurally required column.
	ErrRequiredColumnMissing = errors.New("required column missing")

	// ErrColumnNotNumeric indicates a numeric comparison on a non-numeric column.
	ErrColumnNotNumeric = errors.New("column is not numeric")

	// ErrDatasetUnavailable indicates the dataset failed to load at startup.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrUnknownDataset indicates the name was never configured.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// NotFoundError reports a missing source file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrDatasetNotFound }

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedError reports content that cannot be parsed as a table.
type MalformedError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	var b strings.Builder
	b.WriteString("dataset malformed: ")
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedError) Is(target error) bool { return target == ErrDatasetMalformed }

func (e *MalformedError) Unwrap() error { return e.Err }

// ColumnNotFoundError names the missing column and the valid alternatives.
type ColumnNotFoundError struct {
	Column string
	Valid  []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found (valid columns: %s)", e.Column, strings.Join(e.Valid, ", "))
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == ErrColumnNotFound }

// RequiredColumnMissingError reports a dataset of the wrong shape.
type RequiredColumnMissingError struct {
	Dataset string
	Column  string
}

func (e *RequiredColumnMissingError) Error() string {
	return fmt.Sprintf("dataset %q is missing required column %q", e.Dataset, e.Column)
}

func (e *RequiredColumnMissingError) Is(target error) bool {
	return target == ErrRequiredColumnMissing
}

// ColumnNotNumericError reports a threshold applied to a non-numeric column.
type ColumnNotNumericError struct {
	Column string
	Kind   Kind
}

func (e *ColumnNotNumericError) Error() string {
	return fmt.Sprintf("column %q is %s, not numeric", e.Column, e.Kind)
}

func (e *ColumnNotNumericError) Is(target error) bool { return target == ErrColumnNotNumeric }

// UnavailableError is returned by Registry.Lookup for datasets that failed to load.
type UnavailableError struct {
	Dataset string
	Cause   error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("dataset %q unavailable: %v", e.Dataset, e.Cause)
}

func (e *UnavailableError) Is(target error) bool { return target == ErrDatasetUnavailable }

func (e *UnavailableError) Unwrap() error { return e.Cause }
