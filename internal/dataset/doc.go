// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

/*
Package dataset is the in-memory tabular store behind the API.

Delimited files produced by the analysis notebook are loaded once at startup into
immutable Tables. Loading infers a Kind per column (integer, float, boolean, text)
and sanitizes every cell so that missing-value markers and non-finite numbers
become Null, which serializes as JSON null.

# Operations

	Fetch(t)                     all rows, file order
	SortDescending(t, col)       stable, nulls last
	FilterByThreshold(t, col, m) numeric >= m, nulls never pass
	Limit(rows, n)               first min(n, len) rows

Query composes them in a fixed order: required columns, filter, sort, limit.

# Registry

A Registry maps logical names to tables. Sources that fail to load are either
fatal or recorded as unavailable, depending on the FailurePolicy, so that one
missing file only disables the endpoints backed by it.

# Errors

All failures are typed and match a sentinel through errors.Is:

	*NotFoundError              ErrDatasetNotFound
	*MalformedError             ErrDatasetMalformed
	*ColumnNotFoundError        ErrColumnNotFound
	*RequiredColumnMissingError ErrRequiredColumnMissing
	*ColumnNotNumericError      ErrColumnNotNumeric
	*UnavailableError           ErrDatasetUnavailable

Tables are never mutated after load and are safe for concurrent readers.
*/
package dataset
