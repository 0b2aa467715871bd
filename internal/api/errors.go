// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/logging"
	"github.com/tomtom215/cinemetrics/internal/metrics"
)

// Error codes carried in models.APIError.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeColumnNotFound   = "COLUMN_NOT_FOUND"
	ErrCodeRequiredColumn   = "REQUIRED_COLUMN_MISSING"
	ErrCodeColumnNotNumeric = "COLUMN_NOT_NUMERIC"
	ErrCodeUnavailable      = "DATASET_UNAVAILABLE"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// dataLabel names a dataset the way analysts refer to it: by analysis axis
// when one is configured, by name otherwise.
func dataLabel(src dataset.Source) string {
	if src.Eje > 0 {
		return fmt.Sprintf("del Eje %d", src.Eje)
	}
	return fmt.Sprintf("del dataset '%s'", src.Name)
}

// respondDatasetError translates a store error into the API error envelope.
// The status and message depend only on the error, so a dataset that failed
// to load produces the same response on every call.
func (h *Handler) respondDatasetError(w http.ResponseWriter, r *http.Request, name string, err error) {
	src, ok := h.registry.Source(name)
	if !ok {
		src = dataset.Source{Name: name}
	}

	status, code, message, details := classifyDatasetError(src, err)
	metrics.RecordDatasetQueryError(src.Name, code)

	if status >= http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("dataset", sanitizeLogValue(name)).
			Str("code", code).
			Msg("Dataset query failed")
	}

	respondErrorWithDetails(w, status, code, message, details)
}

func classifyDatasetError(src dataset.Source, err error) (status int, code, message string, details map[string]interface{}) {
	var (
		unavailable *dataset.UnavailableError
		notFound    *dataset.ColumnNotFoundError
		required    *dataset.RequiredColumnMissingError
		notNumeric  *dataset.ColumnNotNumericError
	)

	switch {
	case errors.Is(err, dataset.ErrUnknownDataset):
		return http.StatusNotFound, ErrCodeNotFound,
			fmt.Sprintf("Dataset '%s' no existe.", src.Name),
			map[string]interface{}{"dataset": src.Name}

	case errors.As(err, &unavailable):
		return http.StatusInternalServerError, ErrCodeUnavailable,
			fmt.Sprintf("Datos %s no disponibles.", dataLabel(src)),
			map[string]interface{}{"dataset": src.Name}

	case errors.As(err, &notFound):
		return http.StatusBadRequest, ErrCodeColumnNotFound,
			fmt.Sprintf("Columna '%s' no existe en los datos %s.", notFound.Column, dataLabel(src)),
			map[string]interface{}{"column": notFound.Column, "valid_columns": notFound.Valid}

	case errors.As(err, &required):
		return http.StatusBadRequest, ErrCodeRequiredColumn,
			fmt.Sprintf("Se espera una columna '%s' en los datos %s.", required.Column, dataLabel(src)),
			map[string]interface{}{"dataset": src.Name, "column": required.Column}

	case errors.As(err, &notNumeric):
		return http.StatusBadRequest, ErrCodeColumnNotNumeric,
			fmt.Sprintf("Columna '%s' no es numérica en los datos %s.", notNumeric.Column, dataLabel(src)),
			map[string]interface{}{"column": notNumeric.Column, "kind": notNumeric.Kind.String()}

	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error", nil
	}
}
