// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinemetrics/internal/dataset"
	"github.com/tomtom215/cinemetrics/internal/models"
)

// Query parameter names. They keep the Spanish spelling clients already use.
const (
	paramLimit     = "limite"
	paramSortBy    = "ordenar_por"
	paramFilterBy  = "filtrar_por"
	paramMinValue  = "min_valor"
	paramMinMovies = "min_peliculas"
)

// QueryParams holds every query parameter a results endpoint may accept.
// Which ones are honored depends on the route.
type QueryParams struct {
	Limit     *int     `query:"limite" validate:"omitempty,gte=0"`
	SortBy    string   `query:"ordenar_por" validate:"omitempty,max=128"`
	FilterBy  string   `query:"filtrar_por" validate:"required_with=MinValue,max=128"`
	MinValue  *float64 `query:"min_valor" validate:"required_with=FilterBy"`
	MinMovies *int     `query:"min_peliculas" validate:"omitempty,gte=0"`
}

// parseQueryParams reads and validates the query string. Numeric parameters
// that do not parse are reported as VALIDATION_ERROR before struct
// validation runs; limite is additionally capped by maxLimit.
func parseQueryParams(r *http.Request, maxLimit int) (*QueryParams, *models.APIError) {
	q := r.URL.Query()
	params := &QueryParams{
		SortBy:   strings.TrimSpace(q.Get(paramSortBy)),
		FilterBy: strings.TrimSpace(q.Get(paramFilterBy)),
	}

	var apiErr *models.APIError
	if params.Limit, apiErr = intParam(q.Get(paramLimit), paramLimit); apiErr != nil {
		return nil, apiErr
	}
	if params.MinMovies, apiErr = intParam(q.Get(paramMinMovies), paramMinMovies); apiErr != nil {
		return nil, apiErr
	}
	if params.MinValue, apiErr = floatParam(q.Get(paramMinValue), paramMinValue); apiErr != nil {
		return nil, apiErr
	}

	if apiErr := validateRequest(params); apiErr != nil {
		return nil, apiErr
	}

	if params.Limit != nil && maxLimit > 0 && *params.Limit > maxLimit {
		return nil, paramError(paramLimit, "lte", *params.Limit,
			fmt.Sprintf("%s debe ser menor o igual que %d", paramLimit, maxLimit))
	}
	return params, nil
}

func intParam(raw, name string) (*int, *models.APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, paramError(name, "int", raw, fmt.Sprintf("%s debe ser un número entero", name))
	}
	return &n, nil
}

func floatParam(raw, name string) (*float64, *models.APIError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, paramError(name, "number", raw, fmt.Sprintf("%s debe ser un número finito", name))
	}
	return &f, nil
}

func paramError(field, tag string, value interface{}, message string) *models.APIError {
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: message,
		Details: map[string]interface{}{
			"field": field,
			"tag":   tag,
			"value": value,
		},
	}
}

// intOr returns *p or def.
func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// genericQuery builds the store query for /api/v1/datasets/{name}. Every
// step is optional.
func (p *QueryParams) genericQuery() dataset.Query {
	q := dataset.Query{SortBy: p.SortBy, Limit: p.Limit}
	if p.FilterBy != "" && p.MinValue != nil {
		q.Filter = &dataset.Threshold{Column: p.FilterBy, Min: *p.MinValue}
	}
	return q
}
