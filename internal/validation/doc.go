// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

// Package validation wraps go-playground/validator v10 behind a singleton
// instance shared by the HTTP query parameters and the dataset entries of the
// configuration file.
//
// Field names in messages come from the query, json or koanf struct tag, so a
// client sending limite=-1 reads "limite debe ser mayor o igual que 0"
// rather than a Go field name.
//
// Custom tags:
//   - dataset_name: lower-case identifier, at most 64 characters
//   - delimiter: exactly one character, not a quote or a newline
//
// # Usage
//
//	type rankingParams struct {
//	    Limit *int `query:"limite" validate:"omitempty,gte=0,lte=1000"`
//	}
//
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
//
// The validator caches struct metadata and is safe for concurrent use.
package validation
