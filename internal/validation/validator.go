// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// datasetNamePattern accepts lower-case identifiers such as "top_generos".
var datasetNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// FieldError is a single field failure. Field uses the query, json or koanf
// tag name when the struct field has one.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Value   any
	Message string
}

func (e FieldError) Error() string { return e.Message }

// RequestValidationError collects every failed field of one struct.
type RequestValidationError struct {
	Fields []FieldError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Fields) == 0 {
		return "validación fallida"
	}
	parts := make([]string, len(ve.Fields))
	for i, fe := range ve.Fields {
		parts[i] = fe.Message
	}
	return strings.Join(parts, "; ")
}

// APIError mirrors models.APIError without importing it.
type APIError struct {
	Code    string
	Message string
	Details map[string]any
}

const codeValidation = "VALIDATION_ERROR"

// ToAPIError converts the failures to a VALIDATION_ERROR payload. A single
// failure is described inline; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *APIError {
	switch len(ve.Fields) {
	case 0:
		return &APIError{Code: codeValidation, Message: "Parámetros inválidos"}
	case 1:
		fe := ve.Fields[0]
		return &APIError{
			Code:    codeValidation,
			Message: fe.Message,
			Details: map[string]any{"field": fe.Field, "tag": fe.Tag, "value": fe.Value},
		}
	}

	fields := make([]map[string]any, 0, len(ve.Fields))
	summary := make([]string, 0, len(ve.Fields))
	for _, fe := range ve.Fields {
		fields = append(fields, map[string]any{"field": fe.Field, "tag": fe.Tag, "message": fe.Message})
		summary = append(summary, fe.Field+": "+fe.Message)
	}
	return &APIError{
		Code:    codeValidation,
		Message: strings.Join(summary, "; "),
		Details: map[string]any{"fields": fields},
	}
}

// GetValidator returns the process-wide validator, creating it on first use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)

		// Both registrations use static functions; errors only occur on empty tags.
		_ = validate.RegisterValidation("dataset_name", func(fl validator.FieldLevel) bool {
			return datasetNamePattern.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("delimiter", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if utf8.RuneCountInString(s) != 1 {
				return false
			}
			r, _ := utf8.DecodeRuneInString(s)
			return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
		})
	})

	return validate
}

// fieldName reports the name a client or operator actually typed.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"query", "json", "koanf"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ValidateStruct validates s and returns nil or the collected failures.
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
func ValidateStruct(s any) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{
			Fields: []FieldError{{Field: "unknown", Tag: "unknown", Message: err.Error()}},
		}
	}

	parent := reflect.TypeOf(s)
	for parent != nil && parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}

	out := &RequestValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translateError(fe, parent),
		})
	}
	return out
}

var errorMessageTemplates = map[string]string{
	"required":     "%s es obligatorio",
	"dataset_name": "%s debe ser un identificador en minúsculas (letras, dígitos y guiones bajos)",
	"delimiter":    "%s debe ser un único carácter distinto de comillas o salto de línea",
}

var errorMessageWithParam = map[string]string{
	"oneof": "%s debe ser uno de: %s",
	"gte":   "%s debe ser mayor o igual que %s",
	"lte":   "%s debe ser menor o igual que %s",
	"gt":    "%s debe ser mayor que %s",
	"lt":    "%s debe ser menor que %s",
}

// translateError renders fe for clients. parent is the validated struct type,
// used to spell sibling fields named in tag parameters.
func translateError(fe validator.FieldError, parent reflect.Type) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, field)
	}
	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, field, param)
	}
	if tag == "required_with" {
		return fmt.Sprintf("%s es obligatorio cuando se indica %s", field, siblingName(parent, param))
	}
	return translateMinMax(fe, field, tag, param)
}

// translateMinMax words min/max differently for strings and numbers.
func translateMinMax(fe validator.FieldError, field, tag, param string) string {
	isString := fe.Kind() == reflect.String

	switch tag {
	case "min":
		if isString {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, param)
		}
		return fmt.Sprintf("%s debe ser al menos %s", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres", field, param)
		}
		return fmt.Sprintf("%s debe ser como máximo %s", field, param)
	default:
		return fmt.Sprintf("%s no cumple la regla %s", field, tag)
	}
}

// siblingName spells the Go field param the way fieldName would, falling
// back to snake case when the field cannot be found on parent.
func siblingName(parent reflect.Type, param string) string {
	if parent != nil && parent.Kind() == reflect.Struct {
		if f, ok := parent.FieldByName(param); ok {
			if name := fieldName(f); name != "" {
				return name
			}
		}
	}
	return snakeCase(param)
}

// snakeCase turns a Go field name from a tag parameter (FilterBy) into the
// parameter spelling clients use (filter_by).
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
