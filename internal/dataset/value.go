// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Kind is the scalar type of a column or value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindBool
	KindText
)

// String returns the lowercase name used in API responses.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindText:
		return "text"
	default:
		return "null"
	}
}

// Numeric reports whether values of this kind compare numerically.
func (k Kind) Numeric() bool {
	return k == KindInteger || k == KindFloat
}

// Value is a single sanitized cell. The zero Value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Null is the explicit missing-value marker.
var Null = Value{}

// IntValue returns an integer value.
func IntValue(v int64) Value { return Value{kind: KindInteger, i: v} }

// FloatValue returns a float value. Non-finite input yields Null.
func FloatValue(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null
	}
	return Value{kind: KindFloat, f: v}
}

// BoolValue returns a boolean value.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// TextValue returns a text value.
func TextValue(v string) Value { return Value{kind: KindText, s: v} }

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null marker.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric value as float64. ok is false for non-numeric values.
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Int returns the integer payload.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Text returns the text payload.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Bool returns the boolean payload.
func (v Value) Bool() (b, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// String renders the value for logs and cache keys.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText:
		return v.s
	default:
		return "null"
	}
}

// MarshalJSON encodes Null as the JSON null literal.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// compare orders two non-null values of the same column kind.
// It returns a negative number when a < b, zero when equal, positive when a > b.
func compare(a, b Value) int {
	if af, ok := a.Float(); ok {
		bf, _ := b.Float()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	switch a.kind {
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	default:
		return strings.Compare(a.s, b.s)
	}
}

// missingMarkers are the cell spellings treated as missing in any column.
var missingMarkers = map[string]struct{}{
	"":         {},
	"NA":       {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"NULL":     {},
	"null":     {},
	"None":     {},
	"<NA>":     {},
	"#N/A":     {},
	"#NA":      {},
	"#N/A N/A": {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"1.#IND":   {},
	"1.#QNAN":  {},
}

// isMissing reports whether a raw cell is a missing-value marker.
func isMissing(cell string) bool {
	_, ok := missingMarkers[cell]
	return ok
}
