// Cinemetrics - Movie Analytics Results API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinemetrics

package dataset

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatValue_NonFiniteIsNull(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.True(t, FloatValue(f).IsNull(), "%v", f)
	}
	assert.False(t, FloatValue(0).IsNull())
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	f, ok := IntValue(7).Float()
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = TextValue("x").Float()
	assert.False(t, ok)

	assert.Equal(t, "null", Null.String())
	assert.Equal(t, KindNull, Null.Kind())
	assert.Equal(t, "boolean", KindBool.String())
	assert.True(t, KindInteger.Numeric())
	assert.False(t, KindText.Numeric())
}

func TestRow_MarshalJSON_KeepsHeaderOrderAndNulls(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable("t",
		[]Column{
			{Name: "zeta", Kind: KindText},
			{Name: "alpha", Kind: KindFloat},
			{Name: "mid", Kind: KindInteger},
			{Name: "flag", Kind: KindBool},
		},
		[][]Value{{TextValue("a\"b"), Null, IntValue(3), BoolValue(true)}})
	require.NoError(t, err)

	out, err := json.Marshal(Fetch(tbl))
	require.NoError(t, err)
	assert.Equal(t, `[{"zeta":"a\"b","alpha":null,"mid":3,"flag":true}]`, string(out))
}

func TestColumn_MarshalJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Column{Name: "roi", Kind: KindFloat})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"roi","type":"float"}`, string(out))
}
