package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"quoted", "22450.35", "22450.35"},
		{"padded", "  17.5 ", "17.5"},
		{"json number", json.Number("101.25"), "101.25"},
		{"float", 99.5, "99.5"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"zero", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestToDecimal_NotNumeric(t *testing.T) {
	for _, in := range []any{nil, "", "-", "N/A", "1,234.50", true, map[string]any{}, math.NaN()} {
		_, err := ToDecimal(in)
		assert.ErrorIs(t, err, ErrNotNumeric, "input %#v", in)
	}
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.2346, RoundFloat(1.23456, 4))
	assert.Equal(t, -0.5, RoundFloat(-0.49999, 2))
}
