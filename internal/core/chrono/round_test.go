package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      float64
	}{
		{1.23456, 2, 1.23},
		{1.235, 0, 1},
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{-1.23456, 3, -1.235},
		{123.456, 5, 123.456},
		{0.000004, 5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Round(tt.value, tt.precision), 1e-12, "%v@%d", tt.value, tt.precision)
	}
}

func TestRoundIdempotent(t *testing.T) {
	values := []float64{0, 1, -1, 3.14159265, -2.718281828, 12345.678901, 0.1 + 0.2, 1e-7, 987654.321}
	for _, value := range values {
		for precision := 0; precision <= 8; precision++ {
			once := Round(value, precision)
			assert.Equal(t, once, Round(once, precision), "%v@%d", value, precision)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{5000, 0, "5000"},
		{1.5, 3, "1.500"},
		{-0.25, 2, "-0.25"},
		{12345678.9, 1, "12345678.9"},
		{3, 5, "3.00000"},
		{7.9, 0, "8"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.value, tt.decimals))
	}
}

func TestFormatDelta(t *testing.T) {
	got, err := FormatDelta(90_000, UnitMinute, 2)
	require.NoError(t, err)
	assert.Equal(t, "1.50", got)

	_, err = FormatDelta(90_000, "xx", 2)
	assert.Error(t, err)
}
