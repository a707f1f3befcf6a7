package chrono

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDivisors(t *testing.T) {
	tests := []struct {
		unit Unit
		want float64
	}{
		{UnitMillisecond, 31_536_000_000},
		{UnitSecond, 31_536_000},
		{UnitMinute, 525_600},
		{UnitHour, 8_760},
		{UnitDay, 365},
		{UnitWeek, 365.0 / 7},
		{UnitMonth, 365.0 / 30},
		{UnitYear, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			got, err := Convert(31_536_000_000, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertMonotonic(t *testing.T) {
	for _, delta := range []float64{1, 999, 86_400_000, 4_000_000_000_000} {
		previous := delta + 1
		for _, unit := range Units() {
			got, err := Convert(delta, unit)
			require.NoError(t, err)
			assert.LessOrEqual(t, got, previous, "unit %s delta %v", unit, delta)
			previous = got
		}
	}
}

func TestConvertRejectsUnknownUnit(t *testing.T) {
	for _, tag := range []string{"xyz", "", "M", "days", "xx"} {
		_, err := Convert(1000, Unit(tag))
		require.Error(t, err)

		var unitErr *InvalidUnitError
		require.True(t, errors.As(err, &unitErr))
		assert.Equal(t, tag, unitErr.Unit)
	}
}

func TestInvalidUnitMessage(t *testing.T) {
	_, err := Convert(1, "xyz")
	assert.EqualError(t, err, "invalid unit: 'xyz'")
}

func TestUnitValid(t *testing.T) {
	for _, unit := range Units() {
		assert.True(t, unit.Valid(), unit)
	}
	assert.False(t, Unit("fortnight").Valid())
}
