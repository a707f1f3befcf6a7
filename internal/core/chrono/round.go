package chrono

import (
	"math"
	"strconv"
)

// Round rounds value to precision decimal digits, halves away from zero.
func Round(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}

// FormatFixed renders value with exactly decimals digits after the point.
func FormatFixed(value float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// FormatDelta converts, rounds and formats a millisecond delta.
func FormatDelta(deltaMillis float64, unit Unit, precision int) (string, error) {
	converted, err := Convert(deltaMillis, unit)
	if err != nil {
		return "", err
	}
	return FormatFixed(Round(converted, precision), precision), nil
}
