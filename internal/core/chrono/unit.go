package chrono

import "fmt"

// Unit identifies the unit a millisecond delta is expressed in.
type Unit string

const (
	UnitMillisecond Unit = "ms"
	UnitSecond      Unit = "s"
	UnitMinute      Unit = "m"
	UnitHour        Unit = "h"
	UnitDay         Unit = "d"
	UnitWeek        Unit = "w"
	UnitMonth       Unit = "mo"
	UnitYear        Unit = "y"
)

// Month and year are fixed 30 and 365 day spans.
var unitDivisors = map[Unit]float64{
	UnitMillisecond: 1,
	UnitSecond:      1_000,
	UnitMinute:      60_000,
	UnitHour:        3_600_000,
	UnitDay:         86_400_000,
	UnitWeek:        604_800_000,
	UnitMonth:       2_592_000_000,
	UnitYear:        31_536_000_000,
}

// InvalidUnitError reports a unit tag outside the known set.
type InvalidUnitError struct {
	Unit string
}

func (err *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit: '%s'", err.Unit)
}

// Units returns every supported unit ordered by increasing divisor.
func Units() []Unit {
	return []Unit{
		UnitMillisecond,
		UnitSecond,
		UnitMinute,
		UnitHour,
		UnitDay,
		UnitWeek,
		UnitMonth,
		UnitYear,
	}
}

// Valid reports whether unit is a supported tag.
func (unit Unit) Valid() bool {
	_, ok := unitDivisors[unit]
	return ok
}

// Divisor returns the number of milliseconds in one unit.
func (unit Unit) Divisor() (float64, error) {
	divisor, ok := unitDivisors[unit]
	if !ok {
		return 0, &InvalidUnitError{Unit: string(unit)}
	}
	return divisor, nil
}

// Convert expresses deltaMillis in unit without rounding.
func Convert(deltaMillis float64, unit Unit) (float64, error) {
	divisor, err := unit.Divisor()
	if err != nil {
		return 0, err
	}
	return deltaMillis / divisor, nil
}
