package chrono

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the only accepted textual form of a TimeValue.
const Layout = "2006-01-02 15:04:05"

// DefaultZoneOffset is subtracted from target instants unless configured otherwise.
const DefaultZoneOffset = 8 * time.Hour

// ErrInvalidTimeValue indicates the input does not follow Layout.
var ErrInvalidTimeValue = errors.New("invalid time value")

// ParseError wraps a failure to parse a TimeValue.
type ParseError struct {
	Input string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", err.Input, err.Err)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// TimeValue is a calendar instant without a timezone.
type TimeValue struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Parse reads a TimeValue in the fixed YYYY-MM-DD HH:MM:SS layout.
func Parse(value string) (TimeValue, error) {
	if !matchesLayout(value) {
		return TimeValue{}, &ParseError{Input: value, Err: ErrInvalidTimeValue}
	}
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return TimeValue{}, &ParseError{Input: value, Err: err}
	}
	return FromTime(parsed), nil
}

// FromTime decomposes the wall-clock fields of t.
func FromTime(t time.Time) TimeValue {
	return TimeValue{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Format renders the value back into Layout.
func (value TimeValue) Format() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		value.Year, value.Month, value.Day,
		value.Hour, value.Minute, value.Second)
}

func (value TimeValue) String() string {
	return value.Format()
}

// EpochMillis reads the fields as a UTC wall clock and shifts the result by
// offset, so an offset of 8h treats the fields as UTC+8 local time.
func (value TimeValue) EpochMillis(offset time.Duration) int64 {
	instant := time.Date(value.Year, time.Month(value.Month), value.Day,
		value.Hour, value.Minute, value.Second, 0, time.UTC)
	return instant.UnixMilli() - offset.Milliseconds()
}

// Preview renders editor fields as the target code shown next to the inputs.
func Preview(year, month, day, hour, minute, second int) string {
	return TimeValue{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}.Format()
}

// TargetMillis parses target and converts it to epoch milliseconds.
func TargetMillis(target string, offset time.Duration) (int64, error) {
	value, err := Parse(target)
	if err != nil {
		return 0, err
	}
	return value.EpochMillis(offset), nil
}

func matchesLayout(value string) bool {
	if len(value) != len(Layout) {
		return false
	}
	for index := 0; index < len(value); index++ {
		char := value[index]
		switch Layout[index] {
		case '-', ':', ' ':
			if char != Layout[index] {
				return false
			}
		default:
			if char < '0' || char > '9' {
				return false
			}
		}
	}
	return true
}
