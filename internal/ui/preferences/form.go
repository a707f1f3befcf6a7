package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chronotimer/internal/core/chrono"
	"chronotimer/internal/core/model"
	"chronotimer/internal/storage"
	"chronotimer/resources"
)

// ErrInvalidField reports an editor input that is not a usable number.
var ErrInvalidField = errors.New("invalid field")

var unitLabels = map[chrono.Unit]string{
	chrono.UnitMillisecond: "Milliseconds (ms)",
	chrono.UnitSecond:      "Seconds (s)",
	chrono.UnitMinute:      "Minutes (m)",
	chrono.UnitHour:        "Hours (h)",
	chrono.UnitDay:         "Days (d)",
	chrono.UnitWeek:        "Weeks (w)",
	chrono.UnitMonth:       "Months (mo)",
	chrono.UnitYear:        "Years (y)",
}

// unitOptions lists the radio labels in divisor order.
func unitOptions() []string {
	units := chrono.Units()
	options := make([]string, 0, len(units))
	for _, unit := range units {
		options = append(options, unitLabels[unit])
	}
	return options
}

func unitLabel(unit string) (string, error) {
	label, ok := unitLabels[chrono.Unit(unit)]
	if !ok {
		return "", &chrono.InvalidUnitError{Unit: unit}
	}
	return label, nil
}

// An empty or unknown selection falls back to days.
func unitFromLabel(label string) chrono.Unit {
	for unit, candidate := range unitLabels {
		if candidate == label {
			return unit
		}
	}
	return chrono.UnitDay
}

// formValues is the raw text and toggle state of every editor input.
type formValues struct {
	Year, Month, Day, Hour, Minute, Second string

	Interval  string
	Precision string

	Header         string
	Footer         string
	HeaderFontSize string
	TimeFontSize   string
	FooterFontSize string

	WindowTitle  string
	WindowWidth  string
	WindowHeight string

	UnitLabel string

	ClockEnable     bool
	ClockFullscreen bool
	ClockShowSecond bool
	ClockFontSize   string
}

// formFromSettings fills the form. A bad target or unit is reported after the
// remaining fields have been filled so the user can fix it in place. A bad
// target takes precedence over a bad unit in the returned error.
func formFromSettings(settings model.Settings) (formValues, error) {
	form := formValues{
		Interval:        strconv.Itoa(settings.Interval),
		Precision:       strconv.Itoa(settings.Precision),
		Header:          settings.Header,
		Footer:          settings.Footer,
		HeaderFontSize:  strconv.Itoa(settings.HeaderFontSize),
		TimeFontSize:    strconv.Itoa(settings.TimeFontSize),
		FooterFontSize:  strconv.Itoa(settings.FooterFontSize),
		WindowTitle:     settings.WindowTitle,
		WindowWidth:     strconv.Itoa(settings.WindowWidth),
		WindowHeight:    strconv.Itoa(settings.WindowHeight),
		ClockEnable:     settings.ClockMode.Enable,
		ClockFullscreen: settings.ClockMode.Fullscreen,
		ClockShowSecond: settings.ClockMode.ShowSecond,
		ClockFontSize:   strconv.Itoa(settings.ClockMode.FontSize),
	}

	label, unitErr := unitLabel(settings.Unit)
	form.UnitLabel = label

	target, err := chrono.Parse(settings.Target)
	if err != nil {
		return form, err
	}
	form.setTimeValue(target)
	return form, unitErr
}

func (form *formValues) setTimeValue(value chrono.TimeValue) {
	form.Year = strconv.Itoa(value.Year)
	form.Month = strconv.Itoa(value.Month)
	form.Day = strconv.Itoa(value.Day)
	form.Hour = strconv.Itoa(value.Hour)
	form.Minute = strconv.Itoa(value.Minute)
	form.Second = strconv.Itoa(value.Second)
}

var timeFieldNames = [6]string{"year", "month", "day", "hour", "minute", "second"}

// preview renders the six date-time inputs as a target code.
func (form formValues) preview() (string, error) {
	texts := [6]string{form.Year, form.Month, form.Day, form.Hour, form.Minute, form.Second}
	var values [6]int
	for index, text := range texts {
		parsed, err := parseIntField(timeFieldNames[index], text, 0)
		if err != nil {
			return "", err
		}
		values[index] = parsed
	}
	return chrono.Preview(values[0], values[1], values[2], values[3], values[4], values[5]), nil
}

// apply writes the form over base. Fields the form does not edit keep base values.
func (form formValues) apply(base model.Settings) (model.Settings, error) {
	settings := base

	target, err := form.preview()
	if err != nil {
		return base, err
	}
	if _, err := chrono.Parse(target); err != nil {
		return base, err
	}
	settings.Target = target

	numbers := []struct {
		name string
		text string
		min  int
		dest *int
	}{
		{"interval", form.Interval, 1, &settings.Interval},
		{"precision", form.Precision, 0, &settings.Precision},
		{"header font size", form.HeaderFontSize, 1, &settings.HeaderFontSize},
		{"time font size", form.TimeFontSize, 1, &settings.TimeFontSize},
		{"footer font size", form.FooterFontSize, 1, &settings.FooterFontSize},
		{"window width", form.WindowWidth, 1, &settings.WindowWidth},
		{"window height", form.WindowHeight, 1, &settings.WindowHeight},
		{"clock font size", form.ClockFontSize, 1, &settings.ClockMode.FontSize},
	}
	for _, number := range numbers {
		parsed, err := parseIntField(number.name, number.text, number.min)
		if err != nil {
			return base, err
		}
		*number.dest = parsed
	}

	settings.Header = form.Header
	settings.Footer = form.Footer
	settings.WindowTitle = form.WindowTitle
	settings.Unit = string(unitFromLabel(form.UnitLabel))
	settings.ClockMode.Enable = form.ClockEnable
	settings.ClockMode.Fullscreen = form.ClockFullscreen
	settings.ClockMode.ShowSecond = form.ClockShowSecond
	if err := settings.TimerConfig().Validate(); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	return settings, nil
}

func parseIntField(name, text string, min int) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidField, name, text)
	}
	if parsed < min {
		return 0, fmt.Errorf("%w: %s must be at least %d", ErrInvalidField, name, min)
	}
	return parsed, nil
}

// statusFor maps an open or save error to the catalog line shown to the user.
func statusFor(messages resources.Messages, err error) string {
	var parseErr *chrono.ParseError
	var unitErr *chrono.InvalidUnitError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, storage.ErrRead):
		return messages.FailedToReadFile
	case errors.Is(err, storage.ErrParse):
		return messages.FailedToParseConfig
	case errors.As(err, &parseErr):
		return messages.FailedToParseTime
	case errors.As(err, &unitErr):
		return messages.InvalidTimeUnit
	case errors.Is(err, storage.ErrWrite):
		return messages.FailedToWriteFile
	case errors.Is(err, storage.ErrSerialize), errors.Is(err, ErrInvalidField):
		return messages.FailedToSerialize
	default:
		return err.Error()
	}
}
