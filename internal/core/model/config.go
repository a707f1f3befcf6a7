package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInterval  = errors.New("interval must be positive")
	ErrInvalidPrecision = errors.New("precision out of range")
	ErrInvalidMode      = errors.New("unknown mode")
)

// MaxPrecision is the most decimal digits a float64 delta carries meaningfully.
const MaxPrecision = 15

// Mode selects what the timer loop computes each tick.
type Mode string

const (
	ModeCountdown Mode = "countdown"
	ModeClock     Mode = "clock"
)

// TimerConfig is the session configuration handed to the timer loop.
type TimerConfig struct {
	Target      string
	Interval    time.Duration
	Precision   int
	Unit        string
	Mode        Mode
	ShowSeconds bool
	// ZoneOffset is subtracted from the target instant.
	ZoneOffset time.Duration
}

// Validate checks the fields the loop cannot recover from at runtime.
// Target and Unit are resolved per tick and reported as fatal results instead.
func (config TimerConfig) Validate() error {
	if config.Interval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, config.Interval)
	}
	if config.Precision < 0 || config.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPrecision, config.Precision, MaxPrecision)
	}
	switch config.Mode {
	case ModeCountdown, ModeClock:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, config.Mode)
	}
	return nil
}

// PollInterval is the cadence used for both sleeping and presentation polling.
func (config TimerConfig) PollInterval() time.Duration {
	return PollInterval(config.Interval)
}

// PollInterval returns 80% of interval.
func PollInterval(interval time.Duration) time.Duration {
	return time.Duration(float64(interval) * 0.8)
}
