package model

import (
	"time"

	"chronotimer/internal/core/chrono"
)

// ClockModeSettings configures the live clock display.
type ClockModeSettings struct {
	Enable     bool
	Fullscreen bool
	ShowSecond bool
	FontSize   int
}

// Settings is the full persisted record shared by the display and the editor.
type Settings struct {
	Target    string
	Interval  int
	Precision int

	Header         string
	Footer         string
	HeaderFontSize int
	TimeFontSize   int
	FooterFontSize int

	WindowTitle  string
	WindowWidth  int
	WindowHeight int

	Unit string

	ClockMode ClockModeSettings

	UTCOffsetMinutes int
}

// DefaultSettings returns the record written when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Target:         "2025-11-22 00:00:00",
		Interval:       100,
		Precision:      5,
		Header:         "Header",
		Footer:         "Footer",
		HeaderFontSize: 50,
		TimeFontSize:   50,
		FooterFontSize: 50,
		WindowTitle:    "ChronoTimer",
		WindowWidth:    200,
		WindowHeight:   250,
		Unit:           string(chrono.UnitDay),
		ClockMode: ClockModeSettings{
			Enable:     false,
			Fullscreen: false,
			ShowSecond: true,
			FontSize:   100,
		},
		UTCOffsetMinutes: int(chrono.DefaultZoneOffset / time.Minute),
	}
}

// Mode returns the display mode selected by the settings.
func (settings Settings) Mode() Mode {
	if settings.ClockMode.Enable {
		return ModeClock
	}
	return ModeCountdown
}

// TimerConfig converts settings to the timer loop configuration.
func (settings Settings) TimerConfig() TimerConfig {
	return TimerConfig{
		Target:      settings.Target,
		Interval:    time.Duration(settings.Interval) * time.Millisecond,
		Precision:   settings.Precision,
		Unit:        settings.Unit,
		Mode:        settings.Mode(),
		ShowSeconds: settings.ClockMode.ShowSecond,
		ZoneOffset:  time.Duration(settings.UTCOffsetMinutes) * time.Minute,
	}
}
