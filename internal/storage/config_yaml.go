package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chronotimer/internal/core/model"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "config.yaml"

var (
	ErrRead      = errors.New("read config file")
	ErrParse     = errors.New("parse config file")
	ErrWrite     = errors.New("write config file")
	ErrSerialize = errors.New("serialize config")
)

type yamlClockMode struct {
	Enable     bool `yaml:"enable"`
	Fullscreen bool `yaml:"fullscreen"`
	ShowSecond bool `yaml:"showsecond"`
	FontSize   int  `yaml:"fontsize"`
}

type yamlConfig struct {
	Target         string        `yaml:"target"`
	Interval       int           `yaml:"interval"`
	Precision      int           `yaml:"precision"`
	Header         string        `yaml:"header"`
	Footer         string        `yaml:"footer"`
	HeaderFontSize int           `yaml:"header_fontsize"`
	TimeFontSize   int           `yaml:"time_fontsize"`
	FooterFontSize int           `yaml:"footer_fontsize"`
	WindowTitle    string        `yaml:"window_title"`
	WindowWidth    int           `yaml:"window_width"`
	WindowHeight   int           `yaml:"window_height"`
	Unit           string        `yaml:"unit"`
	ClockMode      yamlClockMode `yaml:"clockmode_settings"`
	// Omitted unless it differs from the default offset.
	UTCOffsetMinutes *int `yaml:"utc_offset_minutes,omitempty"`
}

// Load reads settings from path. Keys missing from the file keep their defaults.
func Load(path string) (model.Settings, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return model.DefaultSettings(), fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(rawData)
}

// Decode parses YAML settings and validates the numeric fields.
func Decode(rawData []byte) (model.Settings, error) {
	defaults := model.DefaultSettings()
	fileData := toYaml(defaults)
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrParse, err)
	}

	settings := fromYaml(fileData, defaults)
	if err := settings.TimerConfig().Validate(); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return settings, nil
}

// Encode serializes settings to YAML.
func Encode(settings model.Settings) ([]byte, error) {
	serialized, err := yaml.Marshal(toYaml(settings))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialize, err)
	}
	return serialized, nil
}

// Save writes settings to path, creating parent directories.
func Save(path string, settings model.Settings) error {
	serialized, err := Encode(settings)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create config directory: %w", ErrWrite, err)
		}
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// LoadOrCreate loads path, first writing the default settings if it does not exist.
// created reports whether the defaults were written.
func LoadOrCreate(path string) (settings model.Settings, created bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		if err := Save(path, model.DefaultSettings()); err != nil {
			return model.DefaultSettings(), false, err
		}
		created = true
	}

	settings, err = Load(path)
	return settings, created, err
}

func toYaml(settings model.Settings) yamlConfig {
	fileData := yamlConfig{
		Target:         settings.Target,
		Interval:       settings.Interval,
		Precision:      settings.Precision,
		Header:         settings.Header,
		Footer:         settings.Footer,
		HeaderFontSize: settings.HeaderFontSize,
		TimeFontSize:   settings.TimeFontSize,
		FooterFontSize: settings.FooterFontSize,
		WindowTitle:    settings.WindowTitle,
		WindowWidth:    settings.WindowWidth,
		WindowHeight:   settings.WindowHeight,
		Unit:           settings.Unit,
		ClockMode: yamlClockMode{
			Enable:     settings.ClockMode.Enable,
			Fullscreen: settings.ClockMode.Fullscreen,
			ShowSecond: settings.ClockMode.ShowSecond,
			FontSize:   settings.ClockMode.FontSize,
		},
	}
	if settings.UTCOffsetMinutes != model.DefaultSettings().UTCOffsetMinutes {
		offset := settings.UTCOffsetMinutes
		fileData.UTCOffsetMinutes = &offset
	}
	return fileData
}

func fromYaml(fileData yamlConfig, defaults model.Settings) model.Settings {
	settings := model.Settings{
		Target:         fileData.Target,
		Interval:       fileData.Interval,
		Precision:      fileData.Precision,
		Header:         fileData.Header,
		Footer:         fileData.Footer,
		HeaderFontSize: fileData.HeaderFontSize,
		TimeFontSize:   fileData.TimeFontSize,
		FooterFontSize: fileData.FooterFontSize,
		WindowTitle:    fileData.WindowTitle,
		WindowWidth:    fileData.WindowWidth,
		WindowHeight:   fileData.WindowHeight,
		Unit:           fileData.Unit,
		ClockMode: model.ClockModeSettings{
			Enable:     fileData.ClockMode.Enable,
			Fullscreen: fileData.ClockMode.Fullscreen,
			ShowSecond: fileData.ClockMode.ShowSecond,
			FontSize:   fileData.ClockMode.FontSize,
		},
		UTCOffsetMinutes: defaults.UTCOffsetMinutes,
	}
	if fileData.UTCOffsetMinutes != nil {
		settings.UTCOffsetMinutes = *fileData.UTCOffsetMinutes
	}
	return settings
}
