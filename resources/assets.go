package resources

import (
	"embed"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"
)

const (
	langDir = "lang/"
	iconDir = "icon/"

	// DefaultLanguage is used when no catalog matches the requested language.
	DefaultLanguage = "en"
)

//go:embed lang/*.yaml
var langFS embed.FS

//go:embed icon/*.svg
var iconFS embed.FS

var messageCache sync.Map
var iconCache sync.Map

// Messages holds the status lines shown by the config editor.
type Messages struct {
	NoSuchFile          string `yaml:"no_such_file"`
	FailedToReadFile    string `yaml:"failed_to_read_file"`
	FailedToParseConfig string `yaml:"failed_to_parse_config"`
	FailedToParseTime   string `yaml:"failed_to_parse_time"`
	InvalidTimeUnit     string `yaml:"invalid_time_unit"`
	FailedToSerialize   string `yaml:"failed_to_parse_input"`
	FailedToWriteFile   string `yaml:"failed_to_write_file"`
	FileLoaded          string `yaml:"file_loaded"`
	FileSaved           string `yaml:"file_saved"`
}

// LoadMessages returns the catalog for language, falling back to DefaultLanguage.
func LoadMessages(language string) (Messages, error) {
	if cached, ok := messageCache.Load(language); ok {
		return cached.(Messages), nil
	}

	data, err := langFS.ReadFile(langDir + language + ".yaml")
	if err != nil {
		if language == DefaultLanguage {
			return Messages{}, fmt.Errorf("load messages %s: %w", language, err)
		}
		return LoadMessages(DefaultLanguage)
	}

	var messages Messages
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return Messages{}, fmt.Errorf("parse messages %s: %w", language, err)
	}
	messageCache.Store(language, messages)
	return messages, nil
}

// MustMessages returns the catalog or panics on error.
func MustMessages(language string) Messages {
	messages, err := LoadMessages(language)
	if err != nil {
		panic(err)
	}
	return messages
}

// Icon returns the application icon.
func Icon() (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+"chronotimer.svg", &iconCache)
}

// MustIcon returns the application icon or panics on error.
func MustIcon() fyne.Resource {
	resource, err := Icon()
	if err != nil {
		panic(err)
	}
	return resource
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
