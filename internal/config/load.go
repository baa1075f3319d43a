package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/castlebay-dev/stackpilot/internal/messages"
	"github.com/castlebay-dev/stackpilot/internal/templates"
)

// ErrConfigValidation is a sentinel that wraps settings validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to pick the right exit class.
var ErrConfigValidation = errors.New("settings validation failed")

// templateName is the embedded default settings template.
const templateName = "config.toml"

// Load reads .stackpilot/config.toml and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// LoadTemplate returns the embedded default settings as a validated Config.
// It never touches the filesystem.
func LoadTemplate() (*Config, error) {
	data, err := templates.Read(templateName)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigFailedReadTemplate, err)
	}
	return Parse(data, "template "+templateName)
}

// Parse parses and validates settings TOML data.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with unknown-field rejection to
// catch keys toml.Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// ParseLenient parses settings without validation. Returns an error only on
// TOML syntax errors, making it suitable for doctor checks that need to read
// partially valid settings.
func ParseLenient(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	return &cfg, nil
}

// LoadLenient reads settings without validation.
func LoadLenient(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseLenient(data, path)
}
