// Package config loads the gen CLI configuration.
package config

import (
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/gen/errors"
)

const (
	DefaultLogLevel = "warn"
	DefaultOutput   = "text"
)

// Allowed values for validated settings.
var (
	allowedLogLevels = []string{"debug", "info", "warn", "error"}
	allowedOutputs   = []string{"text", "json"}
)

// Config holds the CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log-level" yaml:"log-level" json:"log-level"`

	// Output selects text or json rendering of results and errors.
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Cargo overrides the cargo executable. Empty uses the built-in default.
	Cargo string `mapstructure:"cargo" yaml:"cargo" json:"cargo"`

	// Workspace is the directory cargo metadata runs in. Empty uses the
	// working directory.
	Workspace string `mapstructure:"workspace" yaml:"workspace" json:"workspace"`
}

// DefaultConfig returns a config with all default values applied.
func DefaultConfig() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Output:   DefaultOutput,
	}
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if !slices.Contains(allowedLogLevels, c.LogLevel) {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "log-level must be one of %v, got %q", allowedLogLevels, c.LogLevel),
			"key", "log-level")
	}
	if !slices.Contains(allowedOutputs, c.Output) {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidConfig, "output must be one of %v, got %q", allowedOutputs, c.Output),
			"key", "output")
	}
	return nil
}

// YAML renders the config as a YAML document.
func (c Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "marshal config")
	}
	return string(data), nil
}
