package slick

import (
	"errors"
	"fmt"
	"io"
)

// EscapeMode selects how substituted values are escaped for the target markup.
type EscapeMode string

const (
	EscapeNone  EscapeMode = "none"
	EscapeTypst EscapeMode = "typst"
)

// Config contains all configuration options for an Engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `json:"log_level" yaml:"log_level"`
	// LogOutput receives log lines. nil discards them.
	LogOutput io.Writer `json:"-" yaml:"-"`
	// MaxNestingDepth bounds how deeply #if/#each blocks may nest
	MaxNestingDepth int `json:"max_nesting_depth" yaml:"max_nesting_depth"`
	// Escape selects the escaper applied to substituted values. The default,
	// EscapeNone, substitutes data verbatim; the slick CLI defaults to
	// EscapeTypst.
	Escape EscapeMode `json:"escape" yaml:"escape"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		MaxNestingDepth: 64,
		Escape:          EscapeNone,
	}
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	if config.MaxNestingDepth == 0 {
		config.MaxNestingDepth = defaults.MaxNestingDepth
	}

	if config.Escape == "" {
		config.Escape = defaults.Escape
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxNestingDepth <= 0 {
		return errors.New("max nesting depth must be positive")
	}

	switch c.Escape {
	case EscapeNone, EscapeTypst:
	default:
		return fmt.Errorf("invalid escape mode: %q", c.Escape)
	}

	return nil
}
