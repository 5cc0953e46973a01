package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/benjaminschreck/go-slick/pkg/slick"
)

// options holds the global flags shared by every subcommand.
type options struct {
	logLevel string
	verbose  bool
	escape   escapeValue
	maxDepth int
}

// escapeValue is a pflag.Value that only accepts known escape modes.
type escapeValue struct {
	mode slick.EscapeMode
}

var _ pflag.Value = (*escapeValue)(nil)

func (v *escapeValue) String() string {
	return string(v.mode)
}

func (v *escapeValue) Set(s string) error {
	mode := slick.EscapeMode(strings.ToLower(s))
	switch mode {
	case slick.EscapeNone, slick.EscapeTypst:
		v.mode = mode
		return nil
	default:
		return fmt.Errorf("must be one of none, typst")
	}
}

func (v *escapeValue) Type() string {
	return "mode"
}

// configFromEnvironment builds an engine configuration from SLICK_*
// environment variables on top of the defaults. Unlike the library, the CLI
// escapes for Typst unless SLICK_ESCAPE says otherwise.
func configFromEnvironment() (*slick.Config, error) {
	config := slick.DefaultConfig()
	config.Escape = slick.EscapeTypst

	if level := os.Getenv("SLICK_LOG_LEVEL"); level != "" {
		config.LogLevel = strings.ToLower(level)
	}

	if depth := os.Getenv("SLICK_MAX_NESTING_DEPTH"); depth != "" {
		n, err := strconv.Atoi(depth)
		if err != nil {
			return nil, fmt.Errorf("SLICK_MAX_NESTING_DEPTH: %w", err)
		}
		config.MaxNestingDepth = n
	}

	if escape := os.Getenv("SLICK_ESCAPE"); escape != "" {
		config.Escape = slick.EscapeMode(strings.ToLower(escape))
	}

	return config, nil
}

// engine resolves the effective configuration for cmd. Explicit flags win
// over the environment.
func (o *options) engine(cmd *cobra.Command) (*slick.Engine, error) {
	config, err := configFromEnvironment()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = o.logLevel
	}
	if o.verbose {
		config.LogLevel = "debug"
	}
	if flags.Changed("escape") {
		config.Escape = o.escape.mode
	}
	if flags.Changed("max-depth") {
		config.MaxNestingDepth = o.maxDepth
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config.LogOutput = cmd.ErrOrStderr()

	return slick.NewWithConfig(config), nil
}
