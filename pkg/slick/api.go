package slick

import (
	"github.com/benjaminschreck/go-slick/pkg/slick/escape"
)

// Engine parses, renders and validates templates. An Engine is immutable
// after construction and safe for concurrent use; every call builds its own
// AST and render state.
type Engine struct {
	config  *Config
	logger  *Logger
	escaper func(string) string
}

// New creates a new engine with default configuration.
func New() *Engine {
	return NewWithConfig(nil)
}

// NewWithConfig creates a new engine with custom configuration. Unset fields
// take their defaults.
func NewWithConfig(config *Config) *Engine {
	config = NewConfigWithDefaults(config)

	e := &Engine{
		config: config,
		logger: NewLogger(config.LogOutput, ParseLogLevel(config.LogLevel)),
	}
	switch config.Escape {
	case EscapeTypst:
		e.escaper = escape.Typst
	default:
		e.escaper = escape.None
	}
	return e
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *Logger {
	return e.logger
}

// Parse converts template source into an AST. It returns the first
// *ParseError encountered and no partial AST.
func (e *Engine) Parse(template string) ([]Node, error) {
	nodes, err := parseTemplate(template, e.config.MaxNestingDepth)
	if err != nil {
		e.logger.WithField("error", err).Debug("parse failed")
		return nil, err
	}
	if e.logger.IsDebugMode() {
		e.logger.WithFields(Fields{
			"input_length": len(template),
			"node_count":   len(nodes),
		}).Debug("parse complete")
	}
	return nodes, nil
}

// Render parses the template and evaluates it against data. The only error
// it reports is a *ParseError: missing variables render as their default or
// as empty text, and non-array loop targets produce no output.
func (e *Engine) Render(template string, data *Data) (string, error) {
	nodes, err := e.Parse(template)
	if err != nil {
		return "", err
	}
	return e.RenderNodes(nodes, data), nil
}

// RenderNodes evaluates an already parsed AST against data.
func (e *Engine) RenderNodes(nodes []Node, data *Data) string {
	r := &renderer{
		data:    data,
		escaper: e.escaper,
		logger:  e.logger,
	}
	renderNodes(nodes, r, nil)

	if e.logger.IsDebugMode() {
		e.logger.WithFields(Fields{
			"output_length": r.out.Len(),
			"misses":        r.misses,
		}).Debug("render complete")
	}
	return r.out.String()
}

var defaultEngine = New()

// Parse parses a template with the default engine.
func Parse(template string) ([]Node, error) {
	return defaultEngine.Parse(template)
}

// Render renders a template with the default engine.
func Render(template string, data *Data) (string, error) {
	return defaultEngine.Render(template, data)
}

// Validate statically validates a template with the default engine.
func Validate(template string) ([]string, error) {
	return defaultEngine.Validate(template)
}

// ValidateWithData runs the full acceptance gate with the default engine.
func ValidateWithData(template string, data *Data, compiler Compiler) error {
	return defaultEngine.ValidateWithData(template, data, compiler)
}
