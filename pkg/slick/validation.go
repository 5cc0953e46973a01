package slick

import (
	"errors"
	"strings"
)

// knownVariables is the static set of paths the engine understands. Paths
// outside it produce warnings, not errors: templates may reference metadata
// keys the checker cannot know about.
var knownVariables = func() map[string]struct{} {
	paths := []string{
		// Top-level fields
		"title",
		"subtitle",
		"body",
		// Collections
		"sections",
		"features",
		"stats",
		"images",
		// Style fields, in both spellings
		"style",
		"style.primaryColor",
		"style.primary_color",
		"style.accentColor",
		"style.accent_color",
		"style.fontFamily",
		"style.font_family",
		// Contact fields
		"contact",
		"contact.email",
		"contact.phone",
		"contact.website",
		"contact.address",
		// Array lengths
		"sections.length",
		"features.length",
		"stats.length",
		// Loop-local names
		"this",
		"@index",
		// Section fields
		"heading",
		"content",
		"type",
		"items",
		"rows",
		"columns",
		// Stat fields
		"value",
		"label",
		"color",
	}
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}()

// IsKnownVariable reports whether a dotted path is in the static whitelist.
// Any images.<name> reference is known.
func IsKnownVariable(path string) bool {
	if _, ok := knownVariables[path]; ok {
		return true
	}
	name, ok := strings.CutPrefix(path, "images.")
	return ok && name != "" && !strings.Contains(name, ".")
}

// Compiler is the downstream markup compiler used by ValidateWithData.
// Errors may implement Diagnostics() []string to report several findings.
type Compiler interface {
	Compile(source string) (string, error)
}

// CompileFunc adapts a function to the Compiler interface.
type CompileFunc func(source string) (string, error)

func (f CompileFunc) Compile(source string) (string, error) {
	return f(source)
}

// Validate checks template syntax and referenced variables without rendering.
// Blocking problems are returned as a *ValidationError; unknown variables are
// returned as sorted warnings of the form "unknown variable: <path>".
func (e *Engine) Validate(template string) ([]string, error) {
	nodes, err := e.Parse(template)
	if err != nil {
		var pe *ParseError
		errors.As(err, &pe)
		return nil, &ValidationError{Issues: []ValidationIssue{{Code: IssueCodeSyntaxError, Parse: pe}}}
	}

	if strings.TrimSpace(template) == "" {
		return nil, &ValidationError{Issues: []ValidationIssue{{Code: IssueCodeEmptyTemplate}}}
	}

	var warnings []string
	for _, path := range ExtractVariables(nodes) {
		if IsKnownVariable(path) {
			continue
		}
		warnings = append(warnings, "unknown variable: "+path)
	}

	if len(warnings) > 0 && e.logger.IsDebugMode() {
		e.logger.WithField("warnings", len(warnings)).Debug("template references unknown variables")
	}
	return warnings, nil
}

// ValidateWithData is the full acceptance gate run before a template change is
// committed: static validation, a render against data, then the compiler.
// A nil compiler skips the last stage. Failures are returned as *CheckError.
func (e *Engine) ValidateWithData(template string, data *Data, compiler Compiler) error {
	if _, err := e.Validate(template); err != nil {
		var ve *ValidationError
		messages := []string{err.Error()}
		if errors.As(err, &ve) {
			messages = ve.Messages()
		}
		return &CheckError{Stage: StageValidate, Messages: messages, Cause: err}
	}

	rendered, err := e.Render(template, data)
	if err != nil {
		return &CheckError{Stage: StageRender, Messages: []string{err.Error()}, Cause: err}
	}

	if compiler == nil {
		return nil
	}
	if _, err := compiler.Compile(rendered); err != nil {
		return &CheckError{Stage: StageCompile, Messages: diagnosticsOf(err), Cause: err}
	}
	return nil
}

func diagnosticsOf(err error) []string {
	var d interface{ Diagnostics() []string }
	if errors.As(err, &d) {
		if diags := d.Diagnostics(); len(diags) > 0 {
			return diags
		}
	}
	return []string{err.Error()}
}
