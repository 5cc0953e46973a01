package slick

import (
	"errors"
	"fmt"
	"strings"
)

// ParseErrorKind classifies a template syntax failure.
type ParseErrorKind int

const (
	UnclosedTag ParseErrorKind = iota
	UnexpectedClosingTag
	InvalidSyntax
	EmptyVariableName
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnclosedTag:
		return "UnclosedTag"
	case UnexpectedClosingTag:
		return "UnexpectedClosingTag"
	case InvalidSyntax:
		return "InvalidSyntax"
	case EmptyVariableName:
		return "EmptyVariableName"
	default:
		return "Unknown"
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrUnclosedTag          = errors.New("unclosed tag")
	ErrUnexpectedClosingTag = errors.New("unexpected closing tag")
	ErrInvalidSyntax        = errors.New("invalid syntax")
	ErrEmptyVariableName    = errors.New("empty variable name")
	ErrEmptyTemplate        = errors.New("template cannot be empty")
)

// ParseError represents a fatal error during template parsing.
// Position is a byte offset into the template source.
type ParseError struct {
	Kind     ParseErrorKind
	Tag      string // UnclosedTag: the block kind left open
	Expected string // UnexpectedClosingTag: the innermost open block, empty at top level
	Found    string // UnexpectedClosingTag: the closer that was seen
	Message  string // InvalidSyntax
	Position int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnclosedTag:
		return fmt.Sprintf("Unclosed tag '%s' at position %d", e.Tag, e.Position)
	case UnexpectedClosingTag:
		if e.Expected == "" {
			return fmt.Sprintf("Unexpected closing tag '/%s' at position %d", e.Found, e.Position)
		}
		return fmt.Sprintf("Expected closing tag '%s', found '%s'", e.Expected, e.Found)
	case InvalidSyntax:
		return fmt.Sprintf("Invalid syntax at position %d: %s", e.Position, e.Message)
	case EmptyVariableName:
		return fmt.Sprintf("Empty variable name at position %d", e.Position)
	default:
		return fmt.Sprintf("parse error at position %d", e.Position)
	}
}

// Unwrap returns the sentinel matching the error kind.
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case UnclosedTag:
		return ErrUnclosedTag
	case UnexpectedClosingTag:
		return ErrUnexpectedClosingTag
	case InvalidSyntax:
		return ErrInvalidSyntax
	case EmptyVariableName:
		return ErrEmptyVariableName
	default:
		return nil
	}
}

func newUnclosedTag(tag string, pos int) *ParseError {
	return &ParseError{Kind: UnclosedTag, Tag: tag, Position: pos}
}

func newUnexpectedClosingTag(expected, found string, pos int) *ParseError {
	return &ParseError{Kind: UnexpectedClosingTag, Expected: expected, Found: found, Position: pos}
}

func newInvalidSyntax(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: InvalidSyntax, Message: fmt.Sprintf(format, args...), Position: pos}
}

func newEmptyVariableName(pos int) *ParseError {
	return &ParseError{Kind: EmptyVariableName, Position: pos}
}

// LineColumn converts a byte offset in src into a 1-based line and column.
// Columns count runes, not bytes.
func LineColumn(src string, pos int) (line, column int) {
	if pos > len(src) {
		pos = len(src)
	}
	if pos < 0 {
		pos = 0
	}
	line, column = 1, 1
	for _, r := range src[:pos] {
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// IssueCode identifies the category of a validation issue.
type IssueCode string

const (
	IssueCodeSyntaxError   IssueCode = "SYNTAX_ERROR"
	IssueCodeEmptyTemplate IssueCode = "EMPTY_TEMPLATE"
)

// ValidationIssue represents a single blocking validation problem
type ValidationIssue struct {
	Code  IssueCode
	Parse *ParseError // set for SYNTAX_ERROR
}

func (i ValidationIssue) String() string {
	switch i.Code {
	case IssueCodeSyntaxError:
		if i.Parse != nil {
			return "Template parse error: " + i.Parse.Error()
		}
		return "Template parse error"
	case IssueCodeEmptyTemplate:
		return ErrEmptyTemplate.Error()
	default:
		return string(i.Code)
	}
}

// ValidationError represents multiple validation issues. Any issue rejects the template.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return "validation error: " + e.Issues[0].String()
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, "  "+issue.String())
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the underlying parse error or ErrEmptyTemplate.
func (e *ValidationError) Unwrap() []error {
	var errs []error
	for _, issue := range e.Issues {
		switch {
		case issue.Parse != nil:
			errs = append(errs, issue.Parse)
		case issue.Code == IssueCodeEmptyTemplate:
			errs = append(errs, ErrEmptyTemplate)
		}
	}
	return errs
}

// Messages returns the human-readable form of every issue.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		out[i] = issue.String()
	}
	return out
}

// CheckStage names the step of ValidateWithData that rejected a template.
type CheckStage string

const (
	StageValidate CheckStage = "validate"
	StageRender   CheckStage = "render"
	StageCompile  CheckStage = "compile"
)

// CheckError is returned by ValidateWithData. Messages are suitable for showing
// to a template author verbatim.
type CheckError struct {
	Stage    CheckStage
	Messages []string
	Cause    error
}

func (e *CheckError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s failed", e.Stage)
	}
	if len(e.Messages) == 1 {
		return fmt.Sprintf("%s failed: %s", e.Stage, e.Messages[0])
	}
	return fmt.Sprintf("%s failed with %d errors:\n  %s", e.Stage, len(e.Messages), strings.Join(e.Messages, "\n  "))
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// IsParseError checks if an error is, or wraps, a parse error
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsValidationError checks if an error is, or wraps, a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
