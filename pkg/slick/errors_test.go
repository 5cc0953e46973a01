package slick

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"unclosed", newUnclosedTag("each", 12), "Unclosed tag 'each' at position 12"},
		{"mismatched closer", newUnexpectedClosingTag("if", "each", 3), "Expected closing tag 'if', found 'each'"},
		{"stray closer", newUnexpectedClosingTag("", "if", 3), "Unexpected closing tag '/if' at position 3"},
		{"invalid syntax", newInvalidSyntax(7, "Unknown block type: %s", "with"), "Invalid syntax at position 7: Unknown block type: with"},
		{"empty name", newEmptyVariableName(2), "Empty variable name at position 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorKindString(t *testing.T) {
	kinds := map[ParseErrorKind]string{
		UnclosedTag:          "UnclosedTag",
		UnexpectedClosingTag: "UnexpectedClosingTag",
		InvalidSyntax:        "InvalidSyntax",
		EmptyVariableName:    "EmptyVariableName",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestIsParseError(t *testing.T) {
	_, err := Parse("{{#if a}}")
	wrapped := fmt.Errorf("loading sheet: %w", err)

	if !IsParseError(wrapped) {
		t.Error("IsParseError() should see through wrapping")
	}
	if IsParseError(errors.New("other")) {
		t.Error("IsParseError() matched a plain error")
	}

	_, err = Validate("")
	if !IsValidationError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsValidationError() should see through wrapping")
	}
	if IsParseError(err) {
		t.Error("an empty-template error carries no parse error")
	}
}

func TestLineColumn(t *testing.T) {
	src := "line one\n{{#if a}}\nnaïve {{x"

	tests := []struct {
		name     string
		pos      int
		wantLine int
		wantCol  int
	}{
		{"start", 0, 1, 1},
		{"first line", 5, 1, 6},
		{"second line", 9, 2, 1},
		{"third line after multibyte rune", strings.Index(src, "{{x"), 3, 7},
		{"past end", len(src) + 10, 3, 10},
		{"negative", -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := LineColumn(src, tt.pos)
			if line != tt.wantLine || col != tt.wantCol {
				t.Errorf("LineColumn(%d) = %d:%d, want %d:%d", tt.pos, line, col, tt.wantLine, tt.wantCol)
			}
		})
	}
}

func TestValidationErrorFormatting(t *testing.T) {
	single := &ValidationError{Issues: []ValidationIssue{{Code: IssueCodeEmptyTemplate}}}
	if got := single.Error(); got != "validation error: template cannot be empty" {
		t.Errorf("single Error() = %q", got)
	}

	multi := &ValidationError{Issues: []ValidationIssue{
		{Code: IssueCodeSyntaxError, Parse: newUnclosedTag("if", 0)},
		{Code: IssueCodeEmptyTemplate},
	}}
	want := "2 validation issues:\n  Template parse error: Unclosed tag 'if' at position 0\n  template cannot be empty"
	if got := multi.Error(); got != want {
		t.Errorf("multi Error() = %q, want %q", got, want)
	}
	if !errors.Is(multi, ErrUnclosedTag) || !errors.Is(multi, ErrEmptyTemplate) {
		t.Error("ValidationError should unwrap to every issue")
	}
}

func TestCheckErrorFormatting(t *testing.T) {
	tests := []struct {
		err  *CheckError
		want string
	}{
		{&CheckError{Stage: StageRender}, "render failed"},
		{&CheckError{Stage: StageCompile, Messages: []string{"x"}}, "compile failed: x"},
		{&CheckError{Stage: StageCompile, Messages: []string{"x", "y"}}, "compile failed with 2 errors:\n  x\n  y"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
