// Package compile provides downstream markup compilers that plug into
// slick.ValidateWithData as the final acceptance stage.
package compile

import (
	"fmt"
	"strings"
)

// Error reports the diagnostics of a failed compilation.
type Error struct {
	Compiler string
	Diags    []string
}

func (e *Error) Error() string {
	switch len(e.Diags) {
	case 0:
		return fmt.Sprintf("%s: compilation failed", e.Compiler)
	case 1:
		return fmt.Sprintf("%s: %s", e.Compiler, e.Diags[0])
	default:
		return fmt.Sprintf("%s: %d diagnostics:\n  %s", e.Compiler, len(e.Diags), strings.Join(e.Diags, "\n  "))
	}
}

// Diagnostics returns the individual findings.
func (e *Error) Diagnostics() []string {
	return e.Diags
}

// position formats a 1-based line and column.
func position(line, column int) string {
	return fmt.Sprintf("line %d, column %d", line, column)
}
