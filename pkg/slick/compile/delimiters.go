package compile

import (
	"fmt"
	"unicode"
)

// Delimiters is a fast structural check for Typst markup. Content blocks
// ([ ]) must balance everywhere. Parentheses, braces and string literals are
// only checked in code mode, which is entered by #ident(, #( and #{ and by
// statements such as #set and #let that run to the end of the line. In markup
// a stray quote or parenthesis is plain text. It does not produce output
// beyond its input.
type Delimiters struct{}

type openDelim struct {
	char         rune
	line, column int
	code         bool
}

// statement frames have no delimiter of their own and close at end of line
// or when an enclosing delimiter closes.
func (d openDelim) statement() bool { return d.char == 0 }

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

var statementKeywords = map[string]bool{
	"set":     true,
	"let":     true,
	"show":    true,
	"import":  true,
	"include": true,
	"if":      true,
	"for":     true,
	"while":   true,
	"return":  true,
	"context": true,
}

type delimChecker struct {
	stack        []openDelim
	diags        []string
	line, column int
}

func (c *delimChecker) push(char rune, code bool) {
	c.stack = append(c.stack, openDelim{char: char, line: c.line, column: c.column, code: code})
}

func (c *delimChecker) inCode() bool {
	return len(c.stack) > 0 && c.stack[len(c.stack)-1].code
}

func (c *delimChecker) close(r rune) {
	for len(c.stack) > 0 && c.stack[len(c.stack)-1].statement() {
		c.stack = c.stack[:len(c.stack)-1]
	}
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].char != closers[r] {
		c.diags = append(c.diags, fmt.Sprintf("%s: unexpected '%c'", position(c.line, c.column), r))
		return
	}
	c.stack = c.stack[:len(c.stack)-1]
}

// Compile returns the source unchanged when it is balanced.
func (Delimiters) Compile(source string) (string, error) {
	var (
		c          = delimChecker{line: 1}
		runes      = []rune(source)
		inString   bool
		strOpen    openDelim
		escaped    bool
		afterIdent bool
	)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			c.line++
			c.column = 0
		} else {
			c.column++
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		if r == '\n' {
			escaped = false
			afterIdent = false
			if n := len(c.stack); n > 0 && c.stack[n-1].statement() {
				c.stack = c.stack[:n-1]
			}
			continue
		}

		if c.inCode() {
			switch r {
			case '"':
				inString = true
				strOpen = openDelim{line: c.line, column: c.column}
			case '(', '{':
				c.push(r, true)
			case '[':
				c.push(r, false)
			case ')', ']', '}':
				c.close(r)
			}
			continue
		}

		if escaped {
			escaped = false
			continue
		}
		if afterIdent {
			if isIdentRune(r) {
				continue
			}
			afterIdent = false
			if r == '(' {
				c.push(r, true)
				continue
			}
		}

		switch r {
		case '\\':
			escaped = true
		case '[':
			c.push(r, false)
		case ']':
			c.close(r)
		case '#':
			if i+1 >= len(runes) {
				break
			}
			next := runes[i+1]
			switch {
			case next == '(' || next == '{':
				i++
				c.column++
				c.push(next, true)
			case unicode.IsLetter(next) || next == '_':
				j := i + 1
				for j < len(runes) && isIdentRune(runes[j]) {
					j++
				}
				if word := string(runes[i+1 : j]); statementKeywords[word] {
					c.column += j - i - 1
					i = j - 1
					c.push(0, true)
					break
				}
				afterIdent = true
			}
		}
	}

	if inString {
		c.diags = append(c.diags, fmt.Sprintf("%s: unclosed string", position(strOpen.line, strOpen.column)))
	}
	for _, d := range c.stack {
		if d.statement() {
			continue
		}
		c.diags = append(c.diags, fmt.Sprintf("%s: unclosed delimiter '%c'", position(d.line, d.column), d.char))
	}

	if len(c.diags) > 0 {
		return "", &Error{Compiler: "delimiters", Diags: c.diags}
	}
	return source, nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}
