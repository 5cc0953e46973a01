package slick

import (
	"strings"
	"unicode"
)

// TokenType represents the type of a template token
type TokenType int

const (
	TokenText TokenType = iota
	TokenVariable
	TokenIf
	TokenEach
	TokenElse
	TokenEnd
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenVariable:
		return "Variable"
	case TokenIf:
		return "If"
	case TokenEach:
		return "Each"
	case TokenElse:
		return "Else"
	case TokenEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Token represents a scanned template token.
//
// For TokenText Value holds the literal text. For TokenEnd it holds the block
// kind being closed ("if", "each", ...). Path and Default are set for
// variables and block openers.
type Token struct {
	Type    TokenType
	Value   string
	Path    []string
	Default *string
	Pos     int
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// lexer scans template source on demand so that the parser can report the
// first error in source order.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

// next returns the next token. ok is false at end of input.
func (l *lexer) next() (tok Token, ok bool, err error) {
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	if !strings.HasPrefix(l.input[l.pos:], openDelim) {
		start := l.pos
		idx := strings.Index(l.input[l.pos:], openDelim)
		if idx == -1 {
			l.pos = len(l.input)
		} else {
			l.pos += idx
		}
		return Token{Type: TokenText, Value: l.input[start:l.pos], Pos: start}, true, nil
	}

	start := l.pos
	end := findTagEnd(l.input, start+len(openDelim))
	if end == -1 {
		return Token{}, false, newInvalidSyntax(start, "Expected '}}' to close tag")
	}
	l.pos = end + len(closeDelim)

	tok, perr := classifyTag(l.input, start, start+len(openDelim), end)
	if perr != nil {
		return Token{}, false, perr
	}
	return tok, true, nil
}

// findTagEnd returns the index of the "}}" closing a tag whose content starts
// at from, or -1. Quoted strings after a '|' may contain braces.
func findTagEnd(input string, from int) int {
	inFilter := false
	for i := from; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '|':
			inFilter = true
		case inFilter && (c == '\'' || c == '"'):
			j := strings.IndexByte(input[i+1:], c)
			if j == -1 {
				return -1
			}
			i += j + 1
		case c == '}' && i+1 < len(input) && input[i+1] == '}':
			return i
		}
	}
	return -1
}

// classifyTag determines the token for the tag content input[from:to].
// tagStart is the offset of the opening "{{".
func classifyTag(input string, tagStart, from, to int) (Token, *ParseError) {
	offset := from + leadingSpace(input[from:to])
	content := strings.TrimRightFunc(input[offset:to], unicode.IsSpace)

	switch {
	case content == "":
		return Token{}, newEmptyVariableName(offset)
	case content[0] == '#':
		return classifyBlock(content[1:], tagStart, offset+1)
	case content[0] == '/':
		name := strings.TrimSpace(content[1:])
		if name == "" || strings.IndexFunc(name, unicode.IsSpace) != -1 {
			return Token{}, newInvalidSyntax(tagStart, "malformed closing tag '%s'", content)
		}
		return Token{Type: TokenEnd, Value: name, Pos: tagStart}, nil
	case content == "else":
		return Token{Type: TokenElse, Pos: tagStart}, nil
	default:
		return classifyVariable(content, tagStart, offset)
	}
}

func classifyBlock(content string, tagStart, offset int) (Token, *ParseError) {
	skip := leadingSpace(content)
	content = content[skip:]
	offset += skip

	kindEnd := strings.IndexFunc(content, unicode.IsSpace)
	if kindEnd == -1 {
		kindEnd = len(content)
	}
	kind := content[:kindEnd]

	var typ TokenType
	switch kind {
	case "if":
		typ = TokenIf
	case "each":
		typ = TokenEach
	case "":
		return Token{}, newInvalidSyntax(offset, "missing block type after '#'")
	default:
		return Token{}, newInvalidSyntax(offset, "Unknown block type: %s", kind)
	}

	rest := content[kindEnd:]
	pathOffset := offset + kindEnd + leadingSpace(rest)
	arg := strings.TrimSpace(rest)
	if i := strings.IndexFunc(arg, unicode.IsSpace); i != -1 {
		return Token{}, newInvalidSyntax(pathOffset+i, "Expected '}}' after block tag '%s'", kind)
	}

	path := splitPath(arg)
	if len(path) == 0 {
		return Token{}, newEmptyVariableName(pathOffset)
	}
	return Token{Type: typ, Value: arg, Path: path, Pos: tagStart}, nil
}

func classifyVariable(content string, tagStart, offset int) (Token, *ParseError) {
	pathEnd := strings.IndexFunc(content, func(r rune) bool {
		return r == '|' || unicode.IsSpace(r)
	})
	if pathEnd == -1 {
		pathEnd = len(content)
	}

	path := splitPath(content[:pathEnd])
	if len(path) == 0 {
		return Token{}, newEmptyVariableName(offset)
	}

	tok := Token{Type: TokenVariable, Value: content[:pathEnd], Path: path, Pos: tagStart}

	rest := content[pathEnd:]
	restOffset := offset + pathEnd + leadingSpace(rest)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return tok, nil
	}
	if rest[0] != '|' {
		return Token{}, newInvalidSyntax(restOffset, "Expected '}}' to close variable tag")
	}

	def, perr := parseDefaultFilter(rest[1:], restOffset+1)
	if perr != nil {
		return Token{}, perr
	}
	tok.Default = &def
	return tok, nil
}

// parseDefaultFilter parses `default: 'value'`, the only supported filter.
func parseDefaultFilter(filter string, offset int) (string, *ParseError) {
	skip := leadingSpace(filter)
	filter = filter[skip:]
	offset += skip

	const name = "default:"
	if !strings.HasPrefix(filter, name) {
		word := filter
		if i := strings.IndexAny(word, ": \t\n"); i != -1 {
			word = word[:i]
		}
		return "", newInvalidSyntax(offset, "unsupported filter '%s' (only default is supported)", word)
	}

	value := filter[len(name):]
	valueOffset := offset + len(name) + leadingSpace(value)
	value = strings.TrimLeftFunc(value, unicode.IsSpace)

	if value == "" || (value[0] != '\'' && value[0] != '"') {
		return "", newInvalidSyntax(valueOffset, "default value must be a quoted string")
	}
	quote := value[0]
	closeIdx := strings.IndexByte(value[1:], quote)
	if closeIdx == -1 {
		return "", newInvalidSyntax(valueOffset, "unterminated default value")
	}
	if trailing := strings.TrimSpace(value[closeIdx+2:]); trailing != "" {
		return "", newInvalidSyntax(valueOffset+closeIdx+2, "unexpected '%s' after default value", trailing)
	}
	return value[1 : closeIdx+1], nil
}

// splitPath splits a dotted path, dropping empty segments.
func splitPath(s string) []string {
	var path []string
	for _, seg := range strings.Split(s, ".") {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// Tokenize scans a whole template into tokens.
// This is a utility function for debugging and analysis
func Tokenize(input string) ([]Token, error) {
	l := newLexer(input)
	var tokens []Token
	for {
		tok, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
