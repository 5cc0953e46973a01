package slick

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a node of the parsed template AST. The set of node types is closed:
// TextNode, VariableNode, ConditionalNode and LoopNode.
type Node interface {
	String() string
	render(r *renderer, loop *LoopContext)
}

// TextNode represents literal template text
type TextNode struct {
	Content string
}

func (n *TextNode) String() string {
	return fmt.Sprintf("Text(%q)", n.Content)
}

// VariableNode represents {{path}} or {{path | default: 'value'}}
type VariableNode struct {
	Path    []string
	Default *string
}

func (n *VariableNode) String() string {
	if n.Default != nil {
		return fmt.Sprintf("Variable(%s | default %q)", joinPath(n.Path), *n.Default)
	}
	return fmt.Sprintf("Variable(%s)", joinPath(n.Path))
}

// ConditionalNode represents {{#if path}}...{{else}}...{{/if}}
type ConditionalNode struct {
	Path []string
	Then []Node
	Else []Node
}

func (n *ConditionalNode) String() string {
	if len(n.Else) > 0 {
		return fmt.Sprintf("If(%s) Else", joinPath(n.Path))
	}
	return fmt.Sprintf("If(%s)", joinPath(n.Path))
}

// LoopNode represents {{#each path}}...{{/each}}
type LoopNode struct {
	Path []string
	Body []Node
}

func (n *LoopNode) String() string {
	return fmt.Sprintf("Each(%s)", joinPath(n.Path))
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}

// parser builds the AST from tokens pulled off the lexer. Each block kind has
// its own parse function; they recurse through parseBody.
type parser struct {
	lex      *lexer
	depth    int
	maxDepth int
}

// blockFrame describes the block whose body is being parsed.
type blockFrame int

const (
	frameTop blockFrame = iota
	frameIfThen
	frameIfElse
	frameEach
)

func (f blockFrame) kind() string {
	switch f {
	case frameIfThen, frameIfElse:
		return "if"
	case frameEach:
		return "each"
	default:
		return ""
	}
}

func parseTemplate(input string, maxDepth int) ([]Node, error) {
	p := &parser{lex: newLexer(input), maxDepth: maxDepth}
	nodes, _, err := p.parseBody(frameTop)
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

// parseBody parses nodes until the token that ends the given frame. A nil
// stop token means the input ended first.
func (p *parser) parseBody(frame blockFrame) ([]Node, *Token, error) {
	var body []Node

	for {
		tok, ok, err := p.lex.next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return body, nil, nil
		}

		switch tok.Type {
		case TokenText:
			if tok.Value != "" {
				body = append(body, &TextNode{Content: tok.Value})
			}

		case TokenVariable:
			body = append(body, &VariableNode{Path: tok.Path, Default: tok.Default})

		case TokenIf:
			ifNode, err := p.parseIf(tok)
			if err != nil {
				return nil, nil, err
			}
			body = append(body, ifNode)

		case TokenEach:
			loopNode, err := p.parseEach(tok)
			if err != nil {
				return nil, nil, err
			}
			body = append(body, loopNode)

		case TokenElse:
			switch frame {
			case frameIfThen:
				return body, &tok, nil
			case frameIfElse:
				return nil, nil, newInvalidSyntax(tok.Pos, "duplicate {{else}} in if block")
			case frameEach:
				return nil, nil, newInvalidSyntax(tok.Pos, "{{else}} is not supported inside each blocks")
			default:
				return nil, nil, newInvalidSyntax(tok.Pos, "{{else}} outside of an if block")
			}

		case TokenEnd:
			if tok.Value != frame.kind() {
				return nil, nil, newUnexpectedClosingTag(frame.kind(), tok.Value, tok.Pos)
			}
			return body, &tok, nil

		default:
			return nil, nil, newInvalidSyntax(tok.Pos, "unexpected token %v", tok.Type)
		}
	}
}

func (p *parser) enter(open Token) error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return newInvalidSyntax(open.Pos, "maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parseIf(open Token) (*ConditionalNode, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	thenBody, stop, err := p.parseBody(frameIfThen)
	if err != nil {
		return nil, err
	}
	if stop == nil {
		return nil, newUnclosedTag("if", open.Pos)
	}

	node := &ConditionalNode{Path: open.Path, Then: thenBody}

	if stop.Type == TokenElse {
		elseBody, stop, err := p.parseBody(frameIfElse)
		if err != nil {
			return nil, err
		}
		if stop == nil {
			return nil, newUnclosedTag("if", open.Pos)
		}
		node.Else = elseBody
	}

	return node, nil
}

func (p *parser) parseEach(open Token) (*LoopNode, error) {
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	body, stop, err := p.parseBody(frameEach)
	if err != nil {
		return nil, err
	}
	if stop == nil {
		return nil, newUnclosedTag("each", open.Pos)
	}

	return &LoopNode{Path: open.Path, Body: body}, nil
}

// ExtractVariables returns every dotted path referenced by the nodes,
// including conditional and loop targets, sorted and de-duplicated.
func ExtractVariables(nodes []Node) []string {
	seen := make(map[string]struct{})
	collectVariables(nodes, seen)

	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

func collectVariables(nodes []Node, seen map[string]struct{}) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *VariableNode:
			seen[joinPath(n.Path)] = struct{}{}
		case *ConditionalNode:
			seen[joinPath(n.Path)] = struct{}{}
			collectVariables(n.Then, seen)
			collectVariables(n.Else, seen)
		case *LoopNode:
			seen[joinPath(n.Path)] = struct{}{}
			collectVariables(n.Body, seen)
		}
	}
}

// FormatNodes renders the top level of an AST for debugging, e.g.
// [Text("Hi ") Variable(title)].
func FormatNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
