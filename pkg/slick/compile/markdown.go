package compile

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Markdown compiles rendered Markdown to HTML with goldmark. Besides parse
// failures it reports links and images whose destination rendered empty,
// which is what a missing {{images.x}} or {{contact.website}} produces.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a Markdown compiler with GitHub Flavored Markdown enabled.
// The goldmark instance is safe to share; parsing state is per call.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (m *Markdown) Compile(source string) (string, error) {
	src := []byte(source)
	doc := m.md.Parser().Parse(text.NewReader(src))

	var diags []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			if len(node.Destination) == 0 {
				diags = append(diags, fmt.Sprintf("link %q has an empty destination", node.Text(src)))
			}
		case *ast.Image:
			if len(node.Destination) == 0 {
				diags = append(diags, fmt.Sprintf("image %q has an empty source", node.Text(src)))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", &Error{Compiler: "markdown", Diags: []string{err.Error()}}
	}
	if len(diags) > 0 {
		return "", &Error{Compiler: "markdown", Diags: diags}
	}

	var buf bytes.Buffer
	if err := m.md.Renderer().Render(&buf, src, doc); err != nil {
		return "", &Error{Compiler: "markdown", Diags: []string{err.Error()}}
	}
	return buf.String(), nil
}
