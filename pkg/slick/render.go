package slick

import (
	"strings"
)

// renderer carries the per-call state of one Render. It is never shared
// between calls.
type renderer struct {
	data    *Data
	out     strings.Builder
	escaper func(string) string
	logger  *Logger
	misses  int
}

func renderNodes(nodes []Node, r *renderer, loop *LoopContext) {
	for _, node := range nodes {
		node.render(r, loop)
	}
}

func (n *TextNode) render(r *renderer, _ *LoopContext) {
	r.out.WriteString(n.Content)
}

func (n *VariableNode) render(r *renderer, loop *LoopContext) {
	text, ok := Resolve(n.Path, r.data, loop).Text()
	if !ok {
		r.miss(n.Path)
		if n.Default == nil {
			return
		}
		text = *n.Default
	}

	if !isImageRef(n.Path) {
		text = r.escaper(text)
	}
	r.out.WriteString(text)
}

func (n *ConditionalNode) render(r *renderer, loop *LoopContext) {
	if isTruthy(n.Path, r.data, loop) {
		renderNodes(n.Then, r, loop)
		return
	}
	renderNodes(n.Else, r, loop)
}

func (n *LoopNode) render(r *renderer, loop *LoopContext) {
	items, ok := Resolve(n.Path, r.data, loop).Items()
	if !ok {
		r.miss(n.Path)
		return
	}

	for i, item := range items {
		frame := LoopContext{Item: item, Index: i, Parent: loop}
		renderNodes(n.Body, r, &frame)
	}
}

// miss records an unresolved path. Misses are not errors.
func (r *renderer) miss(path []string) {
	r.misses++
	if r.logger.IsDebugMode() {
		r.logger.WithField("path", joinPath(path)).Debug("unresolved path")
	}
}
