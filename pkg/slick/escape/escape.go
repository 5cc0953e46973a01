// Package escape contains pure helpers that neutralize markup syntax in
// user-supplied values before they are substituted into a template.
package escape

import "strings"

// typstSpecial lists the characters Typst would otherwise interpret:
// labels (@ < >), content blocks ([ ]), code mode (#), math ($),
// emphasis (* _) and the escape character itself.
const typstSpecial = "@<>[]#$*_\\"

// Typst escapes characters that Typst interprets as markup.
func Typst(s string) string {
	if !strings.ContainsAny(s, typstSpecial) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		if strings.ContainsRune(typstSpecial, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// None returns s unchanged.
func None(s string) string {
	return s
}
