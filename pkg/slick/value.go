package slick

import (
	"fmt"
	"strings"
)

// ValueKind identifies the shape of a resolved Value.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindScalar
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the result of resolving a path against a Data context. It is a
// closed union: absent, a string scalar, an array of values, or a present
// object. Objects carry a one-line summary used as their text form; an empty
// summary means the object has no text form.
type Value struct {
	kind  ValueKind
	text  string
	items []Value
}

// Absent returns the value of an unresolved path.
func Absent() Value { return Value{} }

// Scalar returns a string value.
func Scalar(s string) Value { return Value{kind: KindScalar, text: s} }

// Array returns an array value.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object returns a present structured value with the given summary.
func Object(summary string) Value { return Value{kind: KindObject, text: summary} }

// optional maps a nil pointer to Absent.
func optional(s *string) Value {
	if s == nil {
		return Absent()
	}
	return Scalar(*s)
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Text returns the substitution text and whether the value has one.
// Absent values, arrays and summary-less objects have no text form.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindScalar:
		return v.text, true
	case KindObject:
		return v.text, v.text != ""
	default:
		return "", false
	}
}

// Items returns the elements of an array value.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.items, true
}

// Truthy reports the value's truthiness for {{#if}}: arrays are truthy when
// non-empty, objects when present, scalars when non-empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindScalar:
		return v.text != ""
	case KindArray:
		return len(v.items) > 0
	case KindObject:
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return fmt.Sprintf("Scalar(%q)", v.text)
	case KindArray:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "Array[" + strings.Join(parts, " ") + "]"
	case KindObject:
		return fmt.Sprintf("Object(%q)", v.text)
	default:
		return "Absent"
	}
}
