package slick

import "strconv"

// LoopContext is the per-iteration frame of an {{#each}} loop. Parent links
// to the enclosing loop's frame, or is nil for a top-level loop. Only the
// innermost frame is visible to {{this}} and {{@index}}.
type LoopContext struct {
	Item   Value
	Index  int
	Parent *LoopContext
}

// Resolve resolves a path against the data and the active loop frame.
// Unknown paths resolve to Absent; resolution never fails.
func Resolve(path []string, data *Data, loop *LoopContext) Value {
	if len(path) == 0 {
		return Absent()
	}
	if data == nil {
		data = &Data{}
	}

	// Loop-local names are answered by the innermost loop only.
	switch path[0] {
	case "this":
		if loop == nil || len(path) > 1 {
			return Absent()
		}
		return loop.Item
	case "@index":
		if loop == nil || len(path) > 1 {
			return Absent()
		}
		return Scalar(strconv.Itoa(loop.Index))
	}

	switch len(path) {
	case 1:
		return resolveTopLevel(path[0], data)
	case 2:
		return resolveNested(path[0], path[1], data)
	default:
		return Absent()
	}
}

func resolveTopLevel(key string, data *Data) Value {
	switch key {
	case "title":
		return Scalar(data.Title)
	case "subtitle":
		return optional(data.Subtitle)
	case "body":
		return Scalar(data.Body)
	case "sections":
		items := make([]Value, len(data.Sections))
		for i, s := range data.Sections {
			items[i] = Object(s.Summary())
		}
		return Array(items...)
	case "features":
		items := make([]Value, len(data.Features))
		for i, f := range data.Features {
			items[i] = Scalar(f)
		}
		return Array(items...)
	case "stats":
		items := make([]Value, len(data.Stats))
		for i, s := range data.Stats {
			items[i] = Object(s.Summary())
		}
		return Array(items...)
	case "contact":
		if data.Contact == nil {
			return Absent()
		}
		return Object("")
	case "style":
		if data.Style == nil {
			return Absent()
		}
		return Object("")
	case "images":
		if len(data.Images) == 0 {
			return Absent()
		}
		return Object("")
	}

	if v, ok := data.Metadata[key]; ok {
		return Scalar(v)
	}
	return Absent()
}

func resolveNested(first, second string, data *Data) Value {
	switch first {
	case "style":
		if data.Style == nil {
			return Absent()
		}
		switch second {
		case "primaryColor", "primary_color":
			return optional(data.Style.PrimaryColor)
		case "accentColor", "accent_color":
			return optional(data.Style.AccentColor)
		case "fontFamily", "font_family":
			return optional(data.Style.FontFamily)
		}
	case "contact":
		if data.Contact == nil {
			return Absent()
		}
		switch second {
		case "email":
			return optional(data.Contact.Email)
		case "phone":
			return optional(data.Contact.Phone)
		case "website":
			return optional(data.Contact.Website)
		case "address":
			return optional(data.Contact.Address)
		}
	case "sections":
		if second == "length" {
			return Scalar(strconv.Itoa(len(data.Sections)))
		}
	case "features":
		if second == "length" {
			return Scalar(strconv.Itoa(len(data.Features)))
		}
	case "stats":
		if second == "length" {
			return Scalar(strconv.Itoa(len(data.Stats)))
		}
	case "images":
		if p, ok := data.Images[second]; ok {
			return Scalar(p)
		}
	}
	return Absent()
}

// isTruthy evaluates an {{#if}} condition. An image is present when its key
// exists, even with an empty path.
func isTruthy(path []string, data *Data, loop *LoopContext) bool {
	if len(path) == 2 && isImageRef(path) && data != nil {
		_, ok := data.Images[path[1]]
		return ok
	}
	return Resolve(path, data, loop).Truthy()
}

// isImageRef reports whether a path addresses an image. Image paths are
// system-generated identifiers and are never escaped.
func isImageRef(path []string) bool {
	return len(path) > 0 && path[0] == "images"
}
