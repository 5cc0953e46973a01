// Package slick provides a small Handlebars-style template engine that merges
// structured content data into presentation markup.
//
// Data and layout are edited and validated independently: a template can be
// checked statically with Validate, rendered against a Data value with Render,
// and pushed through a downstream markup compiler with ValidateWithData.
//
// # Quick Start
//
//	data := slick.NewData("Amazing Product").
//	    WithSubtitle("The Best Solution").
//	    WithFeature("Fast").
//	    WithFeature("Cheap")
//
//	out, err := slick.Render("# {{title}}\n{{#each features}}- {{this}}\n{{/each}}", data)
//	if err != nil {
//	    log.Fatal(err) // always a *slick.ParseError
//	}
//
// # Template Syntax
//
//	{{title}}                           - Variable
//	{{style.primaryColor}}              - Nested field (camelCase or snake_case)
//	{{subtitle | default: 'None'}}      - Variable with a default
//	{{sections.length}}                 - Element count of sections, features or stats
//	{{images.logo}}                     - Image reference, never escaped
//	{{#if subtitle}}...{{else}}...{{/if}} - Conditional
//	{{#each features}}...{{/each}}      - Loop
//	{{this}}, {{@index}}                - Current item and zero-based index inside a loop
//
// Any other single-segment name is looked up in Data.Metadata.
//
// # Rendering Rules
//
// Missing variables are never errors: they render as their default, or as
// empty text. A loop over anything that is not an array renders nothing.
// Conditionals treat arrays as truthy when non-empty, objects when present and
// strings when non-empty.
//
// Structured loop items are reduced to one line: a text section renders as
// "Heading: content", a stat as "value: label". Fields of the current item
// cannot be addressed individually inside a loop body.
//
// # Errors
//
// Parse reports the first syntax error as a *ParseError carrying a byte
// offset (see LineColumn). Validate wraps it in a *ValidationError together
// with the empty-template check, and returns unknown variables as warnings.
// ValidateWithData reports the failing stage in a *CheckError.
//
// # Thread Safety
//
// An Engine is immutable once created and may be shared between goroutines.
// Nothing parsed is cached between calls.
package slick
