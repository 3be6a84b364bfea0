package render

import (
	"regexp"
	"strings"
)

// Shorthand tokens stop at whitespace, at another shorthand marker, at
// parens and at quotes, so `.a.b` is two independent class shortcuts.
var (
	classShorthand = regexp.MustCompile(`\s*\.([^\s.#()'"]+)`)
	idShorthand    = regexp.MustCompile(`\s*#([^\s.#()'"]+)`)
)

// convertAttrs rewrites the .class and #id shortcuts into full attribute
// syntax when the record allows it, and prefixes the non-empty result with a
// single space so it concatenates directly after the tag name. Records that
// disable attributes drop them entirely.
func convertAttrs(t tag) tag {
	if !t.useAttrs {
		t.attr = ""
		return t
	}
	if t.convertAttrs {
		attr := classShorthand.ReplaceAllString(t.attr, ` class="$1"`)
		attr = idShorthand.ReplaceAllString(attr, ` id="$1"`)
		t.attr = strings.TrimLeft(attr, " ")
	}
	if t.attrSpace && t.attr != "" {
		t.attr = " " + t.attr
	}
	return t
}
