// Package render converts a generic document tree, an ordered sequence of
// single-key mappings as produced by a YAML parser, into markup text: plain
// HTML or HTML annotated with template-engine directives, depending on the
// Dialect.
package render

import (
	"regexp"
	"strings"
)

var varPlaceholder = regexp.MustCompile(`\{\{\s*(\S+)\s*\}\}`)

// htmlEscaper escapes the five HTML-significant characters in one pass, so
// the ampersands of entities it introduces are never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Render converts a document tree to markup text. The root must be a
// sequence of element descriptors. With pretty set, output is indented by
// indentWidth spaces per level and newline-terminated; otherwise it is a
// single-line concatenation. The tree is never mutated, and each call uses
// its own formatter, so concurrent calls over the same tree are safe.
func Render(doc any, d *Dialect, pretty bool, indentWidth int) (string, error) {
	seq, ok := doc.([]any)
	if !ok {
		return "", validationf("document root must be a sequence, got %T", doc)
	}
	return renderSeq(seq, d, pretty, newFormatter(indentWidth))
}

// renderSeq walks one sequence of element descriptors in document order.
// Recursive calls share the formatter so nested elements indent relative to
// their parent.
func renderSeq(seq []any, d *Dialect, pretty bool, f *formatter) (string, error) {
	var b strings.Builder
	for _, item := range seq {
		el, err := Resolve(item)
		if err != nil {
			return "", err
		}
		t, err := d.classify(el)
		if err != nil {
			return "", err
		}
		t = convertAttrs(t)

		if t.isVoid && el.Value != nil {
			return "", validationf("void tag %s must have no content", el.Name)
		}

		// Start tag, aligned with its siblings. Tags that suppress
		// indentation (elif/else) render one level shallower.
		if t.openName != "" {
			b.WriteString(f.spaces(pretty, f.levelAdd(-1, pretty && !t.useIndent)))
			b.WriteString(t.start)
			b.WriteString(t.openName)
			b.WriteString(t.attr)
			b.WriteString(t.end)
		} else {
			t.useStart = false
		}

		if t.isVoid {
			b.WriteString(f.newline(pretty))
			continue
		}

		switch v := el.Value.(type) {
		case nil:
			// Empty-bodied element.
		case []any:
			t.longContent = true
			b.WriteString(f.newline(pretty && t.useStart))
			f.indent(pretty && t.useIndent && t.useStart)
			out, err := renderSeq(v, d, pretty, f)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		case string:
			text := varPlaceholder.ReplaceAllString(v, d.VarStart+"$1"+d.VarEnd)
			text = htmlEscaper.Replace(text)
			// Two trailing spaces before a newline are a Markdown-style
			// hard break.
			text = strings.ReplaceAll(text, "  \n", "<br/>\n")
			if strings.Contains(text, "\n") {
				b.WriteString(f.newline(pretty))
				f.indent(pretty)
				t.longContent = true
			}
			b.WriteString(f.indented(text, pretty && t.longContent))
			b.WriteString(f.newline(pretty && t.longContent))
		default:
			return "", validationf("element content must be null, a string, or a sequence, got %T", el.Value)
		}

		f.dedent(pretty && t.longContent && t.useIndent)
		if t.closeName != "" {
			b.WriteString(f.spaces(pretty && t.longContent, -1))
			b.WriteString(t.closeStart)
			b.WriteString(t.closeName)
			b.WriteString(t.end)
			b.WriteString(f.newline(pretty))
		}
	}
	return b.String(), nil
}
