// Package ytml renders YAML markup documents to HTML or to Jinja2-annotated
// templates.
//
// A document is an ordered sequence of single-key mappings. The key names a
// tag and, in parentheses, its attributes (`html(lang="ja")`); the class and
// id shortcuts `(.name)` and `(#name)` expand to full attributes, and an
// omitted tag name means div. The value is null, a string (escaped text
// content), or a nested sequence of children. Under the Jinja dialect, names
// like for/if/block emit `{% ... %}` directives instead of tags, and a `$`
// prefix forces a name to be treated as a directive.
package ytml

import (
	"gopkg.in/yaml.v3"
	g "maragu.dev/gomponents"

	lower "github.com/kilianc/ytml/internal/ytml/gomponents"
	"github.com/kilianc/ytml/internal/ytml/render"
)

// Dialect is a fixed emission configuration mapping tag names to output
// syntax. Use HTML or Jinja.
type Dialect = render.Dialect

// ValidationError reports a document that violates the input contract.
type ValidationError = render.ValidationError

var (
	// HTML emits plain HTML5.
	HTML = render.HTML
	// Jinja emits HTML annotated with Jinja2 directives.
	Jinja = render.Jinja
)

// Render converts a parsed document tree to markup text. The tree is the
// generic form produced by a YAML parser: a []any of single-key
// map[string]any descriptors; hand-built trees of the same shape work too.
func Render(doc any, d *Dialect, pretty bool, indentWidth int) (string, error) {
	return render.Render(doc, d, pretty, indentWidth)
}

// RenderText parses src as YAML and renders the resulting tree. Parse
// failures are returned unmodified.
func RenderText(src []byte, d *Dialect, pretty bool, indentWidth int) (string, error) {
	var doc any
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return "", err
	}
	return render.Render(doc, d, pretty, indentWidth)
}

// Node lowers an HTML-dialect document tree to a gomponents node for
// composing with handwritten Go views.
func Node(doc any) (g.Node, error) {
	return lower.LowerDocument(doc)
}
