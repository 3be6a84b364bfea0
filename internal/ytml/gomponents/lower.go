// Package gomponents lowers a document tree to maragu.dev/gomponents nodes,
// so fragments authored as YAML markup can be composed with handwritten Go
// views. Only the HTML dialect lowers; template directives have no node
// representation and fail.
package gomponents

import (
	"strings"

	g "maragu.dev/gomponents"

	"github.com/kilianc/ytml/internal/ytml/render"
)

// LowerDocument lowers a sequence of element descriptors to a single Node.
// An empty sequence lowers to nil.
func LowerDocument(doc any) (g.Node, error) {
	seq, ok := doc.([]any)
	if !ok {
		return nil, &render.ValidationError{Msg: "document root must be a sequence"}
	}
	return lowerSeq(seq)
}

func lowerSeq(seq []any) (g.Node, error) {
	if len(seq) == 0 {
		return nil, nil
	}
	if len(seq) == 1 {
		return lowerItem(seq[0])
	}
	var nodes []g.Node
	for _, item := range seq {
		n, err := lowerItem(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return g.Group(nodes), nil
}

func lowerItem(item any) (g.Node, error) {
	el, err := render.Resolve(item)
	if err != nil {
		return nil, err
	}
	if el.Forced {
		return nil, &render.ValidationError{Msg: "template directive " + el.Name + " cannot be lowered to a node"}
	}
	if render.HTML.VoidTags[el.Name] && el.Value != nil {
		return nil, &render.ValidationError{Msg: "void tag " + el.Name + " must have no content"}
	}

	args := lowerAttrs(el.Attr)
	switch v := el.Value.(type) {
	case nil:
	case string:
		args = append(args, g.Text(v))
	case []any:
		for _, child := range v {
			n, err := lowerItem(child)
			if err != nil {
				return nil, err
			}
			args = append(args, n)
		}
	default:
		return nil, &render.ValidationError{Msg: "element content must be null, a string, or a sequence"}
	}
	return g.El(el.Name, args...), nil
}

// lowerAttrs tokenizes a raw attribute string into attribute nodes. Tokens
// are split on whitespace outside quotes; `.x`/`#x` shortcuts become class
// and id attributes, `k="v"` pairs become valued attributes, and bare names
// become boolean attributes.
func lowerAttrs(raw string) []g.Node {
	var nodes []g.Node
	for _, tok := range splitAttrs(raw) {
		if tok[0] == '.' || tok[0] == '#' {
			nodes = append(nodes, shorthandAttrs(tok)...)
			continue
		}
		if k, v, ok := strings.Cut(tok, "="); ok {
			nodes = append(nodes, g.Attr(k, strings.Trim(v, `"'`)))
		} else {
			nodes = append(nodes, g.Attr(tok))
		}
	}
	return nodes
}

func splitAttrs(raw string) []string {
	var toks []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}
	return toks
}

// shorthandAttrs expands a run of class/id shortcuts like `.a.b#c`.
func shorthandAttrs(tok string) []g.Node {
	var nodes []g.Node
	for tok != "" {
		marker := tok[0]
		rest := tok[1:]
		val := rest
		if end := strings.IndexAny(rest, ".#"); end >= 0 {
			val, tok = rest[:end], rest[end:]
		} else {
			tok = ""
		}
		switch marker {
		case '.':
			nodes = append(nodes, g.Attr("class", val))
		case '#':
			nodes = append(nodes, g.Attr("id", val))
		}
	}
	return nodes
}
