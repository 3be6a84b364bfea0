package ytml_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kilianc/ytml/pkg/ytml"
)

const sampleYTML = `- html(lang="ja"):
    - head:
        - meta(charset="UTF-8"):
        - title: "Hello, World!"
    - body:
        - h1: "Hello, World!"
        - p: "This is a sample page."
        - (.container): "This is a container."
        - (#test): "This is a id."
`

const sampleHTML = `<html lang="ja">
    <head>
        <meta charset="UTF-8"/>
        <title>Hello, World!</title>
    </head>
    <body>
        <h1>Hello, World!</h1>
        <p>This is a sample page.</p>
        <div class="container">This is a container.</div>
        <div id="test">This is a id.</div>
    </body>
</html>
`

func TestRenderTextHTML(t *testing.T) {
	got, err := ytml.RenderText([]byte(sampleYTML), ytml.HTML, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleHTML, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRenderTextJinja(t *testing.T) {
	src := `- extends("base.html"):
- block(content):
    - for(item in items):
        - p: "{{ item }}"
`
	want := "{% extends \"base.html\" %}\n" +
		"{% block content %}\n" +
		"    {% for item in items %}\n" +
		"        <p>{{ item }}</p>\n" +
		"    {% endfor %}\n" +
		"{% endblock %}\n"
	got, err := ytml.RenderText([]byte(src), ytml.Jinja, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRenderTextBlockScalar(t *testing.T) {
	src := `- p: |-
    line1
    line2
`
	want := "<p>\n    line1\n    line2\n\n</p>\n"
	got, err := ytml.RenderText([]byte(src), ytml.HTML, true, 4)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRenderTextParseError(t *testing.T) {
	_, err := ytml.RenderText([]byte("- a: [unclosed"), ytml.HTML, true, 4)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var verr *ytml.ValidationError
	if errors.As(err, &verr) {
		t.Errorf("parse failures must pass through, got ValidationError: %v", err)
	}
}

func TestRenderTextBadRoot(t *testing.T) {
	_, err := ytml.RenderText([]byte("42"), ytml.HTML, true, 4)
	var verr *ytml.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRenderHandBuiltTree(t *testing.T) {
	doc := []any{map[string]any{"p": "hand-built"}}
	got, err := ytml.Render(doc, ytml.HTML, false, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got != "<p>hand-built</p>" {
		t.Errorf("got %q", got)
	}
}

func TestNode(t *testing.T) {
	doc := []any{map[string]any{"div(.card)": []any{
		map[string]any{"h1": "Hi"},
	}}}
	n, err := ytml.Node(doc)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), `<div class="card"><h1>Hi</h1></div>`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
