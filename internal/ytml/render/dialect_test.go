package render

import (
	"errors"
	"testing"
)

func TestClassifyHTMLVoid(t *testing.T) {
	rec, err := HTML.classify(Element{Name: "br"})
	if err != nil {
		t.Fatal(err)
	}
	if !rec.isVoid {
		t.Error("br must classify as void")
	}
	if rec.start != "<" || rec.end != "/>" {
		t.Errorf("void delimiters = %q %q", rec.start, rec.end)
	}
}

func TestClassifyHTMLNormal(t *testing.T) {
	rec, err := HTML.classify(Element{Name: "p"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.isVoid {
		t.Error("p must not classify as void")
	}
	if rec.start != "<" || rec.end != ">" || rec.closeStart != "</" {
		t.Errorf("delimiters = %q %q %q", rec.start, rec.end, rec.closeStart)
	}
	if rec.openName != "p" || rec.closeName != "p" {
		t.Errorf("names = %q %q", rec.openName, rec.closeName)
	}
	if !rec.useIndent || !rec.useAttrs || !rec.convertAttrs {
		t.Errorf("default policies wrong: %+v", rec)
	}
}

func TestClassifyUnknownNameIsElement(t *testing.T) {
	// Unknown names are generic elements in both dialects.
	for _, d := range []*Dialect{HTML, Jinja} {
		rec, err := d.classify(Element{Name: "custom-widget"})
		if err != nil {
			t.Fatalf("%s: %v", d.Name, err)
		}
		if rec.isVoid || rec.openName != "custom-widget" {
			t.Errorf("%s: %+v", d.Name, rec)
		}
	}
}

func TestClassifyForcedUnknown(t *testing.T) {
	for _, d := range []*Dialect{HTML, Jinja} {
		_, err := d.classify(Element{Name: "nonexistent", Forced: true})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError for forced unknown name, got %v", d.Name, err)
		}
	}
}

func TestClassifyJinjaBlock(t *testing.T) {
	rec, err := Jinja.classify(Element{Name: "for", Attr: "item in items"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.isVoid {
		t.Error("for must not be void")
	}
	if rec.start != "{% " || rec.end != " %}" || rec.closeStart != "{% " {
		t.Errorf("delimiters = %q %q %q", rec.start, rec.end, rec.closeStart)
	}
	if rec.openName != "for" || rec.closeName != "endfor" {
		t.Errorf("names = %q %q", rec.openName, rec.closeName)
	}
	if !rec.useIndent || !rec.useAttrs || rec.convertAttrs {
		t.Errorf("policies wrong: %+v", rec)
	}
}

func TestClassifyJinjaNonClosing(t *testing.T) {
	rec, err := Jinja.classify(Element{Name: "else"})
	if err != nil {
		t.Fatal(err)
	}
	if rec.closeName != "" {
		t.Errorf("else must have no close keyword, got %q", rec.closeName)
	}
	if rec.useIndent {
		t.Error("non-closing directives must not indent")
	}
	if rec.useAttrs {
		t.Error("else takes no expression")
	}
}

func TestClassifyJinjaVoidDirective(t *testing.T) {
	rec, err := Jinja.classify(Element{Name: "include", Attr: `"a.html"`})
	if err != nil {
		t.Fatal(err)
	}
	if !rec.isVoid {
		t.Error("include must be void")
	}
	if rec.start != "{% " || rec.end != " %}" {
		t.Errorf("delimiters = %q %q", rec.start, rec.end)
	}
	if !rec.useAttrs || rec.convertAttrs {
		t.Errorf("policies wrong: %+v", rec)
	}
}

func TestClassifyTableOutOfSync(t *testing.T) {
	// A name present in a directive set but missing from the table is an
	// error, never a silent fallback.
	d := &Dialect{
		Name:            "broken",
		BlockDirectives: nameSet("loop"),
		VoidDirectives:  nameSet("import"),
	}
	for _, name := range []string{"loop", "import"} {
		_, err := d.classify(Element{Name: name})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", name, err)
		}
	}
}

func TestDirectiveSetsMatchTable(t *testing.T) {
	for name := range Jinja.BlockDirectives {
		if _, ok := Jinja.Directives[name]; !ok {
			t.Errorf("block directive %s missing from table", name)
		}
	}
	for name := range Jinja.VoidDirectives {
		if _, ok := Jinja.Directives[name]; !ok {
			t.Errorf("void directive %s missing from table", name)
		}
	}
}
