package render

// Directive describes how one template construct is emitted: the keyword of
// its opening tag, the keyword of its closing tag (empty when the construct
// never closes itself, e.g. else), and whether the element's attribute
// string is emitted as the directive's expression.
type Directive struct {
	Open     string
	Close    string
	UseAttrs bool
}

// Dialect is a fixed emission configuration: the delimiter strings plus the
// closed name sets that decide how a tag name classifies. Dialects are plain
// values; the Jinja dialect differs from HTML only by carrying non-empty
// directive tables, so classification falls through to the shared host-markup
// rules for every name the tables do not claim.
type Dialect struct {
	Name string

	// Host-markup delimiters.
	TagStart      string
	TagEnd        string
	CloseTagStart string
	TagSelfClose  string

	// Directive delimiters.
	DirStart      string
	DirEnd        string
	DirCloseStart string
	DirSelfClose  string

	// Variable-interpolation delimiters, wrapped around the bare name of
	// every {{ name }} placeholder found in string content.
	VarStart string
	VarEnd   string

	VoidTags        map[string]bool
	BlockDirectives map[string]bool
	VoidDirectives  map[string]bool
	Directives      map[string]Directive
}

// tag is the classified emission record for one element. Each pipeline step
// (classify, convertAttrs, the walker) derives a new value from it rather
// than sharing mutable state.
type tag struct {
	isVoid       bool
	start        string // start-tag opening delimiter
	end          string // start-tag closing delimiter (self-closing form for voids)
	closeStart   string // end-tag opening delimiter
	openName     string
	closeName    string
	attr         string
	attrSpace    bool
	useIndent    bool
	useAttrs     bool
	convertAttrs bool
	useStart     bool
	longContent  bool
}

// classify fills the emission record for a resolved element. Directive name
// sets are consulted first, with a defensive check that the directive table
// has stayed in sync; names the sets do not claim classify as host markup,
// unless the element was sigil-forced, which is an error when no directive
// entry exists.
func (d *Dialect) classify(el Element) (tag, error) {
	t := tag{
		attr:         el.Attr,
		attrSpace:    true,
		useIndent:    true,
		useAttrs:     true,
		convertAttrs: true,
		useStart:     true,
	}
	switch {
	case d.BlockDirectives[el.Name]:
		dir, ok := d.Directives[el.Name]
		if !ok {
			return tag{}, validationf("unsupported template directive: %s", el.Name)
		}
		t.start = d.DirStart
		t.end = d.DirEnd
		t.closeStart = d.DirCloseStart
		t.openName = dir.Open
		t.closeName = dir.Close
		t.useIndent = dir.Close != ""
		t.useAttrs = dir.UseAttrs
		t.convertAttrs = false
	case d.VoidDirectives[el.Name]:
		dir, ok := d.Directives[el.Name]
		if !ok {
			return tag{}, validationf("unsupported template directive: %s", el.Name)
		}
		t.isVoid = true
		t.start = d.DirStart
		t.end = d.DirSelfClose
		t.openName = dir.Open
		t.useAttrs = dir.UseAttrs
		t.convertAttrs = false
	case el.Forced:
		return tag{}, validationf("unsupported template directive: %s", el.Name)
	case d.VoidTags[el.Name]:
		t.isVoid = true
		t.start = d.TagStart
		t.end = d.TagSelfClose
		t.openName = el.Name
		t.closeName = el.Name
	default:
		t.start = d.TagStart
		t.end = d.TagEnd
		t.closeStart = d.CloseTagStart
		t.openName = el.Name
		t.closeName = el.Name
	}
	return t, nil
}

func nameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// htmlVoidTags are the elements HTML defines as void; they self-close and
// must carry no content.
var htmlVoidTags = nameSet(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

// HTML emits plain HTML5. It has no directive table, so sigil-forced names
// always fail.
var HTML = &Dialect{
	Name:          "html",
	TagStart:      "<",
	TagEnd:        ">",
	CloseTagStart: "</",
	TagSelfClose:  "/>",
	VoidTags:      htmlVoidTags,
}

// Jinja emits HTML annotated with Jinja2 block and void directives. Names
// outside its directive sets classify exactly as in the HTML dialect, so a
// document may freely mix elements and directives.
var Jinja = &Dialect{
	Name:          "jinja",
	TagStart:      "<",
	TagEnd:        ">",
	CloseTagStart: "</",
	TagSelfClose:  "/>",
	DirStart:      "{% ",
	DirEnd:        " %}",
	DirCloseStart: "{% ",
	DirSelfClose:  " %}",
	VarStart:      "{{ ",
	VarEnd:        " }}",
	VoidTags:      htmlVoidTags,
	BlockDirectives: nameSet(
		"for", "if", "then", "elif", "else", "block",
		"filter", "macro", "call", "raw",
	),
	VoidDirectives: nameSet("include", "extends", "set"),
	Directives: map[string]Directive{
		"for":     {Open: "for", Close: "endfor", UseAttrs: true},
		"if":      {Open: "if", Close: "endif", UseAttrs: true},
		"then":    {Open: "", Close: "", UseAttrs: false},
		"elif":    {Open: "elif", Close: "", UseAttrs: true},
		"else":    {Open: "else", Close: "", UseAttrs: false},
		"block":   {Open: "block", Close: "endblock", UseAttrs: true},
		"filter":  {Open: "filter", Close: "endfilter", UseAttrs: true},
		"macro":   {Open: "macro", Close: "endmacro", UseAttrs: true},
		"call":    {Open: "call", Close: "endcall", UseAttrs: true},
		"raw":     {Open: "raw", Close: "endraw", UseAttrs: true},
		"include": {Open: "include", Close: "", UseAttrs: true},
		"extends": {Open: "extends", Close: "", UseAttrs: true},
		"set":     {Open: "set", Close: "", UseAttrs: true},
	},
}
