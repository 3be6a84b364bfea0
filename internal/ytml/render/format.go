package render

import "strings"

// formatter tracks the indentation state of one conversion. Every method
// takes a leading bool; when it is false the method degrades to the compact
// (no-op) form, which is how pretty mode and per-tag exceptions compose.
type formatter struct {
	unit  int
	level int
}

func newFormatter(unit int) *formatter {
	return &formatter{unit: unit}
}

func (f *formatter) indent(cond bool) {
	if cond {
		f.level++
	}
}

func (f *formatter) dedent(cond bool) {
	if cond && f.level > 0 {
		f.level--
	}
}

// levelAdd returns the current level plus delta, or the unmodified level when
// cond is false. Callers use it to render a delimiter one level shallower
// without touching shared state.
func (f *formatter) levelAdd(delta int, cond bool) int {
	if cond {
		return f.level + delta
	}
	return f.level
}

// spaces returns the indentation for level, or for the current level when
// level is negative.
func (f *formatter) spaces(cond bool, level int) string {
	if !cond {
		return ""
	}
	if level < 0 {
		level = f.level
	}
	return strings.Repeat(" ", f.unit*level)
}

func (f *formatter) newline(cond bool) string {
	if cond {
		return "\n"
	}
	return ""
}

// indented re-indents every line of the trimmed text at the current level,
// terminating each line with a newline. When cond is false the text is
// returned unchanged.
func (f *formatter) indented(text string, cond bool) string {
	if !cond {
		return text
	}
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		b.WriteString(f.spaces(true, -1))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
