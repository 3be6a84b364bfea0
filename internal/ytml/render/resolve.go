package render

import (
	"regexp"
	"strings"
)

// Element is one resolved element descriptor: the tag name and raw attribute
// string extracted from a single-key mapping, plus the descriptor's value.
type Element struct {
	Name   string
	Attr   string
	Forced bool // name carried the $ sigil and must classify as a directive
	Value  any
}

var (
	keyPattern    = regexp.MustCompile(`^([^()\s]+)?\s?\((.*)\)$`)
	groupBoundary = regexp.MustCompile(`\)\s*\(`)
)

// Resolve extracts the tag name, the raw attribute string and the value from
// one element descriptor. The descriptor must be a mapping with exactly one
// key of the form <name>(<attrs>), where both parts are optional: an empty
// name means div, and a name starting with $ is stripped of the sigil and
// forced to classify as a template directive.
func Resolve(item any) (Element, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return Element{}, validationf("document elements must be mappings, got %T", item)
	}
	if len(m) != 1 {
		return Element{}, validationf("element mappings must have exactly one key, got %d", len(m))
	}
	var el Element
	for key, value := range m {
		el.Value = value
		if match := keyPattern.FindStringSubmatch(key); match != nil {
			el.Name = match[1]
			// Adjacent groups like (.a)(.b) all contribute attributes.
			el.Attr = groupBoundary.ReplaceAllString(match[2], " ")
			if el.Name == "" {
				el.Name = "div"
			}
		} else if key == "" {
			el.Name = "div"
		} else {
			el.Name = key
		}
	}
	if strings.HasPrefix(el.Name, "$") {
		el.Name = el.Name[1:]
		el.Forced = true
	}
	return el, nil
}
