package memdom

import (
	"golang.org/x/net/html"

	"github.com/go-drift/selectmirror/pkg/dom"
)

// selectElement adds native single-selection behavior to a select node.
type selectElement struct {
	*element
}

var _ dom.SelectControl = (*selectElement)(nil)

// Options returns the option rows in document order. Value falls back
// to the option's text when no value attribute is present, matching
// native controls.
func (e *selectElement) Options() []dom.Option {
	var out []dom.Option
	for n := e.n.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode || n.Data != "option" {
			continue
		}
		opt := e.doc.wrap(n).(*element)
		value, ok := opt.Attr("value")
		label := opt.Text()
		if !ok {
			value = label
		}
		out = append(out, dom.Option{Value: value, Label: label, Attrs: opt.Attrs()})
	}
	return out
}

// SelectedIndex derives the initial index from option "selected"
// markers the first time it is read (first marked option wins, 0 when
// none), then holds the value across later writes.
func (e *selectElement) SelectedIndex() int {
	if i, ok := e.doc.selected[e.n]; ok {
		return i
	}
	i := 0
	for idx, opt := range e.Options() {
		if _, ok := attrIn(opt.Attrs, "selected"); ok {
			i = idx
			break
		}
	}
	e.doc.selected[e.n] = i
	return i
}

// SetSelectedIndex writes the native index, clamped to the option range.
func (e *selectElement) SetSelectedIndex(i int) {
	count := len(e.Options())
	if count == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= count {
		i = count - 1
	}
	e.doc.selected[e.n] = i
}

func attrIn(attrs []dom.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
