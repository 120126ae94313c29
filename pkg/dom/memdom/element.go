package memdom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/selectmirror/pkg/dom"
)

// element adapts one html.Node to dom.Element. Wrappers are held in the
// owning document's identity map so the same node always yields the same
// dom.Element value.
type element struct {
	doc  *Document
	n    *html.Node
	subs map[dom.EventType][]*subscription
}

func (e *element) TagName() string { return e.n.Data }

func (e *element) ID() string {
	id, _ := e.Attr("id")
	return id
}

func (e *element) SetID(id string) { e.SetAttr("id", id) }

func (e *element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *element) RemoveAttr(name string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
			return
		}
	}
}

func (e *element) Attrs() []dom.Attr {
	out := make([]dom.Attr, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		out = append(out, dom.Attr{Name: a.Key, Value: a.Val})
	}
	return out
}

func (e *element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (e *element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.SetClasses(append(e.Classes(), name))
}

func (e *element) RemoveClass(name string) {
	classes := e.Classes()
	kept := classes[:0]
	for _, c := range classes {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetClasses(kept)
}

func (e *element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

func (e *element) SetClasses(names []string) {
	if len(names) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(names, " "))
}

func (e *element) Text() string {
	var b strings.Builder
	collectText(e.n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func (e *element) SetText(text string) {
	for e.n.FirstChild != nil {
		e.n.RemoveChild(e.n.FirstChild)
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *element) Parent() dom.Element {
	p := e.n.Parent
	for p != nil && p.Type != html.ElementNode {
		p = p.Parent
	}
	if p == nil {
		return nil
	}
	return e.doc.wrap(p)
}

func (e *element) Children() []dom.Element {
	var out []dom.Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

func (e *element) AppendChild(child dom.Element) {
	n := nodeOf(child)
	detach(n)
	e.n.AppendChild(n)
}

func (e *element) InsertAfter(newChild dom.Element) {
	parent := e.n.Parent
	if parent == nil {
		return
	}
	n := nodeOf(newChild)
	detach(n)
	if next := e.n.NextSibling; next != nil {
		parent.InsertBefore(n, next)
	} else {
		parent.AppendChild(n)
	}
}

func (e *element) Remove() {
	detach(e.n)
}

func (e *element) Listen(t dom.EventType, fn func(dom.Event)) dom.Subscription {
	if e.subs == nil {
		e.subs = make(map[dom.EventType][]*subscription)
	}
	sub := &subscription{el: e, t: t, fn: fn}
	e.subs[t] = append(e.subs[t], sub)
	return sub
}

func (e *element) Dispatch(ev dom.Event) {
	if ev.Target == nil {
		ev.Target = e.doc.wrap(e.n)
	}
	e.doc.deliver(e, ev)
}

func (e *element) RenderedWidth() float64 {
	v, ok := e.Attr("width")
	if !ok {
		return 0
	}
	w, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return w
}

func (e *element) SetWidth(w float64) {
	e.SetAttr("width", strconv.FormatFloat(w, 'f', -1, 64))
}

func (e *element) Focus() {
	self := e.doc.wrap(e.n)
	e.doc.active = self
	e.Dispatch(dom.Event{Type: dom.FocusEvent, Target: self})
}

func nodeOf(el dom.Element) *html.Node {
	switch v := el.(type) {
	case *element:
		return v.n
	case *selectElement:
		return v.n
	}
	panic("memdom: foreign dom.Element implementation")
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
