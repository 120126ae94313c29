// Package memdom implements the dom interfaces over an in-memory HTML
// tree. Documents are parsed with golang.org/x/net/html and queried with
// cascadia, so fixtures are real HTML and the mutated document can be
// serialized back out. memdom backs the package tests and the CLI/TUI
// harness; it performs no layout beyond width attributes.
package memdom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/go-drift/selectmirror/pkg/dom"
)

// Document is an in-memory dom.Document.
type Document struct {
	root  *html.Node
	elems map[*html.Node]dom.Element
	subs  map[dom.EventType][]*subscription

	caps     dom.Capabilities
	active   dom.Element
	selected map[*html.Node]int
}

// New returns an empty document containing only html and body elements.
func New() *Document {
	d, err := Parse(strings.NewReader("<html><head></head><body></body></html>"))
	if err != nil {
		panic(err) // static markup cannot fail to parse
	}
	return d
}

// Parse reads an HTML document or fragment from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("memdom: parse: %w", err)
	}
	return &Document{
		root:     root,
		elems:    make(map[*html.Node]dom.Element),
		subs:     make(map[dom.EventType][]*subscription),
		selected: make(map[*html.Node]int),
	}, nil
}

// ParseString parses HTML markup held in a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// SetCapabilities configures the input facilities the document reports.
func (d *Document) SetCapabilities(caps dom.Capabilities) {
	d.caps = caps
}

// Render serializes the current document state to w.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Body returns the document body element.
func (d *Document) Body() dom.Element {
	n := findFirst(d.root, "body")
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// QuerySelectorAll returns elements matching a CSS selector in document
// order. An invalid selector is reported as an error rather than an
// empty result.
func (d *Document) QuerySelectorAll(selector string) ([]dom.Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("memdom: selector %q: %w", selector, err)
	}
	var out []dom.Element
	for _, n := range cascadia.QueryAll(d.root, sel) {
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// CreateElement creates a detached element with the given tag.
func (d *Document) CreateElement(tag string) dom.Element {
	n := &html.Node{Type: html.ElementNode, Data: strings.ToLower(tag)}
	return d.wrap(n)
}

// Listen registers a document-wide listener for events of type t.
func (d *Document) Listen(t dom.EventType, fn func(dom.Event)) dom.Subscription {
	sub := &subscription{doc: d, t: t, fn: fn}
	d.subs[t] = append(d.subs[t], sub)
	return sub
}

// Capabilities reports the configured input facilities.
func (d *Document) Capabilities() dom.Capabilities {
	return d.caps
}

// ActiveElement returns the element focus currently rests on.
func (d *Document) ActiveElement() dom.Element {
	return d.active
}

// wrap returns the stable dom.Element for n, creating it on first use.
// Select controls get the richer wrapper so dom.SelectControl assertions
// succeed only where they should.
func (d *Document) wrap(n *html.Node) dom.Element {
	if el, ok := d.elems[n]; ok {
		return el
	}
	base := &element{doc: d, n: n}
	var el dom.Element = base
	if n.Data == "select" {
		el = &selectElement{element: base}
	}
	d.elems[n] = el
	return el
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
