// Package dom abstracts the hosting document and its event environment.
//
// The selectmirror engine never touches a concrete document directly; it
// operates against the interfaces declared here (query, create, mutate,
// listen, dispatch). Production hosts provide their own implementation;
// [github.com/go-drift/selectmirror/pkg/dom/memdom] provides an in-memory
// one backed by parsed HTML for tests and tooling.
package dom

// EventType identifies a document event category.
type EventType string

const (
	// Click is a pointer activation on an element.
	Click EventType = "click"
	// Change is a selection-value change on a control.
	Change EventType = "change"
	// MouseOver fires when the pointer enters an element.
	MouseOver EventType = "mouseover"
	// MouseLeave fires when the pointer leaves an element.
	MouseLeave EventType = "mouseleave"
	// TouchStart is the touch-capability probe event.
	TouchStart EventType = "touchstart"
	// FocusEvent fires when an element receives focus.
	FocusEvent EventType = "focus"
)

// Event is delivered to listeners registered via Element.Listen or
// Document.Listen. Target is the element the event originated on,
// regardless of which ancestor's listener receives it.
type Event struct {
	Type   EventType
	Target Element
}

// Subscription represents an active event listener registration.
// Cancel detaches the listener; cancelling twice is a no-op.
type Subscription interface {
	Cancel()
}

// Attr is one element attribute. Order of attributes is preserved by
// implementations wherever attribute sets are returned.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the hosting document.
//
// Implementations must return the same Element value for the same
// underlying node so callers can compare event targets by identity.
type Element interface {
	// TagName returns the lower-cased element tag.
	TagName() string

	// ID returns the element identifier, empty when unset.
	ID() string
	// SetID replaces the element identifier.
	SetID(id string)

	// Attr returns the named attribute and whether it is present.
	// A present attribute with no written value reports ("", true).
	Attr(name string) (string, bool)
	// SetAttr sets or replaces the named attribute.
	SetAttr(name, value string)
	// RemoveAttr deletes the named attribute if present.
	RemoveAttr(name string)
	// Attrs returns all attributes in document order.
	Attrs() []Attr

	// HasClass reports membership in the element's class set.
	HasClass(name string) bool
	// AddClass appends a class if not already present.
	AddClass(name string)
	// RemoveClass removes a class if present.
	RemoveClass(name string)
	// Classes returns the class list in order.
	Classes() []string
	// SetClasses replaces the whole class list.
	SetClasses(names []string)

	// Text returns the element's concatenated text content.
	Text() string
	// SetText replaces the element's children with a single text node.
	SetText(text string)

	// Parent returns the parent element, nil at the root.
	Parent() Element
	// Children returns child elements in order (text nodes excluded).
	Children() []Element
	// AppendChild attaches child as the last child of this element.
	AppendChild(child Element)
	// InsertAfter attaches newChild as the next sibling of this element.
	InsertAfter(newChild Element)
	// Remove detaches this element from its parent.
	Remove()

	// Listen registers fn for events of type t delivered to this element,
	// including events bubbling up from descendants.
	Listen(t EventType, fn func(Event)) Subscription
	// Dispatch delivers ev to this element's listeners and then bubbles it
	// toward the document root. A zero ev.Target defaults to this element.
	Dispatch(ev Event)

	// RenderedWidth returns the element's computed display width, 0 when
	// the host cannot measure it.
	RenderedWidth() float64
	// SetWidth fixes the element's display width.
	SetWidth(w float64)

	// Focus moves document focus to this element.
	Focus()
}

// Option is an ordered snapshot of one option row of a SelectControl.
// Attrs carries every attribute present on the option, including the
// native "selected" and "disabled" markers.
type Option struct {
	Value string
	Label string
	Attrs []Attr
}

// SelectControl is an Element that behaves as a native single-selection
// list control.
type SelectControl interface {
	Element

	// Options returns the option rows in document order.
	Options() []Option
	// SelectedIndex returns the native selected index. Implementations
	// derive the initial value from option markers, defaulting to 0.
	SelectedIndex() int
	// SetSelectedIndex writes the native selected index, clamping it to
	// the valid option range.
	SetSelectedIndex(i int)
}

// Capabilities describes input facilities of the hosting environment,
// probed once per engine at construction time.
type Capabilities struct {
	// TouchStart reports whether the host delivers touchstart events.
	TouchStart bool
	// MaxTouchPoints is the host's reported touch point count.
	MaxTouchPoints int
}

// Touch reports whether the host should be treated as touch-capable.
func (c Capabilities) Touch() bool {
	return c.TouchStart || c.MaxTouchPoints > 0
}

// Document is the hosting document.
type Document interface {
	// QuerySelectorAll returns elements matching a CSS selector, in
	// document order.
	QuerySelectorAll(selector string) ([]Element, error)
	// CreateElement creates a detached element with the given tag.
	CreateElement(tag string) Element
	// Listen registers a document-wide listener receiving every event of
	// type t that bubbles to the root.
	Listen(t EventType, fn func(Event)) Subscription
	// Capabilities reports the host's input facilities.
	Capabilities() Capabilities
	// ActiveElement returns the currently focused element, nil when none.
	ActiveElement() Element
}
