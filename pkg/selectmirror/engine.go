package selectmirror

import (
	"strings"

	"github.com/go-drift/selectmirror/pkg/dom"
	"github.com/go-drift/selectmirror/pkg/errors"
)

// Engine owns the lifecycle of one replica widget bound to one native
// selection control. Engines are created by a [Coordinator]; the zero
// value is not usable.
type Engine struct {
	doc dom.Document
	src dom.SelectControl

	container dom.Element
	trigger   dom.Element
	list      dom.Element
	items     []*Item

	selected int
	// fromNative suppresses the next synthetic native change dispatch
	// while a native-driven update replays the click path.
	fromNative bool
	touch      bool
	destroyed  bool

	origID      string
	origClasses []string

	onChange ChangeFunc

	triggerSub  dom.Subscription
	changeSub   dom.Subscription
	leaveSub    dom.Subscription
	overSub     dom.Subscription
	docClickSub dom.Subscription
	itemSubs    []dom.Subscription
	cancelGrace func()
}

// Item is one replica row mirroring a source option.
type Item struct {
	el    dom.Element
	value string
	label string
	data  Data
	index int
}

// Element returns the rendered item element.
func (it *Item) Element() dom.Element { return it.el }

// Value returns the mirrored option value.
func (it *Item) Value() string { return it.value }

// Label returns the mirrored option label.
func (it *Item) Label() string { return it.label }

// Index returns the item's position in option order.
func (it *Item) Index() int { return it.index }

// Data returns a copy of the item's attribute mapping.
func (it *Item) Data() Data {
	return append(Data(nil), it.data...)
}

// newEngine builds the replica structure for src, inserts it into the
// document, and wires event propagation. It fails with a collision
// error when src already carries the reserved marker class.
func newEngine(doc dom.Document, src dom.SelectControl) (*Engine, error) {
	const op = "selectmirror.newEngine"
	if src.HasClass(ClassMarker) {
		return nil, errors.New(op, errors.KindCollision,
			"control %s already carries class %q", describe(src), ClassMarker)
	}

	e := &Engine{
		doc:         doc,
		src:         src,
		selected:    -1,
		touch:       doc.Capabilities().Touch(),
		origID:      src.ID(),
		origClasses: append([]string(nil), src.Classes()...),
	}

	e.container = doc.CreateElement("div")
	e.trigger = doc.CreateElement("span")
	e.trigger.AddClass(ClassTrigger)
	e.list = doc.CreateElement("ul")
	e.list.AddClass(ClassList)

	initial, matched := 0, false
	for i, opt := range src.Options() {
		item := &Item{
			el:    doc.CreateElement("li"),
			value: opt.Value,
			label: opt.Label,
			index: i,
		}
		item.el.AddClass(ClassItem)
		item.el.SetText(opt.Label)
		for _, a := range opt.Attrs {
			// The native selection marker feeds the initial index
			// instead of being mirrored; first match wins.
			if a.Name == "selected" {
				if !matched {
					initial, matched = i, true
				}
				continue
			}
			mirrored := a.Name
			if !strings.HasPrefix(mirrored, "data-") {
				mirrored = "data-" + mirrored
			}
			item.el.SetAttr(mirrored, a.Value)
			if a.Value == "" {
				item.data = append(item.data, Datum{Key: a.Name, Value: true})
			} else {
				item.data = append(item.data, Datum{Key: a.Name, Value: a.Value})
			}
		}
		e.items = append(e.items, item)
		e.list.AppendChild(item.el)
	}

	e.container.AppendChild(e.trigger)
	e.container.AppendChild(e.list)
	if w := src.RenderedWidth(); w > 0 {
		e.container.SetWidth(w)
	}
	e.container.SetClasses(e.origClasses)
	e.container.AddClass(ClassMarker)
	src.InsertAfter(e.container)

	if len(e.items) > 0 {
		e.selected = initial
		e.items[initial].el.AddClass(ClassSelected)
		e.trigger.SetText(e.items[initial].label)
	}

	src.AddClass(ClassHidden)
	src.AddClass(ClassMarker)
	if e.origID != "" {
		src.SetID(idPrefix + e.origID)
	}

	e.triggerSub = e.trigger.Listen(dom.Click, e.onTriggerClick)
	e.changeSub = src.Listen(dom.Change, e.onNativeChange)
	for _, item := range e.items {
		item := item
		e.itemSubs = append(e.itemSubs, item.el.Listen(dom.Click, func(dom.Event) {
			e.onItemClick(item)
		}))
	}
	return e, nil
}

// Select marks the item at index as the current selection, mirrors it
// onto the native control, and notifies listeners. Selecting the
// already-selected index is a strict no-op. Returns a bounds error when
// index lies outside the option range.
func (e *Engine) Select(index int) error {
	const op = "selectmirror.Engine.Select"
	if index < 0 || index >= len(e.items) {
		return errors.New(op, errors.KindBounds,
			"index %d outside option range [0,%d)", index, len(e.items))
	}
	if index == e.selected {
		return nil
	}

	if e.selected >= 0 {
		e.items[e.selected].el.RemoveClass(ClassSelected)
	}
	item := e.items[index]
	item.el.AddClass(ClassSelected)
	e.trigger.SetText(item.label)
	e.selected = index
	e.src.SetSelectedIndex(index)

	if e.onChange != nil {
		e.onChange(ChangeEvent{
			Type:           "change",
			Target:         e.container,
			SelectedTarget: item.el,
			Data:           item.Data(),
		})
	}

	if e.fromNative {
		e.fromNative = false
		return nil
	}
	e.src.Dispatch(dom.Event{Type: dom.Change, Target: e.src})
	return nil
}

// OnChange registers fn as the change callback, replacing any previous.
func (e *Engine) OnChange(fn ChangeFunc) {
	e.onChange = fn
}

// RemoveListeners detaches every listener the engine registered and
// stops a pending close-grace timer. Safe to call repeatedly.
func (e *Engine) RemoveListeners() {
	cancelSub(&e.triggerSub)
	cancelSub(&e.changeSub)
	cancelSub(&e.leaveSub)
	cancelSub(&e.overSub)
	cancelSub(&e.docClickSub)
	for i := range e.itemSubs {
		if e.itemSubs[i] != nil {
			e.itemSubs[i].Cancel()
			e.itemSubs[i] = nil
		}
	}
	e.stopGrace()
}

// Destroy detaches all listeners and removes the replica from the
// document. When restore is true the source control's original
// identifier and class membership are put back exactly as captured at
// construction. Destroy is idempotent; later calls return the same
// handle unchanged.
func (e *Engine) Destroy(restore bool) *Engine {
	if e.destroyed {
		return e
	}
	e.destroyed = true
	e.RemoveListeners()
	e.container.Remove()
	if restore {
		if e.origID != "" {
			e.src.SetID(e.origID)
		}
		e.src.SetClasses(append([]string(nil), e.origClasses...))
	}
	return e
}

// Container returns the replica container element.
func (e *Engine) Container() dom.Element { return e.container }

// Trigger returns the replica trigger element.
func (e *Engine) Trigger() dom.Element { return e.trigger }

// Source returns the wrapped native control.
func (e *Engine) Source() dom.SelectControl { return e.src }

// Items returns the replica items in option order.
func (e *Engine) Items() []*Item {
	return append([]*Item(nil), e.items...)
}

// SelectedIndex returns the index of the currently selected item.
func (e *Engine) SelectedIndex() int { return e.selected }

// Open reports whether the replica item list is open.
func (e *Engine) Open() bool { return e.container.HasClass(ClassOpen) }

func (e *Engine) onTriggerClick(dom.Event) {
	if e.interactionDisabled() {
		return
	}
	if e.touch && !nativePrevented() {
		// Defer to the native touch UI: unhide long enough to focus the
		// source, then hide it again.
		e.src.RemoveClass(ClassHidden)
		e.src.Focus()
		e.src.AddClass(ClassHidden)
		return
	}
	if e.Open() {
		e.close()
		return
	}
	e.open()
}

// open shows the item list and arms the dismissal strategy. The
// strategy is latched here: a later flip of the global policy takes
// effect at the next open.
func (e *Engine) open() {
	e.container.AddClass(ClassOpen)
	if nativePrevented() {
		e.docClickSub = e.doc.Listen(dom.Click, e.onDocumentClick)
		return
	}
	e.leaveSub = e.container.Listen(dom.MouseLeave, e.onMouseLeave)
	e.overSub = e.container.Listen(dom.MouseOver, e.onMouseOver)
}

func (e *Engine) close() {
	e.container.RemoveClass(ClassOpen)
	e.stopGrace()
	cancelSub(&e.leaveSub)
	cancelSub(&e.overSub)
	cancelSub(&e.docClickSub)
}

func (e *Engine) onMouseLeave(dom.Event) {
	e.stopGrace()
	e.cancelGrace = startTimer(closeGrace, e.close)
}

func (e *Engine) onMouseOver(dom.Event) {
	e.stopGrace()
}

// onDocumentClick closes the list on the first click that does not land
// on a replica item, detaching itself via close.
func (e *Engine) onDocumentClick(ev dom.Event) {
	for _, item := range e.items {
		if ev.Target == item.el {
			return
		}
	}
	e.close()
}

func (e *Engine) onItemClick(item *Item) {
	if item.data.Has("disabled") {
		return
	}
	_ = e.Select(item.index) // index held by the engine, always in range
	e.close()
}

// onNativeChange maps a native selection change back onto the replica,
// replaying the click path with the feedback guard set.
func (e *Engine) onNativeChange(dom.Event) {
	e.fromNative = true
	_ = e.Select(e.src.SelectedIndex())
	// A same-index change never reaches the guard; drop it here so it
	// cannot suppress a later user-driven dispatch.
	e.fromNative = false
	e.trigger.Focus()
}

func (e *Engine) interactionDisabled() bool {
	if _, ok := e.src.Attr("disabled"); ok {
		return true
	}
	return e.container.HasClass(ClassDisabled)
}

func (e *Engine) stopGrace() {
	if e.cancelGrace != nil {
		e.cancelGrace()
		e.cancelGrace = nil
	}
}

func cancelSub(s *dom.Subscription) {
	if *s != nil {
		(*s).Cancel()
		*s = nil
	}
}

func describe(el dom.Element) string {
	if id := el.ID(); id != "" {
		return "#" + id
	}
	return "<" + el.TagName() + ">"
}
