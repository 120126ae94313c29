package memdom

import (
	"sync/atomic"

	"golang.org/x/net/html"

	"github.com/go-drift/selectmirror/pkg/dom"
)

// subscription is one listener registration, on an element when el is
// set, otherwise document-wide.
type subscription struct {
	el       *element
	doc      *Document
	t        dom.EventType
	fn       func(dom.Event)
	canceled atomic.Bool
}

// Cancel detaches the listener. Cancelling twice is a no-op.
func (s *subscription) Cancel() {
	s.canceled.CompareAndSwap(false, true)
}

// deliver fires listeners on origin, bubbles along the ancestor chain,
// then fires document-wide listeners. Listener slices are copied before
// invocation so handlers may cancel or register listeners mid-dispatch;
// the document-wide list is snapshotted up front, so a listener attached
// while the event is in flight never sees the event that attached it.
func (d *Document) deliver(origin *element, ev dom.Event) {
	docSubs := make([]*subscription, len(d.subs[ev.Type]))
	copy(docSubs, d.subs[ev.Type])
	for n := origin.n; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		el, ok := d.elems[n]
		if !ok {
			continue
		}
		fire(elementSubs(el)[ev.Type], ev)
	}
	fire(docSubs, ev)
}

func elementSubs(el dom.Element) map[dom.EventType][]*subscription {
	switch v := el.(type) {
	case *element:
		return v.subs
	case *selectElement:
		return v.element.subs
	}
	return nil
}

func fire(subs []*subscription, ev dom.Event) {
	if len(subs) == 0 {
		return
	}
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		if s.canceled.Load() {
			continue
		}
		s.fn(ev)
	}
}
