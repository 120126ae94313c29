// Package selectmirror replaces native selection controls with
// custom-rendered replicas kept in two-way sync with the originals.
//
// A [Coordinator] is the entry point: it resolves one or more source
// controls from the hosting document and builds one sync engine per
// control. Each engine constructs a replica widget (container, trigger,
// item list) next to its source, hides the source, and propagates
// selection changes in both directions. A click on a replica item is
// mirrored onto the native control and announced with a synthetic
// change event; a native change event is mapped back onto the replica.
// A one-shot guard keeps the two directions from feeding each other.
//
// The engine never touches a concrete document; it operates through the
// [github.com/go-drift/selectmirror/pkg/dom] interfaces, so any host
// that can satisfy that contract can be mirrored.
//
// Basic usage:
//
//	c, err := selectmirror.New(doc, "select.country")
//	if err != nil {
//	    return err
//	}
//	c.OnChange(func(ev selectmirror.ChangeEvent) {
//	    log.Printf("picked %v", ev.Data)
//	})
//
// Styling is left to the consuming stylesheet via the Class* marker
// constants.
package selectmirror

// Marker classes forming the CSS contract. Consumers style these; the
// engine only toggles them.
const (
	// ClassMarker is the reserved widget marker. It is placed on every
	// replica container and on the wrapped source control, and doubles as
	// the already-wrapped probe: wrapping a control that carries it fails
	// with a collision error.
	ClassMarker = "selectmirror"

	// ClassOpen marks a container whose item list is open.
	ClassOpen = "selectmirror-open"

	// ClassHidden hides the wrapped source control.
	ClassHidden = "selectmirror-hidden"

	// ClassDisabled on a container suppresses open interaction.
	ClassDisabled = "selectmirror-disabled"

	// ClassTrigger marks the button-like element showing the selection.
	ClassTrigger = "selectmirror-trigger"

	// ClassList marks the replica item list.
	ClassList = "selectmirror-list"

	// ClassItem marks one replica item row.
	ClassItem = "selectmirror-item"

	// ClassSelected marks the currently selected replica item.
	ClassSelected = "selectmirror-selected"
)

// idPrefix is prepended to the source identifier while it is wrapped so
// the replica container can take over the original name in stylesheets.
const idPrefix = "selectmirror-"
