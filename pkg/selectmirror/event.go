package selectmirror

import "github.com/go-drift/selectmirror/pkg/dom"

// Datum is one attribute copied from a source option onto its replica
// item. Value is a string, or boolean true for attributes written bare.
type Datum struct {
	Key   string
	Value any
}

// Data is the ordered attribute mapping carried by a replica item.
type Data []Datum

// Get returns the value for key and whether it is present.
func (d Data) Get(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (d Data) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// ChangeEvent is the payload delivered to change callbacks.
type ChangeEvent struct {
	// Type is always "change".
	Type string
	// Target is the replica container.
	Target dom.Element
	// SelectedTarget is the newly selected replica item element.
	SelectedTarget dom.Element
	// Data holds the item's copied attributes.
	Data Data
}

// ChangeFunc receives replica change notifications.
type ChangeFunc func(ChangeEvent)
