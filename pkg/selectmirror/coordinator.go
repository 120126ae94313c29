package selectmirror

import (
	"github.com/go-drift/selectmirror/pkg/dom"
	"github.com/go-drift/selectmirror/pkg/errors"
)

// Coordinator wraps one or more native selection controls, owning one
// sync engine per control. The engine sequence is fixed at construction;
// every broadcast operation walks it in resolution order.
type Coordinator struct {
	engines []*Engine
}

// New wraps the controls identified by target, which may be a CSS
// selector string, a single [dom.SelectControl], or a
// []dom.SelectControl. It fails with a lookup error when nothing
// resolves, and with an argument error when resolution or any engine
// construction fails.
func New(doc dom.Document, target any) (*Coordinator, error) {
	const op = "selectmirror.New"
	controls, err := resolve(doc, target)
	if err != nil {
		return nil, err
	}
	if len(controls) == 0 {
		return nil, errors.New(op, errors.KindLookup, "no selection controls matched %v", target)
	}
	c := &Coordinator{engines: make([]*Engine, 0, len(controls))}
	for _, ctrl := range controls {
		eng, err := newEngine(doc, ctrl)
		if err != nil {
			return nil, errors.Wrap(op, errors.KindArgument, err)
		}
		c.engines = append(c.engines, eng)
	}
	return c, nil
}

func resolve(doc dom.Document, target any) ([]dom.SelectControl, error) {
	const op = "selectmirror.New"
	switch v := target.(type) {
	case string:
		els, err := doc.QuerySelectorAll(v)
		if err != nil {
			return nil, errors.Wrap(op, errors.KindArgument, err)
		}
		var out []dom.SelectControl
		for _, el := range els {
			if ctrl, ok := el.(dom.SelectControl); ok {
				out = append(out, ctrl)
			}
		}
		return out, nil
	case dom.SelectControl:
		return []dom.SelectControl{v}, nil
	case []dom.SelectControl:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, errors.New(op, errors.KindArgument, "unsupported target type %T", target)
	}
}

// Select broadcasts a selection to every engine in order, stopping at
// the first engine error.
func (c *Coordinator) Select(index int) error {
	for _, e := range c.engines {
		if err := e.Select(index); err != nil {
			return err
		}
	}
	return nil
}

// OnChange registers fn on every engine and returns the coordinator.
func (c *Coordinator) OnChange(fn ChangeFunc) *Coordinator {
	for _, e := range c.engines {
		e.OnChange(fn)
	}
	return c
}

// RemoveListeners detaches listeners on every engine and returns the
// coordinator.
func (c *Coordinator) RemoveListeners() *Coordinator {
	for _, e := range c.engines {
		e.RemoveListeners()
	}
	return c
}

// Destroy tears down every engine and returns the coordinator. See
// [Engine.Destroy] for restore semantics.
func (c *Coordinator) Destroy(restore bool) *Coordinator {
	for _, e := range c.engines {
		e.Destroy(restore)
	}
	return c
}

// Engines returns a copy of the engine sequence in resolution order.
func (c *Coordinator) Engines() []*Engine {
	return append([]*Engine(nil), c.engines...)
}
