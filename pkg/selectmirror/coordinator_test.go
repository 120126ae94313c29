package selectmirror

import (
	"testing"

	"github.com/go-drift/selectmirror/pkg/dom"
	"github.com/go-drift/selectmirror/pkg/dom/memdom"
	"github.com/go-drift/selectmirror/pkg/errors"
)

const multiMarkup = `<html><body>
<select class="pick" id="a">
  <option selected>a0</option><option>a1</option><option>a2</option>
</select>
<select class="pick" id="b">
  <option>b0</option><option selected>b1</option><option>b2</option>
</select>
<select class="pick" id="c">
  <option>c0</option><option>c1</option><option selected>c2</option>
</select>
</body></html>`

func multiPage(t *testing.T) *memdom.Document {
	t.Helper()
	d, err := memdom.ParseString(multiMarkup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func TestNewBySelector(t *testing.T) {
	doc := multiPage(t)

	c, err := New(doc, "select.pick")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	engines := c.Engines()
	if len(engines) != 3 {
		t.Fatalf("engines = %d, want 3", len(engines))
	}
	// Resolution order is document order.
	for i, want := range []string{idPrefix + "a", idPrefix + "b", idPrefix + "c"} {
		if got := engines[i].Source().ID(); got != want {
			t.Errorf("engine %d wraps %q, want %q", i, got, want)
		}
	}
}

func TestNewByControl(t *testing.T) {
	doc := multiPage(t)
	els, err := doc.QuerySelectorAll("#a")
	if err != nil || len(els) != 1 {
		t.Fatalf("lookup: %v", err)
	}
	ctrl := els[0].(dom.SelectControl)

	c, err := New(doc, ctrl)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(c.Engines()) != 1 {
		t.Fatalf("engines = %d", len(c.Engines()))
	}
}

func TestNewLookupFailure(t *testing.T) {
	doc := multiPage(t)

	for _, target := range []any{"select.nothing", nil, []dom.SelectControl{}} {
		_, err := New(doc, target)
		if !errors.Is(err, errors.KindLookup) {
			t.Errorf("New(%v) = %v, want lookup error", target, err)
		}
	}
}

func TestNewArgumentFailure(t *testing.T) {
	doc := multiPage(t)

	if _, err := New(doc, 42); !errors.Is(err, errors.KindArgument) {
		t.Errorf("unsupported target: %v, want argument error", err)
	}

	if _, err := New(doc, "??"); !errors.Is(err, errors.KindArgument) {
		t.Errorf("bad selector: %v, want argument error", err)
	}

	// A collision is normalized to an argument error but keeps its cause.
	if _, err := New(doc, "select.pick"); err != nil {
		t.Fatalf("first wrap: %v", err)
	}
	_, err := New(doc, "select.pick")
	if !errors.Is(err, errors.KindArgument) {
		t.Errorf("double wrap = %v, want argument error", err)
	}
	if !errors.Is(err, errors.KindCollision) {
		t.Errorf("double wrap = %v, want collision cause preserved", err)
	}
}

func TestBroadcastSelect(t *testing.T) {
	doc := multiPage(t)
	c, err := New(doc, "select.pick")
	if err != nil {
		t.Fatal(err)
	}

	// Engines start at mismatched indices (0, 1, 2); each must end up
	// independently correct.
	var order []string
	c.OnChange(func(ev ChangeEvent) {
		order = append(order, ev.SelectedTarget.Text())
	})
	if err := c.Select(1); err != nil {
		t.Fatalf("Select: %v", err)
	}

	for i, e := range c.Engines() {
		if e.SelectedIndex() != 1 {
			t.Errorf("engine %d index = %d, want 1", i, e.SelectedIndex())
		}
	}
	// Engine b was already at 1: strict no-op, no callback; a then c fire
	// in resolution order.
	if len(order) != 2 || order[0] != "a1" || order[1] != "c1" {
		t.Errorf("callback order = %v, want [a1 c1]", order)
	}
}

func TestBroadcastSelectStopsAtError(t *testing.T) {
	doc, err := memdom.ParseString(`<html><body>
<select class="pick"><option selected>a0</option><option>a1</option></select>
<select class="pick"><option selected>b0</option></select>
</body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(doc, "select.pick")
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Select(1); !errors.Is(err, errors.KindBounds) {
		t.Fatalf("Select = %v, want bounds error from second engine", err)
	}
	// The first engine was updated before the error surfaced.
	if got := c.Engines()[0].SelectedIndex(); got != 1 {
		t.Errorf("engine 0 index = %d, want 1", got)
	}
}

func TestChainingAndFrozenView(t *testing.T) {
	doc := multiPage(t)
	c, err := New(doc, "select.pick")
	if err != nil {
		t.Fatal(err)
	}

	if got := c.OnChange(nil).RemoveListeners().Destroy(false); got != c {
		t.Error("broadcast operations must return the coordinator")
	}

	view := c.Engines()
	view[0] = nil
	if c.Engines()[0] == nil {
		t.Error("Engines view is not a copy")
	}
}

func TestDestroyBroadcast(t *testing.T) {
	doc := multiPage(t)
	c, err := New(doc, "select.pick")
	if err != nil {
		t.Fatal(err)
	}

	c.Destroy(true)

	for _, id := range []string{"a", "b", "c"} {
		els, err := doc.QuerySelectorAll("#" + id)
		if err != nil || len(els) != 1 {
			t.Fatalf("source %s not restored: %v", id, err)
		}
		if els[0].HasClass(ClassHidden) {
			t.Errorf("source %s still hidden", id)
		}
	}
	els, err := doc.QuerySelectorAll("." + ClassTrigger)
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 0 {
		t.Errorf("%d replica triggers still in document", len(els))
	}
}
