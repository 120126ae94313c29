package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New("selectmirror.Engine.Select", KindBounds, "index %d outside option range", 7)
	got := err.Error()
	if !strings.Contains(got, "selectmirror.Engine.Select") {
		t.Errorf("error string %q missing op", got)
	}
	if !strings.Contains(got, "[bounds]") {
		t.Errorf("error string %q missing kind", got)
	}
	if !strings.Contains(got, "index 7") {
		t.Errorf("error string %q missing message", got)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLookup, "lookup"},
		{KindCollision, "collision"},
		{KindBounds, "bounds"},
		{KindArgument, "argument"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWrapNil(t *testing.T) {
	if got := Wrap("op", KindArgument, nil); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}

func TestKindOf(t *testing.T) {
	err := New("op", KindCollision, "already wrapped")
	if got := KindOf(err); got != KindCollision {
		t.Errorf("KindOf = %v, want collision", got)
	}
	if got := KindOf(fmt.Errorf("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want unknown", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want unknown", got)
	}
}

func TestIsWalksChain(t *testing.T) {
	inner := New("selectmirror.newEngine", KindCollision, "already wrapped")
	outer := Wrap("selectmirror.New", KindArgument, inner)

	if !Is(outer, KindArgument) {
		t.Error("outer kind not found")
	}
	if !Is(outer, KindCollision) {
		t.Error("inner kind not found through chain")
	}
	if Is(outer, KindBounds) {
		t.Error("absent kind reported present")
	}
	if Is(nil, KindArgument) {
		t.Error("nil error reported present")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap("op", KindLookup, cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is cannot reach the wrapped cause")
	}
}
