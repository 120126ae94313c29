// Package errors provides structured error handling for selectmirror.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLookup indicates that resolving a selector produced no controls.
	KindLookup
	// KindCollision indicates a control already wrapped by a replica.
	KindCollision
	// KindBounds indicates a selection index outside the option range.
	KindBounds
	// KindArgument indicates invalid construction input.
	KindArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindCollision:
		return "collision"
	case KindBounds:
		return "bounds"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Error represents a structured selectmirror error.
type Error struct {
	// Op is the operation that failed (e.g., "selectmirror.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error, nil for leaf errors.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a leaf error with a formatted message.
func New(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap annotates err with an operation and kind. A nil err yields nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf extracts the ErrorKind from err, KindUnknown when err is not a
// selectmirror error.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind ErrorKind) bool {
	for err != nil {
		var e *Error
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
