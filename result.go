// result.go — the generic two-state Result container.
//
// A Result is either a Success holding a value of type T or an Error holding
// a value of type E. The zero value is a well-formed Error-state Result whose
// error is E's zero value; there is no third, uninitialized state.
//
// Accessors come in three flavours:
//   - Must*:  return the active payload or panic with a *StateError. They
//     exist as a trap for branching on the wrong state.
//   - *Or*:   never fail; return a zero value or a fallback.
//   - Get*:   comma-ok forms.
package xgxresult

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched (via errors.Is) by every StateError.
var ErrInvalidState = errors.New("xgxresult: invalid state access")

// StateError is the panic value of a strict accessor called in the wrong
// state. Cause, when set, is the error held by the Result.
type StateError struct {
	Op    string
	Cause error
}

func (e *StateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("xgxresult: %s called on a result in the wrong state: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("xgxresult: %s called on a result in the wrong state", e.Op)
}

func (e *StateError) Unwrap() error { return e.Cause }

// Is reports true for ErrInvalidState.
func (e *StateError) Is(target error) bool { return target == ErrInvalidState }

// Result is either a Success value of type T or an Error value of type E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Success Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns an Error Result holding e.
//
// Example:
//
//	r := xgxresult.Err[int]("bad") // Result[int, string]
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsSuccess reports whether r holds a value.
func (r Result[T, E]) IsSuccess() bool { return r.ok }

// IsError reports whether r holds an error.
func (r Result[T, E]) IsError() bool { return !r.ok }

// MustValue returns the success value. It panics with a *StateError if r is
// in the Error state; when E is a Go error, it becomes the StateError cause.
func (r Result[T, E]) MustValue() T {
	if !r.ok {
		cause, _ := any(r.err).(error)
		panic(&StateError{Op: "MustValue", Cause: cause})
	}
	return r.value
}

// MustError returns the error value. It panics with a *StateError if r is
// in the Success state.
func (r Result[T, E]) MustError() E {
	if r.ok {
		panic(&StateError{Op: "MustError"})
	}
	return r.err
}

// ValueOrZero returns the value, or T's zero value in the Error state.
func (r Result[T, E]) ValueOrZero() T {
	return r.value
}

// ValueOr returns the value, or fallback in the Error state.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// ErrorOrZero returns the error, or E's zero value in the Success state.
func (r Result[T, E]) ErrorOrZero() E {
	return r.err
}

// Get returns the value (zero in the Error state) and whether r is a Success.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Unpack returns both payloads and whether r is a Success. Exactly one of
// the payloads is meaningful; the other is its zero value.
func (r Result[T, E]) Unpack() (T, E, bool) {
	return r.value, r.err, r.ok
}

// GetError returns the error (zero in the Success state) and whether r is an
// Error.
func (r Result[T, E]) GetError() (E, bool) {
	return r.err, !r.ok
}

// Equal reports whether r and o are in the same state with equal payloads.
func (r Result[T, E]) Equal(o Result[T, E]) bool {
	if r.ok != o.ok {
		return false
	}
	if r.ok {
		return equalOf(r.value, o.value)
	}
	return equalOf(r.err, o.err)
}

// Compare orders r against o: every Success precedes every Error; within a
// state the payloads are compared.
func (r Result[T, E]) Compare(o Result[T, E]) int {
	switch {
	case r.ok && !o.ok:
		return -1
	case !r.ok && o.ok:
		return 1
	case r.ok:
		return sign(compareOf(r.value, o.value))
	}
	return sign(compareOf(r.err, o.err))
}

// Hash returns the hash of the active payload, 0 when it is nil.
func (r Result[T, E]) Hash() uint64 {
	if r.ok {
		return hashOf(r.value)
	}
	return hashOf(r.err)
}

// Equals is the untyped counterpart of Equal. It accepts Result[T, E] and
// *Result[T, E]; when E is Error it also accepts the equivalent Of[T].
func (r Result[T, E]) Equals(other any) bool {
	o, ok := r.coerce(other)
	return ok && r.Equal(o)
}

// CompareTo is the untyped counterpart of Compare. It accepts the same
// arguments as Equals and fails with ErrNilArgument or ErrIncomparable.
func (r Result[T, E]) CompareTo(other any) (int, error) {
	if isNil(other) {
		return 0, ErrNilArgument
	}
	o, ok := r.coerce(other)
	if !ok {
		return 0, fmt.Errorf("%w: %T vs %T", ErrIncomparable, r, other)
	}
	return r.Compare(o), nil
}

func (r Result[T, E]) coerce(other any) (Result[T, E], bool) {
	switch o := other.(type) {
	case Result[T, E]:
		return o, true
	case *Result[T, E]:
		if o != nil {
			return *o, true
		}
		return Result[T, E]{}, false
	case interface{ Generic() Result[T, Error] }:
		if isNil(o) {
			return Result[T, E]{}, false
		}
		g, ok := any(o.Generic()).(Result[T, E])
		return g, ok
	}
	return Result[T, E]{}, false
}

// String renders r as Success(<value>) or Error(<error>), with "null" for a
// nil payload.
func (r Result[T, E]) String() string {
	if r.ok {
		return "Success(" + formatData(any(r.value)) + ")"
	}
	return "Error(" + formatData(any(r.err)) + ")"
}

// CompareResults orders two Results like Result.Compare; it suits
// slices.SortFunc.
func CompareResults[T, E any](a, b Result[T, E]) int {
	return a.Compare(b)
}
