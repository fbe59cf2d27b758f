// of.go — the shorthand Result whose error type is Error.
//
// Of[T] physically holds a Result[T, Error] and delegates to it, so the two
// forms have the same size and convert in O(1) without allocating. It is
// named Of so call sites read xgxresult.Of[T].
package xgxresult

// Of is a Result[T, Error] with a terser surface.
type Of[T any] struct {
	r Result[T, Error]
}

// Success returns a Success Of holding v.
func Success[T any](v T) Of[T] {
	return Of[T]{r: Ok[T, Error](v)}
}

// Failure returns an Error Of holding e.
func Failure[T any](e Error) Of[T] {
	return Of[T]{r: Err[T](e)}
}

// FromGeneric converts a Result[T, Error] into its shorthand form.
func FromGeneric[T any](r Result[T, Error]) Of[T] {
	return Of[T]{r: r}
}

// FromTuple converts a Go (value, error) pair. A non-nil err yields a
// Failure built with FromError; otherwise v is returned as a Success.
func FromTuple[T any](v T, err error) Of[T] {
	if err != nil {
		return Failure[T](FromError(err))
	}
	return Success(v)
}

// Generic returns o as a Result[T, Error].
func (o Of[T]) Generic() Result[T, Error] { return o.r }

// Tuple returns o as a Go (value, error) pair; the error is built with
// Error.AsError.
func (o Of[T]) Tuple() (T, error) {
	if o.r.ok {
		return o.r.value, nil
	}
	return o.r.value, o.r.err.AsError()
}

// IsSuccess reports whether o holds a value.
func (o Of[T]) IsSuccess() bool { return o.r.IsSuccess() }

// IsError reports whether o holds an Error.
func (o Of[T]) IsError() bool { return o.r.IsError() }

// MustValue returns the success value. In the Error state it panics with a
// *StateError whose Cause is the held Error's AsError form.
func (o Of[T]) MustValue() T {
	if !o.r.ok {
		panic(&StateError{Op: "MustValue", Cause: o.r.err.AsError()})
	}
	return o.r.value
}

// MustError returns the Error, panicking with a *StateError on success.
func (o Of[T]) MustError() Error { return o.r.MustError() }

// ValueOrZero returns the value, or the zero T in the Error state.
func (o Of[T]) ValueOrZero() T { return o.r.ValueOrZero() }

// ValueOr returns the value, or fallback in the Error state.
func (o Of[T]) ValueOr(fallback T) T { return o.r.ValueOr(fallback) }

// ErrorOrZero returns the Error, or the empty Error on success.
func (o Of[T]) ErrorOrZero() Error { return o.r.ErrorOrZero() }

// Get returns the value and whether o is a success.
func (o Of[T]) Get() (T, bool) { return o.r.Get() }

// Unpack returns both payloads and whether o is a success.
func (o Of[T]) Unpack() (T, Error, bool) { return o.r.Unpack() }

// GetError returns the Error and whether o is in the Error state.
func (o Of[T]) GetError() (Error, bool) { return o.r.GetError() }

// Equal reports whether o and other are in the same state with equal payloads.
func (o Of[T]) Equal(other Of[T]) bool { return o.r.Equal(other.r) }

// Compare orders o against other; every success precedes every Error.
func (o Of[T]) Compare(other Of[T]) int { return o.r.Compare(other.r) }

// Hash returns the hash of the active payload, 0 when it is nil.
func (o Of[T]) Hash() uint64 { return o.r.Hash() }

// String renders o as Success(value) or Error(report).
func (o Of[T]) String() string { return o.r.String() }

// Equals is the untyped counterpart of Equal.
func (o Of[T]) Equals(other any) bool { return o.r.Equals(unwrapOf[T](other)) }

// CompareTo accepts Of[T], *Of[T], Result[T, Error] and *Result[T, Error].
func (o Of[T]) CompareTo(other any) (int, error) {
	return o.r.CompareTo(unwrapOf[T](other))
}

// unwrapOf maps a *Of[T] argument onto its generic form; other values pass
// through to Result's own coercion.
func unwrapOf[T any](other any) any {
	if p, ok := other.(*Of[T]); ok {
		if p == nil {
			return nil
		}
		return p.r
	}
	return other
}

// CompareOf orders two Ofs like Of.Compare; it suits slices.SortFunc.
func CompareOf[T any](a, b Of[T]) int {
	return a.Compare(b)
}
