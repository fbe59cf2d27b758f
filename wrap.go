// wrap.go — conversion between Error and Go's error interface.
//
// Round trip contract
//   - FromError(e.AsError()) returns e itself, for any e and any chain depth.
//   - AsError on an Error that already wraps a Go error returns that error
//     unchanged, so repeated round trips never add wrapper layers.
//
// The wrapper produced by AsError is private; FromError detects it by its
// concrete type, not via errors.As, so an AsError result that a caller wrapped
// again (fmt.Errorf("...: %w", ...)) stays a foreign error whose inner chain
// leads back to the original Error.
package xgxresult

import (
	"errors"
	"strings"
)

// wrappedError is the error form of an Error that is not itself backed by a
// Go error.
type wrappedError struct {
	e Error
}

// Error returns the message, followed by a "Data: <value>" line when the
// Error carries data, so loggers that read only Error() still see it.
func (w *wrappedError) Error() string {
	msg := w.e.Message()
	data := w.e.Data()
	if data == nil {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString("\nData: ")
	sb.WriteString(formatData(data))
	return sb.String()
}

// Unwrap exposes the inner Error chain as a Go error chain.
func (w *wrappedError) Unwrap() error {
	if inner, ok := w.e.InnerError(); ok {
		return inner.AsError()
	}
	return nil
}

// FromError converts a Go error into an Error.
//   - nil → the empty Error
//   - an error produced by Error.AsError → the original Error
//   - any other error → stored as-is; its Error() text is the message, the
//     error itself is Data, and its Unwrap chain becomes InnerError
func FromError(err error) Error {
	if err == nil {
		return Error{}
	}
	if w, ok := err.(*wrappedError); ok {
		return w.e
	}
	return Error{p: err}
}

// AsError returns e as a Go error.
//
// If e wraps a Go error, that same value is returned. It is a live object:
// re-panicking it or returning it from unrelated call sites aliases the
// original failure, so prefer wrapping it with %w. Otherwise a new error is
// built whose Unwrap chain mirrors e's InnerError chain.
func (e Error) AsError() error {
	if err, ok := e.foreign(); ok {
		return err
	}
	return &wrappedError{e: e}
}

// unwrapForeign follows Unwrap() error, or the first child of Unwrap() []error
// for joined errors.
func unwrapForeign(err error) error {
	if u := errors.Unwrap(err); u != nil {
		return u
	}
	if m, ok := err.(multiUnwrapper); ok {
		for _, c := range m.Unwrap() {
			if c != nil {
				return c
			}
		}
	}
	return nil
}
