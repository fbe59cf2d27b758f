// doc.go — package documentation for xgx-result
//
// Package xgxresult provides Result containers for fallible operations and a
// compact, immutable Error value used as their default error payload. It is
// designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As/Unwrap, fmt, log/slog)
//   - Policy-free (no logging/retry/HTTP rules in core)
//
// # Results
//
// Result[T, E] holds either a success value or an error value, never both.
// Of[T] is the shorthand for Result[T, Error]; the two convert in O(1).
//
//	r := xgxresult.Err[int]("bad")   // Result[int, string]
//	r.IsError()                      // true
//	r.ValueOr(99)                    // 99
//	v, e, ok := r.Unpack()           // 0, "bad", false
//
//	o := xgxresult.Success(42)       // Of[int]
//	n, err := o.Tuple()              // back to Go's (T, error)
//
// The zero value of a Result is a valid Error-state Result. Must* accessors
// panic with a *StateError when called in the wrong state; check IsSuccess or
// use the comma-ok forms first.
//
// Ordering puts every success before every error, so sorting groups the
// successful outcomes first.
//
// # Error Shapes
//
// An Error stores a single reference. Its dynamic type selects the shape:
//
//	+---------------------------+-------------------+----------------------------+
//	| Constructor               | Kind              | Allocates?                 |
//	+---------------------------+-------------------+----------------------------+
//	| Error{}                   | KindEmpty         | no                         |
//	| New(msg)                  | KindMessage       | only the interface box     |
//	| NewData/Wrap/Compose      | KindRich          | one record                 |
//	| FromError(err)            | KindForeign       | no (err stored as-is)      |
//	| FromInfo(info)            | KindCustom        | no (info stored as-is)     |
//	| FromEnum(v)               | KindEnum          | no, for declared values    |
//	+---------------------------+-------------------+----------------------------+
//
// Message, Data and InnerError are derived from the stored reference.
// Equality, ordering and hashing use only that derived triple, except that
// two Errors wrapping Go errors are equal only if they wrap the same error.
//
// # Interop
//
//   - Error.AsError returns a Go error whose Unwrap chain mirrors the
//     InnerError chain; FromError(e.AsError()) returns e unchanged, however
//     many times it round-trips.
//   - FromError keeps foreign errors as-is: Data is the error itself, so
//     FindData[*fs.PathError](e) recovers typed errors anywhere in a chain.
//   - Error implements slog.LogValuer; zerolog and zap integrations live in
//     the zerologx and zapx packages.
//
// # Enums
//
// Integer enums implement Enum to become Errors with per-member messages.
// Tables are built once per type on first use and shared read-only by all
// goroutines. The built-in Code enum classifies common failures.
//
// # Stacks
//
// Errors never capture stacks. Try recovers a panic into a Failure wrapping
// a *PanicError, the one place a stack is recorded; String prints it.
package xgxresult
