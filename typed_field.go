// typed_field.go — type-safe lookup of Data payloads along an Error chain.
//
// Overview
//
//	FindData walks the InnerError chain outermost first and returns the first
//	Data payload whose dynamic type is assignable to T. The topmost match wins:
//	a chain carrying int data at two levels reports the outer value.
//
// Usage
//
//	err := xgxresult.WrapData(xgxresult.NewData("read", int64(7)), "load", 3)
//	n, ok := xgxresult.FindData[int](err)   // n=3, ok=true
//	pe, ok := xgxresult.FindData[*fs.PathError](xgxresult.FromError(ferr))
//
// Caveats
//
//	T may be an interface type; Data values are matched by type assertion, so
//	no conversions are made (int64 data never matches FindData[int]).
package xgxresult

import "fmt"

// FindData returns the first Data payload in e's chain assignable to T.
// It returns (zero, false) when no link, including e itself, matches.
func FindData[T any](e Error) (T, bool) {
	var (
		out   T
		found bool
	)
	Walk(e, func(link Error) bool {
		if v, ok := link.Data().(T); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// MustFindData is like FindData but panics if no link carries a T.
//
// Use sparingly: it is intended for tests or for contexts where absence is a
// programming error rather than a runtime condition.
func MustFindData[T any](e Error) T {
	v, ok := FindData[T](e)
	if !ok {
		var zero T
		panic(fmt.Errorf("xgxresult.MustFindData[%T]: no matching data in chain", zero))
	}
	return v
}
