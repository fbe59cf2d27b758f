// unwrap.go — traversal of InnerError chains and identity helpers.
//
// Traversal semantics:
//   - Walk:  pre-order from e toward the root cause. Stops early if visit
//     returns false.
//   - Chain: every link, outermost first.
//   - Root:  the deepest link (e itself when it has no inner error).
//
// Chains built by this package are acyclic by construction, but a custom
// ChainedInfo can return itself. Traversal is therefore bounded by maxDepth.
//
// Identity:
//   - Two foreign errors are "the same" only if they are the same value.
//     Interface values whose dynamic type is not comparable panic under ==, so
//     identity uses pointer identity for pointer types, == for comparable
//     dynamics and reflect.DeepEqual for the rest.
package xgxresult

import "reflect"

type multiUnwrapper interface{ Unwrap() []error }

const maxDepth = 1 << 12 // generous cap against runaway chains

// isComparable reports whether v's dynamic type is safe to compare with ==.
func isComparable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic values.
func ptrID(v any) (uintptr, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// sameRef reports whether a and b are the same object.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if pa, ok := ptrID(a); ok {
		pb, ok := ptrID(b)
		return ok && pa == pb && reflect.TypeOf(a) == reflect.TypeOf(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if isComparable(a) && reflect.ValueOf(a).Comparable() {
		return a == b
	}
	// Values like slice-backed error lists have no identity.
	return reflect.DeepEqual(a, b)
}

// Walk visits e and then each InnerError in turn. If visit returns false,
// traversal stops early.
func Walk(e Error, visit func(Error) bool) {
	if visit == nil {
		return
	}
	cur := e
	for depth := 0; depth < maxDepth; depth++ {
		if !visit(cur) {
			return
		}
		next, ok := cur.InnerError()
		if !ok {
			return
		}
		cur = next
	}
}

// Chain returns e followed by every InnerError, outermost first.
func Chain(e Error) []Error {
	out := make([]Error, 0, 4)
	Walk(e, func(link Error) bool {
		out = append(out, link)
		return true
	})
	return out
}

// Root returns the deepest link of e's chain.
func Root(e Error) Error {
	root := e
	Walk(e, func(link Error) bool {
		root = link
		return true
	})
	return root
}
