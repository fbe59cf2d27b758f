// predicates.go — classification helpers over Error chains.
//
// Every helper looks at each link from the outermost inward, including the
// Unwrap chain of wrapped Go errors. HTTP mapping and retry backoff belong to
// callers.
package xgxresult

// HasEnum reports whether any link of e carries the enum value target as Data.
func HasEnum[E Enum[E]](e Error, target E) bool {
	found := false
	Walk(e, func(link Error) bool {
		if v, ok := link.Data().(E); ok && v == target {
			found = true
			return false
		}
		return true
	})
	return found
}

// CodeOf returns the first Code found along e's chain.
func CodeOf(e Error) (Code, bool) {
	return FindData[Code](e)
}

// IsRetryable reports whether the first Code in e's chain names a transient
// condition: unavailable, timeout or too_many_requests.
func IsRetryable(e Error) bool {
	c, ok := CodeOf(e)
	if !ok {
		return false
	}
	switch c {
	case CodeUnavailable, CodeTimeout, CodeTooManyRequests:
		return true
	default:
		return false
	}
}
