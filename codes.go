// codes.go — built-in classification codes.
//
// Intent:
//   - Provide a small set of widely useful codes as an Enum, so FromEnum and
//     the predicates in predicates.go work out of the box.
//   - Keep semantics open-ended: no HTTP/status/retry policy beyond the
//     IsRetryable heuristic.
//   - Projects declare their own enums the same way; there is no central
//     registry.
package xgxresult

import "fmt"

// Code classifies errors into machine-readable categories. Its values are a
// dense run starting at zero, so FromEnum resolves them by slice index.
type Code int32

// Unspecified
const CodeUnknown Code = 0

// Domain / validation
const (
	CodeBadRequest Code = iota + 1
	CodeUnauthorized
	CodeForbidden
	CodeNotFound
	CodeConflict
	CodeInvalid
	CodeUnprocessable
	CodeTooManyRequests
)

// Availability / time
const (
	CodeTimeout Code = iota + 9
	CodeUnavailable
)

// Internal / meta
const (
	CodeInternal Code = iota + 11
	CodeDefect
	CodeInterrupt
)

// codeMembers is the declaration order of the built-in codes. Order is
// stable to minimize churn in docs/examples.
var codeMembers = []EnumMember[Code]{
	{Value: CodeUnknown, Name: "unknown", Message: "unknown error"},

	// Domain / validation (8)
	{Value: CodeBadRequest, Name: "bad_request", Message: "bad request"},
	{Value: CodeUnauthorized, Name: "unauthorized", Message: "unauthorized"},
	{Value: CodeForbidden, Name: "forbidden", Message: "forbidden"},
	{Value: CodeNotFound, Name: "not_found", Message: "not found"},
	{Value: CodeConflict, Name: "conflict", Message: "conflict"},
	{Value: CodeInvalid, Name: "invalid", Message: "invalid input"},
	{Value: CodeUnprocessable, Name: "unprocessable", Message: "unprocessable input"},
	{Value: CodeTooManyRequests, Name: "too_many_requests", Message: "too many requests"},

	// Availability / time (2)
	{Value: CodeTimeout, Name: "timeout", Message: "timeout"},
	{Value: CodeUnavailable, Name: "unavailable", Message: "unavailable"},

	// Internal / meta (3)
	{Value: CodeInternal, Name: "internal", Message: "internal error"},
	{Value: CodeDefect, Name: "defect", Message: "defect"},
	{Value: CodeInterrupt, Name: "interrupt", Message: "interrupted"},
}

// codeByName provides O(1) lookups for ParseCode.
var codeByName = func() map[string]Code {
	m := make(map[string]Code, len(codeMembers))
	for _, cm := range codeMembers {
		m[cm.Name] = cm.Value
	}
	return m
}()

// ErrorEnum declares the built-in codes to the enum adapter.
func (Code) ErrorEnum() EnumSpec[Code] {
	return EnumSpec[Code]{Members: codeMembers}
}

// String returns the snake_case name of c.
func (c Code) String() string {
	if c.IsBuiltin() {
		return codeMembers[c].Name
	}
	return fmt.Sprintf("Code(%d)", int32(c))
}

// IsBuiltin reports whether c is one of the built-in core codes.
func (c Code) IsBuiltin() bool {
	return c >= 0 && int(c) < len(codeMembers)
}

// Err returns the Error for c.
func (c Code) Err() Error { return FromEnum(c) }

// ParseCode resolves a snake_case code name.
func ParseCode(name string) (Code, bool) {
	c, ok := codeByName[name]
	return c, ok
}

// BuiltinCodes returns a fresh slice of the built-in codes in declaration order.
func BuiltinCodes() []Code {
	out := make([]Code, len(codeMembers))
	for i, cm := range codeMembers {
		out[i] = cm.Value
	}
	return out
}
