// format.go — human-readable reports for Error values.
//
// Report layout:
//
//	<header>                 Error: msg | <type>: msg | Type.Member: msg | Type: msg
//	Data: <value>            only when data adds information to the header
//	--- Caused by: ---       only when an inner error exists
//	<inner report>           recursively
//	--- Stack trace: ---     only when this link wraps a Go error with a stack
//	  funcA file.go:123
//
// The stack footer of a link follows its whole inner report, so the deepest
// cause is printed closest to its header and outer stacks trail.
package xgxresult

import (
	"fmt"
	"io"
	"strings"
)

const (
	defaultReport  = "Error: " + DefaultMessage
	causedByMarker = "--- Caused by: ---"
	stackMarker    = "--- Stack trace: ---"
)

// StackTracer is implemented by Go errors that carry a captured stack.
// PanicError implements it.
type StackTracer interface {
	StackTrace() Stack
}

// String renders e as a multi-line diagnostic report.
func (e Error) String() string {
	switch p := e.p.(type) {
	case nil:
		return defaultReport
	case string:
		return "Error: " + p
	}
	var sb strings.Builder
	e.writeReport(&sb, 0)
	return sb.String()
}

func (e Error) writeReport(sb *strings.Builder, depth int) {
	if depth >= maxDepth {
		sb.WriteString("...")
		return
	}
	sb.WriteString(e.header())
	if data, ok := e.reportData(); ok {
		sb.WriteString("\nData: ")
		sb.WriteString(formatData(data))
	}
	if inner, ok := e.InnerError(); ok {
		sb.WriteString("\n")
		sb.WriteString(causedByMarker)
		sb.WriteString("\n")
		inner.writeReport(sb, depth+1)
	}
	if err, ok := e.foreign(); ok {
		if st, ok := err.(StackTracer); ok {
			if stk := st.StackTrace(); len(stk) > 0 {
				sb.WriteString("\n")
				sb.WriteString(stackMarker)
				writeStack(sb, stk)
			}
		}
	}
}

func (e Error) header() string {
	switch p := e.p.(type) {
	case *enumEntry:
		if p.declared && !p.flags {
			return p.typeName + "." + p.name + ": " + p.msg
		}
		return p.typeName + ": " + p.msg
	case *richError, string, nil:
		return "Error: " + e.Message()
	}
	return fmt.Sprintf("%T: %s", e.p, e.Message())
}

// reportData returns the data line payload, skipping data that the header
// already identifies: a declared enum member, or a payload that is its own
// data (wrapped Go errors, Info without DataInfo).
func (e Error) reportData() (any, bool) {
	data := e.Data()
	if isNil(data) {
		return nil, false
	}
	switch p := e.p.(type) {
	case *enumEntry:
		return data, !p.declared || p.flags
	case *richError:
		return data, true
	}
	if sameRef(data, e.p) {
		return nil, false
	}
	return data, true
}

func writeStack(w io.Writer, stk Stack) {
	for _, fr := range stk {
		_, _ = io.WriteString(w, "\n  "+fr.String())
	}
}

// Format implements fmt.Formatter for the error form of an Error.
//
//	%s, %v → Error()
//	%+v    → the full report of the underlying Error
//	%q     → quoted Error()
func (w *wrappedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, w.e.String())
			return
		}
		_, _ = io.WriteString(s, w.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", w.Error())
	default:
		_, _ = io.WriteString(s, w.Error())
	}
}
