// stack.go — stack capture for recovered panics.
//
// Errors built by this package never carry stacks. A stack is recorded only
// for a panic recovered by Try, from inside the deferred recover while the
// panicking frames are still on the goroutine stack.
package xgxresult

import (
	"runtime"
	"strconv"
)

// Frame is one call site of a captured stack.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // package-qualified, e.g. example.com/pkg.(*T).Method
}

// String renders f as "Function File:Line", the form used in reports.
func (f Frame) String() string {
	return f.Function + " " + f.File + ":" + strconv.Itoa(f.Line)
}

// Stack lists Frames innermost first.
type Stack []Frame

// defaultMaxDepth bounds the frames recorded for one panic.
const defaultMaxDepth = 64

// captureStack records at most maxDepth frames. skip counts frames above the
// caller of captureStack: 0 starts the stack at that caller.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pcs := make([]uintptr, maxDepth)
	// +2 skips runtime.Callers and captureStack.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	stk := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		stk = append(stk, Frame{PC: fr.PC, File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more || len(stk) == maxDepth {
			return stk
		}
	}
}
