// panic.go — recovered panics as errors.
package xgxresult

import "fmt"

// PanicError records a panic recovered by Try, with the stack at the point
// of recovery.
type PanicError struct {
	Value any
	stack Stack
}

func (p *PanicError) Error() string {
	if err, ok := p.Value.(error); ok {
		return "panic: " + err.Error()
	}
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is an error, so a panicked
// StateError or AsError wrapper keeps its chain.
func (p *PanicError) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// StackTrace implements StackTracer.
func (p *PanicError) StackTrace() Stack { return p.stack }

// Try runs fn and returns its value as a Success. A panic inside fn is
// recovered and returned as a Failure wrapping a *PanicError.
func Try[T any](fn func() T) (out Of[T]) {
	defer func() {
		if r := recover(); r != nil {
			// skip the deferred closure itself
			out = Failure[T](FromError(&PanicError{Value: r, stack: captureStack(1, defaultMaxDepth)}))
		}
	}()
	return Success(fn())
}
