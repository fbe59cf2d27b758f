// wrap_test.go — Error ⇄ error interop and round-trip guarantees.
package xgxresult

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyErr struct{}

func (emptyErr) Error() string { return "" }

func sampleErrors() map[string]Error {
	return map[string]Error{
		"empty":   {},
		"message": New("boom"),
		"data":    NewData("boom", 42),
		"chain":   WrapData(Wrap(NewData("disk full", "/var"), "write"), "save", 3),
		"foreign": FromError(io.EOF),
		"wrapped": Wrap(FromError(fmt.Errorf("read: %w", io.ErrUnexpectedEOF)), "load"),
		"custom":  FromInfo(quotaData{limit: 1}),
		"enum":    Wrap(FromEnum(StatusNotFound), "lookup"),
	}
}

func TestRoundTrip_FromErrorAsError(t *testing.T) {
	t.Parallel()

	for name, e := range sampleErrors() {
		t.Run(name, func(t *testing.T) {
			back := FromError(e.AsError())
			assert.True(t, back.Equal(e), "round trip changed %v into %v", e, back)
			assert.Equal(t, e.Kind(), back.Kind())
		})
	}
}

func TestRoundTrip_DeepChain(t *testing.T) {
	t.Parallel()

	e := New("root")
	for i := range 200 {
		e = WrapData(e, fmt.Sprintf("level %d", i), i)
	}
	back := FromError(e.AsError())
	require.True(t, back.Equal(e))

	// every level converts back independently
	err := e.AsError()
	for depth := 0; err != nil; depth++ {
		link := FromError(err)
		require.Equal(t, Chain(e)[depth].Message(), link.Message())
		err = errors.Unwrap(err)
	}
}

func TestRoundTrip_NoExtraLayers(t *testing.T) {
	t.Parallel()

	e := NewData("boom", 1)
	rich := e.p.(*richError)
	for range 10 {
		e = FromError(e.AsError())
	}
	assert.Same(t, rich, e.p.(*richError), "round trips must not grow the object graph")

	base := errors.New("boom")
	f := FromError(base)
	for range 10 {
		f = FromError(f.AsError())
	}
	assert.Same(t, base, f.AsError(), "a foreign error converts back to itself")
}

func TestAsError_UnwrapChain(t *testing.T) {
	t.Parallel()

	e := Wrap(Wrap(FromError(io.EOF), "read header"), "load")
	err := e.AsError()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "load", err.Error())

	inner := errors.Unwrap(err)
	require.NotNil(t, inner)
	assert.Equal(t, "read header", inner.Error())
}

func TestFromError_ReWrappedStaysForeign(t *testing.T) {
	t.Parallel()

	e := NewData("disk full", "/var")
	outer := FromError(fmt.Errorf("save: %w", e.AsError()))
	assert.Equal(t, KindForeign, outer.Kind())

	inner, ok := outer.InnerError()
	require.True(t, ok)
	assert.True(t, inner.Equal(e))
	assert.Equal(t, KindRich, inner.Kind())
}

func TestFromError_JoinedUsesFirstChild(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	e := FromError(errors.Join(nil, a, b))
	inner, ok := e.InnerError()
	require.True(t, ok)
	assert.Same(t, a, inner.AsError())
}

func TestFromError_EmptyMessage(t *testing.T) {
	t.Parallel()

	e := FromError(emptyErr{})
	assert.Equal(t, "An unspecified error occurred (xgxresult.emptyErr)", e.Message())
}

func TestFindData_ForeignTypedError(t *testing.T) {
	t.Parallel()

	pe := &fs.PathError{Op: "open", Path: "/tmp/a.txt", Err: fs.ErrNotExist}
	e := Wrap(FromError(fmt.Errorf("config: %w", pe)), "startup")

	got, ok := FindData[*fs.PathError](e)
	require.True(t, ok)
	assert.Same(t, pe, got)
	assert.ErrorIs(t, e.AsError(), fs.ErrNotExist)
}
