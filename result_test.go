package xgxresult

import (
	"cmp"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverState runs fn and returns the *StateError it panicked with.
func recoverState(t *testing.T, fn func()) (se *StateError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		var ok bool
		se, ok = r.(*StateError)
		require.True(t, ok, "panic value should be *StateError, got %T", r)
	}()
	fn()
	return nil
}

func TestResult_ScenarioB(t *testing.T) {
	t.Parallel()

	r := Err[int]("bad")
	assert.True(t, r.IsError())
	assert.False(t, r.IsSuccess())
	assert.Equal(t, 0, r.ValueOrZero())
	assert.Equal(t, 99, r.ValueOr(99))

	v, ok := r.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	e, isErr := r.GetError()
	assert.True(t, isErr)
	assert.Equal(t, "bad", e)

	v, e, ok = r.Unpack()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, "bad", e)
}

func TestResult_ZeroValueIsError(t *testing.T) {
	t.Parallel()

	var r Result[int, string]
	assert.True(t, r.IsError())
	assert.True(t, r.Equal(Err[int]("")))
	assert.Equal(t, "Error()", r.String())

	var o Of[int]
	assert.True(t, o.IsError())
	assert.True(t, o.ErrorOrZero().IsZero())
	assert.True(t, o.Equal(Failure[int](Error{})))
}

func TestResult_StateExclusivity(t *testing.T) {
	t.Parallel()

	ok := Ok[int, string](7)
	assert.True(t, ok.IsSuccess() != ok.IsError())
	assert.Equal(t, 7, ok.MustValue())
	se := recoverState(t, func() { ok.MustError() })
	assert.Equal(t, "MustError", se.Op)
	assert.ErrorIs(t, se, ErrInvalidState)

	bad := Err[int]("bad")
	assert.True(t, bad.IsSuccess() != bad.IsError())
	assert.Equal(t, "bad", bad.MustError())
	se = recoverState(t, func() { bad.MustValue() })
	assert.Equal(t, "MustValue", se.Op)
	assert.ErrorIs(t, se, ErrInvalidState)
	assert.Nil(t, se.Cause, "a string error has no Go error cause")
}

func TestResult_MustValueKeepsErrorCause(t *testing.T) {
	t.Parallel()

	r := Err[int, error](io.EOF)
	se := recoverState(t, func() { r.MustValue() })
	assert.ErrorIs(t, se, io.EOF)
	assert.ErrorIs(t, se, ErrInvalidState)
	assert.Contains(t, se.Error(), "MustValue")
}

func TestResult_ScenarioD_Sort(t *testing.T) {
	t.Parallel()

	rs := []Result[int, string]{
		Err[int]("z"),
		Ok[int, string](5),
		Ok[int, string](1),
		Err[int]("a"),
	}
	slices.SortFunc(rs, CompareResults[int, string])

	want := []Result[int, string]{
		Ok[int, string](1),
		Ok[int, string](5),
		Err[int]("a"),
		Err[int]("z"),
	}
	for i := range want {
		assert.True(t, want[i].Equal(rs[i]), "index %d: want %s got %s", i, want[i], rs[i])
	}
	got := make([]string, len(rs))
	for i, r := range rs {
		got[i] = r.String()
	}
	assert.Equal(t, []string{"Success(1)", "Success(5)", "Error(a)", "Error(z)"}, got)
}

func TestResult_SuccessBeforeError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Ok[int, string](1000).Compare(Err[int]("")))
	assert.Equal(t, 1, Err[int]("").Compare(Ok[int, string](-1000)))
	assert.Equal(t, -1, Success(9).Compare(Failure[int](New("a"))))
}

func TestResult_EqualAndHash(t *testing.T) {
	t.Parallel()

	assert.True(t, Ok[int, string](1).Equal(Ok[int, string](1)))
	assert.False(t, Ok[int, string](1).Equal(Err[int]("1")))
	assert.False(t, Ok[string, string]("x").Equal(Err[string]("x")), "success never equals error")
	assert.Equal(t, Ok[int, string](1).Hash(), Ok[int, string](1).Hash())
	assert.Equal(t, uint64(0), Err[int, error](nil).Hash(), "nil payload hashes to 0")

	e := Wrap(New("inner"), "outer")
	assert.Equal(t, Failure[int](e).Hash(), Err[int](e).Hash())
	assert.Equal(t, e.Hash(), Failure[int](e).Hash())
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(5)", Ok[int, string](5).String())
	assert.Equal(t, "Error(null)", Err[int, error](nil).String())
	assert.Equal(t, "Success(null)", Ok[*int, string](nil).String())
	assert.Equal(t, "Error(Error: boom)", Failure[int](New("boom")).String())
}

func TestResult_EqualsCrossForm(t *testing.T) {
	t.Parallel()

	g := Ok[int, Error](5)
	o := Success(5)

	assert.True(t, g.Equals(o))
	assert.True(t, g.Equals(&o))
	assert.True(t, o.Equals(g))
	assert.True(t, o.Equals(&g))
	assert.True(t, o.Equals(&o))
	assert.False(t, o.Equals(Success[int64](5)))
	assert.False(t, o.Equals(Ok[int, string](5)))
	assert.False(t, Ok[int, string](5).Equals(o), "cross-form is limited to Error")
	assert.False(t, o.Equals((*Of[int])(nil)))
	assert.False(t, g.Equals((*Result[int, Error])(nil)))
}

func TestResult_CompareToUntyped(t *testing.T) {
	t.Parallel()

	o := Success(5)
	c, err := o.CompareTo(Ok[int, Error](1))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	f := Failure[int](New("a"))
	c, err = o.CompareTo(&f)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	_, err = o.CompareTo(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	_, err = o.CompareTo((*Of[int])(nil))
	assert.ErrorIs(t, err, ErrNilArgument)
	_, err = o.CompareTo(Success("5"))
	assert.ErrorIs(t, err, ErrIncomparable)
	_, err = Ok[int, string](1).CompareTo(Ok[int, error](1))
	assert.True(t, errors.Is(err, ErrIncomparable))
}

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func TestResult_ComparePayloadMethod(t *testing.T) {
	t.Parallel()

	a := Ok[version, string](version{1, 2})
	b := Ok[version, string](version{1, 10})
	assert.Equal(t, -1, a.Compare(b), "Compare results are normalized to -1/0/1")
	assert.Equal(t, 1, b.Compare(a))
}

// node has pointer-receiver methods that dereference their receiver.
type node struct{ n int }

func (h *node) Hash() uint64 { return uint64(h.n) }
func (h *node) Equal(o *node) bool { return h.n == o.n }
func (h *node) Compare(o *node) int { return cmp.Compare(h.n, o.n) }

func TestResult_NilPointerPayload(t *testing.T) {
	t.Parallel()

	empty := Ok[*node, string](nil)
	set := Ok[*node, string](&node{n: 3})

	require.NotPanics(t, func() { empty.Hash() })
	assert.Equal(t, uint64(0), empty.Hash(), "nil payload hashes to 0")
	assert.Equal(t, uint64(3), set.Hash())

	assert.True(t, empty.Equal(Ok[*node, string](nil)))
	assert.False(t, empty.Equal(set))
	assert.False(t, set.Equal(empty))
	assert.True(t, set.Equal(Ok[*node, string](&node{n: 3})))

	assert.Zero(t, empty.Compare(empty))
	assert.Equal(t, -1, empty.Compare(set), "nil sorts first")
	assert.Equal(t, 1, set.Compare(empty))

	withNil, withNode := NewData("x", (*node)(nil)), NewData("x", &node{n: 1})
	assert.False(t, withNil.Equal(withNode))
	assert.False(t, withNode.Equal(withNil))
	assert.Equal(t, -1, withNil.Compare(withNode))
	assert.True(t, withNil.Equal(New("x")), "typed nil data equals no data")
	assert.Equal(t, New("x").Hash(), withNil.Hash())
}
