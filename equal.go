// equal.go — equality, ordering and hashing of Error values.
//
// All three are defined over the derived triple (Message, Data, InnerError),
// link by link along the chain. One exception: when both sides wrap a Go
// error, equality is identity of the wrapped errors, so two distinct errors
// with identical text are unequal.
package xgxresult

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// emptyHash is the fixed hash of the empty Error.
var emptyHash = Error{}.chainHash()

// Equal reports whether e and o describe the same error.
func (e Error) Equal(o Error) bool {
	a, b := e, o
	for depth := 0; depth < maxDepth; depth++ {
		if a.p == nil && b.p == nil {
			return true
		}
		fa, aok := a.foreign()
		fb, bok := b.foreign()
		if aok && bok {
			return sameRef(fa, fb)
		}
		if a.Message() != b.Message() || !equalAny(a.Data(), b.Data()) {
			return false
		}
		ia, aok := a.InnerError()
		ib, bok := b.InnerError()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		a, b = ia, ib
	}
	return true
}

// Compare orders e against o by message, then data, then inner error; an
// error without an inner error sorts before one with. The result is -1, 0
// or +1 and is consistent with Equal.
func (e Error) Compare(o Error) int {
	a, b := e, o
	for depth := 0; depth < maxDepth; depth++ {
		if c := cmp.Compare(a.Message(), b.Message()); c != 0 {
			return c
		}
		if c := compareAny(a.Data(), b.Data()); c != 0 {
			return c
		}
		ia, aok := a.InnerError()
		ib, bok := b.InnerError()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}
		a, b = ia, ib
	}
	return 0
}

// Hash returns a hash consistent with Equal. The empty Error always hashes
// to the same constant.
func (e Error) Hash() uint64 {
	if e.p == nil {
		return emptyHash
	}
	return e.chainHash()
}

func (e Error) chainHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	Walk(e, func(link Error) bool {
		_, _ = d.WriteString(link.Message())
		binary.LittleEndian.PutUint64(buf[:], hashAny(link.Data()))
		_, _ = d.Write(buf[:])
		return true
	})
	return d.Sum64()
}

// Equals is the untyped counterpart of Equal. It accepts Error and *Error.
func (e Error) Equals(other any) bool {
	switch o := other.(type) {
	case Error:
		return e.Equal(o)
	case *Error:
		return o != nil && e.Equal(*o)
	}
	return false
}

// CompareTo is the untyped counterpart of Compare. It fails with
// ErrNilArgument for nil and ErrIncomparable for anything but Error or *Error.
func (e Error) CompareTo(other any) (int, error) {
	switch o := other.(type) {
	case nil:
		return 0, ErrNilArgument
	case Error:
		return e.Compare(o), nil
	case *Error:
		if o == nil {
			return 0, ErrNilArgument
		}
		return e.Compare(*o), nil
	}
	return 0, fmt.Errorf("%w: Error vs %T", ErrIncomparable, other)
}
