// compare.go — equality, ordering and hashing of payload values.
//
// Payloads are arbitrary Go values, so the helpers here pick the most
// specific rule available:
//
//	equality: Equal(T) bool method → == on comparable dynamics → reflect.DeepEqual
//	ordering: Compare(T) int method → natural order of numbers, strings and
//	          bools → type name → %v text → pointer identity
//	hashing:  Hash() uint64 method → xxhash of the type and text of scalar
//	          values → xxhash of the type name
//
// Hashing is consistent with equality: values that compare equal have equal
// dynamic types, and scalars that compare equal print the same text. NaN
// equals NaN so that equality agrees with ordering. A nil payload never
// reaches its own Equal, Compare or Hash method.
package xgxresult

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrIncomparable is returned by CompareTo when the argument is not a
	// compatible instantiation.
	ErrIncomparable = errors.New("xgxresult: incomparable types")
	// ErrNilArgument is returned by untyped entry points given a nil argument.
	ErrNilArgument = errors.New("xgxresult: nil argument")
)

var (
	boolType = reflect.TypeFor[bool]()
	intType  = reflect.TypeFor[int]()
)

// equalOf compares two values of the same static type.
func equalOf[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok && !isNil(any(a)) && !isNil(any(b)) {
		return eq.Equal(b)
	}
	return equalAny(any(a), any(b))
}

// equalAny compares two dynamically typed values.
func equalAny(a, b any) bool {
	if an, bn := isNil(a), isNil(b); an || bn {
		return an && bn
	}
	if ea, ok := a.(Error); ok {
		eb, ok := b.(Error)
		return ok && ea.Equal(eb)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if m := reflect.ValueOf(a).MethodByName("Equal"); m.IsValid() && methodShape(m.Type(), tb, boolType) {
		return m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Bool()
	}
	if ta != tb {
		return false
	}
	va := reflect.ValueOf(a)
	if k := va.Kind(); k == reflect.Float32 || k == reflect.Float64 {
		fa, fb := va.Float(), reflect.ValueOf(b).Float()
		return fa == fb || (math.IsNaN(fa) && math.IsNaN(fb))
	}
	if va.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// methodShape reports whether mt, a bound method type, takes one
// argument assignable from arg and returns exactly one value of type ret.
func methodShape(mt, arg, ret reflect.Type) bool {
	return mt.NumIn() == 1 && mt.NumOut() == 1 &&
		arg.AssignableTo(mt.In(0)) && mt.Out(0) == ret
}

// compareOf orders two values of the same static type.
func compareOf[T any](a, b T) int {
	if c, ok := any(a).(interface{ Compare(T) int }); ok && !isNil(any(a)) && !isNil(any(b)) {
		return c.Compare(b)
	}
	return compareAny(any(a), any(b))
}

// compareAny imposes a total order on arbitrary values. nil sorts first.
func compareAny(a, b any) int {
	an, bn := isNil(a), isNil(b)
	switch {
	case an && bn:
		return 0
	case an:
		return -1
	case bn:
		return 1
	}
	if ea, ok := a.(Error); ok {
		if eb, ok := b.(Error); ok {
			return ea.Compare(eb)
		}
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if m := reflect.ValueOf(a).MethodByName("Compare"); m.IsValid() && methodShape(m.Type(), tb, intType) {
		return sign(int(m.Call([]reflect.Value{reflect.ValueOf(b)})[0].Int()))
	}
	if ta != tb {
		return cmp.Compare(ta.String(), tb.String())
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(va.Float(), vb.Float())
	case reflect.String:
		return cmp.Compare(va.String(), vb.String())
	case reflect.Bool:
		return cmp.Compare(b2i(va.Bool()), b2i(vb.Bool()))
	}
	if c := cmp.Compare(formatData(a), formatData(b)); c != 0 {
		return c
	}
	if equalAny(a, b) {
		return 0
	}
	pa, okA := ptrID(a)
	pb, okB := ptrID(b)
	if okA && okB {
		return cmp.Compare(pa, pb)
	}
	return 0
}

// hashOf hashes a value consistently with equalOf.
func hashOf[T any](v T) uint64 {
	return hashAny(any(v))
}

// hashAny hashes a dynamically typed value. nil hashes to 0.
func hashAny(v any) uint64 {
	if isNil(v) {
		return 0
	}
	if h, ok := v.(interface{ Hash() uint64 }); ok {
		return h.Hash()
	}
	t := reflect.TypeOf(v)
	d := xxhash.New()
	_, _ = d.WriteString(t.String())
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, _ = d.WriteString(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, _ = d.WriteString(strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case f == 0:
			f = 0 // fold -0 into +0
		case math.IsNaN(f):
			f = math.NaN()
		}
		_, _ = d.WriteString(strconv.FormatUint(math.Float64bits(f), 16))
	case reflect.String:
		_, _ = d.WriteString(rv.String())
	case reflect.Bool:
		_, _ = d.WriteString(strconv.FormatBool(rv.Bool()))
	}
	return d.Sum64()
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// formatData renders a payload for reports. A panicking String or Error
// method yields a placeholder instead of aborting the report.
func formatData(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = fmt.Sprintf("<unprintable %T>", v)
		}
	}()
	if isNil(v) {
		return "null"
	}
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	return fmt.Sprint(v)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
