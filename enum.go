// enum.go — Errors derived from enum values.
//
// Go enums are named integer types, usually declared with iota. An enum opts
// in by implementing Enum: its ErrorEnum method lists the declared members,
// their names and optional messages. The list is read once per type, on the
// first FromEnum call, and turned into a read-only lookup table:
//
//   - dense: not a flags enum, backed by an integer kind of at most 32 bits
//     (or the platform int/uint), and the distinct declared values are
//     exactly 0..n-1. Lookups index a slice.
//   - sparse: everything else. Lookups hit a map seeded with every declared
//     member plus the zero value, so FromEnum of the zero value never misses.
//
// Each table entry caches the message and the boxed value, so FromEnum for a
// declared value does not allocate. Values outside the table produce a fresh
// undeclared entry with DefaultMessage and the raw value as Data.
//
// When several members share a value, the first declared one wins.
package xgxresult

import (
	"reflect"
	"slices"
	"sync"
)

// Integer is the set of types an Enum may be based on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// EnumMember describes one declared enum value. An empty Message falls back
// to DefaultMessage.
type EnumMember[E Integer] struct {
	Value   E
	Name    string
	Message string
}

// EnumSpec describes an enum type. Name overrides the type name used in
// reports; Flags marks bit-set enums, whose values are always reported with
// an explicit Data line.
type EnumSpec[E Integer] struct {
	Name    string
	Flags   bool
	Members []EnumMember[E]
}

// Enum is implemented by integer types that can be turned into Errors.
//
// Example:
//
//	type Status int
//
//	const (
//		StatusOK Status = iota
//		StatusNotFound
//	)
//
//	func (Status) ErrorEnum() xgxresult.EnumSpec[Status] {
//		return xgxresult.EnumSpec[Status]{Members: []xgxresult.EnumMember[Status]{
//			{Value: StatusOK, Name: "OK"},
//			{Value: StatusNotFound, Name: "NotFound", Message: "not found"},
//		}}
//	}
type Enum[E Integer] interface {
	Integer
	ErrorEnum() EnumSpec[E]
}

// enumEntry backs an enum-derived Error.
type enumEntry struct {
	typeName string
	name     string
	msg      string
	data     any
	declared bool
	flags    bool
}

type enumTable[E Integer] struct {
	typeName string
	flags    bool
	dense    []*enumEntry
	sparse   map[E]*enumEntry
}

// enumTables maps reflect.Type → func() *enumTable[E] (a sync.OnceValue).
var enumTables sync.Map

// FromEnum returns the Error for v. Declared values carry their member
// message; Data is v itself.
func FromEnum[E Enum[E]](v E) Error {
	return Error{p: tableFor[E]().lookup(v)}
}

func tableFor[E Enum[E]]() *enumTable[E] {
	t := reflect.TypeFor[E]()
	if f, ok := enumTables.Load(t); ok {
		return f.(func() *enumTable[E])()
	}
	f, _ := enumTables.LoadOrStore(t, sync.OnceValue(buildEnumTable[E]))
	return f.(func() *enumTable[E])()
}

func (t *enumTable[E]) lookup(v E) *enumEntry {
	if t.dense != nil {
		if v >= 0 && uint64(v) < uint64(len(t.dense)) {
			return t.dense[v]
		}
	} else if ent, ok := t.sparse[v]; ok {
		return ent
	}
	return t.undeclared(v)
}

func (t *enumTable[E]) undeclared(v E) *enumEntry {
	return &enumEntry{
		typeName: t.typeName,
		msg:      DefaultMessage,
		data:     v,
		flags:    t.flags,
	}
}

func buildEnumTable[E Enum[E]]() *enumTable[E] {
	var zero E
	spec := zero.ErrorEnum()
	rt := reflect.TypeFor[E]()

	t := &enumTable[E]{typeName: spec.Name, flags: spec.Flags}
	if t.typeName == "" {
		t.typeName = rt.Name()
	}

	entries := make(map[E]*enumEntry, len(spec.Members)+1)
	values := make([]E, 0, len(spec.Members))
	for _, m := range spec.Members {
		if _, dup := entries[m.Value]; dup {
			continue
		}
		msg := m.Message
		if msg == "" {
			msg = DefaultMessage
		}
		entries[m.Value] = &enumEntry{
			typeName: t.typeName,
			name:     m.Name,
			msg:      msg,
			data:     m.Value,
			declared: true,
			flags:    spec.Flags,
		}
		values = append(values, m.Value)
	}

	if !spec.Flags && denseKind(rt.Kind()) && isDenseRun(values) {
		t.dense = make([]*enumEntry, len(values))
		for v, ent := range entries {
			t.dense[v] = ent
		}
		return t
	}

	if _, ok := entries[zero]; !ok {
		entries[zero] = t.undeclared(zero)
	}
	t.sparse = entries
	return t
}

func denseKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return true
	}
	return false
}

// isDenseRun reports whether the distinct values are exactly 0..n-1.
func isDenseRun[E Integer](values []E) bool {
	if len(values) == 0 {
		return false
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != E(i) {
			return false
		}
	}
	return true
}
