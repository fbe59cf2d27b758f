// error.go — the Error value, its payload shapes and accessors.
//
// Error wraps a single interface value. The closed set of payload shapes is
// discriminated by the dynamic type of that value, in this order:
//
//	nil → empty, string → message, *richError → rich, *enumEntry → enum,
//	Info → custom, error → foreign
//
// A Go error that also implements Info is therefore treated as custom.
package xgxresult

import "fmt"

// DefaultMessage is reported by an Error that carries no message of its own.
const DefaultMessage = "Operation did not complete successfully"

// Kind names the payload shape currently held by an Error.
type Kind uint8

const (
	KindEmpty   Kind = iota // zero value, no payload
	KindMessage             // message only
	KindRich                // message plus data and/or inner error
	KindForeign             // wraps a Go error
	KindCustom              // wraps an Info implementation
	KindEnum                // derived from a declared enum value
)

var kindNames = [...]string{
	KindEmpty:   "empty",
	KindMessage: "message",
	KindRich:    "rich",
	KindForeign: "foreign",
	KindCustom:  "custom",
	KindEnum:    "enum",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Info is the capability third-party types implement to plug into Error
// without being copied into a rich record.
//
// Implementations MAY also implement DataInfo and ChainedInfo. Without them,
// Data defaults to the Info value itself and there is no inner error.
type Info interface {
	Message() string
}

// DataInfo is an Info that exposes a custom Data payload.
type DataInfo interface {
	Info
	Data() any
}

// ChainedInfo is an Info that links to a causing Error.
type ChainedInfo interface {
	Info
	InnerError() (Error, bool)
}

// Error is an immutable error value holding at most one reference.
//
// The zero value is the empty error: its Message is DefaultMessage, it has
// no Data and no InnerError. Errors are compared with Equal, not ==, since a
// custom payload may hold a dynamic type that is not comparable.
type Error struct {
	p any
}

// richError backs errors that carry data or an inner error.
type richError struct {
	msg   string
	data  any
	inner *Error
}

// Kind reports the payload shape of e.
func (e Error) Kind() Kind {
	switch p := e.p.(type) {
	case nil:
		return KindEmpty
	case string:
		return KindMessage
	case *richError:
		return KindRich
	case *enumEntry:
		return KindEnum
	case Info:
		return KindCustom
	case error:
		return KindForeign
	default:
		panic(fmt.Sprintf("xgxresult: unexpected payload %T", p))
	}
}

// IsZero reports whether e is the empty error.
func (e Error) IsZero() bool { return e.p == nil }

// Message returns the human-readable message of e.
func (e Error) Message() string {
	switch p := e.p.(type) {
	case nil:
		return DefaultMessage
	case string:
		return p
	case *richError:
		if p.msg == "" {
			return DefaultMessage
		}
		return p.msg
	case *enumEntry:
		return p.msg
	case Info:
		if m := p.Message(); m != "" {
			return m
		}
		return DefaultMessage
	case error:
		return foreignMessage(p)
	}
	return DefaultMessage
}

// Data returns the machine-inspectable payload attached at this link of the
// chain, or nil.
//
// For a wrapped Go error, Data is the error itself so FindData can recover
// typed errors from a chain. For an Info without DataInfo, Data is the Info.
func (e Error) Data() any {
	switch p := e.p.(type) {
	case nil, string:
		return nil
	case *richError:
		return p.data
	case *enumEntry:
		return p.data
	case DataInfo:
		return p.Data()
	case Info:
		return p
	case error:
		return p
	}
	return nil
}

// InnerError returns the Error that caused e, if any.
func (e Error) InnerError() (Error, bool) {
	switch p := e.p.(type) {
	case *richError:
		if p.inner == nil {
			return Error{}, false
		}
		return *p.inner, true
	case *enumEntry:
		return Error{}, false
	case ChainedInfo:
		return p.InnerError()
	case Info:
		return Error{}, false
	case error:
		if u := unwrapForeign(p); u != nil {
			return FromError(u), true
		}
	}
	return Error{}, false
}

// foreign returns the wrapped Go error when e holds one.
func (e Error) foreign() (error, bool) {
	switch p := e.p.(type) {
	case nil, string, *richError, *enumEntry, Info:
		return nil, false
	case error:
		return p, true
	}
	return nil, false
}

func foreignMessage(err error) string {
	if m := err.Error(); m != "" {
		return m
	}
	return fmt.Sprintf("An unspecified error occurred (%T)", err)
}
