// construct.go — constructors for Error values.
//
// Every constructor is O(1). Message-only errors store the string itself;
// only errors carrying data or an inner error allocate a rich record.
// Foreign errors and Info implementations are stored as-is (zero-copy).
package xgxresult

// New returns a message-only Error. An empty msg yields the empty Error, so
// its Message is DefaultMessage rather than "".
//
// Example:
//
//	xgxresult.New("disk full").Message() // "disk full"
//	xgxresult.New("").Message()          // DefaultMessage
func New(msg string) Error {
	if msg == "" {
		return Error{}
	}
	return Error{p: msg}
}

// NewData returns an Error carrying msg and a data payload.
func NewData(msg string, data any) Error {
	return Compose(msg, data, nil)
}

// Wrap returns an Error with msg whose InnerError is inner.
//
// Example:
//
//	err := xgxresult.Wrap(xgxresult.New("disk full"), "save failed")
func Wrap(inner Error, msg string) Error {
	return Compose(msg, nil, &inner)
}

// WrapData is like Wrap but also attaches a data payload.
func WrapData(inner Error, msg string, data any) Error {
	return Compose(msg, data, &inner)
}

// Compose is the general constructor behind New, NewData, Wrap and WrapData.
// When both data and inner are nil it degrades to the message-only form and
// does not allocate a rich record.
func Compose(msg string, data any, inner *Error) Error {
	if data == nil && inner == nil {
		return New(msg)
	}
	var in *Error
	if inner != nil {
		cp := *inner
		in = &cp
	}
	return Error{p: &richError{msg: msg, data: data, inner: in}}
}

// FromInfo wraps a custom Info implementation without copying it.
// A nil info yields the empty Error.
func FromInfo(info Info) Error {
	if info == nil {
		return Error{}
	}
	return Error{p: info}
}
