// context.go — structured views of an Error for logging backends.
//
// Design:
//   - LevelFields describes one link of the chain as an ordered []Field
//     (message, kind, type, data); it never recurses.
//   - Each logging integration (slog here, zerolog and zap in their own
//     packages) renders those fields and nests the inner error under "cause".
//
// No logger is created or configured here.
package xgxresult

import (
	"fmt"
	"log/slog"
)

// Field represents a single key-value pair describing an Error link.
type Field struct {
	Key string
	Val any
}

// Field keys emitted by LevelFields.
const (
	FieldMessage = "message"
	FieldKind    = "kind"
	FieldType    = "type"
	FieldData    = "data"
	FieldCause   = "cause"
)

// LevelFields returns the fields describing e itself, without its inner
// error. "type" is present for foreign, custom and enum payloads; "data" is
// present when the report would print a Data line.
func LevelFields(e Error) []Field {
	out := make([]Field, 0, 4)
	out = append(out,
		Field{Key: FieldMessage, Val: e.Message()},
		Field{Key: FieldKind, Val: e.Kind().String()},
	)
	switch p := e.p.(type) {
	case nil, string, *richError:
	case *enumEntry:
		out = append(out, Field{Key: FieldType, Val: p.typeName})
	default:
		out = append(out, Field{Key: FieldType, Val: fmt.Sprintf("%T", p)})
	}
	if data, ok := e.reportData(); ok {
		out = append(out, Field{Key: FieldData, Val: data})
	} else if ent, ok := e.p.(*enumEntry); ok {
		out = append(out, Field{Key: FieldData, Val: ent.name})
	}
	return out
}

// LogValue implements slog.LogValuer. The inner error is nested as a
// "cause" group.
func (e Error) LogValue() slog.Value {
	fs := LevelFields(e)
	attrs := make([]slog.Attr, 0, len(fs)+1)
	for _, f := range fs {
		attrs = append(attrs, slog.Any(f.Key, f.Val))
	}
	if inner, ok := e.InnerError(); ok {
		attrs = append(attrs, slog.Any(FieldCause, inner))
	}
	return slog.GroupValue(attrs...)
}
