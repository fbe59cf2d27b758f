// Package zerologx renders xgxresult values as zerolog objects.
//
// Usage:
//
//	log.Error().Object("error", zerologx.Object(err)).Msg("save failed")
//	log.Info().Object("result", zerologx.Outcome(res)).Send()
//
// Each Error link becomes an object with message, kind, type and data keys;
// the inner error is nested under "cause".
package zerologx

import (
	"github.com/rs/zerolog"

	xgxresult "github.com/xgx-io/xgx-result"
)

type errorObject struct {
	e     xgxresult.Error
	depth int
}

// Object returns a zerolog.LogObjectMarshaler for e.
func Object(e xgxresult.Error) zerolog.LogObjectMarshaler {
	return errorObject{e: e}
}

func (o errorObject) MarshalZerologObject(ev *zerolog.Event) {
	for _, f := range xgxresult.LevelFields(o.e) {
		addField(ev, f)
	}
	if inner, ok := o.e.InnerError(); ok && o.depth < maxNesting {
		ev.Object(xgxresult.FieldCause, errorObject{e: inner, depth: o.depth + 1})
	}
}

// maxNesting bounds the rendered chain depth.
const maxNesting = 32

func addField(ev *zerolog.Event, f xgxresult.Field) {
	switch v := f.Val.(type) {
	case string:
		ev.Str(f.Key, v)
	case error:
		ev.Str(f.Key, v.Error())
	case xgxresult.Error:
		ev.Object(f.Key, Object(v))
	default:
		ev.Interface(f.Key, v)
	}
}

type outcomeObject[T any] struct {
	r xgxresult.Of[T]
}

// Outcome returns a zerolog.LogObjectMarshaler for r: {"success":true,
// "value":...} or {"success":false,"error":{...}}.
func Outcome[T any](r xgxresult.Of[T]) zerolog.LogObjectMarshaler {
	return outcomeObject[T]{r: r}
}

func (o outcomeObject[T]) MarshalZerologObject(ev *zerolog.Event) {
	if v, ok := o.r.Get(); ok {
		ev.Bool("success", true).Interface("value", v)
		return
	}
	ev.Bool("success", false).Object("error", Object(o.r.ErrorOrZero()))
}
