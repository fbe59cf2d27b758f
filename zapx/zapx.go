// Package zapx renders xgxresult values as zap objects.
//
// Usage:
//
//	logger.Error("save failed", zapx.Field("error", err))
//	logger.Info("lookup", zapx.Outcome("result", res))
package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxresult "github.com/xgx-io/xgx-result"
)

// maxNesting bounds the rendered chain depth.
const maxNesting = 32

type errorObject struct {
	e     xgxresult.Error
	depth int
}

// Object returns a zapcore.ObjectMarshaler for e. The inner error is nested
// under "cause".
func Object(e xgxresult.Error) zapcore.ObjectMarshaler {
	return errorObject{e: e}
}

// Field returns a zap.Field carrying e under key.
func Field(key string, e xgxresult.Error) zap.Field {
	return zap.Object(key, Object(e))
}

func (o errorObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, f := range xgxresult.LevelFields(o.e) {
		if err := addField(enc, f); err != nil {
			return err
		}
	}
	if inner, ok := o.e.InnerError(); ok && o.depth < maxNesting {
		return enc.AddObject(xgxresult.FieldCause, errorObject{e: inner, depth: o.depth + 1})
	}
	return nil
}

func addField(enc zapcore.ObjectEncoder, f xgxresult.Field) error {
	switch v := f.Val.(type) {
	case string:
		enc.AddString(f.Key, v)
	case error:
		enc.AddString(f.Key, v.Error())
	case xgxresult.Error:
		return enc.AddObject(f.Key, Object(v))
	default:
		return enc.AddReflected(f.Key, v)
	}
	return nil
}

type outcomeObject[T any] struct {
	r xgxresult.Of[T]
}

func (o outcomeObject[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if v, ok := o.r.Get(); ok {
		enc.AddBool("success", true)
		return enc.AddReflected("value", v)
	}
	enc.AddBool("success", false)
	return enc.AddObject("error", Object(o.r.ErrorOrZero()))
}

// Outcome returns a zap.Field describing r under key.
func Outcome[T any](key string, r xgxresult.Of[T]) zap.Field {
	return zap.Object(key, outcomeObject[T]{r: r})
}
