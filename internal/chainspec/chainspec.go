// Package chainspec decodes YAML descriptions of error chains.
//
// A document describes the outermost error; "cause" nests the next one:
//
//	message: save failed
//	data: {path: /tmp/a.txt}
//	cause:
//	  code: unavailable
package chainspec

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	xgxresult "github.com/xgx-io/xgx-result"
)

// MaxDepth bounds the number of nested causes in one document.
const MaxDepth = 64

var (
	// ErrUnknownCode is returned for a code name that is not built in.
	ErrUnknownCode = errors.New("chainspec: unknown code")
	// ErrTooDeep is returned when causes nest deeper than MaxDepth.
	ErrTooDeep = errors.New("chainspec: chain too deep")
)

// Node is one link of a described chain.
type Node struct {
	Message string `yaml:"message,omitempty"`
	Code    string `yaml:"code,omitempty"`
	Data    any    `yaml:"data,omitempty"`
	Cause   *Node  `yaml:"cause,omitempty"`
}

// Decode reads a single YAML document from r and builds its Error.
func Decode(r io.Reader) (xgxresult.Error, error) {
	var n Node
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&n); err != nil {
		return xgxresult.Error{}, fmt.Errorf("chainspec: decode: %w", err)
	}
	return n.Build()
}

// Parse is Decode over an in-memory document.
func Parse(doc []byte) (xgxresult.Error, error) {
	var n Node
	if err := yaml.UnmarshalWithOptions(doc, &n, yaml.DisallowUnknownField()); err != nil {
		return xgxresult.Error{}, fmt.Errorf("chainspec: decode: %w", err)
	}
	return n.Build()
}

// Build converts n and its causes into an Error.
//
// A node with only a code becomes that code's enum Error. A code combined
// with other fields supplies the Data (when none is given) and the default
// message.
func (n *Node) Build() (xgxresult.Error, error) {
	return n.build(0)
}

func (n *Node) build(depth int) (xgxresult.Error, error) {
	if depth >= MaxDepth {
		return xgxresult.Error{}, ErrTooDeep
	}

	var inner *xgxresult.Error
	if n.Cause != nil {
		e, err := n.Cause.build(depth + 1)
		if err != nil {
			return xgxresult.Error{}, err
		}
		inner = &e
	}

	msg, data := n.Message, n.Data
	if n.Code != "" {
		c, ok := xgxresult.ParseCode(n.Code)
		if !ok {
			return xgxresult.Error{}, fmt.Errorf("%w: %q", ErrUnknownCode, n.Code)
		}
		if msg == "" && data == nil && inner == nil {
			return c.Err(), nil
		}
		if msg == "" {
			msg = c.Err().Message()
		}
		if data == nil {
			data = c
		}
	}
	return xgxresult.Compose(msg, data, inner), nil
}
