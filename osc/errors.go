package osc

import (
	"fmt"
)

// EncodingError reports a value that has no OSC representation. The call that
// produced it sends nothing.
type EncodingError struct {
	// Shape names the offending value, e.g. "float list" or a Go type.
	Shape string
	// Length is set for variable-arity shapes.
	Length int
}

func (e *EncodingError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("unsupported %s length: %d", e.Shape, e.Length)
	}
	return fmt.Sprintf("unsupported type for OSC message: %s", e.Shape)
}

func shapeOf(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
