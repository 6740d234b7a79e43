package coercion

import (
	"errors"
	"fmt"
)

// ErrMalformedTypeSchema is returned at configure time when a type schema
// value is neither a type tag, a nested Types map, nor a List.
var ErrMalformedTypeSchema = errors.New("coercion: type schema must map field names to type tags, nested Types or List values")

// UnknownTypeError is returned at configure time when a type tag has no
// registered coercer.
type UnknownTypeError struct {
	Tag string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("coercion: unknown type tag %q", e.Tag)
}

// CoercionError is returned from Call in strict mode when a value cannot be
// coerced to its declared type. It carries the offending value and the
// target type so callers can build their own diagnostics.
type CoercionError struct {
	Value any
	Type  string
	msg   string
}

func (e *CoercionError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return fmt.Sprintf("coercion: cannot coerce %v (%T) to %s", e.Value, e.Value, e.Type)
}
