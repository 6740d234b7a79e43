package coercion

import (
	"fmt"

	"github.com/dmitrymomot/checkit"
)

const (
	optTypes   = "coercion.types"
	optStrict  = "coercion.strict"
	optMessage = "coercion.message"
)

// Types declares the coercion schema: field name to type tag ("string",
// "integer", "float", "boolean", "time"), nested Types, or List.
type Types map[string]any

// ListOf declares an element-typed sequence in a type schema.
type ListOf struct {
	Of any
}

// List builds a ListOf declaration: List("string") coerces every member of
// a sequence to string.
func List(of any) ListOf { return ListOf{Of: of} }

type (
	strictOption  bool
	messageOption struct{ value any }
)

// Strict makes uncoercible values abort the run with a *CoercionError
// instead of passing through unchanged.
func Strict() any { return strictOption(true) }

// ErrorMessage overrides the strict-mode error message with a static string.
func ErrorMessage(msg string) any { return messageOption{value: msg} }

// ErrorMessageFunc overrides the strict-mode error message with a function
// of the offending value and target type.
func ErrorMessageFunc(fn func(value any, typ string) string) any {
	return messageOption{value: fn}
}

// Plugin implements the coercion capability.
type Plugin struct{}

func init() { checkit.Register("coercion", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "coercion" }

// ExtendSchema hooks the input-processing chain. The middleware runs the
// earlier chain first and coerces its output, honoring the options of the
// schema the run executes under.
func (Plugin) ExtendSchema(e *checkit.SchemaExtender) {
	e.InputProcessor(func(next checkit.Processor) checkit.Processor {
		return func(s *checkit.Schema, value any) (any, error) {
			v, err := next(s, value)
			if err != nil {
				return nil, err
			}
			types, ok := s.Opt(optTypes).(Types)
			if !ok || len(types) == 0 {
				return v, nil
			}
			strict, _ := s.Opt(optStrict).(bool)
			return coerce(types, v, strict, s.Opt(optMessage))
		}
	})
}

// Configure records the type schema and strict/message settings into the
// activating schema's options. The type schema is validated eagerly so a
// misspelled tag surfaces at definition time, not on first call.
func (Plugin) Configure(s *checkit.Schema, args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case Types:
			if err := validateSpec(v); err != nil {
				return err
			}
			s.SetOpt(optTypes, v)
		case strictOption:
			s.SetOpt(optStrict, bool(v))
		case messageOption:
			s.SetOpt(optMessage, v.value)
		default:
			return fmt.Errorf("%w: unsupported declaration %T", ErrMalformedTypeSchema, arg)
		}
	}
	return nil
}

func validateSpec(spec any) error {
	switch v := spec.(type) {
	case string:
		if _, ok := coercers[v]; !ok {
			return &UnknownTypeError{Tag: v}
		}
	case Types:
		for _, sub := range v {
			if err := validateSpec(sub); err != nil {
				return err
			}
		}
	case ListOf:
		return validateSpec(v.Of)
	default:
		return fmt.Errorf("%w: got %T", ErrMalformedTypeSchema, spec)
	}
	return nil
}

// coerce applies a type schema node to a value. Lenient mode returns the
// value unchanged when it cannot be coerced; strict mode fails the run.
func coerce(spec any, value any, strict bool, msg any) (any, error) {
	switch ts := spec.(type) {
	case string:
		out, ok := coercers[ts](value)
		if !ok {
			if strict {
				return nil, coercionError(value, ts, msg)
			}
			return value, nil
		}
		return out, nil
	case Types:
		m, ok := value.(map[string]any)
		if !ok {
			// Not a mapping: leave it for the validation block to report.
			return value, nil
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		for k, sub := range ts {
			v, exists := m[k]
			if !exists {
				continue
			}
			cv, err := coerce(sub, v, strict, msg)
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
		return out, nil
	case ListOf:
		arr, ok := value.([]any)
		if !ok {
			return value, nil
		}
		out := make([]any, len(arr))
		for i, v := range arr {
			cv, err := coerce(ts.Of, v, strict, msg)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	}
	return value, nil
}

func coercionError(value any, typ string, msg any) *CoercionError {
	err := &CoercionError{Value: value, Type: typ}
	switch m := msg.(type) {
	case string:
		err.msg = m
	case func(any, string) string:
		err.msg = m(value, typ)
	}
	return err
}
