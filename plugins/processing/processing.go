package processing

import (
	"fmt"

	"github.com/dmitrymomot/checkit"
)

const slotPrefix = "processing/"

type (
	inputFunc  func(any) any
	outputFunc func(any) any
)

// Input declares a transform for the input-processing step.
func Input(fn func(any) any) any { return inputFunc(fn) }

// Output declares a transform for the output-processing step.
func Output(fn func(any) any) any { return outputFunc(fn) }

// Plugin implements the data-processing capability.
type Plugin struct{}

func init() { checkit.Register("processing", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "processing" }

// Configure replaces this plugin's slots on the activating schema's chains
// with the declared transforms, keeping activation idempotent.
func (Plugin) Configure(s *checkit.Schema, args ...any) error {
	s.RemoveInputProcessors(slotPrefix)
	s.RemoveOutputProcessors(slotPrefix)

	var in, out int
	for _, arg := range args {
		switch fn := arg.(type) {
		case inputFunc:
			s.SetInputProcessor(fmt.Sprintf("%sin/%d", slotPrefix, in), wrap(fn))
			in++
		case outputFunc:
			s.SetOutputProcessor(fmt.Sprintf("%sout/%d", slotPrefix, out), wrap(fn))
			out++
		default:
			return fmt.Errorf("processing: unsupported declaration %T, want Input(...) or Output(...)", arg)
		}
	}
	return nil
}

// wrap turns a plain transform into chain middleware that augments (never
// replaces) earlier behavior.
func wrap(fn func(any) any) checkit.Middleware {
	return func(next checkit.Processor) checkit.Processor {
		return func(s *checkit.Schema, value any) (any, error) {
			v, err := next(s, value)
			if err != nil {
				return nil, err
			}
			return fn(v), nil
		}
	}
}

// StringifyKeys recursively converts map[any]any values into map[string]any,
// leaving non-string keys formatted with fmt.Sprint. Slices are walked too.
func StringifyKeys(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = StringifyKeys(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = StringifyKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = StringifyKeys(item)
		}
		return out
	}
	return v
}

// DupMaps shallow-copies a top-level map so later transforms can mutate it
// without touching the caller's value.
func DupMaps(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	}
	return v
}
