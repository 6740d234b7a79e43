package external

import (
	"fmt"

	"github.com/dmitrymomot/checkit"
)

// ValidatorFunc is the single-argument contract for delegated validation:
// given a value, return the error payload for it: a []string of messages,
// a checkit.Messages tree, or nil when valid.
type ValidatorFunc func(value any) any

// Plugin implements the delegated-validation capability.
type Plugin struct{}

func init() { checkit.Register("external", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "external" }

// ParamMethods contributes "validate_with" to the param method table.
func (Plugin) ParamMethods() map[string]checkit.ParamMethod {
	return map[string]checkit.ParamMethod{
		"validate_with": validateWith,
	}
}

func validateWith(p *checkit.Param, args ...any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("external: validate_with expects one validator, got %d arguments", len(args))
	}
	var fn ValidatorFunc
	switch v := args[0].(type) {
	case ValidatorFunc:
		fn = v
	case func(any) any:
		fn = v
	default:
		return nil, fmt.Errorf("external: validator must be a func(any) any, got %T", args[0])
	}
	p.Merge(normalize(fn(p.Value())))
	return nil, nil
}

// Validate runs the external validator against the param's value and merges
// its payload. It dispatches through the param method table so it fails
// with a checkit.UnknownMethodError when the plugin is not activated.
func Validate(p *checkit.Param, fn ValidatorFunc) error {
	_, err := p.Invoke("validate_with", fn)
	return err
}

// normalize widens the payload shapes external validators commonly produce
// into the two the error-tree contract allows.
func normalize(payload any) any {
	switch v := payload.(type) {
	case map[string]any:
		tree := checkit.Messages{}
		for k, val := range v {
			tree[k] = normalize(val)
		}
		return tree
	case map[any]any:
		tree := checkit.Messages{}
		for k, val := range v {
			tree[k] = normalize(val)
		}
		return tree
	case []any:
		msgs := make([]string, 0, len(v))
		for _, m := range v {
			msgs = append(msgs, fmt.Sprint(m))
		}
		return msgs
	}
	return payload
}
