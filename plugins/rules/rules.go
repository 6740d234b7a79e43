package rules

import (
	"sort"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/plugins/validation"
)

// Rules maps validator tags to their arguments. An argument may be a single
// value, a []any of several values, or true for argument-less validators.
type Rules map[string]any

// Plugin implements the rule-dispatch capability.
type Plugin struct{}

func init() { checkit.Register("rules", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "rules" }

// LoadDependencies activates the validation plugin first so the validator
// table and message catalog exist; safe to run on re-activation.
func (Plugin) LoadDependencies(s *checkit.Schema, _ ...any) error {
	if s.Used("validation") {
		return nil
	}
	_, err := s.Use("validation")
	return err
}

// ParamMethods exposes rule application through the param method table as
// "validate", so the capability is reachable via Invoke as well as through
// the typed Apply helper.
func (Plugin) ParamMethods() map[string]checkit.ParamMethod {
	return map[string]checkit.ParamMethod{
		"validate": func(p *checkit.Param, args ...any) (any, error) {
			for _, arg := range args {
				rs, ok := arg.(Rules)
				if !ok {
					continue
				}
				if err := Apply(p, rs); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	}
}

// Apply runs every rule in the set against the param, adding the catalog
// message for each failed check. Tags are applied in sorted order so runs
// are deterministic. An unknown tag or a param whose schema has no validator
// table is a configuration error.
func Apply(p *checkit.Param, rs Rules) error {
	s := p.Schema()
	table, _ := s.Opt(validation.OptValidators).(map[string]validation.Validator)

	tags := make([]string, 0, len(rs))
	for tag := range rs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		v, ok := table[tag]
		if !ok {
			return &validation.UnknownValidatorError{Name: tag}
		}
		args := argsFor(rs[tag])
		if !v.Check(p.Value(), args...) {
			p.AddError(validation.MessageFor(s, v.MessageKey, args...))
		}
	}
	return nil
}

func argsFor(arg any) []any {
	switch v := arg.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return nil
		}
		return []any{v}
	case []any:
		return v
	}
	return []any{arg}
}
