// Package contexts is a checkit plugin for contextual branching: each schema
// carries an execution-context tag ("create", "update", ...) that validation
// blocks can branch on, and derived schemas override by re-activating the
// plugin with their own tag.
//
//	create := checkit.New()
//	create.MustUse("contexts", contexts.Default("create"))
//	update := create.Derive()
//	update.MustUse("contexts", contexts.Default("update"))
//
//	schema.Validate(func(ctx *checkit.Context, i *checkit.Param) error {
//		if contexts.Is(ctx, "create") { ... }
//		...
//	})
package contexts

import (
	"fmt"

	"github.com/dmitrymomot/checkit"
)

const optContext = "contexts.current"

// Default declares the schema's execution-context tag.
type Default string

// Plugin implements the contextual-branching capability.
type Plugin struct{}

func init() { checkit.Register("contexts", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "contexts" }

// ExtendSchema exposes the tag through the schema method table as well.
func (Plugin) ExtendSchema(e *checkit.SchemaExtender) {
	e.SchemaMethod("validation_context", func(s *checkit.Schema, _ ...any) (any, error) {
		tag, _ := s.Opt(optContext).(string)
		return tag, nil
	})
}

// Configure records the tag into the activating schema's options.
func (Plugin) Configure(s *checkit.Schema, args ...any) error {
	for _, arg := range args {
		switch v := arg.(type) {
		case Default:
			s.SetOpt(optContext, string(v))
		case string:
			s.SetOpt(optContext, v)
		default:
			return fmt.Errorf("contexts: unsupported declaration %T", arg)
		}
	}
	return nil
}

// Current returns the executing schema's context tag, empty when unset.
func Current(ctx *checkit.Context) string {
	tag, _ := ctx.Opt(optContext).(string)
	return tag
}

// Is reports whether the executing schema's context tag equals tag.
func Is(ctx *checkit.Context, tag string) bool {
	return Current(ctx) == tag
}
