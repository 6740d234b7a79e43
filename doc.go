// Package checkit provides a small, extensible toolkit for validating
// arbitrarily nested data (maps, slices, scalars) against imperative
// validation logic, collecting structured error messages that mirror the
// shape of the input.
//
// The core knows how to traverse params, how to aggregate errors into a
// tree, and how to compose plugins. Everything else (type coercion,
// built-in validators, dependency injection, contextual branching,
// delegated validation, message formatting) is an opt-in plugin layered
// onto the same traversal engine.
//
// # Architecture
//
// Three collaborating types form the engine:
//
//   - Schema: the user-facing entry point; holds the validation block, an
//     options bag, method tables contributed by plugins, and the input/output
//     processor chains. Schemas are derived (Derive) rather than subclassed;
//     each derived schema receives an independent copy of its parent's
//     options and tables.
//   - Param: one node of the input's shape; accumulates validation errors
//     for itself (flat list of messages) or for its children (nested map of
//     child name to errors). The two representations are mutually exclusive.
//   - Result: the immutable outcome of one run: input, output, error tree.
//
// Plugins are named, independently loadable units. A plugin contributes
// behavior through optional capability interfaces (SchemaExtension,
// ParamExtension, ResultExtension, Configurer, DependencyLoader) which the
// activation protocol (Schema.Use) detects and applies in a fixed order.
//
// # Usage
//
//	schema := checkit.New()
//	schema.MustUse("validation")
//	schema.Validate(func(ctx *checkit.Context, i *checkit.Param) error {
//		if err := i.Param("username", func(p *checkit.Param) error {
//			validation.Type(p, "string")
//			return nil
//		}); err != nil {
//			return err
//		}
//		return i.Param("tags", func(p *checkit.Param) error {
//			return p.Each(func(tag *checkit.Param, _ any) error {
//				validation.Type(tag, "string")
//				return nil
//			})
//		})
//	})
//
//	result, err := schema.Call(map[string]any{"username": 123, "tags": []any{1, "ok"}})
//	// err is nil: invalid data is not a failure of the run.
//	// result.Failure() == true
//	// result.Messages() == Messages{"username": []string{"must be string"},
//	//                               "tags": Messages{0: []string{"must be string"}}}
//
// # Error Handling
//
// Two disjoint error universes exist. Data-validity errors are never Go
// errors: they are accumulated as message strings inside the Param tree and
// surface through Result.Messages. Developer errors (unknown plugin names,
// malformed coercion schemas, undefined validators, strict-coercion
// failures) are returned as typed Go errors from Use or Call, or panic from
// the Must* variants, and are never caught or retried internally.
//
// # Concurrency
//
// One validation run is synchronous and single-threaded; run-local state is
// confined to the Call invocation, so concurrent Calls on the same Schema
// are safe as long as the schema is no longer being configured. The plugin
// registry is process-wide and safe for concurrent first-time loads.
package checkit
