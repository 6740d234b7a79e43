// Package processing is a checkit plugin for registering plain input/output
// transforms on a schema's processing chains without writing middleware by
// hand. It also ships two stock transforms: StringifyKeys normalizes
// map[any]any trees (as produced by YAML decoders) into map[string]any, and
// DupMaps shallow-copies the top-level map so validation never mutates the
// caller's data.
//
//	schema.MustUse("processing",
//		processing.Input(processing.StringifyKeys),
//		processing.Output(func(v any) any { return withDefaults(v) }),
//	)
//
// Transforms registered by one activation replace those of the previous
// activation; they run after any earlier-registered plugin middleware
// (coercion included), in declaration order.
package processing
