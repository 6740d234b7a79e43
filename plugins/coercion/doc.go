// Package coercion is a checkit plugin that coerces incoming values to
// declared types before validation runs, by hooking the schema's
// input-processing chain.
//
// A type schema maps field names to type tags ("string", "integer",
// "float", "boolean", "time"), to nested Types maps for nested objects, or
// to List(...) for element-typed sequences. Coercion is lenient by default:
// values that cannot be coerced pass through unchanged so the validation
// block can report them. With Strict(), an uncoercible value aborts the run
// with a *CoercionError instead.
//
//	schema.MustUse("coercion", coercion.Types{
//		"age":  "integer",
//		"tags": coercion.List("string"),
//		"address": coercion.Types{
//			"zip": "string",
//		},
//	})
//
// Re-activating the plugin on a derived schema with a different Types map
// replaces the declaration for that schema only.
package coercion
