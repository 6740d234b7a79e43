package checkit

import "fmt"

// UnknownPluginError is returned when a plugin identifier cannot be resolved
// to a registered plugin. The two common causes: the plugin's package was
// never imported, or it was imported but never called Register.
type UnknownPluginError struct {
	Name string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("checkit: plugin %q is not registered (is its package imported, and does it call checkit.Register?)", e.Name)
}

// UnknownMethodError is returned by Param.Invoke, Result.Invoke and
// Schema.Invoke when no plugin has contributed a method under the requested
// name.
type UnknownMethodError struct {
	Kind string // "param", "result" or "schema"
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("checkit: no %s method %q contributed by any activated plugin", e.Kind, e.Name)
}

// InvalidPluginError is returned by Schema.Use when the argument is neither
// a plugin name nor a Plugin value.
type InvalidPluginError struct {
	Value any
}

func (e *InvalidPluginError) Error() string {
	return fmt.Sprintf("checkit: plugin must be a name or a Plugin value, got %T", e.Value)
}
