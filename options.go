package checkit

import "reflect"

// Options is the per-schema configuration bag. Plugins store their settings
// here under namespaced keys (e.g. "coercion.types") so that deriving a
// schema gives the child its own independently mutable copy.
type Options map[string]any

// Frozen marks an option value as explicitly immutable. Frozen values are
// shared by reference between a schema and its derivations instead of being
// duplicated, which is the right call for large read-only tables.
type Frozen struct {
	value any
}

// Freeze wraps a value so Options.clone shares it instead of copying it.
func Freeze(v any) Frozen { return Frozen{value: v} }

// Value returns the wrapped value.
func (f Frozen) Value() any { return f.value }

// clone copies the bag for a derived schema. Contained maps and slices are
// duplicated one level deep so mutating the child's copy never mutates the
// parent's; Frozen values are shared by reference.
func (o Options) clone() Options {
	dup := make(Options, len(o))
	for k, v := range o {
		dup[k] = dupValue(v)
	}
	return dup
}

func dupValue(v any) any {
	if v == nil {
		return nil
	}
	if f, ok := v.(Frozen); ok {
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		dup := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			dup.SetMapIndex(iter.Key(), iter.Value())
		}
		return dup.Interface()
	case reflect.Slice:
		dup := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(dup, rv)
		return dup.Interface()
	}
	return v
}
