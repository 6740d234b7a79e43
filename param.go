package checkit

import "sort"

// Messages is the structured error tree produced by a validation run. Keys
// are child param names (string) or sequence indexes (int); each value is
// either a []string of messages for a flat leaf or a nested Messages map.
// A param never contributes both shapes at the same level.
type Messages map[any]any

// Param is one node in the input's shape. It wraps a single value, knows its
// own name within the parent, and accumulates validation errors for itself
// (flat) or for its children (nested). Params are created fresh for every
// declaration during one run and never reused across runs.
type Param struct {
	schema *Schema
	name   any
	value  any
	flat   []string
	nested Messages
}

// NewParam builds a param owned by this schema. The root param of a run is
// built by Call; validation blocks normally create children through
// Param/Params/Each rather than calling this directly.
func (s *Schema) NewParam(name, value any) *Param {
	return &Param{schema: s, name: name, value: value, flat: []string{}}
}

// Name returns the param's name within its parent: a string field name or an
// int sequence index.
func (p *Param) Name() any { return p.name }

// Value returns the wrapped value.
func (p *Param) Value() any { return p.value }

// Schema returns the schema that owns this param. Plugins use it to reach
// per-schema configuration (message catalogs, validator tables).
func (p *Param) Schema() *Schema { return p.schema }

// Fetch returns the nested value at key when the wrapped value supports
// keyed or indexed access: maps are keyed, slices are indexed by int. Any
// other container, a missing key or an out-of-range index yields nil; Fetch
// never panics. Validation logic is expected to detect and report absence
// itself.
func (p *Param) Fetch(key any) any {
	switch v := p.value.(type) {
	case map[string]any:
		ks, ok := key.(string)
		if !ok {
			return nil
		}
		return v[ks]
	case map[any]any:
		return v[key]
	case Messages:
		return v[key]
	case []any:
		i, ok := key.(int)
		if !ok || i < 0 || i >= len(v) {
			return nil
		}
		return v[i]
	}
	return nil
}

// Valid reports whether no errors were recorded on this param or merged from
// its children.
func (p *Param) Valid() bool { return len(p.flat) == 0 && len(p.nested) == 0 }

// Invalid is the negation of Valid.
func (p *Param) Invalid() bool { return !p.Valid() }

// AddError appends a message to the param's flat error list. It is only
// meaningful while the param is in flat representation; calling it after a
// child has reported errors is a bug in the validation block and panics
// immediately rather than producing an ambiguous tree.
func (p *Param) AddError(message string) {
	if p.nested != nil {
		panic("checkit: AddError called on a param that already carries nested child errors")
	}
	p.flat = append(p.flat, message)
}

// Errors returns the param's error payload: a []string while flat, a
// Messages map once any child has reported errors.
func (p *Param) Errors() any {
	if p.nested != nil {
		return p.nested
	}
	return p.flat
}

// Merge grafts an externally produced error payload onto the param. The
// payload must follow the error-tree contract: a []string is appended to the
// flat list, a Messages map switches the param to nested representation and
// is merged key by key. Mixing a Messages payload into a param that already
// has flat errors panics, same as AddError on a nested param.
func (p *Param) Merge(errs any) {
	switch e := errs.(type) {
	case nil:
	case []string:
		for _, m := range e {
			p.AddError(m)
		}
	case Messages:
		if len(e) == 0 {
			return
		}
		if len(p.flat) > 0 {
			panic("checkit: Merge called with nested errors on a param that already carries flat errors")
		}
		if p.nested == nil {
			p.nested = Messages{}
		}
		for k, v := range e {
			p.nested[k] = v
		}
	}
}

// shortCircuit reports whether child declarations must be skipped: once a
// param is invalid under flat representation, validating its children would
// report nonsensical errors on data whose shape assumption already failed.
// Nested errors from siblings do not short-circuit further declarations.
func (p *Param) shortCircuit() bool { return len(p.flat) > 0 }

// mergeChild folds an invalid child's errors into this param under the
// child's name, switching to nested representation on first use. Valid
// children contribute nothing.
func (p *Param) mergeChild(child *Param) {
	if child.Valid() {
		return
	}
	if p.nested == nil {
		p.nested = Messages{}
	}
	p.nested[child.name] = child.Errors()
}

// Param declares a single child: the value is fetched by name, wrapped in a
// fresh child param, and fn is invoked on it. Once fn completes, the child's
// errors (if any) are merged under name. The whole declaration is a no-op
// when the parent is already flat-and-invalid.
func (p *Param) Param(name string, fn func(*Param) error) error {
	if p.shortCircuit() {
		return nil
	}
	child := p.schema.NewParam(name, p.Fetch(name))
	if err := fn(child); err != nil {
		return err
	}
	p.mergeChild(child)
	return nil
}

// Params declares several children at once. All children are built before fn
// runs, so the validation logic can reference sibling params. Errors from
// each child are merged under that child's name after fn completes. No-op
// when the parent is already flat-and-invalid.
func (p *Param) Params(names []string, fn func(params ...*Param) error) error {
	if p.shortCircuit() {
		return nil
	}
	children := make([]*Param, len(names))
	for i, name := range names {
		children[i] = p.schema.NewParam(name, p.Fetch(name))
	}
	if err := fn(children...); err != nil {
		return err
	}
	for _, child := range children {
		p.mergeChild(child)
	}
	return nil
}

// EachOption configures Each.
type EachOption func(*eachConfig)

type eachConfig struct {
	asPairs bool
}

// EachAsPairs makes Each treat a map value as (key, value) pairs, naming
// each member param by its own key instead of a positional index. Without
// it, Each only iterates sequences.
func EachAsPairs() EachOption {
	return func(c *eachConfig) { c.asPairs = true }
}

// Each iterates the wrapped value, building a child param per member and
// invoking fn with the child and its index (or key in pairs mode). Sequence
// members are named by zero-based int index; map members require
// EachAsPairs and are named by their key, with string keys visited in sorted
// order. Each is a silent no-op when the value is not a supported iterable
// or the parent is already flat-and-invalid; callers are expected to pair
// it with an explicit type check.
func (p *Param) Each(fn func(item *Param, key any) error, opts ...EachOption) error {
	var cfg eachConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if p.shortCircuit() {
		return nil
	}

	visit := func(key, value any) error {
		child := p.schema.NewParam(key, value)
		if err := fn(child, key); err != nil {
			return err
		}
		p.mergeChild(child)
		return nil
	}

	switch v := p.value.(type) {
	case []any:
		for i, item := range v {
			if err := visit(i, item); err != nil {
				return err
			}
		}
	case map[string]any:
		if !cfg.asPairs {
			return nil
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := visit(k, v[k]); err != nil {
				return err
			}
		}
	case map[any]any:
		if !cfg.asPairs {
			return nil
		}
		for k, item := range v {
			if err := visit(k, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// Invoke dispatches into the owning schema's param method table, calling
// behavior contributed by an activated plugin. Unknown names yield an
// UnknownMethodError.
func (p *Param) Invoke(method string, args ...any) (any, error) {
	fn, ok := p.schema.paramMethods[method]
	if !ok {
		return nil, &UnknownMethodError{Kind: "param", Name: method}
	}
	return fn(p, args...)
}
