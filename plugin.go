package checkit

// Plugin is a named, independently loadable unit of behavior. The interface
// itself only carries identity; a plugin opts into the extension points it
// needs by implementing the capability interfaces below, which Schema.Use
// detects and applies in a fixed order:
//
//  1. DependencyLoader: activate prerequisite plugins first.
//  2. SchemaExtension: contribute schema methods, processor middleware
//     and a dependency resolver.
//  3. ParamExtension: contribute methods callable via Param.Invoke.
//  4. ResultExtension: contribute methods callable via Result.Invoke.
//  5. Configurer: one-time per-schema setup; runs on every
//     activation with the activating schema's own options, so re-activating
//     on a derived schema applies that schema's overrides without
//     re-registering methods.
type Plugin interface {
	Name() string
}

// DependencyLoader lets a plugin declare prerequisites: it is invoked before
// any methods are mixed in, typically to activate another plugin on the same
// schema. Implementations must be idempotent.
type DependencyLoader interface {
	LoadDependencies(s *Schema, args ...any) error
}

// SchemaExtension contributes schema-level behavior through the extender.
type SchemaExtension interface {
	ExtendSchema(e *SchemaExtender)
}

// ParamExtension contributes named methods to the params of every schema the
// plugin is activated on.
type ParamExtension interface {
	ParamMethods() map[string]ParamMethod
}

// ResultExtension contributes named methods to the results of every schema
// the plugin is activated on.
type ResultExtension interface {
	ResultMethods() map[string]ResultMethod
}

// Configurer is the per-activation configuration hook: it receives the
// activating schema and the activation arguments and typically merges into
// the schema's options.
type Configurer interface {
	Configure(s *Schema, args ...any) error
}

// Method types contributed by plugins.
type (
	ParamMethod  func(p *Param, args ...any) (any, error)
	ResultMethod func(r *Result, args ...any) (any, error)
	SchemaMethod func(s *Schema, args ...any) (any, error)
)

// Processor transforms a value during the input- or output-processing step
// of a run. It receives the calling schema so a processor registered on a
// parent keeps honoring the options of the derived schema it runs under.
type Processor func(s *Schema, value any) (any, error)

// Middleware wraps the previous processor in the chain. The core never
// auto-chains: a middleware that wants cumulative behavior must call next
// itself; one that ignores next fully replaces prior behavior.
type Middleware func(next Processor) Processor

// DepsResolverFunc resolves the positional dependency values handed to the
// validation block via Context.Deps.
type DepsResolverFunc func(s *Schema) ([]any, error)

// SchemaExtender is handed to a plugin's ExtendSchema hook. Registrations
// made through it are slotted under the plugin's name, so activating the
// same plugin twice replaces its contribution instead of stacking it.
type SchemaExtender struct {
	schema *Schema
	plugin string
}

// Schema returns the schema being extended.
func (e *SchemaExtender) Schema() *Schema { return e.schema }

// SchemaMethod registers a method callable via Schema.Invoke.
func (e *SchemaExtender) SchemaMethod(name string, fn SchemaMethod) {
	e.schema.schemaMethods[name] = fn
}

// InputProcessor wraps the schema's input-processing chain.
func (e *SchemaExtender) InputProcessor(mw Middleware) {
	e.schema.SetInputProcessor(e.plugin, mw)
}

// OutputProcessor wraps the schema's output-processing chain.
func (e *SchemaExtender) OutputProcessor(mw Middleware) {
	e.schema.SetOutputProcessor(e.plugin, mw)
}

// DepsResolver installs the resolver that supplies Context.Deps.
func (e *SchemaExtender) DepsResolver(fn DepsResolverFunc) {
	e.schema.depsResolver = fn
}

// Use activates a plugin on this schema. The plugin is given either by name
// (resolved through the process-wide registry) or as a direct Plugin value;
// args are passed through to the plugin's LoadDependencies and Configure
// hooks. Use returns the resolved plugin so callers can keep a typed
// reference.
func (s *Schema) Use(plugin any, args ...any) (Plugin, error) {
	var p Plugin
	switch v := plugin.(type) {
	case Plugin:
		p = v
	case string:
		loaded, err := Load(v)
		if err != nil {
			return nil, err
		}
		p = loaded
	default:
		return nil, &InvalidPluginError{Value: plugin}
	}

	if dl, ok := p.(DependencyLoader); ok {
		if err := dl.LoadDependencies(s, args...); err != nil {
			return nil, err
		}
	}
	if se, ok := p.(SchemaExtension); ok {
		se.ExtendSchema(&SchemaExtender{schema: s, plugin: p.Name()})
	}
	if pe, ok := p.(ParamExtension); ok {
		for name, fn := range pe.ParamMethods() {
			s.paramMethods[name] = fn
		}
	}
	if re, ok := p.(ResultExtension); ok {
		for name, fn := range re.ResultMethods() {
			s.resultMethods[name] = fn
		}
	}
	if c, ok := p.(Configurer); ok {
		if err := c.Configure(s, args...); err != nil {
			return nil, err
		}
	}

	s.plugins[p.Name()] = p
	s.logger.Debug("plugin activated", "plugin", p.Name())
	return p, nil
}

// MustUse is Use with fail-fast semantics for definition-time configuration:
// schema misconfiguration should prevent startup rather than surface at
// call time.
func (s *Schema) MustUse(plugin any, args ...any) Plugin {
	p, err := s.Use(plugin, args...)
	if err != nil {
		panic(err)
	}
	return p
}

// Used reports whether a plugin with the given name was activated on this
// schema (directly or inherited through Derive).
func (s *Schema) Used(name string) bool {
	_, ok := s.plugins[name]
	return ok
}
