package checkit

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Block is a validation block: the imperative logic executed against the
// root param of a run. The context exposes schema options and injected
// dependencies. A returned error is a developer error and aborts the run;
// data-validity problems are reported through the param, never returned.
type Block func(ctx *Context, root *Param) error

// Schema is the user-facing entry point of the toolkit. It holds the
// validation block, the options bag, the method tables and processor chains
// contributed by plugins, and orchestrates one run per Call. A Schema plays
// the role of a validation class: Derive produces the equivalent of a
// subclass with independently mutable state.
type Schema struct {
	parent   *Schema
	opts     Options
	block    Block
	rootName string
	logger   *slog.Logger

	plugins       map[string]Plugin
	schemaMethods map[string]SchemaMethod
	paramMethods  map[string]ParamMethod
	resultMethods map[string]ResultMethod

	inputProcs   []procEntry
	outputProcs  []procEntry
	depsResolver DepsResolverFunc
}

// procEntry is one slot in a processor chain, keyed so that re-registering
// under the same slot replaces instead of stacking.
type procEntry struct {
	slot string
	mw   Middleware
}

// SchemaOption configures schema construction.
type SchemaOption func(*Schema)

// WithLogger sets the logger used for plugin-activation and run debug lines.
// Nil loggers are ignored; the default discards everything.
func WithLogger(l *slog.Logger) SchemaOption {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithName sets the root param's name used in diagnostics. Default "input".
func WithName(name string) SchemaOption {
	return func(s *Schema) {
		if name != "" {
			s.rootName = name
		}
	}
}

// New builds a base schema with empty options and no plugins.
func New(opts ...SchemaOption) *Schema {
	s := &Schema{
		opts:          Options{},
		rootName:      "input",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		plugins:       map[string]Plugin{},
		schemaMethods: map[string]SchemaMethod{},
		paramMethods:  map[string]ParamMethod{},
		resultMethods: map[string]ResultMethod{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Derive builds a child schema, the equivalent of subclassing: options are
// cloned (mutable container values duplicated one level, Frozen values
// shared), method tables and processor chains are copied into fresh maps and
// slices, and the validation block is inherited by reference until the child
// overrides it. Plugins activated on the parent after Derive do not reach
// already-derived children; activate plugins before deriving.
func (s *Schema) Derive(opts ...SchemaOption) *Schema {
	child := &Schema{
		parent:        s,
		opts:          s.opts.clone(),
		block:         s.block,
		rootName:      s.rootName,
		logger:        s.logger,
		plugins:       maps.Clone(s.plugins),
		schemaMethods: maps.Clone(s.schemaMethods),
		paramMethods:  maps.Clone(s.paramMethods),
		resultMethods: maps.Clone(s.resultMethods),
		inputProcs:    slices.Clone(s.inputProcs),
		outputProcs:   slices.Clone(s.outputProcs),
		depsResolver:  s.depsResolver,
	}
	for _, opt := range opts {
		opt(child)
	}
	return child
}

// Parent returns the schema this one was derived from, or nil for a base
// schema.
func (s *Schema) Parent() *Schema { return s.parent }

// Validate stores the validation block. Calling it again replaces the block.
func (s *Schema) Validate(block Block) { s.block = block }

// Opt reads a value from the schema's options bag.
func (s *Schema) Opt(key string) any { return s.opts[key] }

// SetOpt writes a value into the schema's options bag. Options are written
// at definition time (plugin activation, coercion declarations) and treated
// as read-only once the schema starts handling calls.
func (s *Schema) SetOpt(key string, value any) { s.opts[key] = value }

// SetInputProcessor registers middleware on the input-processing chain under
// the given slot, replacing any middleware previously registered there.
func (s *Schema) SetInputProcessor(slot string, mw Middleware) {
	s.inputProcs = setProc(s.inputProcs, slot, mw)
}

// SetOutputProcessor registers middleware on the output-processing chain
// under the given slot, replacing any middleware previously registered there.
func (s *Schema) SetOutputProcessor(slot string, mw Middleware) {
	s.outputProcs = setProc(s.outputProcs, slot, mw)
}

// RemoveInputProcessors drops every input slot whose name starts with prefix.
func (s *Schema) RemoveInputProcessors(prefix string) {
	s.inputProcs = removeProcs(s.inputProcs, prefix)
}

// RemoveOutputProcessors drops every output slot whose name starts with prefix.
func (s *Schema) RemoveOutputProcessors(prefix string) {
	s.outputProcs = removeProcs(s.outputProcs, prefix)
}

// SetDepsResolver installs the resolver supplying Context.Deps.
func (s *Schema) SetDepsResolver(fn DepsResolverFunc) { s.depsResolver = fn }

func setProc(entries []procEntry, slot string, mw Middleware) []procEntry {
	for i := range entries {
		if entries[i].slot == slot {
			entries[i].mw = mw
			return entries
		}
	}
	return append(entries, procEntry{slot: slot, mw: mw})
}

func removeProcs(entries []procEntry, prefix string) []procEntry {
	return slices.DeleteFunc(entries, func(e procEntry) bool {
		return strings.HasPrefix(e.slot, prefix)
	})
}

// chain folds the registered middleware over an identity processor. Later
// registrations end up outermost: they run first and decide whether to call
// down into earlier behavior.
func chain(entries []procEntry) Processor {
	proc := func(_ *Schema, value any) (any, error) { return value, nil }
	for _, e := range entries {
		proc = e.mw(proc)
	}
	return proc
}

// Invoke dispatches into the schema method table, calling behavior
// contributed by an activated plugin.
func (s *Schema) Invoke(method string, args ...any) (any, error) {
	fn, ok := s.schemaMethods[method]
	if !ok {
		return nil, &UnknownMethodError{Kind: "schema", Name: method}
	}
	return fn(s, args...)
}

// Call executes one validation run: process input, process output, build the
// root param, execute the stored block, package everything into a Result.
// The error return carries developer/configuration errors only (strict
// coercion failures, unknown validators, errors returned by the block);
// invalid data produces a nil error and a Result whose Failure is true.
func (s *Schema) Call(input any) (*Result, error) {
	runID := uuid.NewString()

	processedInput, err := chain(s.inputProcs)(s, input)
	if err != nil {
		return nil, err
	}
	processedOutput, err := chain(s.outputProcs)(s, processedInput)
	if err != nil {
		return nil, err
	}

	root := s.NewParam(s.rootName, processedInput)
	if s.block != nil {
		ctx := &Context{schema: s}
		if s.depsResolver != nil {
			deps, err := s.depsResolver(s)
			if err != nil {
				return nil, err
			}
			ctx.deps = deps
		}
		if err := s.block(ctx, root); err != nil {
			return nil, err
		}
	}

	result := newResult(s, processedInput, processedOutput, root.Errors())
	s.logger.Debug("validation run finished",
		"run_id", runID,
		"root", s.rootName,
		"success", result.Success(),
	)
	return result, nil
}

// MustCall is Call panicking on developer errors, convenient in tests and
// one-off scripts where misconfiguration should crash loudly.
func (s *Schema) MustCall(input any) *Result {
	result, err := s.Call(input)
	if err != nil {
		panic(err)
	}
	return result
}
