package dependencies

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/checkit"
)

const (
	optRegistry = "dependencies.registry"
	optInject   = "dependencies.inject"
)

// ErrInvalidInjectList is returned when the injection declaration stored in
// the schema's options is not a list of dependency names.
var ErrInvalidInjectList = errors.New("dependencies: injection list must be a list of dependency names")

// UnknownDependencyError is returned at call time when an injected name has
// no registry entry.
type UnknownDependencyError struct {
	Name string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("dependencies: no value registered under %q", e.Name)
}

// Registry maps dependency names to values. Values of type func() any are
// invoked at resolve time.
type Registry map[string]any

// Inject declares which registry entries are handed to the block, in order.
type Inject []string

// Provide is shorthand for a single-entry Registry.
func Provide(name string, value any) Registry { return Registry{name: value} }

// Plugin implements the dependency-injection capability.
type Plugin struct{}

func init() { checkit.Register("dependencies", Plugin{}) }

// Name implements checkit.Plugin.
func (Plugin) Name() string { return "dependencies" }

// ExtendSchema installs the resolver that builds Context.Deps for each run.
func (Plugin) ExtendSchema(e *checkit.SchemaExtender) {
	e.DepsResolver(resolve)
}

// Configure merges registry entries and records the injection list.
func (Plugin) Configure(s *checkit.Schema, args ...any) error {
	reg, _ := s.Opt(optRegistry).(Registry)
	if reg == nil {
		reg = Registry{}
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case Registry:
			for name, value := range v {
				reg[name] = value
			}
		case Inject:
			s.SetOpt(optInject, v)
		case []string:
			s.SetOpt(optInject, Inject(v))
		default:
			return fmt.Errorf("%w: got %T", ErrInvalidInjectList, arg)
		}
	}
	s.SetOpt(optRegistry, reg)
	return nil
}

func resolve(s *checkit.Schema) ([]any, error) {
	raw := s.Opt(optInject)
	if raw == nil {
		return nil, nil
	}

	var names []string
	switch v := raw.(type) {
	case Inject:
		names = v
	case []string:
		names = v
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInjectList, raw)
	}

	reg, _ := s.Opt(optRegistry).(Registry)
	deps := make([]any, len(names))
	for i, name := range names {
		value, ok := reg[name]
		if !ok {
			return nil, &UnknownDependencyError{Name: name}
		}
		if fn, isFn := value.(func() any); isFn {
			value = fn()
		}
		deps[i] = value
	}
	return deps, nil
}
