package checkit

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoaderFunc resolves a plugin that is not yet registered, the Go analogue
// of bringing a plugin's defining code into scope by naming convention.
// Returning a nil Plugin with a nil error means the loader could not resolve
// the name; the loader may instead register the plugin itself as a side
// effect and return nil.
type LoaderFunc func(name string) (Plugin, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Plugin{}

	loaderMu sync.RWMutex
	loader   LoaderFunc

	loadGroup singleflight.Group
)

// Register records a plugin under name in the process-wide registry. Plugin
// packages call it from init, so importing the package (blank import is
// enough) makes the plugin loadable by name. Registering the same name twice
// simply replaces the entry.
func Register(name string, p Plugin) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = p
}

// Registered returns the plugin recorded under name, if any.
func Registered(name string) (Plugin, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// SetLoader installs a process-wide fallback used by Load for names that are
// not registered yet, e.g. to map names onto lazily constructed plugins.
func SetLoader(fn LoaderFunc) {
	loaderMu.Lock()
	defer loaderMu.Unlock()
	loader = fn
}

func currentLoader() LoaderFunc {
	loaderMu.RLock()
	defer loaderMu.RUnlock()
	return loader
}

// Load resolves a plugin name to its implementation exactly once. Registered
// names return immediately; otherwise the configured loader runs, with
// concurrent first-time loads of the same name collapsed into a single
// attempt. A name that is still unregistered afterwards yields an
// UnknownPluginError naming the offending plugin.
func Load(name string) (Plugin, error) {
	if p, ok := Registered(name); ok {
		return p, nil
	}

	v, err, _ := loadGroup.Do(name, func() (any, error) {
		if p, ok := Registered(name); ok {
			return p, nil
		}
		if fn := currentLoader(); fn != nil {
			p, err := fn(name)
			if err != nil {
				return nil, err
			}
			if p != nil {
				Register(name, p)
				return p, nil
			}
		}
		// The loader may have registered the plugin as a side effect.
		if p, ok := Registered(name); ok {
			return p, nil
		}
		return nil, &UnknownPluginError{Name: name}
	})
	if err != nil {
		return nil, err
	}
	return v.(Plugin), nil
}
