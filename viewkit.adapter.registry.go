package viewkit

import (
	"sort"
	"sync"
)

// AdapterFactory creates a fresh adapter for one engine.
type AdapterFactory func() Adapter

var (
	adapterFactoriesMu sync.RWMutex
	adapterFactories   = make(map[string]AdapterFactory)
)

func init() {
	RegisterAdapter(EngineNameTwig, func() Adapter { return NewTwigAdapter() })
	RegisterAdapter(EngineNameMustache, func() Adapter { return NewMustacheAdapter() })
}

// RegisterAdapter registers an adapter factory by engine name.
// This is typically called from an init() function.
// Panics if the factory is nil or the name is already registered.
func RegisterAdapter(name string, factory AdapterFactory) {
	adapterFactoriesMu.Lock()
	defer adapterFactoriesMu.Unlock()

	if factory == nil {
		panic(ErrMsgNilAdapter)
	}
	if _, exists := adapterFactories[name]; exists {
		panic(ErrMsgAdapterExists + ": " + name)
	}
	adapterFactories[name] = factory
}

// NewAdapter creates an adapter using the factory registered under name.
//
// Example:
//
//	adapter, err := viewkit.NewAdapter("mustache")
func NewAdapter(name string) (Adapter, error) {
	adapterFactoriesMu.RLock()
	factory, ok := adapterFactories[name]
	adapterFactoriesMu.RUnlock()

	if !ok {
		return nil, NewAdapterNotFoundError(name)
	}
	return factory(), nil
}

// ListAdapters returns the registered engine names in sorted order.
func ListAdapters() []string {
	adapterFactoriesMu.RLock()
	defer adapterFactoriesMu.RUnlock()

	names := make([]string, 0, len(adapterFactories))
	for name := range adapterFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
