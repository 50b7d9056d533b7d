package classifier

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry maps platform names to classifier factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a platform factory.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("platform name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("platform %q: factory cannot be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlatform, name)
	}
	r.factories[name] = factory
	return nil
}

// MustRegister is like Register but panics on error. Meant for static registration.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered platform names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the classifier of a platform and wraps it.
// Every failure, including a panicking factory, is returned as a *ModuleError.
func (r *Registry) Open(name string, opts ...WrapperOption) (w *Wrapper, err error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ModuleError{Platform: name, Err: ErrUnknownPlatform}
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			w = nil
			err = &ModuleError{Platform: name, Err: fmt.Errorf("factory panicked: %v", recovered)}
		}
	}()

	c, ferr := factory()
	if ferr != nil {
		return nil, &ModuleError{Platform: name, Err: ferr}
	}
	if c == nil {
		return nil, &ModuleError{Platform: name, Err: errors.New("factory returned a nil classifier")}
	}

	return NewWrapper(name, c, opts...), nil
}
