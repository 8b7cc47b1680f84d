package emitter

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Factory builds an Event variant from a validated base event.
//
// The base already carries the event name, the emitter and every field passed
// to Emit. Factories read their payload with Key.From and return an error
// when a required field is missing.
type Factory func(base *Base) (Event, error)

// Variants is a named registry of event factories used by Emit's As option.
type Variants struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewVariants creates an empty variant registry.
func NewVariants() *Variants {
	return &Variants{factories: make(map[string]Factory)}
}

// Register adds a factory under name. Names are unique within a registry.
func (v *Variants) Register(name string, factory Factory) error {
	if strings.TrimSpace(name) == "" {
		return NewInvalidArgumentError("variant", "variant name must be non-empty")
	}
	if factory == nil {
		return NewInvalidArgumentError("factory", "factory for variant "+name+" is nil")
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.factories[name]; exists {
		return NewInvalidArgumentError("variant", "variant "+name+" already registered")
	}
	v.factories[name] = factory
	return nil
}

// Lookup returns the factory registered under name.
func (v *Variants) Lookup(name string) (Factory, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	f, ok := v.factories[name]
	return f, ok
}

// Names returns the registered variant names in sorted order.
func (v *Variants) Names() []string {
	v.mu.RLock()
	names := make([]string, 0, len(v.factories))
	for name := range v.factories {
		names = append(names, name)
	}
	v.mu.RUnlock()

	sort.Strings(names)
	return names
}

// build runs factory against base and checks the result keeps the base identity.
func build(base *Base, variant string, factory Factory) (Event, error) {
	event, err := factory(base)
	if err != nil {
		var ce *ConstructionError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, NewConstructionError(base.Name(), variant, "factory failed", err)
	}
	if isNil(event) {
		return nil, NewConstructionError(base.Name(), variant, "factory returned no event", nil)
	}
	if event.Name() != base.Name() {
		return nil, NewConstructionError(base.Name(), variant, "factory renamed the event to "+event.Name(), nil)
	}
	if !sameEmitter(event.Emitter(), base.Emitter()) {
		return nil, NewConstructionError(base.Name(), variant, "factory replaced the emitter", nil)
	}
	return event, nil
}

// sameEmitter compares emitters by identity. Non-comparable host types
// fall back to deep equality instead of panicking.
func sameEmitter(a, b Emitter) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
