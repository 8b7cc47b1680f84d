// Package emitter gives any Go type a synchronous, per-instance event registry.
//
// A host embeds *Registry, registers listeners by event name, and emits.
// Each Emit builds a fresh Event that listeners may use to halt the rest of
// the dispatch (Stop) or to veto the host's default action (StopDefault).
// EmitArgs is the raw variant: listeners receive positional arguments and
// cannot halt dispatch.
//
// Quick example:
//
//	type Door struct {
//	    *emitter.Registry
//	    open bool
//	}
//
//	d := &Door{}
//	d.Registry = emitter.New(emitter.WithOwner(d))
//
//	d.On("before_open", func(e emitter.Event) error {
//	    e.StopDefault() // keep it shut
//	    return nil
//	})
//
//	e, err := d.Emit("before_open")
//	if err == nil && !e.IsDefaultStopped() {
//	    d.open = true
//	}
//
// Listeners run in registration order on the caller's goroutine. Listener
// errors are returned from Emit unchanged and abort the remaining dispatch.
package emitter

// Key represents a typed semantic identifier for a field.
// Each Key implementation is bound to a specific Variant, ensuring type safety.
type Key interface {
	// Name returns the semantic identifier for this key.
	Name() string

	// Variant returns the type constraint for this key.
	Variant() Variant
}

// Variant is a discriminator for the Field interface implementation type.
type Variant string

const (
	VariantString Variant = "string"
	VariantInt    Variant = "int"
	VariantBool   Variant = "bool"
	VariantAny    Variant = "any"
)

// Field represents a typed value with semantic meaning in an Event.
// Use type assertions to access concrete field types and their typed accessor methods.
type Field interface {
	// Variant returns the discriminator for this field's concrete type.
	Variant() Variant

	// Key returns the semantic identifier for this field.
	Key() Key

	// Value returns the underlying value as any.
	Value() any
}

// GenericField is a generic implementation of Field for typed values.
type GenericField[T any] struct {
	key     Key
	value   T
	variant Variant
}

// Variant returns the discriminator for this field's type.
func (f GenericField[T]) Variant() Variant { return f.variant }

// Key returns the semantic identifier for this field.
func (f GenericField[T]) Key() Key { return f.key }

// Value returns the underlying value as any.
func (f GenericField[T]) Value() any { return f.value }

// Get returns the typed value.
func (f GenericField[T]) Get() T { return f.value }

// Stats reports the listener registry of a Registry.
type Stats struct {
	// ListenerCounts maps each event name to the number of registered listeners.
	ListenerCounts map[string]int
}
