package emitter

// EmitOption shapes the event built by Emit.
type EmitOption func(*emitConfig)

type emitConfig struct {
	fields  []Field
	variant string
	factory Factory
}

// WithFields attaches payload fields to the emitted event.
// May be passed more than once; fields accumulate.
func WithFields(fields ...Field) EmitOption {
	return func(c *emitConfig) {
		c.fields = append(c.fields, fields...)
	}
}

// As builds the event with the variant registered under name in the
// registry's Variants. Unknown names make Emit fail with a ConstructionError.
func As(variant string) EmitOption {
	return func(c *emitConfig) {
		c.variant = variant
		c.factory = nil
	}
}

// WithFactory builds the event with factory instead of a registered variant.
// The last of As and WithFactory wins.
func WithFactory(factory Factory) EmitOption {
	return func(c *emitConfig) {
		c.factory = factory
		c.variant = ""
	}
}

// newEvent builds the event for one Emit call.
func (r *Registry) newEvent(name string, opts []EmitOption) (Event, error) {
	var cfg emitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base, err := NewEvent(name, r.emitterFor(), cfg.fields...)
	if err != nil {
		return nil, NewConstructionError(name, cfg.variant, "invalid base event", err)
	}

	switch {
	case cfg.factory != nil:
		return build(base, "", cfg.factory)
	case cfg.variant != "":
		factory, ok := r.Variants().Lookup(cfg.variant)
		if !ok {
			return nil, NewConstructionError(name, cfg.variant, "unknown variant", nil)
		}
		return build(base, cfg.variant, factory)
	default:
		return base, nil
	}
}
