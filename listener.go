package emitter

// Listener handles an Event delivered by Emit.
// A non-nil error aborts the dispatch and is returned from Emit unchanged.
type Listener func(Event) error

// ArgsListener handles the raw arguments delivered by EmitArgs.
// A non-nil error aborts the dispatch and is returned from EmitArgs unchanged.
type ArgsListener func(args ...any) error

// Subscription represents one registration of a listener under an event name.
// Registering the same function twice yields two subscriptions that fire independently.
// Call Close() to unregister it and prevent further callbacks.
type Subscription struct {
	name     string
	onEvent  Listener
	onArgs   ArgsListener
	registry *Registry
}

// Name returns the event name this subscription listens to.
func (s *Subscription) Name() string { return s.name }

// Close removes this subscription from its registry. Safe to call more than once.
func (s *Subscription) Close() {
	if s == nil || s.registry == nil {
		return
	}
	s.registry.Unsubscribe(s.name, s)
}
