package emitter

import (
	"sync"

	"github.com/rs/zerolog"
)

// Emitter is the capability a host gains by embedding *Registry.
type Emitter interface {
	// Subscribe appends an event listener for name.
	Subscribe(name string, listener Listener) *Subscription

	// On is an alias for Subscribe.
	On(name string, listener Listener) *Subscription

	// SubscribeArgs appends a raw-argument listener for name.
	SubscribeArgs(name string, listener ArgsListener) *Subscription

	// OnArgs is an alias for SubscribeArgs.
	OnArgs(name string, listener ArgsListener) *Subscription

	// Unsubscribe removes the given subscriptions, or every listener for
	// name when none are given.
	Unsubscribe(name string, subs ...*Subscription)

	// Un is an alias for Unsubscribe.
	Un(name string, subs ...*Subscription)

	// Emit builds an Event and dispatches it to the event listeners for name.
	Emit(name string, opts ...EmitOption) (Event, error)

	// EmitArgs dispatches args to the raw-argument listeners for name.
	EmitArgs(name string, args ...any) error
}

// Registry is the per-instance listener registry implementing Emitter.
// Listeners run synchronously on the emitting goroutine; the registry lock is
// never held while a listener runs, so listeners may subscribe, unsubscribe
// and emit freely.
//
// The zero value is ready to use and behaves like New() without options.
// Hosts that embed *Registry should still build it with New(WithOwner(host))
// so events report the host as their emitter.
type Registry struct {
	registry map[string][]*Subscription
	owner    Emitter
	variants *Variants
	logger   zerolog.Logger
	mu       sync.RWMutex
}

var _ Emitter = (*Registry)(nil)

// New creates a new Registry with optional configuration.
// Without options the registry reports itself as the event emitter, logs
// nothing and has an empty variant registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		registry: make(map[string][]*Subscription),
		variants: NewVariants(),
		logger:   zerolog.Nop(),
	}
	r.owner = r
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Variants returns the variant registry consulted by Emit's As option.
func (r *Registry) Variants() *Variants {
	r.mu.RLock()
	v := r.variants
	r.mu.RUnlock()
	if v != nil {
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.variants == nil {
		r.variants = NewVariants()
	}
	return r.variants
}

// emitterFor returns the emitter reported on events built by this registry.
func (r *Registry) emitterFor() Emitter {
	if r.owner == nil {
		return r
	}
	return r.owner
}

// Subscribe registers listener for name and returns its subscription.
// A nil listener is ignored and yields a subscription that never fires.
func (r *Registry) Subscribe(name string, listener Listener) *Subscription {
	return r.add(&Subscription{name: name, onEvent: listener, registry: r})
}

// On is an alias for Subscribe.
func (r *Registry) On(name string, listener Listener) *Subscription {
	return r.Subscribe(name, listener)
}

// SubscribeArgs registers a raw-argument listener for name.
func (r *Registry) SubscribeArgs(name string, listener ArgsListener) *Subscription {
	return r.add(&Subscription{name: name, onArgs: listener, registry: r})
}

// OnArgs is an alias for SubscribeArgs.
func (r *Registry) OnArgs(name string, listener ArgsListener) *Subscription {
	return r.SubscribeArgs(name, listener)
}

func (r *Registry) add(sub *Subscription) *Subscription {
	if sub.onEvent == nil && sub.onArgs == nil {
		return sub
	}

	r.mu.Lock()
	if r.registry == nil {
		r.registry = make(map[string][]*Subscription)
	}
	r.registry[sub.name] = append(r.registry[sub.name], sub)
	count := len(r.registry[sub.name])
	r.mu.Unlock()

	r.logger.Debug().Str("event", sub.name).Int("listeners", count).Msg("listener subscribed")
	return sub
}

// Unsubscribe removes subs from name, keeping the order of the remaining
// listeners. With no subs it removes every listener for name.
// Unknown names and subscriptions that are not registered are ignored.
func (r *Registry) Unsubscribe(name string, subs ...*Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listeners, exists := r.registry[name]
	if !exists {
		return
	}

	if len(subs) == 0 {
		delete(r.registry, name)
		r.logger.Debug().Str("event", name).Int("removed", len(listeners)).Msg("listeners cleared")
		return
	}

	drop := make(map[*Subscription]struct{}, len(subs))
	for _, s := range subs {
		drop[s] = struct{}{}
	}

	// Build a fresh slice so snapshots taken by in-flight emits stay intact
	kept := make([]*Subscription, 0, len(listeners))
	for _, l := range listeners {
		if _, ok := drop[l]; !ok {
			kept = append(kept, l)
		}
	}

	// Clean up empty entries
	if len(kept) == 0 {
		delete(r.registry, name)
	} else {
		r.registry[name] = kept
	}

	if removed := len(listeners) - len(kept); removed > 0 {
		r.logger.Debug().Str("event", name).Int("removed", removed).Msg("listeners unsubscribed")
	}
}

// Un is an alias for Unsubscribe.
func (r *Registry) Un(name string, subs ...*Subscription) {
	r.Unsubscribe(name, subs...)
}

// snapshot copies the listener slice for name while holding the read lock.
func (r *Registry) snapshot(name string) []*Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listeners := make([]*Subscription, len(r.registry[name]))
	copy(listeners, r.registry[name])
	return listeners
}

// Emit builds an event for name and invokes the event listeners in
// registration order, checking IsStopped after each one.
//
// The event is returned whether or not dispatch was stopped early, so the
// host can inspect IsDefaultStopped. Construction failures return a nil event
// and a *ConstructionError. A listener error stops the dispatch and is
// returned unchanged alongside the event.
func (r *Registry) Emit(name string, opts ...EmitOption) (Event, error) {
	event, err := r.newEvent(name, opts)
	if err != nil {
		return nil, err
	}

	invoked := 0
	for _, sub := range r.snapshot(name) {
		if sub.onEvent == nil {
			continue
		}
		invoked++
		if err := sub.onEvent(event); err != nil {
			return event, err
		}
		if event.IsStopped() {
			break
		}
	}

	r.logger.Debug().
		Str("event", name).
		Int("invoked", invoked).
		Bool("stopped", event.IsStopped()).
		Bool("default_stopped", event.IsDefaultStopped()).
		Msg("event emitted")

	return event, nil
}

// EmitArgs invokes the raw-argument listeners for name with args, in
// registration order. No event is built and listeners cannot stop the
// dispatch. A listener error stops the dispatch and is returned unchanged.
func (r *Registry) EmitArgs(name string, args ...any) error {
	invoked := 0
	for _, sub := range r.snapshot(name) {
		if sub.onArgs == nil {
			continue
		}
		invoked++
		if err := sub.onArgs(args...); err != nil {
			return err
		}
	}

	r.logger.Debug().Str("event", name).Int("invoked", invoked).Int("args", len(args)).Msg("args emitted")
	return nil
}

// ListenerCount returns the number of listeners registered for name.
func (r *Registry) ListenerCount(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registry[name])
}

// Stats returns the listener counts of the registry.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		ListenerCounts: make(map[string]int, len(r.registry)),
	}
	for name, listeners := range r.registry {
		stats.ListenerCounts[name] = len(listeners)
	}
	return stats
}
