package emitter

import "sync"

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the package-level Registry, creating it on first use with
// the options given to Configure.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultOptMu.Lock()
		opts := defaultOptions
		defaultOptMu.Unlock()
		defaultRegistry = New(opts...)
	})
	return defaultRegistry
}

// Subscribe registers listener for name on the default instance.
func Subscribe(name string, listener Listener) *Subscription {
	return Default().Subscribe(name, listener)
}

// On is an alias for Subscribe on the default instance.
func On(name string, listener Listener) *Subscription {
	return Default().On(name, listener)
}

// SubscribeArgs registers a raw-argument listener on the default instance.
func SubscribeArgs(name string, listener ArgsListener) *Subscription {
	return Default().SubscribeArgs(name, listener)
}

// Unsubscribe removes subscriptions from the default instance.
func Unsubscribe(name string, subs ...*Subscription) {
	Default().Unsubscribe(name, subs...)
}

// Emit dispatches an event on the default instance.
func Emit(name string, opts ...EmitOption) (Event, error) {
	return Default().Emit(name, opts...)
}

// EmitArgs dispatches raw arguments on the default instance.
func EmitArgs(name string, args ...any) error {
	return Default().EmitArgs(name, args...)
}
