package emitter

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultOptions []Option
	defaultOptMu   sync.Mutex
)

// Option configures a Registry.
type Option func(*Registry)

// Configure sets options for the default Registry.
// Must be called before any module-level functions (Subscribe, Emit, ...).
// Subsequent calls have no effect once the default instance is created.
func Configure(opts ...Option) {
	defaultOptMu.Lock()
	defaultOptions = opts
	defaultOptMu.Unlock()
}

// WithOwner sets the host reported as Event.Emitter().
// Hosts that embed *Registry pass themselves here so listeners see the host,
// not the embedded registry. A nil owner is ignored.
func WithOwner(owner Emitter) Option {
	return func(r *Registry) {
		if !isNil(owner) {
			r.owner = owner
		}
	}
}

// WithLogger sets the logger used for debug output. Default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithVariants sets the variant registry consulted by Emit's As option.
// A nil registry is ignored.
func WithVariants(variants *Variants) Option {
	return func(r *Registry) {
		if variants != nil {
			r.variants = variants
		}
	}
}
