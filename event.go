package emitter

import (
	"reflect"
	"strings"
	"time"
)

// Event is one occurrence delivered to listeners by Emit.
//
// Name and Emitter are fixed at construction. The two stop latches only ever
// move from false to true, and Stop always sets the default latch too.
// Variants embed *Base and add their own payload.
type Event interface {
	// Name returns the event name used to route the event.
	Name() string

	// Emitter returns the object that emitted the event.
	Emitter() Emitter

	// Timestamp records when the event was created.
	Timestamp() time.Time

	// Get retrieves a field by key, returning nil if not found.
	Get(key Key) Field

	// Fields returns all fields as a slice.
	Fields() []Field

	// StopDefault asks the host to skip its default action.
	// Remaining listeners still run.
	StopDefault()

	// Stop halts the dispatch after the current listener and implies StopDefault.
	Stop()

	// IsDefaultStopped reports whether StopDefault or Stop was called.
	IsDefaultStopped() bool

	// IsStopped reports whether Stop was called.
	IsStopped() bool
}

// Base is the default Event implementation.
type Base struct {
	name           string
	emitter        Emitter
	timestamp      time.Time
	fields         map[string]Field
	defaultStopped bool
	stopped        bool
}

// NewEvent creates a Base event. The name must contain non-whitespace text
// and the emitter must be non-nil.
func NewEvent(name string, emitter Emitter, fields ...Field) (*Base, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidArgumentError("name", "event name must be non-empty")
	}
	if isNil(emitter) {
		return nil, NewInvalidArgumentError("emitter", "event emitter is required")
	}

	e := &Base{
		name:      name,
		emitter:   emitter,
		timestamp: time.Now(),
		fields:    make(map[string]Field, len(fields)),
	}

	// Add fields, keyed by name; later fields win
	for _, field := range fields {
		if field == nil || field.Key() == nil {
			continue
		}
		e.fields[field.Key().Name()] = field
	}

	return e, nil
}

// isNil catches both a nil interface and an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Name returns the event name.
func (e *Base) Name() string { return e.name }

// Emitter returns the object that emitted the event.
func (e *Base) Emitter() Emitter { return e.emitter }

// Timestamp returns when the event was created.
func (e *Base) Timestamp() time.Time { return e.timestamp }

// Get retrieves a field by key, returning nil if not found.
func (e *Base) Get(key Key) Field {
	if key == nil {
		return nil
	}
	return e.fields[key.Name()]
}

// Fields returns all fields as a slice.
// Returns a defensive copy; modifications don't affect the event.
func (e *Base) Fields() []Field {
	result := make([]Field, 0, len(e.fields))
	for _, field := range e.fields {
		result = append(result, field)
	}
	return result
}

// StopDefault marks the host's default action as vetoed.
func (e *Base) StopDefault() {
	e.defaultStopped = true
}

// Stop halts further dispatch and vetoes the default action.
func (e *Base) Stop() {
	e.StopDefault()
	e.stopped = true
}

// IsDefaultStopped reports whether the default action was vetoed.
func (e *Base) IsDefaultStopped() bool { return e.defaultStopped }

// IsStopped reports whether dispatch was halted.
func (e *Base) IsStopped() bool { return e.stopped }
