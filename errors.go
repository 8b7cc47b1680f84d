package emitter

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrInvalidArgument indicates an event or registration was given bad input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConstruction indicates an event variant could not be built.
	ErrConstruction = errors.New("event construction failed")
)

// InvalidArgumentError reports a missing or malformed argument.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Argument, e.Message)
}

// Is implements errors.Is support
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(argument, message string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Message: message}
}

// ConstructionError reports that Emit could not build the requested event.
type ConstructionError struct {
	Event   string // event name being emitted
	Variant string // variant name, empty for an anonymous factory or the default event
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConstructionError) Error() string {
	target := e.Event
	if e.Variant != "" {
		target = fmt.Sprintf("%s (variant %s)", e.Event, e.Variant)
	}
	if e.Err != nil {
		return fmt.Sprintf("cannot construct event %s: %s: %v", target, e.Message, e.Err)
	}
	return fmt.Sprintf("cannot construct event %s: %s", target, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

// NewConstructionError creates a new ConstructionError
func NewConstructionError(event, variant, message string, err error) *ConstructionError {
	return &ConstructionError{
		Event:   event,
		Variant: variant,
		Message: message,
		Err:     err,
	}
}
