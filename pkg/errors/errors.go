// Package errors provides structured error handling for the easel toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a rejected argument, such as a resize
	// with negative dimensions.
	KindInvalidArgument
	// KindInvariant indicates a violated programming contract, such as
	// mutation from inside a render call.
	KindInvariant
	// KindRender indicates a rendering error.
	KindRender
	// KindConfig indicates a theme or configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvariant:
		return "invariant"
	case KindRender:
		return "render"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// EaselError represents a structured error in the easel toolkit.
type EaselError struct {
	// Op is the operation that failed (e.g., "control.Resize").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EaselError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EaselError) Unwrap() error {
	return e.Err
}

// InvalidArgument constructs an argument-rejection error for op.
func InvalidArgument(op, format string, args ...any) *EaselError {
	return &EaselError{
		Op:        op,
		Kind:      KindInvalidArgument,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Config constructs a configuration error for op, wrapping err.
func Config(op string, err error) *EaselError {
	return &EaselError{
		Op:        op,
		Kind:      KindConfig,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// Configf constructs a configuration error for op from a format string.
func Configf(op, format string, args ...any) *EaselError {
	return Config(op, fmt.Errorf(format, args...))
}

// IsConfig reports whether err is an EaselError with KindConfig anywhere
// in its chain.
func IsConfig(err error) bool {
	for err != nil {
		if e, ok := err.(*EaselError); ok && e.Kind == KindConfig {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// IsInvalidArgument reports whether err is an EaselError with
// KindInvalidArgument anywhere in its chain.
func IsInvalidArgument(err error) bool {
	for err != nil {
		if e, ok := err.(*EaselError); ok && e.Kind == KindInvalidArgument {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.RequestRender").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// InvariantError represents a violated programming contract. These are
// fatal when debug checks are enabled and reported-and-ignored otherwise;
// the toolkit never attempts to recover from them.
type InvariantError struct {
	// Op is the operation where the violation was detected.
	Op string
	// Control describes the control involved, if any.
	Control string
	// Detail explains which contract was broken.
	Detail string
	// StackTrace contains the call stack at the time of detection.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *InvariantError) Error() string {
	if e.Control != "" {
		return fmt.Sprintf("invariant violated in %s (%s): %s", e.Op, e.Control, e.Detail)
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Detail)
}

// ErrorHandler receives errors reported by the easel toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EaselError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleInvariant is called when a programming contract is violated.
	HandleInvariant(err *InvariantError)
}
