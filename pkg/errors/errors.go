// Package errors provides structured error handling for clockface.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a caller passed an out-of-range value.
	KindInvalidArgument
	// KindConfig indicates a configuration file could not be read or applied.
	KindConfig
	// KindRender indicates a frame could not be rendered or written.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrInvalidArgument is matched by every error of kind KindInvalidArgument.
var ErrInvalidArgument = stderrors.New("invalid argument")

// ClockError represents a structured error in clockface.
type ClockError struct {
	// Op is the operation that failed (e.g., "clockface.NewClockTime").
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

func (e *ClockError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ClockError) Is(target error) bool {
	return target == ErrInvalidArgument && e.Kind == KindInvalidArgument
}

// InvalidArgument builds a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) *ClockError {
	return &ClockError{
		Op:        op,
		Kind:      KindInvalidArgument,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Wrap attaches op and kind to err. Returns nil if err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &ClockError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// KindOf returns the kind of the first ClockError in err's chain.
func KindOf(err error) ErrorKind {
	var ce *ClockError
	if stderrors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.Update").
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

// ErrorHandler receives errors reported through [Report] and [Recover].
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ClockError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
