// Package errors provides structured error handling for daydial.
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
	// KindConfig indicates an invalid screen profile or configuration file.
	KindConfig
	// KindRender indicates a failure producing output for a render tree.
	KindRender
	// KindLocale indicates a weekday table could not be localized.
	KindLocale
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindRender:
		return "render"
	case KindLocale:
		return "locale"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DialError represents a structured error in daydial.
type DialError struct {
	// Op is the operation that failed (e.g., "dial.ScreenProfile.Validate").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

// New returns a DialError for op wrapping err.
func New(op string, kind ErrorKind, err error) *DialError {
	return &DialError{Op: op, Kind: kind, Err: err}
}

// Errorf returns a DialError whose underlying error is built with fmt.Errorf.
func Errorf(op string, kind ErrorKind, format string, args ...any) *DialError {
	return &DialError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

func (e *DialError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DialError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "display.Tick").
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

// ErrorHandler receives errors reported by daydial components.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *DialError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
