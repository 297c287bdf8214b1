// Package errors provides structured error reporting for tweens.
//
// Configuration problems, missing tag lookups and inactive targets are not
// fatal: the tween degrades to a deterministic fallback or a no-op and the
// condition is sent to the global [ErrorHandler] through [Report].
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
	// KindConfig indicates an invalid configuration that was replaced by a fallback.
	KindConfig
	// KindLookup indicates a tag-qualified call with no matching sibling.
	KindLookup
	// KindInactive indicates a play request on a deactivated entity.
	KindInactive
	// KindPreset indicates a preset that could not be decoded or applied.
	KindPreset
	// KindStore indicates a preset storage failure.
	KindStore
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLookup:
		return "lookup"
	case KindInactive:
		return "inactive"
	case KindPreset:
		return "preset"
	case KindStore:
		return "store"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by TweenError.
var (
	ErrCurveTooShort   = stderrors.New("curve needs at least two keyframes")
	ErrInvalidDuration = stderrors.New("duration must be positive")
	ErrUnknownEquation = stderrors.New("unknown easing equation")
	ErrTagNotFound     = stderrors.New("no tween with tag")
	ErrInactiveTarget  = stderrors.New("target entity is inactive")
	ErrNilEntity       = stderrors.New("nil entity")
)

// TweenError represents a structured, usually non-fatal, tween error.
type TweenError struct {
	// Op is the operation that produced the error (e.g., "tween.PlayWithTag").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Tag is the tween tag involved, if any.
	Tag string
	// Entity is the id of the entity the tween is attached to, if any.
	Entity uint64
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TweenError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s [%s] entity=%d tag=%q: %v", e.Op, e.Kind, e.Entity, e.Tag, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TweenError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tween.Ticker.Step").
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

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// ErrorHandler receives errors reported by the tween runtime.
type ErrorHandler interface {
	// HandleError is called when a non-fatal error is reported.
	HandleError(err *TweenError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
