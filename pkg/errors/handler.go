package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerBox lets an interface value live in an atomic.Pointer.
type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: &LogHandler{}})
}

// Handler returns the handler diagnostics are currently sent to.
func Handler() ErrorHandler {
	return current.Load().h
}

// SetHandler installs h and returns the handler it replaces, so tests can
// restore it. A nil h installs a fresh stderr LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerBox{h: h}).h
}

// Report sends err to the active handler, stamping Timestamp when unset.
// Reporting never interrupts the caller.
func Report(err *TweenError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic sends a recovered panic to the active handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic of the surrounding function instead of letting it
// unwind further. It must be deferred directly:
//
//	defer errors.Recover("tween.Step")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: callers(3),
			Timestamp:  time.Now(),
		})
	}
}

// callers formats up to 32 frames of the current goroutine as
// "function (file:line)" lines, leaving out callers and the skip frames
// above it.
func callers(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		fmt.Fprintf(&sb, "%s (%s:%d)\n", f.Function, f.File, f.Line)
		if !more {
			return sb.String()
		}
	}
}
