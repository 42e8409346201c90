// Package errors provides error wrapping with slog annotations so that the
// context gathered on the way up the call stack ends up in the logs instead
// of being flattened into the error string.
package errors

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// annotatedError decorates a cause with a message, slog attributes, and the
// program counter of the Wrap call site.
type annotatedError struct {
	msg         string
	cause       error
	annotations []slog.Attr
	pc          uintptr
}

// Wrap annotates err with a message and optional slog attributes.
//
// The attributes are not part of Error(); they are surfaced by SlogError
// when the error is eventually logged.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	var pcs [1]uintptr
	// Skip runtime.Callers and Wrap itself so the recorded frame points at
	// the caller.
	runtime.Callers(2, pcs[:]) //nolint:mnd // see above.
	return &annotatedError{
		msg:         msg,
		cause:       err,
		annotations: annotations,
		pc:          pcs[0],
	}
}

// NewSentinel creates a sentinel error meant for package-level declarations
// and errors.Is comparisons.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// SlogError converts err into a slog.Attr carrying the error message, the
// annotations collected from every Wrap in the chain, and the source
// location of the outermost Wrap call.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var (
		annotations []slog.Attr
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}

	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// collectAnnotations walks the error tree, including errors.Join branches,
// gathering annotations outermost first.
func collectAnnotations(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}

	var annotated *annotatedError
	if errors.As(err, &annotated) {
		*annotations = append(*annotations, annotated.annotations...)
		if *source == "" {
			frames := runtime.CallersFrames([]uintptr{annotated.pc})
			frame, _ := frames.Next()
			if frame.File != "" {
				*source = filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
			}
		}
		collectAnnotations(annotated.cause, annotations, source)
		return
	}

	switch unwrapped := err.(type) { //nolint:errorlint // deliberate structural walk.
	case interface{ Unwrap() error }:
		collectAnnotations(unwrapped.Unwrap(), annotations, source)
	case interface{ Unwrap() []error }:
		for _, e := range unwrapped.Unwrap() {
			collectAnnotations(e, annotations, source)
		}
	}
}

// Re-exported standard library helpers so that callers only need one errors
// import.

func New(text string) error {
	return errors.New(text)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}
