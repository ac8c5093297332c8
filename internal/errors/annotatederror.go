package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError includes more context than a plain error that is useful for troubleshooting.
type annotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// wrapped is the underlying error, if any.
	wrapped error
}

func newAnnotated(skip int, msg string, wrapped error, attrs []slog.Attr) *annotatedError {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return &annotatedError{
		msg:     msg,
		pc:      pcs[0],
		attrs:   attrs,
		wrapped: wrapped,
	}
}

// New creates a new error with the given message and attributes. The caller's source location is recorded.
func New(msg string, attrs ...slog.Attr) error {
	// Skip runtime.Callers, newAnnotated, and this function.
	return newAnnotated(3, msg, nil, attrs) //nolint:mnd // stack depth
}

// NewSentinel creates a plain error without other context that can be detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap adds a message, the caller's source location and attributes to err.
//
// The message is prepended in the style of fmt.Errorf("msg: %w", err).
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotated(3, msg, err, attrs) //nolint:mnd // stack depth
}

// Error implements error interface.
func (e *annotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.wrapped.Error())
}

func (e *annotatedError) Unwrap() error {
	return e.wrapped
}

// source returns the file:line where the error was created.
func (e *annotatedError) source() string {
	frames := runtime.CallersFrames([]uintptr{e.pc})
	frame, _ := frames.Next()
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// LogValue formats the error for useful logging.
func (e *annotatedError) LogValue() slog.Value {
	return slog.GroupValue(e.attributes()...)
}

// attributes collects the attributes of the whole chain. The outermost source location wins.
func (e *annotatedError) attributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("msg", e.Error()),
		slog.String("source", e.source()),
	}
	attrs = append(attrs, e.attrs...)
	var inner *annotatedError
	if errors.As(e.wrapped, &inner) {
		for _, attr := range inner.attributes() {
			if attr.Key == "msg" || attr.Key == "source" {
				continue
			}
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// SlogError returns an attribute for logging err with its annotations under the "error" key.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var annotated *annotatedError
	if !errors.As(err, &annotated) {
		return slog.String("error", err.Error())
	}
	attrs := annotated.attributes()
	attrs[0] = slog.String("msg", err.Error())
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
