package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const (
	ErrCodeIllegalArgument   string = "ILLEGAL_ARGUMENT"
	ErrCodeInvalidOptions    string = "INVALID_OPTIONS"
	ErrCodeMethodOverwrite   string = "METHOD_OVERWRITE"
	ErrCodeUnknownAttribute  string = "UNKNOWN_ATTRIBUTE"
	ErrCodeUnknownAccessor   string = "UNKNOWN_ACCESSOR"
	ErrCodeMissingFormat     string = "MISSING_FORMAT"
	ErrCodeParseError        string = "PARSE_ERROR"
	ErrCodeUnknownZone       string = "UNKNOWN_ZONE"
	ErrCodeUnknownLocale     string = "UNKNOWN_LOCALE"
	ErrCodeUnsupportedValue  string = "UNSUPPORTED_VALUE"
	ErrCodeConfigLoadFailure string = "CONFIG_LOAD_FAILURE"
)

var (
	ErrIllegalArgument = NewErrfCode(ErrCodeIllegalArgument, "Illegal Argument")
)

const maxStackDepth = 32

// Coded error.
//
// A package declares its sentinels once
//
//	var ErrParse = errs.NewErrfCode(errs.ErrCodeParseError, "Parse Error")
//
// and returns derived copies, e.g., ErrParse.WithInternalMsg(..) or ErrParse.Wrap(..).
// Errors with the same code match each other in errors.Is.
type Err struct {
	code   string
	msg    string
	detail string // e.g., the offending value
	stack  string // captured when the error is derived from a sentinel
	cause  error
}

func (e *Err) Code() string {
	return e.code
}

func (e *Err) Msg() string {
	return e.msg
}

func (e *Err) InternalMsg() string {
	return e.detail
}

func (e *Err) StackTrace() string {
	return e.stack
}

func (e *Err) Unwrap() error {
	return e.cause
}

func (e *Err) Error() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.msg, e.detail} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if e.cause != nil {
		parts = append(parts, e.cause.Error())
	}
	return strings.Join(parts, ", ")
}

// Implements errors.Is, both errors carry the same non-empty code.
func (e *Err) Is(target error) bool {
	t, ok := target.(*Err)
	return ok && e.code != "" && t.code == e.code
}

func (e *Err) derive(skip int) *Err {
	d := *e
	d.stack = callers(skip + 1)
	return &d
}

// Copy with detail message attached.
func (e *Err) WithInternalMsg(msg string, args ...any) *Err {
	d := e.derive(2)
	d.detail = sprintf(msg, args)
	return d
}

// Copy wrapping cause, nil if cause is nil.
func (e *Err) Wrap(cause error) error {
	if cause == nil {
		return nil
	}
	d := e.derive(2)
	d.cause = cause
	return d
}

// Copy wrapping cause with detail message, nil if cause is nil.
func (e *Err) Wrapf(cause error, msg string, args ...any) error {
	if cause == nil {
		return nil
	}
	d := e.derive(2)
	d.cause = cause
	d.detail = sprintf(msg, args)
	return d
}

// Create sentinel error with code.
func NewErrfCode(code string, msg string, args ...any) *Err {
	return &Err{code: code, msg: sprintf(msg, args)}
}

// Wrap err with message, nil if err is nil.
func WrapErrf(err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Err{msg: sprintf(msg, args), cause: err, stack: callers(2)}
}

// Error message followed by the innermost captured stack, if any.
func ErrorStackTrace(err error) string {
	if err == nil {
		return "nil"
	}
	var stack string
	for u := err; u != nil; u = errors.Unwrap(u) {
		if e, ok := u.(*Err); ok && e.stack != "" {
			stack = e.stack
		}
	}
	return err.Error() + stack
}

func sprintf(msg string, args []any) string {
	if len(args) < 1 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func callers(skip int) string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "\n\t%v\n\t\t%v:%v", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}
