package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where the error occurred
type Phase string

const (
	PhaseInstall Phase = "install" // handler configuration and arming
	PhaseOpen    Phase = "open"    // opening the report destination
	PhaseCapture Phase = "capture" // collecting frames and thread state
	PhaseWrite   Phase = "write"   // emitting a report
	PhaseParse   Phase = "parse"   // reading a report back
	PhaseClose   Phase = "close"   // handler teardown
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput   Kind = "invalid_input"
	KindInvalidData    Kind = "invalid_data"
	KindMissingSection Kind = "missing_section"
	KindOverflow       Kind = "overflow"
	KindIO             Kind = "io"
	KindClosed         Kind = "closed"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Path    string
	Section string
	Detail  string
	Line    int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}

	if e.Line > 0 {
		b.WriteString(" line ")
		b.WriteString(strconv.Itoa(e.Line))
	}

	if e.Section != "" {
		b.WriteString(" in ")
		b.WriteString(e.Section)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the file path involved
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Line sets the 1-based report line
func (b *Builder) Line(n int) *Builder {
	b.err.Line = n
	return b
}

// Section sets the report section name
func (b *Builder) Section(s string) *Builder {
	b.err.Section = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// InvalidData creates an invalid data error at a report line
func InvalidData(phase Phase, line int, section, detail string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindInvalidData,
		Line:    line,
		Section: section,
		Detail:  detail,
	}
}

// MissingSection creates an error for a report section that never appeared
func MissingSection(section string) *Error {
	return &Error{
		Phase:   PhaseParse,
		Kind:    KindMissingSection,
		Section: section,
		Detail:  fmt.Sprintf("section %q not found", section),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, limit any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("value %v exceeds %v", value, limit),
		Value:  value,
	}
}

// IO wraps a system call failure on path
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindIO,
		Path:  path,
		Cause: cause,
	}
}

// Closed creates an error for operations on a closed handler
func Closed(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: "handler is closed",
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
