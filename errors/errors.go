package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseClassify  Phase = "classify"  // file-kind dispatch
	PhaseTransform Phase = "transform" // per-variant compilation
	PhaseCollect   Phase = "collect"   // dependency extraction
	PhaseWrap      Phase = "wrap"      // module wrapping
	PhaseSerialize Phase = "serialize" // code and source-map generation
	PhaseData      Phase = "data"      // structured-data handling
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedData Kind = "malformed_data"
	KindTransformer   Kind = "transformer"
	KindWrap          Kind = "wrap"
	KindSerialize     Kind = "serialize"
	KindInvalidInput  Kind = "invalid_input"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	File    string
	Variant string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}

	if e.Variant != "" {
		b.WriteString(" (variant ")
		b.WriteString(e.Variant)
		b.WriteByte(')')
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

// File sets the file being transformed
func (b *Builder) File(file string) *Builder {
	b.err.File = file
	return b
}

// Variant sets the build variant being processed
func (b *Builder) Variant(name string) *Builder {
	b.err.Variant = name
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

// MalformedData creates a structured-data parse failure
func MalformedData(file string, cause error) *Error {
	return &Error{
		Phase:  PhaseData,
		Kind:   KindMalformedData,
		File:   file,
		Cause:  cause,
		Detail: "cannot parse structured data",
	}
}

// Transformer wraps an error raised by the external code transformer.
// The cause preserves the transformer's original diagnostic.
func Transformer(file, variant string, cause error) *Error {
	return &Error{
		Phase:   PhaseTransform,
		Kind:    KindTransformer,
		File:    file,
		Variant: variant,
		Cause:   cause,
	}
}

// WrapFailed creates an unexpected-tree-shape error
func WrapFailed(file, detail string) *Error {
	return &Error{
		Phase:  PhaseWrap,
		Kind:   KindWrap,
		File:   file,
		Detail: detail,
	}
}

// Serialize creates a code-generation failure
func Serialize(file string, cause error) *Error {
	return &Error{
		Phase: PhaseSerialize,
		Kind:  KindSerialize,
		File:  file,
		Cause: cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
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
