package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // building layout nodes from buffers
	PhaseTraverse  Phase = "traverse"  // recursive apply over a layout tree
	PhaseSlice     Phase = "slice"     // windowing a layout
	PhaseFlatten   Phase = "flatten"   // removing a list level
	PhaseKernel    Phase = "kernel"    // string-kernel provider calls
	PhaseBuild     Phase = "build"     // incremental builders
	PhaseParse     Phase = "parse"     // JSON ingestion
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidOffsets  Kind = "invalid_offsets"  // offsets not non-decreasing
	KindOutOfBounds     Kind = "out_of_bounds"    // index or offset past a buffer
	KindLengthMismatch  Kind = "length_mismatch"  // offsets vs child, field vs record
	KindAxisDepth       Kind = "axis_depth"       // flatten axis exceeds nesting depth
	KindUnsupportedLeaf Kind = "unsupported_leaf" // action cannot handle this leaf kind
	KindUnsupported     Kind = "unsupported"      // operation undefined for node kind
	KindInvalidPattern  Kind = "invalid_pattern"  // provider rejected the pattern
	KindInvalidData     Kind = "invalid_data"
	KindInvalidUTF8     Kind = "invalid_utf8"
	KindMissingExport   Kind = "missing_export" // wasm kernel lacks a capability
	KindInstantiation   Kind = "instantiation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteByte('/')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
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

// Path sets the node path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
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

// InvalidOffsets creates an error for a non-monotonic offsets buffer
func InvalidOffsets(phase Phase, path []string, index int, prev, cur int64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOffsets,
		Path:   path,
		Detail: fmt.Sprintf("offsets decrease at index %d (%d -> %d)", index, prev, cur),
		Value:  cur,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// LengthMismatch creates an error for disagreeing buffer lengths
func LengthMismatch(phase Phase, path []string, what string, got, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLengthMismatch,
		Path:   path,
		Detail: fmt.Sprintf("%s: length %d, expected %d", what, got, want),
		Value:  got,
	}
}

// AxisDepth creates an error for a flatten axis past the nesting depth
func AxisDepth(axis, depth int) *Error {
	return &Error{
		Phase:  PhaseFlatten,
		Kind:   KindAxisDepth,
		Detail: fmt.Sprintf("axis %d exceeds nesting depth %d", axis, depth),
		Value:  axis,
	}
}

// UnsupportedLeaf creates an error for an action applied to a leaf kind it
// does not recognize
func UnsupportedLeaf(phase Phase, path []string, dtype string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedLeaf,
		Path:   path,
		Detail: fmt.Sprintf("leaf dtype %s not supported by this action", dtype),
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

// InvalidPattern creates an error for a pattern the provider rejected
func InvalidPattern(pattern string, cause error) *Error {
	return &Error{
		Phase:  PhaseKernel,
		Kind:   KindInvalidPattern,
		Detail: fmt.Sprintf("pattern %q", pattern),
		Cause:  cause,
		Value:  pattern,
	}
}

// MissingExport creates an error for a wasm kernel lacking a required export
func MissingExport(name string) *Error {
	return &Error{
		Phase:  PhaseKernel,
		Kind:   KindMissingExport,
		Detail: fmt.Sprintf("kernel module does not export %q", name),
		Value:  name,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// IsStructural reports whether err belongs to the structural error family:
// malformed offsets, bounds violations, length mismatches, or a flatten axis
// past the nesting depth.
func IsStructural(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindInvalidOffsets, KindOutOfBounds, KindLengthMismatch, KindAxisDepth:
		return true
	}
	return false
}

// IsUnsupportedLeaf reports whether err marks an action applied to a leaf
// kind it does not handle.
func IsUnsupportedLeaf(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == KindUnsupportedLeaf
}
