package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister  Phase = "register"  // schema registration
	PhaseEncode    Phase = "encode"    // record to bytes
	PhaseDecode    Phase = "decode"    // bytes to record
	PhaseValidate  Phase = "validate"  // schema self-test
	PhaseFrame     Phase = "frame"     // packet framing
	PhaseBroadcast Phase = "broadcast" // batch argument expansion
	PhaseAppend    Phase = "append"    // construction buffer append
	PhaseDispatch  Phase = "dispatch"  // engine-side buffer consumption
	PhaseScript    Phase = "script"    // guest script execution
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch        Kind = "type_mismatch"
	KindInvalidByteCount    Kind = "invalid_byte_count"
	KindMissingDiscriminant Kind = "missing_discriminant"
	KindInvalidDiscriminant Kind = "invalid_discriminant"
	KindSizeMismatch        Kind = "size_mismatch"
	KindCountMismatch       Kind = "count_mismatch"
	KindDuplicateComponent  Kind = "duplicate_component"
	KindUnknownType         Kind = "unknown_type"
	KindInvalidData         Kind = "invalid_data"
	KindUnsupported         Kind = "unsupported"
	KindNotFound            Kind = "not_found"
	KindRegistration        Kind = "registration"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	GoType    string
	Component string
	Detail    string
	Path      []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Component != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Component != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", component ")
			b.WriteString(e.Component)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("component ")
			b.WriteString(e.Component)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Component != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Component sets the component type name
func (b *Builder) Component(name string) *Builder {
	b.err.Component = name
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

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, component string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		Path:      path,
		GoType:    goType,
		Component: component,
	}
}

// InvalidByteCount creates an error for a byte span whose length does not
// match the declared width
func InvalidByteCount(phase Phase, path []string, actual, expected int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidByteCount,
		Path:   path,
		Detail: fmt.Sprintf("got %d bytes, expected %d", actual, expected),
		Value:  actual,
	}
}

// MissingDiscriminant creates an error for an empty span where an enum
// discriminant byte was expected
func MissingDiscriminant(path []string, enumType string) *Error {
	return &Error{
		Phase:     PhaseDecode,
		Kind:      KindMissingDiscriminant,
		Path:      path,
		Component: enumType,
		Detail:    "empty span, discriminant byte expected",
	}
}

// InvalidDiscriminant creates an error for an out-of-range enum discriminant
func InvalidDiscriminant(path []string, enumType string, disc uint8, numVariants int) *Error {
	return &Error{
		Phase:     PhaseDecode,
		Kind:      KindInvalidDiscriminant,
		Path:      path,
		Component: enumType,
		Detail:    fmt.Sprintf("discriminant %d out of range (enum has %d variants)", disc, numVariants),
		Value:     disc,
	}
}

// CountMismatch creates an error for a batch length that disagrees with the
// target instance count, naming both counts
func CountMismatch(phase Phase, component string, actual, expected int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindCountMismatch,
		Component: component,
		Detail:    fmt.Sprintf("got %d values, expected %d", actual, expected),
		Value:     actual,
	}
}

// SizeMismatch creates an error for an encoded length that disagrees with the
// schema's declared size. This is a schema-definition defect and is
// unreachable once the schema has passed validation.
func SizeMismatch(phase Phase, component string, actual, declared int) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindSizeMismatch,
		Component: component,
		Detail:    fmt.Sprintf("encoded %d bytes, schema declares %d", actual, declared),
		Value:     actual,
	}
}

// DuplicateComponent creates an error for a second packet of the same type
// appended to a single-entity construction buffer
func DuplicateComponent(component string, typeID uint64) *Error {
	return &Error{
		Phase:     PhaseAppend,
		Kind:      KindDuplicateComponent,
		Component: component,
		Detail:    fmt.Sprintf("entity already has a value for type ID %d", typeID),
		Value:     typeID,
	}
}

// UnknownType creates an error for a type ID with no registered schema.
// This signals a version or schema skew between the two sides of the wire
// and is fatal for the buffer being dispatched.
func UnknownType(typeID uint64) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindUnknownType,
		Detail: fmt.Sprintf("no registered schema for type ID %d", typeID),
		Value:  typeID,
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

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
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
