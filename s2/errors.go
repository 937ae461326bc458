package s2

import "github.com/goedderz/s2geometry/x"

// ValidationErrorKind classifies why IsValid rejected a loop, so callers
// can react programmatically instead of parsing the error message.
type ValidationErrorKind int

const (
	// ErrNotUnitLength means some vertex is not a unit-length vector.
	ErrNotUnitLength ValidationErrorKind = iota
	// ErrNotEnoughVertices means the loop has fewer than 3 vertices (and
	// is not one of the two sentinel empty/full loops).
	ErrNotEnoughVertices
	// ErrDuplicateVertices means two adjacent vertices are equal.
	ErrDuplicateVertices
	// ErrSelfIntersection means two non-adjacent edges cross.
	ErrSelfIntersection
	// ErrDecodeFailure means a decoded loop's on-wire representation was
	// internally inconsistent (bad vertex count, truncated payload, etc).
	ErrDecodeFailure
)

func (k ValidationErrorKind) String() string {
	switch k {
	case ErrNotUnitLength:
		return "not unit length"
	case ErrNotEnoughVertices:
		return "not enough vertices"
	case ErrDuplicateVertices:
		return "duplicate vertices"
	case ErrSelfIntersection:
		return "self-intersection"
	case ErrDecodeFailure:
		return "decode failure"
	default:
		return "unknown validation error"
	}
}

// ValidationError reports why a loop failed validation.
type ValidationError struct {
	Kind    ValidationErrorKind
	Index   int // vertex or edge index relevant to the failure, or -1
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(kind ValidationErrorKind, index int, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Index: index, Message: x.Errorf(format, args...).Error()}
}
