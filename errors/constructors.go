package errors

import "fmt"

// New creates a base error with the given code and message.
// The code may be empty for errors that have no machine-readable identity.
//
// Example:
//
//	err := errors.New("project.missing", "project not found")
func New(code, message string) *Error {
	return &Error{kind: KindFailure, code: code, message: message}
}

// Newf creates a base error with a formatted message.
//
// Example:
//
//	err := errors.Newf("http.status", "unexpected status %d", status)
func Newf(code, format string, args ...any) *Error {
	return &Error{kind: KindFailure, code: code, message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error: an input or business-rule violation.
// Metadata fields are optional and kept in the given order.
//
// Example:
//
//	err := errors.Validation("name.too_long", "name exceeds 100 characters",
//	    errors.Field{Key: "length", Value: len(name)})
func Validation(code, message string, fields ...Field) *Error {
	return newWithMetadata(KindValidation, code, message, fields)
}

// NotFound creates a not-found error: a requested entity is absent.
func NotFound(code, message string, fields ...Field) *Error {
	return newWithMetadata(KindNotFound, code, message, fields)
}

// Conflict creates a conflict error: the operation contradicts current
// state, such as a duplicate key or a version mismatch.
func Conflict(code, message string, fields ...Field) *Error {
	return newWithMetadata(KindConflict, code, message, fields)
}

// Authentication creates an authentication error: identity could not be
// established.
func Authentication(code, message string, fields ...Field) *Error {
	return newWithMetadata(KindAuthentication, code, message, fields)
}

// Authorization creates an authorization error: identity established but
// insufficient privilege.
func Authorization(code, message string, fields ...Field) *Error {
	return newWithMetadata(KindAuthorization, code, message, fields)
}

func newWithMetadata(kind Kind, code, message string, fields []Field) *Error {
	var metadata []Field
	if len(fields) > 0 {
		metadata = make([]Field, len(fields))
		copy(metadata, fields)
	}
	return &Error{kind: kind, code: code, message: message, metadata: metadata}
}

const (
	// AggregateCode is the fixed code carried by every aggregate error.
	AggregateCode = "errors.aggregate"

	// AggregateMessage is the fixed message carried by every aggregate error.
	AggregateMessage = "multiple errors occurred"
)

// Aggregate creates an aggregate error wrapping the given errors. Aggregate
// inputs are flattened so that aggregates never nest; nil inputs are skipped.
//
// Constructing an aggregate from zero errors is a programmer error and
// panics. Callers that may legitimately hold zero errors should use a
// Builder, whose TryBuild reports absence instead.
func Aggregate(errs ...*Error) *Error {
	children := make([]*Error, 0, len(errs))
	for _, err := range errs {
		if err == nil {
			continue
		}
		if err.kind == KindAggregate {
			children = append(children, err.children...)
			continue
		}
		children = append(children, err)
	}
	if len(children) == 0 {
		panic("errors: Aggregate called with no errors")
	}
	return &Error{
		kind:     KindAggregate,
		code:     AggregateCode,
		message:  AggregateMessage,
		children: children,
	}
}
