package errors

import (
	"fmt"
	"reflect"
	"strings"
)

// Field is a single metadata entry. Metadata preserves insertion order so
// that rendering and iteration are deterministic.
type Field struct {
	Key   string
	Value any
}

// Error is an immutable error value with a kind, a machine-readable code
// (possibly empty), a human-readable message, optional ordered metadata, and,
// for aggregates, a non-empty list of child errors.
//
// It is constructed only through package functions and never mutated after
// construction, so sharing an *Error across goroutines is safe.
type Error struct {
	kind     Kind
	code     string
	message  string
	metadata []Field
	children []*Error
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the machine-readable code. It may be empty.
func (e *Error) Code() string {
	return e.code
}

// Message returns the human-readable message.
func (e *Error) Message() string {
	return e.message
}

// Metadata returns a defensive copy of the metadata entries in insertion
// order. Returns nil if no metadata is attached (maintains immutability).
func (e *Error) Metadata() []Field {
	if e.metadata == nil {
		return nil
	}
	fields := make([]Field, len(e.metadata))
	copy(fields, e.metadata)
	return fields
}

// MetadataValue returns the value attached under key, if any.
func (e *Error) MetadataValue(key string) (any, bool) {
	for _, f := range e.metadata {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Errors returns a defensive copy of an aggregate's child errors in order.
// Returns nil for non-aggregate errors.
func (e *Error) Errors() []*Error {
	if e.children == nil {
		return nil
	}
	children := make([]*Error, len(e.children))
	copy(children, e.children)
	return children
}

// Error returns the string representation.
// Format: "{KindName}: {code} - {message}" or "{KindName}: {message}" when
// the code is empty. Metadata-carrying kinds append
// " - Metadata: {k: v, ...}" when metadata is present, and aggregates append
// " ( {child}, ... )" with every child rendered recursively.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.kind.DisplayName())
	sb.WriteString(": ")
	if e.code != "" {
		sb.WriteString(e.code)
		sb.WriteString(" - ")
	}
	sb.WriteString(e.message)
	if len(e.metadata) > 0 {
		sb.WriteString(" - Metadata: {")
		for i, f := range e.metadata {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %v", f.Key, f.Value)
		}
		sb.WriteString("}")
	}
	if len(e.children) > 0 {
		sb.WriteString(" ( ")
		for i, child := range e.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(child.Error())
		}
		sb.WriteString(" )")
	}
	return sb.String()
}

// String returns the same representation as Error.
func (e *Error) String() string {
	return e.Error()
}

// Equal reports whether e and other are the same error value: same kind,
// same code, same message, the same metadata entries (compared as an
// unordered key-value set, both directions), and, for aggregates, the same
// child sequence in the same order.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.kind != other.kind || e.code != other.code || e.message != other.message {
		return false
	}
	if !metadataEqual(e.metadata, other.metadata) {
		return false
	}
	if len(e.children) != len(other.children) {
		return false
	}
	for i := range e.children {
		if !e.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// metadataEqual compares metadata as key-value sets, ignoring insertion
// order. Values are compared with reflect.DeepEqual.
func metadataEqual(a, b []Field) bool {
	if len(a) != len(b) {
		return false
	}
	for _, fa := range a {
		found := false
		for _, fb := range b {
			if fa.Key == fb.Key && reflect.DeepEqual(fa.Value, fb.Value) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
