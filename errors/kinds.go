package errors

// Kind identifies the variant of an Error. Kinds are string-based for
// debuggability and natural JSON serialization.
type Kind string

const (
	// KindFailure is the base kind for errors that fit no other category.
	KindFailure Kind = "failure"

	// KindValidation indicates an input or business-rule violation.
	KindValidation Kind = "validation"

	// KindNotFound indicates a requested entity is absent.
	KindNotFound Kind = "not_found"

	// KindConflict indicates the operation contradicts current state,
	// such as a duplicate key or a version mismatch.
	KindConflict Kind = "conflict"

	// KindAuthentication indicates identity could not be established.
	KindAuthentication Kind = "authentication"

	// KindAuthorization indicates the identity is established but lacks
	// the privilege for the operation.
	KindAuthorization Kind = "authorization"

	// KindAggregate wraps two or more errors of the other kinds.
	// Aggregates are never nested; they are flattened on construction.
	KindAggregate Kind = "aggregate"
)

// displayNames maps each kind to the name used in string rendering.
var displayNames = map[Kind]string{
	KindFailure:        "Error",
	KindValidation:     "ValidationError",
	KindNotFound:       "NotFoundError",
	KindConflict:       "ConflictError",
	KindAuthentication: "AuthenticationError",
	KindAuthorization:  "AuthorizationError",
	KindAggregate:      "AggregateError",
}

// DisplayName returns the name used when rendering an error of this kind,
// for example "ValidationError". Unknown kinds render as "Error".
func (k Kind) DisplayName() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return displayNames[KindFailure]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := displayNames[k]
	return ok
}

// carriesMetadata reports whether the kind supports key-value metadata.
func (k Kind) carriesMetadata() bool {
	switch k {
	case KindValidation, KindNotFound, KindConflict, KindAuthentication, KindAuthorization:
		return true
	}
	return false
}
