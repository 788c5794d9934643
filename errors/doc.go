// Package errors provides the structured error model for the fluent-unions
// library: immutable error values carrying a machine-readable code, a
// human-readable message, and optional key-value metadata, plus an
// accumulator for collecting several errors into a single aggregate.
//
// Errors are plain values. They are created wherever a failure is detected,
// carried by a failed result.Result, and never thrown; the library reserves
// panics for documented programmer errors only.
//
// # Kinds
//
// The model is a closed set of kinds rather than an open class hierarchy:
//
//   - KindFailure: the base/generic kind for anything unclassified
//   - KindValidation: input or business-rule violation
//   - KindNotFound: a requested entity is absent
//   - KindConflict: the operation contradicts current state
//   - KindAuthentication: identity could not be established
//   - KindAuthorization: identity established but insufficient privilege
//   - KindAggregate: wraps two or more of the above
//
// Two errors are equal only when their kinds match exactly; a validation
// error is never equal to a base error with the same code and message.
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New("user.missing", "user not found")
//	err := errors.Validation("name.empty", "name must not be empty",
//	    errors.Field{Key: "field", Value: "name"})
//
// Accumulating errors:
//
//	b := errors.NewBuilder()
//	b.Append(checkName(name))
//	b.Append(checkAge(age))
//	if err, found := b.TryBuild(); found {
//	    return result.Fail[User](err)
//	}
//
// # Aggregates
//
// An aggregate always holds at least one child and is never nested: appending
// an aggregate to a Builder splices its children in, and the Aggregate
// constructor flattens its inputs. Constructing an aggregate from zero errors
// is a programmer error and panics.
//
// # Serialization
//
// *Error implements json.Marshaler and json.Unmarshaler with a
// {kind, code, message, metadata, errors} payload, and FromParts rebuilds a
// specific kind from an external discriminator string. The wire format
// belongs to the callers; this package only guarantees the fields.
package errors
