package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
	"github.com/ymjaber/fluent-unions-sub003/option"
)

// Default errors for the Option conversions. Callers override them per
// call site by passing a non-nil error; there is no process-wide
// configuration, keeping the defaults immutable.
var (
	// ErrNoValue is carried when a None Option is converted to a Result
	// without a caller-supplied error.
	ErrNoValue = errors.New("NO_VALUE", "option was none")

	// ErrValuePresent is carried when EnsureNone meets a Some Option
	// without a caller-supplied error.
	ErrValuePresent = errors.New("VALUE_PRESENT", "value unexpectedly present")
)

// FromOption converts an Option into a Result: Some becomes a success and
// None becomes a failure carrying err, or ErrNoValue when err is nil.
func FromOption[T any](o option.Option[T], err *errors.Error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	if err == nil {
		err = ErrNoValue
	}
	return Fail[T](err)
}

// EnsureSome is FromOption under its validation-flavored name: it succeeds
// only when the Option is present.
func EnsureSome[T any](o option.Option[T], err *errors.Error) Result[T] {
	return FromOption(o, err)
}

// EnsureNone succeeds only when the Option is absent, otherwise it fails
// carrying err, or ErrValuePresent when err is nil.
func EnsureNone[T any](o option.Option[T], err *errors.Error) Outcome {
	if o.IsNone() {
		return Success()
	}
	if err == nil {
		err = ErrValuePresent
	}
	return Failure(err)
}

// ToOption converts a Result into an Option, discarding the error of a
// failure entirely: success becomes Some, failure becomes None. The
// conversion is lossy in this direction only.
func ToOption[T any](r Result[T]) option.Option[T] {
	if r.err != nil {
		return option.None[T]()
	}
	return option.Some(r.value)
}
