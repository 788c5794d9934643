package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Outcome is the valueless Result: success with no payload, or failure
// carrying an *errors.Error. The zero value is success.
type Outcome struct {
	err *errors.Error
}

// Success creates a successful Outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure creates a failed Outcome carrying err. A nil err is a programmer
// error and panics.
func Failure(err *errors.Error) Outcome {
	if err == nil {
		panic("result: Failure called with nil error")
	}
	return Outcome{err: err}
}

// Failuref creates a failed Outcome carrying a base error with an empty
// code and a formatted message.
func Failuref(format string, args ...any) Outcome {
	return Outcome{err: errors.Newf("", format, args...)}
}

// OfErr lifts a plain Go error into an Outcome: nil becomes success,
// *errors.Error values are carried as-is, anything else becomes a base
// error with its message.
func OfErr(err error) Outcome {
	if err == nil {
		return Success()
	}
	if domainErr, ok := err.(*errors.Error); ok {
		return Failure(domainErr)
	}
	return Failure(errors.New("", err.Error()))
}

// IsSuccess reports whether the Outcome is a success.
func (o Outcome) IsSuccess() bool {
	return o.err == nil
}

// IsFailure reports whether the Outcome is a failure.
func (o Outcome) IsFailure() bool {
	return o.err != nil
}

// Err returns the carried error without checking the discriminant: nil on
// success.
func (o Outcome) Err() *errors.Error {
	return o.err
}

// Failure returns the carried error and true when the Outcome is a
// failure. It implements errors.Fallible for use with errors.Builder.
func (o Outcome) Failure() (*errors.Error, bool) {
	return o.err, o.err != nil
}

// MustSucceed panics with the carried error on failure and is a no-op on
// success. It is a deliberate escape hatch, not normal control flow.
func (o Outcome) MustSucceed() {
	if o.err != nil {
		panic(o.err)
	}
}

// Ensure keeps a success only when the predicate holds, otherwise it
// becomes a failure carrying err. A failure propagates unchanged and the
// predicate is not invoked.
func (o Outcome) Ensure(pred func() bool, err *errors.Error) Outcome {
	if o.err != nil {
		return o
	}
	if !pred() {
		return Failure(err)
	}
	return o
}

// MapError transforms the carried error of a failure. A success propagates
// unchanged and f is not invoked.
func (o Outcome) MapError(f func(*errors.Error) *errors.Error) Outcome {
	if o.err == nil {
		return o
	}
	return Failure(f(o.err))
}

// OnSuccess invokes f on success and returns o unchanged.
func (o Outcome) OnSuccess(f func()) Outcome {
	if o.err == nil {
		f()
	}
	return o
}

// OnFailure invokes f with the carried error on failure and returns o
// unchanged.
func (o Outcome) OnFailure(f func(*errors.Error)) Outcome {
	if o.err != nil {
		f(o.err)
	}
	return o
}

// OnBoth invokes f regardless of the discriminant and returns o unchanged.
func (o Outcome) OnBoth(f func()) Outcome {
	f()
	return o
}

// Match invokes exactly one of the two callbacks.
func (o Outcome) Match(onSuccess func(), onFailure func(*errors.Error)) {
	if o.err == nil {
		onSuccess()
		return
	}
	onFailure(o.err)
}

// WithValue promotes a valueless success into a Result holding v. A
// failure propagates its error unchanged.
func WithValue[T any](o Outcome, v T) Result[T] {
	if o.err != nil {
		return Fail[T](o.err)
	}
	return Ok(v)
}

// WithValueFrom promotes a valueless success into a Result holding the
// value produced by f. A failure propagates its error unchanged and f is
// not invoked.
func WithValueFrom[T any](o Outcome, f func() T) Result[T] {
	if o.err != nil {
		return Fail[T](o.err)
	}
	return Ok(f())
}

// Discard drops the payload of a Result, keeping only its discriminant and
// error.
func Discard[T any](r Result[T]) Outcome {
	return Outcome{err: r.err}
}

// All short-circuits over the given Outcomes: success when every one
// succeeded, otherwise the first failure encountered.
func All(outcomes ...Outcome) Outcome {
	for _, o := range outcomes {
		if o.err != nil {
			return o
		}
	}
	return Success()
}

// Merge accumulates over the given Outcomes: every one is inspected and
// all failures are merged into a single error, an aggregate in argument
// order when more than one failed.
func Merge(outcomes ...Outcome) Outcome {
	b := errors.NewBuilder()
	for _, o := range outcomes {
		b.AppendOnFailure(o)
	}
	if err, found := b.TryBuild(); found {
		return Failure(err)
	}
	return Success()
}
