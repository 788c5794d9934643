package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Map applies f to the value of a success and wraps the result. A failure
// propagates unchanged, carrying the same error; f is not invoked.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(f(r.value))
}

// Bind applies f to the value of a success and returns f's Result as-is,
// without re-wrapping. A failure propagates unchanged; f is not invoked.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return f(r.value)
}

// Fold collapses the Result into a single value: onSuccess with the value
// on success, onFailure with the carried error on failure. Exactly one
// callback is invoked.
func Fold[T, R any](r Result[T], onSuccess func(T) R, onFailure func(*errors.Error) R) R {
	if r.err == nil {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// FoldOutcome collapses an Outcome into a single value. Exactly one
// callback is invoked.
func FoldOutcome[R any](o Outcome, onSuccess func() R, onFailure func(*errors.Error) R) R {
	if o.err == nil {
		return onSuccess()
	}
	return onFailure(o.err)
}

// Flatten collapses a nested Result by one level.
func Flatten[T any](r Result[Result[T]]) Result[T] {
	if r.err != nil {
		return Fail[T](r.err)
	}
	return r.value
}
