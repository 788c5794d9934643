package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Result is the outcome of a fallible operation: success carrying a value
// of type T, or failure carrying an *errors.Error. The zero value is a
// success holding T's zero value; construct failures only through Fail,
// Failf, or Of.
//
// Results are immutable. Every combinator returns a new Result, so sharing
// them across goroutines is safe.
type Result[T any] struct {
	value T
	err   *errors.Error
}

// Ok creates a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail creates a failed Result carrying err. A nil err is a programmer
// error and panics: a failure must always carry its error.
func Fail[T any](err *errors.Error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// Failf creates a failed Result carrying a base error with an empty code
// and a formatted message. It is the string-lifting shorthand for
// Fail[T](errors.Newf("", format, args...)).
func Failf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: errors.Newf("", format, args...)}
}

// Of lifts Go's (value, error) return idiom into a Result. A non-nil error
// produces a failure: *errors.Error values are carried as-is, any other
// error becomes a base error with its message.
//
//	data, err := os.ReadFile(path)
//	r := result.Of(data, err)
func Of[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	if domainErr, ok := err.(*errors.Error); ok {
		return Fail[T](domainErr)
	}
	return Fail[T](errors.New("", err.Error()))
}

// IsSuccess reports whether the Result is a success.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the Result is a failure.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Get returns the value and a flag reporting success. On failure it
// returns the zero value and false.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.err == nil
}

// Value returns the value without checking the discriminant. On failure it
// returns the zero value of T; prefer Get unless success has already been
// established.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error without checking the discriminant: nil on
// success.
func (r Result[T]) Err() *errors.Error {
	return r.err
}

// Failure returns the carried error and true when the Result is a failure.
// It implements errors.Fallible for use with errors.Builder.
func (r Result[T]) Failure() (*errors.Error, bool) {
	return r.err, r.err != nil
}

// Must returns the value and panics with the carried error on failure.
// This is a deliberate escape hatch for call sites that accept a crash
// when the operation was expected to succeed; it is not part of normal
// control flow.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// MustSucceed panics with the carried error on failure and is a no-op on
// success. Like Must, it is a deliberate escape hatch.
func (r Result[T]) MustSucceed() {
	if r.err != nil {
		panic(r.err)
	}
}

// GetOr returns the value on success, or def on failure.
func (r Result[T]) GetOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// GetOrElse returns the value on success, or the result of calling f with
// the carried error on failure.
func (r Result[T]) GetOrElse(f func(*errors.Error) T) T {
	if r.err != nil {
		return f(r.err)
	}
	return r.value
}

// Ensure keeps a success only when the predicate holds for its value,
// otherwise it becomes a failure carrying err. A failure propagates
// unchanged, carrying its original error regardless of the predicate,
// which is not invoked.
func (r Result[T]) Ensure(pred func(T) bool, err *errors.Error) Result[T] {
	if r.err != nil {
		return r
	}
	if !pred(r.value) {
		return Fail[T](err)
	}
	return r
}

// Check pairs a predicate with the error to carry when it fails. It is the
// unit of EnsureAll.
type Check[T any] struct {
	Predicate func(T) bool
	Err       *errors.Error
}

// EnsureAll evaluates every check against a successful value, regardless
// of individual outcomes, and merges all failures into one error: the
// single failing check's error, or an aggregate in declaration order when
// several fail. A failure propagates unchanged and no predicate is
// invoked.
func (r Result[T]) EnsureAll(checks ...Check[T]) Result[T] {
	if r.err != nil {
		return r
	}
	b := errors.NewBuilder()
	for _, c := range checks {
		if !c.Predicate(r.value) {
			b.Append(c.Err)
		}
	}
	if err, found := b.TryBuild(); found {
		return Fail[T](err)
	}
	return r
}

// MapError transforms the carried error of a failure. A success propagates
// unchanged and f is not invoked.
func (r Result[T]) MapError(f func(*errors.Error) *errors.Error) Result[T] {
	if r.err == nil {
		return r
	}
	return Fail[T](f(r.err))
}

// OrElse returns r on success, otherwise the fallback.
func (r Result[T]) OrElse(fallback Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return fallback
}

// OrElseGet returns r on success, otherwise the result of calling f with
// the carried error. f is only invoked when needed.
func (r Result[T]) OrElseGet(f func(*errors.Error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return f(r.err)
}

// OnSuccess invokes f with the value on success and returns r unchanged.
// It observes without transforming.
func (r Result[T]) OnSuccess(f func(T)) Result[T] {
	if r.err == nil {
		f(r.value)
	}
	return r
}

// OnFailure invokes f with the carried error on failure and returns r
// unchanged. It observes without transforming.
func (r Result[T]) OnFailure(f func(*errors.Error)) Result[T] {
	if r.err != nil {
		f(r.err)
	}
	return r
}

// OnBoth invokes f regardless of the discriminant and returns r unchanged.
func (r Result[T]) OnBoth(f func()) Result[T] {
	f()
	return r
}

// Match invokes exactly one of the two callbacks: onSuccess with the value
// on success, onFailure with the carried error on failure.
func (r Result[T]) Match(onSuccess func(T), onFailure func(*errors.Error)) {
	if r.err == nil {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}
