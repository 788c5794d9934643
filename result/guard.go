package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Guard is a value mid-way through a chain of predicate checks, started
// with Result.Where. It has three states: eligible, still carrying the
// value of a successful Result; disqualified, reached the moment any check
// fails; and failed, entered when the chain started from a failure, whose
// original error survives collapse untouched.
//
// A Guard is a transient view over the Result it came from. It must
// collapse back into a Result via Done within the expression chain that
// created it; storing one in a variable, returning it, or passing it as an
// argument is a misuse of the API.
type Guard[T any] struct {
	value    T
	err      *errors.Error
	eligible bool
}

// Where starts a deferred check chain seeded with the Result's state. A
// failed Result starts in the failed state: every check is a no-op and
// Done returns the original failure regardless of the supplied error.
func (r Result[T]) Where() Guard[T] {
	return Guard[T]{value: r.value, err: r.err, eligible: r.err == nil}
}

// Check evaluates pred against the carried value when still eligible,
// disqualifying the chain when pred returns false. Once disqualified or
// failed, the predicate is not invoked.
func (g Guard[T]) Check(pred func(T) bool) Guard[T] {
	if !g.eligible || pred(g.value) {
		return g
	}
	return Guard[T]{err: g.err}
}

// Done collapses the chain: the original success when still eligible, the
// original failure when the chain started from one, and a failure carrying
// err when any check disqualified the value.
func (g Guard[T]) Done(err *errors.Error) Result[T] {
	if g.err != nil {
		return Fail[T](g.err)
	}
	if !g.eligible {
		return Fail[T](err)
	}
	return Ok(g.value)
}
