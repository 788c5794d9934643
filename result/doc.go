// Package result provides Result[T], the outcome of a fallible operation:
// success carrying a value of type T, or failure carrying an
// *errors.Error. Outcome is the valueless variant for operations with no
// payload.
//
// Results replace thrown exceptions and sentinel error returns with plain
// values that are threaded through combinator chains and terminated by a
// match or extraction call. A failure is never swallowed: it must be
// matched, extracted, or deliberately discarded through a named
// observation operator.
//
// # Two composition families
//
// Every multi-operand operation comes in one of two flavors:
//
//   - Short-circuit (fail-fast): the first failure encountered is returned
//     immediately and nothing further is evaluated. Map, Bind, Ensure,
//     Combine2..Combine8, Sequence, Traverse, and All belong here. Use it
//     for dependent pipelines, where later steps are meaningless after a
//     failure.
//
//   - Accumulating: every operand is evaluated regardless and all failures
//     are merged, via errors.Builder, into a single aggregate.
//     EnsureAll, Collect2..Collect8, CollectAll, TraverseAll, and Merge
//     belong here. Use it to report every problem at once, as in form
//     validation.
//
// # Quick Start
//
//	func findUser(id string) result.Result[User] {
//	    u, ok := store[id]
//	    if !ok {
//	        return result.Fail[User](errors.NotFound("user.missing", "no such user"))
//	    }
//	    return result.Ok(u)
//	}
//
//	greeting := result.Map(findUser(id), func(u User) string {
//	    return "hello, " + u.Name
//	})
//
// # Escape hatches
//
// Must, MustSucceed, and the unchecked Value/Err accessors are deliberate
// "I accept a crash here" operations: Must and MustSucceed panic with the
// carried error when called on a failure. They are not part of normal
// control flow.
//
// # Deferred checks
//
// Where starts a chain of predicate checks over a successful value that
// collapses back into a Result only at Done:
//
//	result.Ok(age).Where().
//	    Check(check.Positive).
//	    Check(check.AtMost(150)).
//	    Done(errors.Validation("age.range", "age out of range"))
//
// The intermediate Guard value must collapse within the expression chain
// that created it and must never be stored, returned, or passed around on
// its own.
package result
