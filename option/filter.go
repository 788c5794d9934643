package option

// Filter is a value mid-way through a chain of predicate checks, started
// with Option.Where. It has two states: eligible, still carrying the value,
// and disqualified, reached the moment any check fails. Once disqualified,
// further checks are no-ops.
//
// A Filter is a transient view over the Option it came from. It must
// collapse back into an Option via Done within the expression chain that
// created it; storing one in a variable, returning it, or passing it as an
// argument is a misuse of the API.
type Filter[T any] struct {
	value    T
	eligible bool
}

// Where starts a deferred check chain seeded with the Option's state. A
// None Option starts disqualified, so every check is a no-op and Done
// returns None.
func (o Option[T]) Where() Filter[T] {
	return Filter[T]{value: o.value, eligible: o.some}
}

// Check evaluates pred against the carried value when still eligible,
// disqualifying the chain when pred returns false. Once disqualified the
// predicate is not invoked.
func (f Filter[T]) Check(pred func(T) bool) Filter[T] {
	if !f.eligible || pred(f.value) {
		return f
	}
	return Filter[T]{}
}

// Done collapses the chain: Some of the carried value when still eligible,
// None otherwise.
func (f Filter[T]) Done() Option[T] {
	if !f.eligible {
		return None[T]()
	}
	return Some(f.value)
}
