package errors

// Fallible is the read-only failure view of a result value. It is
// implemented by result.Result and result.Outcome and lets the Builder
// collect failures without depending on the result package.
type Fallible interface {
	// Failure returns the carried error and true when the value is a
	// failure, or nil and false on success.
	Failure() (*Error, bool)
}

// Builder accumulates errors during a single validation episode and
// collapses them into nothing, a single error, or an aggregate.
//
// A Builder is a single-use, single-goroutine value: create one per
// validation, append to it, then call TryBuild or Build exactly once.
// It carries no synchronization.
type Builder struct {
	errs []*Error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds an error to the accumulated list and returns the builder for
// chaining. Appending an aggregate splices its children in rather than
// nesting aggregates; appending nil is a no-op.
func (b *Builder) Append(err *Error) *Builder {
	if err == nil {
		return b
	}
	if err.kind == KindAggregate {
		b.errs = append(b.errs, err.children...)
		return b
	}
	b.errs = append(b.errs, err)
	return b
}

// AppendOnFailure appends the error carried by r only when r is a failure.
// Success values are a no-op. Returns the builder for chaining.
func (b *Builder) AppendOnFailure(r Fallible) *Builder {
	if err, failed := r.Failure(); failed {
		return b.Append(err)
	}
	return b
}

// HasErrors reports whether at least one error has been accumulated.
func (b *Builder) HasErrors() bool {
	return len(b.errs) > 0
}

// TryBuild collapses the accumulated errors. It returns (nil, false) when
// nothing was accumulated, the single error when exactly one was, and an
// aggregate over the full list in append order otherwise.
func (b *Builder) TryBuild() (*Error, bool) {
	switch len(b.errs) {
	case 0:
		return nil, false
	case 1:
		return b.errs[0], true
	default:
		return Aggregate(b.errs...), true
	}
}

// Build is TryBuild for callers that know at least one error was
// accumulated. Calling Build on an empty builder is a programmer error and
// panics; use HasErrors or TryBuild when emptiness is a legitimate outcome.
func (b *Builder) Build() *Error {
	err, found := b.TryBuild()
	if !found {
		panic("errors: Build called on a Builder with no accumulated errors")
	}
	return err
}
