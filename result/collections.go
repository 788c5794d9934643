package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Sequence converts a slice of Results into a Result of a slice,
// fail-fast: the first failure is returned as-is and the remaining
// elements are not inspected.
func Sequence[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			return Fail[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// CollectAll converts a slice of Results into a Result of a slice,
// accumulating: every element is inspected and all failures are merged
// into one error, an aggregate in element order when more than one
// element failed.
func CollectAll[T any](results []Result[T]) Result[[]T] {
	values := make([]T, 0, len(results))
	b := errors.NewBuilder()
	for _, r := range results {
		if r.err != nil {
			b.Append(r.err)
			continue
		}
		values = append(values, r.value)
	}
	if err, found := b.TryBuild(); found {
		return Fail[[]T](err)
	}
	return Ok(values)
}

// Traverse maps every element through f and sequences the results,
// fail-fast: the first failure stops the traversal and f is not invoked
// for the remaining elements.
func Traverse[T, U any](items []T, f func(T) Result[U]) Result[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		r := f(item)
		if r.err != nil {
			return Fail[[]U](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// TraverseAll maps every element through f, accumulating: f is invoked for
// every element regardless of earlier failures and all failures are merged
// into one error.
func TraverseAll[T, U any](items []T, f func(T) Result[U]) Result[[]U] {
	results := make([]Result[U], 0, len(items))
	for _, item := range items {
		results = append(results, f(item))
	}
	return CollectAll(results)
}

// Partition separates the successful values, in order, from the errors of
// the failed elements, in order, discarding nothing.
func Partition[T any](results []Result[T]) (values []T, errs []*errors.Error) {
	values = make([]T, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		values = append(values, r.value)
	}
	return values, errs
}
