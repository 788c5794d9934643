package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Collect2 through Collect8 are the accumulating arity family: every input
// is inspected regardless of earlier failures, and all carried errors are
// merged via errors.Builder into a single error, an aggregate in argument
// order when more than one input failed. For the fail-fast counterparts
// see Combine2 through Combine8.

// Collect2 combines two successful Results with f, or merges every
// failure present into one error.
func Collect2[A, B, R any](ra Result[A], rb Result[B], f func(A, B) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value))
}

// Collect3 combines three successful Results with f, or merges every
// failure present into one error.
func Collect3[A, B, C, R any](ra Result[A], rb Result[B], rc Result[C], f func(A, B, C) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value))
}

// Collect4 combines four successful Results with f, or merges every
// failure present into one error.
func Collect4[A, B, C, D, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], f func(A, B, C, D) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err, rd.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value))
}

// Collect5 combines five successful Results with f, or merges every
// failure present into one error.
func Collect5[A, B, C, D, E, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], f func(A, B, C, D, E) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err, rd.err, re.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value))
}

// Collect6 combines six successful Results with f, or merges every
// failure present into one error.
func Collect6[A, B, C, D, E, F, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], f func(A, B, C, D, E, F) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err, rd.err, re.err, rf.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value))
}

// Collect7 combines seven successful Results with f, or merges every
// failure present into one error.
func Collect7[A, B, C, D, E, F, G, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], rg Result[G], f func(A, B, C, D, E, F, G) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err, rd.err, re.err, rf.err, rg.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value))
}

// Collect8 combines eight successful Results with f, or merges every
// failure present into one error.
func Collect8[A, B, C, D, E, F, G, H, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], rg Result[G], rh Result[H], f func(A, B, C, D, E, F, G, H) R) Result[R] {
	if err := mergeErrors(ra.err, rb.err, rc.err, rd.err, re.err, rf.err, rg.err, rh.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value, rh.value))
}

func mergeErrors(errs ...*errors.Error) *errors.Error {
	b := errors.NewBuilder()
	for _, err := range errs {
		b.Append(err)
	}
	err, _ := b.TryBuild()
	return err
}
