package result

import (
	"github.com/ymjaber/fluent-unions-sub003/errors"
)

// Combine2 through Combine8 are the fail-fast arity family: all inputs
// must be successes to invoke the combiner, and the first failure in
// argument order is returned as-is, without evaluating the combiner.
// For the accumulating counterparts see Collect2 through Collect8.

// Combine2 combines two successful Results with f, or returns the first
// failure encountered.
func Combine2[A, B, R any](ra Result[A], rb Result[B], f func(A, B) R) Result[R] {
	if ra.err != nil {
		return Fail[R](ra.err)
	}
	if rb.err != nil {
		return Fail[R](rb.err)
	}
	return Ok(f(ra.value, rb.value))
}

// Combine3 combines three successful Results with f, or returns the first
// failure encountered.
func Combine3[A, B, C, R any](ra Result[A], rb Result[B], rc Result[C], f func(A, B, C) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value))
}

// Combine4 combines four successful Results with f, or returns the first
// failure encountered.
func Combine4[A, B, C, D, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], f func(A, B, C, D) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err, rd.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value))
}

// Combine5 combines five successful Results with f, or returns the first
// failure encountered.
func Combine5[A, B, C, D, E, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], f func(A, B, C, D, E) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err, rd.err, re.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value))
}

// Combine6 combines six successful Results with f, or returns the first
// failure encountered.
func Combine6[A, B, C, D, E, F, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], f func(A, B, C, D, E, F) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err, rd.err, re.err, rf.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value))
}

// Combine7 combines seven successful Results with f, or returns the first
// failure encountered.
func Combine7[A, B, C, D, E, F, G, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], rg Result[G], f func(A, B, C, D, E, F, G) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err, rd.err, re.err, rf.err, rg.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value))
}

// Combine8 combines eight successful Results with f, or returns the first
// failure encountered.
func Combine8[A, B, C, D, E, F, G, H, R any](ra Result[A], rb Result[B], rc Result[C], rd Result[D], re Result[E], rf Result[F], rg Result[G], rh Result[H], f func(A, B, C, D, E, F, G, H) R) Result[R] {
	if err := firstError(ra.err, rb.err, rc.err, rd.err, re.err, rf.err, rg.err, rh.err); err != nil {
		return Fail[R](err)
	}
	return Ok(f(ra.value, rb.value, rc.value, rd.value, re.value, rf.value, rg.value, rh.value))
}

func firstError(errs ...*errors.Error) *errors.Error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
