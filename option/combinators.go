package option

// Map applies f to the value of a Some and wraps the result. None
// propagates unchanged as None of the target type; f is not invoked.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}

// Bind applies f to the value of a Some and returns f's Option as-is,
// without re-wrapping. None propagates unchanged; f is not invoked.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return f(o.value)
}

// Fold collapses the Option into a single value: onSome with the value when
// Some, onNone otherwise. Exactly one callback is invoked.
func Fold[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// Flatten collapses a nested Option by one level.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// Zip2 combines two independent Options with f. Any absence short-circuits
// to None and f is not invoked.
func Zip2[A, B, R any](oa Option[A], ob Option[B], f func(A, B) R) Option[R] {
	if !oa.some || !ob.some {
		return None[R]()
	}
	return Some(f(oa.value, ob.value))
}

// Zip3 combines three independent Options with f. Any absence
// short-circuits to None and f is not invoked.
func Zip3[A, B, C, R any](oa Option[A], ob Option[B], oc Option[C], f func(A, B, C) R) Option[R] {
	if !oa.some || !ob.some || !oc.some {
		return None[R]()
	}
	return Some(f(oa.value, ob.value, oc.value))
}
