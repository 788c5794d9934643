package option

// Sequence converts a slice of Options into an Option of a slice. The
// result is Some only when every element is Some; the first None
// short-circuits to None and the remaining elements are not inspected.
func Sequence[T any](opts []Option[T]) Option[[]T] {
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if !o.some {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Traverse maps every element through f and sequences the results,
// short-circuiting on the first None.
func Traverse[T, U any](items []T, f func(T) Option[U]) Option[[]U] {
	values := make([]U, 0, len(items))
	for _, item := range items {
		o := f(item)
		if !o.some {
			return None[[]U]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// Partition separates the present values, in order, from the count of
// absent elements.
func Partition[T any](opts []Option[T]) (values []T, absent int) {
	values = make([]T, 0, len(opts))
	for _, o := range opts {
		if o.some {
			values = append(values, o.value)
			continue
		}
		absent++
	}
	return values, absent
}

// Choose keeps only the present values, in order.
func Choose[T any](opts []Option[T]) []T {
	values, _ := Partition(opts)
	return values
}

// ChooseMap maps every element through f and keeps only the present
// results, in order. It combines mapping and filtering in one pass.
func ChooseMap[T, U any](items []T, f func(T) Option[U]) []U {
	values := make([]U, 0, len(items))
	for _, item := range items {
		if o := f(item); o.some {
			values = append(values, o.value)
		}
	}
	return values
}

// First returns the first element of the slice, or None when it is empty.
func First[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[0])
}

// Last returns the last element of the slice, or None when it is empty.
func Last[T any](items []T) Option[T] {
	if len(items) == 0 {
		return None[T]()
	}
	return Some(items[len(items)-1])
}

// FirstMatch returns the first element satisfying pred, or None when no
// element matches.
func FirstMatch[T any](items []T, pred func(T) bool) Option[T] {
	for _, item := range items {
		if pred(item) {
			return Some(item)
		}
	}
	return None[T]()
}

// LastMatch returns the last element satisfying pred, or None when no
// element matches.
func LastMatch[T any](items []T, pred func(T) bool) Option[T] {
	for i := len(items) - 1; i >= 0; i-- {
		if pred(items[i]) {
			return Some(items[i])
		}
	}
	return None[T]()
}
