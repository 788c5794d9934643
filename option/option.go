package option

// Option represents an optional value: either Some, holding a value of type
// T, or None. The zero value is None.
//
// Option is comparable when T is comparable, so == compares two Options of
// the same type directly.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr lifts a possibly-nil pointer into an Option, dereferencing
// non-nil pointers. The Option holds a copy of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Of lifts Go's comma-ok idiom into an Option:
//
//	v, ok := m[key]
//	opt := option.Of(v, ok)
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and a flag reporting presence. On None it returns
// the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Value returns the value without checking presence. On None it returns the
// zero value of T, which is indistinguishable from Some(zero); prefer Get
// unless presence has already been established.
func (o Option[T]) Value() T {
	return o.value
}

// Must returns the value and panics on None. This is a deliberate escape
// hatch for call sites that accept a crash when presence was violated; it
// is not part of normal control flow.
func (o Option[T]) Must() T {
	if !o.some {
		panic("option: Must called on None")
	}
	return o.value
}

// GetOr returns the value, or def when the Option is None.
func (o Option[T]) GetOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// GetOrElse returns the value, or the result of calling f when the Option
// is None. f is only invoked when needed.
func (o Option[T]) GetOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

// ToPtr returns a pointer to a copy of the value, or nil when None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Filter keeps the Option only when the predicate holds for its value.
// None stays None; the predicate is not invoked.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if !o.some || !pred(o.value) {
		return None[T]()
	}
	return o
}

// Or returns o when it is Some, otherwise the fallback.
func (o Option[T]) Or(fallback Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fallback
}

// OrElse returns o when it is Some, otherwise the result of calling f.
// f is only invoked when needed.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Match invokes exactly one of the two callbacks: onSome with the value
// when the Option is Some, onNone otherwise.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
		return
	}
	onNone()
}
