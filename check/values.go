package check

// Equals returns a predicate holding when the value equals want.
func Equals[T comparable](want T) func(T) bool {
	return func(v T) bool {
		return v == want
	}
}

// NotEquals returns a predicate holding when the value differs from
// unwanted.
func NotEquals[T comparable](unwanted T) func(T) bool {
	return func(v T) bool {
		return v != unwanted
	}
}

// OneOf returns a predicate holding when the value equals one of the
// allowed values. It is the membership check for closed enumerations.
func OneOf[T comparable](allowed ...T) func(T) bool {
	return func(v T) bool {
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// Zero reports whether v is the zero value of its type.
func Zero[T comparable](v T) bool {
	var zero T
	return v == zero
}

// NotZero reports whether v differs from the zero value of its type.
func NotZero[T comparable](v T) bool {
	var zero T
	return v != zero
}
