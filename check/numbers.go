package check

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number covers every built-in integer and floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Positive reports whether v is greater than zero.
func Positive[T Number](v T) bool {
	return v > 0
}

// Negative reports whether v is less than zero. It never holds for
// unsigned types.
func Negative[T Number](v T) bool {
	return v < 0
}

// NonZero reports whether v differs from zero.
func NonZero[T Number](v T) bool {
	return v != 0
}

// NonNegative reports whether v is zero or greater.
func NonNegative[T Number](v T) bool {
	return v >= 0
}

// GreaterThan returns a predicate holding when the value is strictly
// greater than bound.
func GreaterThan[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool {
		return v > bound
	}
}

// AtLeast returns a predicate holding when the value is greater than or
// equal to bound.
func AtLeast[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool {
		return v >= bound
	}
}

// LessThan returns a predicate holding when the value is strictly less
// than bound.
func LessThan[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool {
		return v < bound
	}
}

// AtMost returns a predicate holding when the value is less than or equal
// to bound.
func AtMost[T cmp.Ordered](bound T) func(T) bool {
	return func(v T) bool {
		return v <= bound
	}
}

// InRange returns a predicate holding when the value is within [lo, hi].
func InRange[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool {
		return v >= lo && v <= hi
	}
}
