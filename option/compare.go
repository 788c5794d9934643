package option

import "cmp"

// Equal reports whether two Options are both None or both Some with equal
// values.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

// Compare orders two Options: None sorts before any Some, and two Somes
// compare by value. The result follows the cmp convention of -1, 0, or +1.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	switch {
	case a.some && b.some:
		return cmp.Compare(a.value, b.value)
	case a.some:
		return 1
	case b.some:
		return -1
	default:
		return 0
	}
}
