package check

import "time"

// Past reports whether t is strictly before the current time.
func Past(t time.Time) bool {
	return t.Before(time.Now())
}

// Future reports whether t is strictly after the current time.
func Future(t time.Time) bool {
	return t.After(time.Now())
}

// Before returns a predicate holding when the value is strictly before
// bound.
func Before(bound time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return t.Before(bound)
	}
}

// After returns a predicate holding when the value is strictly after
// bound.
func After(bound time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return t.After(bound)
	}
}
