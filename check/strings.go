package check

import (
	"regexp"
	"strings"
)

// NotEmpty reports whether s has at least one byte.
func NotEmpty(s string) bool {
	return s != ""
}

// NotBlank reports whether s contains any non-whitespace character.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLength returns a predicate holding when the string has at least n
// runes.
func MinLength(n int) func(string) bool {
	return func(s string) bool {
		return len([]rune(s)) >= n
	}
}

// MaxLength returns a predicate holding when the string has at most n
// runes.
func MaxLength(n int) func(string) bool {
	return func(s string) bool {
		return len([]rune(s)) <= n
	}
}

// LengthBetween returns a predicate holding when the rune count is within
// [lo, hi].
func LengthBetween(lo, hi int) func(string) bool {
	return func(s string) bool {
		n := len([]rune(s))
		return n >= lo && n <= hi
	}
}

// Pattern returns a predicate holding when the string matches the given
// regular expression. The expression is compiled once, at construction;
// an invalid expression is a programmer error and panics, as with
// regexp.MustCompile.
func Pattern(expr string) func(string) bool {
	re := regexp.MustCompile(expr)
	return re.MatchString
}

// Matches returns a predicate holding when the string matches re.
func Matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

// Contains returns a predicate holding when the string contains sub.
func Contains(sub string) func(string) bool {
	return func(s string) bool {
		return strings.Contains(s, sub)
	}
}

// HasPrefix returns a predicate holding when the string starts with
// prefix.
func HasPrefix(prefix string) func(string) bool {
	return func(s string) bool {
		return strings.HasPrefix(s, prefix)
	}
}

// HasSuffix returns a predicate holding when the string ends with suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(s string) bool {
		return strings.HasSuffix(s, suffix)
	}
}
