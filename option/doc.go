// Package option provides Option[T], a container for a value that may or
// may not be present, replacing nullable references and sentinel values.
//
// An Option is either Some (holding a value) or None. The zero value is
// None. Options are immutable: every combinator returns a new Option and
// never mutates its input, so sharing Options across goroutines is safe.
//
// # Quick Start
//
//	name := option.Some("gopher")
//	upper := option.Map(name, strings.ToUpper)
//
//	port := option.FromPtr(cfg.Port).GetOr(8080)
//
// Type-changing operations (Map, Bind, Fold, Zip2, ...) are package
// functions because Go methods cannot introduce new type parameters;
// same-type operations (Filter, Or, OrElse, Match) are methods.
//
// # Extraction
//
// Get returns the value with a presence flag. Value returns the value
// without checking and Must panics on None; both are deliberate escape
// hatches for call sites that have already established presence, not part
// of normal control flow.
//
// # Deferred checks
//
// Where starts a chain of predicate checks that collapses back into an
// Option only at Done:
//
//	option.Some(name).Where().
//	    Check(check.NotEmpty).
//	    Check(check.MinLength(3)).
//	    Done()
//
// The intermediate Filter value is a transient view over the original
// value. It must collapse within the expression chain that created it and
// must never be stored, returned, or passed around on its own.
package option
