// Package check provides the library of named predicates used with the
// deferred check chains of option.Option and result.Result.
//
// Checks that need no parameter are plain predicate functions
// (check.NotEmpty); parameterized checks are factories returning a
// predicate (check.MinLength(3)). Both forms plug directly into a chain:
//
//	option.Some(name).Where().
//	    Check(check.NotEmpty).
//	    Check(check.MinLength(3)).
//	    Done()
//
// Numeric checks are generic over all integer and floating-point types,
// and ordered comparisons work for any ordered type, including strings.
package check
