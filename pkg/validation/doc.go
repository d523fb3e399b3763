// Package validation provides Validation, a two-branch result that either
// holds a value or a non-empty list of errors.
//
// Unlike a plain (value, error) pair, failures accumulate: Ap, Map2 and
// Sequence evaluate every branch and concatenate all errors in encounter
// order, while Chain short-circuits on the first failure. Which one to use is
// the caller's decision: independent checks accumulate, dependent checks
// chain.
//
//	v := validation.Map2(checkName(in), checkAge(in), newUser)
//	if errs := v.Errors(); errs != nil {
//	    // both name and age problems are reported
//	}
package validation
