package validation

import "fmt"

// Validation is either a Success carrying a value or a Failure carrying a
// non-empty, ordered list of errors. Failures form a semigroup under
// concatenation: combining two failures keeps every error in encounter order.
type Validation[E, A any] struct {
	value  A
	errs   []E
	failed bool
}

// Success wraps a valid value.
func Success[E, A any](a A) Validation[E, A] {
	return Validation[E, A]{value: a}
}

// Failure builds a failed Validation. It panics when called without errors,
// because an empty failure has no meaning.
func Failure[E, A any](errs ...E) Validation[E, A] {
	if len(errs) == 0 {
		panic("validation: Failure requires at least one error")
	}
	cp := make([]E, len(errs))
	copy(cp, errs)
	return Validation[E, A]{errs: cp, failed: true}
}

func (v Validation[E, A]) IsSuccess() bool {
	return !v.failed
}

func (v Validation[E, A]) IsFailure() bool {
	return v.failed
}

// Get returns the success value and true, or the zero value and false.
func (v Validation[E, A]) Get() (A, bool) {
	if v.failed {
		var zero A
		return zero, false
	}
	return v.value, true
}

// GetOrElse returns the success value or fallback.
func (v Validation[E, A]) GetOrElse(fallback A) A {
	if v.failed {
		return fallback
	}
	return v.value
}

// Errors returns a copy of the failure errors; nil on success.
func (v Validation[E, A]) Errors() []E {
	if !v.failed {
		return nil
	}
	cp := make([]E, len(v.errs))
	copy(cp, v.errs)
	return cp
}

// OrElse returns v when it succeeded, otherwise the result of f applied to
// v's errors. f is not invoked for a success.
func (v Validation[E, A]) OrElse(f func([]E) Validation[E, A]) Validation[E, A] {
	if !v.failed {
		return v
	}
	return f(v.Errors())
}

// MapErrors transforms the error list of a failure.
func (v Validation[E, A]) MapErrors(f func([]E) []E) Validation[E, A] {
	if !v.failed {
		return v
	}
	return Failure[E, A](f(v.Errors())...)
}

func (v Validation[E, A]) String() string {
	if v.failed {
		return fmt.Sprintf("Failure(%v)", v.errs)
	}
	return fmt.Sprintf("Success(%v)", v.value)
}

// Map transforms a success value; failures pass through unchanged.
func Map[E, A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if v.failed {
		return Validation[E, B]{errs: v.errs, failed: true}
	}
	return Success[E](f(v.value))
}

// Chain feeds a success value into f; failures short-circuit.
func Chain[E, A, B any](v Validation[E, A], f func(A) Validation[E, B]) Validation[E, B] {
	if v.failed {
		return Validation[E, B]{errs: v.errs, failed: true}
	}
	return f(v.value)
}

// Ap applies a validated function to a validated argument. When both fail,
// the errors of vf come first, followed by those of va.
func Ap[E, A, B any](vf Validation[E, func(A) B], va Validation[E, A]) Validation[E, B] {
	switch {
	case vf.failed && va.failed:
		return Concat[E, B](vf.errs, va.errs)
	case vf.failed:
		return Validation[E, B]{errs: vf.errs, failed: true}
	case va.failed:
		return Validation[E, B]{errs: va.errs, failed: true}
	}
	return Success[E](vf.value(va.value))
}

// Map2 combines two validations, accumulating the errors of both.
func Map2[E, A, B, C any](va Validation[E, A], vb Validation[E, B], f func(A, B) C) Validation[E, C] {
	switch {
	case va.failed && vb.failed:
		return Concat[E, C](va.errs, vb.errs)
	case va.failed:
		return Validation[E, C]{errs: va.errs, failed: true}
	case vb.failed:
		return Validation[E, C]{errs: vb.errs, failed: true}
	}
	return Success[E](f(va.value, vb.value))
}

// Sequence turns a list of validations into a validation of a list. Every
// element is inspected; all errors are kept in order.
func Sequence[E, A any](vs []Validation[E, A]) Validation[E, []A] {
	values := make([]A, 0, len(vs))
	var errs []E
	for _, v := range vs {
		if v.failed {
			errs = append(errs, v.errs...)
			continue
		}
		values = append(values, v.value)
	}
	if len(errs) > 0 {
		return Failure[E, []A](errs...)
	}
	return Success[E](values)
}

// Fold collapses a validation into a single value.
func Fold[E, A, B any](v Validation[E, A], onFailure func([]E) B, onSuccess func(A) B) B {
	if v.failed {
		return onFailure(v.Errors())
	}
	return onSuccess(v.value)
}

// Concat is the failure semigroup: it joins error lists in order.
func Concat[E, A any](left, right []E) Validation[E, A] {
	errs := make([]E, 0, len(left)+len(right))
	errs = append(errs, left...)
	errs = append(errs, right...)
	return Failure[E, A](errs...)
}
