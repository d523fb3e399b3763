package maybe

import (
	"fmt"

	"github.com/samber/mo"
)

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[A any] struct {
	opt mo.Option[A]
}

// Some wraps a present value. A nil value is still present.
func Some[A any](v A) Option[A] {
	return Option[A]{opt: mo.Some(v)}
}

// None returns an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromMo wraps a mo.Option.
func FromMo[A any](o mo.Option[A]) Option[A] {
	return Option[A]{opt: o}
}

// FromPointer returns Some(*p) for a non-nil pointer and None otherwise.
func FromPointer[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

func (o Option[A]) IsSome() bool {
	return o.opt.IsPresent()
}

func (o Option[A]) IsNone() bool {
	return o.opt.IsAbsent()
}

// Get returns the value and whether it is present.
func (o Option[A]) Get() (A, bool) {
	return o.opt.Get()
}

// GetOrElse returns the value if present, fallback otherwise.
func (o Option[A]) GetOrElse(fallback A) A {
	return o.opt.OrElse(fallback)
}

// OrElse returns o if present, other otherwise.
func (o Option[A]) OrElse(other Option[A]) Option[A] {
	if o.opt.IsPresent() {
		return o
	}
	return other
}

// Mo exposes the underlying mo.Option.
func (o Option[A]) Mo() mo.Option[A] {
	return o.opt
}

func (o Option[A]) String() string {
	v, ok := o.opt.Get()
	if !ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", v)
}

// Map applies f to a present value.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	v, ok := o.opt.Get()
	if !ok {
		return None[B]()
	}
	return Some(f(v))
}

// FlatMap applies f to a present value and returns its Option.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	v, ok := o.opt.Get()
	if !ok {
		return None[B]()
	}
	return f(v)
}

// Fold collapses the Option into a single value.
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	v, ok := o.opt.Get()
	if !ok {
		return onNone()
	}
	return onSome(v)
}
