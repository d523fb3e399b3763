package processor

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/validation"
)

// Result is the outcome of running a Processor.
type Result[A any] = validation.Validation[Reason, A]

// Processor is a pure function from a Context to a Result. Processors are
// immutable values; combinators always return new ones.
type Processor[A any] func(ctx Context) Result[A]

// Succeed wraps a value in a successful Result.
func Succeed[A any](a A) Result[A] {
	return validation.Success[Reason](a)
}

// Fail builds a failed Result from at least one reason.
func Fail[A any](reasons ...Reason) Result[A] {
	return validation.Failure[Reason, A](reasons...)
}

// Run invokes p against ctx.
func (p Processor[A]) Run(ctx Context) Result[A] {
	return p(ctx)
}

// Of ignores the context and always succeeds with x.
func Of[A any](x A) Processor[A] {
	return func(Context) Result[A] {
		return Succeed(x)
	}
}

// Identity succeeds with the possibly absent value of the context.
var Identity Processor[maybe.Option[any]] = func(ctx Context) Result[maybe.Option[any]] {
	return Succeed(ctx.Value())
}

// Map transforms the success value of p.
func Map[A, B any](p Processor[A], f func(A) B) Processor[B] {
	return func(ctx Context) Result[B] {
		return validation.Map(p(ctx), f)
	}
}

// Ap runs pf and pa against the same context and applies the function to
// the argument. Failures of both sides are kept, pf's first.
func Ap[A, B any](pf Processor[func(A) B], pa Processor[A]) Processor[B] {
	return func(ctx Context) Result[B] {
		rf := pf(ctx)
		ra := pa(ctx)
		return validation.Ap(rf, ra)
	}
}

// Map2 runs both processors against the same context and combines their
// values, accumulating the failures of both.
func Map2[A, B, C any](pa Processor[A], pb Processor[B], f func(A, B) C) Processor[C] {
	return func(ctx Context) Result[C] {
		ra := pa(ctx)
		rb := pb(ctx)
		return validation.Map2(ra, rb, f)
	}
}

// Chain runs p and, on success, the processor f builds from its value
// against the same context. A failure of p is returned as is and f is never
// called.
func Chain[A, B any](p Processor[A], f func(A) Processor[B]) Processor[B] {
	return func(ctx Context) Result[B] {
		return validation.Chain(p(ctx), func(a A) Result[B] {
			return f(a)(ctx)
		})
	}
}

// Pipe runs p and, on success, runs next against p's value at the same
// location. Reasons reported by next carry that value, not the input.
func Pipe[A, B any](p Processor[A], next Processor[B]) Processor[B] {
	return func(ctx Context) Result[B] {
		return validation.Chain(p(ctx), func(a A) Result[B] {
			return next(withValue(ctx, a))
		})
	}
}

// Concat runs both processors and merges their values with combine.
func Concat[A any](p, other Processor[A], combine func(A, A) A) Processor[A] {
	return Map2(p, other, combine)
}

// AndThen runs both processors and keeps the value of the second.
func AndThen[A, B any](pa Processor[A], pb Processor[B]) Processor[B] {
	return Map2(pa, pb, func(_ A, b B) B { return b })
}

// OnlyIf runs both processors and keeps the value of the first.
func OnlyIf[A, B any](pa Processor[A], pb Processor[B]) Processor[A] {
	return Map2(pa, pb, func(a A, _ B) A { return a })
}

// Sequence runs every processor against the same context, collecting all
// values or all failures in declaration order.
func Sequence[A any](ps ...Processor[A]) Processor[[]A] {
	return func(ctx Context) Result[[]A] {
		results := make([]Result[A], len(ps))
		for i, p := range ps {
			results[i] = p(ctx)
		}
		return validation.Sequence(results)
	}
}

// Lazy defers building a processor until its first run, which allows
// recursive schemas. The built processor is reused afterwards.
func Lazy[A any](build func() Processor[A]) Processor[A] {
	get := sync.OnceValue(build)
	return func(ctx Context) Result[A] {
		return get()(ctx)
	}
}

// OrElse runs p and, if it fails, runs other against the same context.
// The reasons of p are dropped.
func (p Processor[A]) OrElse(other Processor[A]) Processor[A] {
	return func(ctx Context) Result[A] {
		return p(ctx).OrElse(func([]Reason) Result[A] {
			return other(ctx)
		})
	}
}

// Asks runs p against the child context reached by path.
func (p Processor[A]) Asks(path Path) Processor[A] {
	return func(ctx Context) Result[A] {
		child := ctx.Derive(path)
		if depthExceeded(child) {
			limit := child.root().maxDepth
			return Fail[A](NewReason(child, CodeDepthExceeded,
				fmt.Sprintf("maximum nesting depth of %d exceeded", limit),
			).WithKey("validation.max_depth", map[string]any{"max": limit}))
		}
		return p(child)
	}
}

// ReplaceReasons collapses any failure of p into a single reason with the
// given code, translation key and message, located at the current context.
func (p Processor[A]) ReplaceReasons(code Code, key, message string) Processor[A] {
	return func(ctx Context) Result[A] {
		res := p(ctx)
		if res.IsSuccess() {
			return res
		}
		return Fail[A](NewReason(ctx, code, message).WithKey(key, nil))
	}
}

// ErrorMessage replaces any failure of p with a single reason carrying msg.
func (p Processor[A]) ErrorMessage(msg string) Processor[A] {
	return p.ReplaceReasons(CodeCustom, "", msg)
}
