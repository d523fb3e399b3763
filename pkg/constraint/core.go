package constraint

import (
	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

const msgNotDefined = "value is not defined"

func notDefined(ctx processor.Context) processor.Reason {
	return processor.NewReason(ctx, processor.CodeValueMissing, msgNotDefined).
		WithKey("validation.not_defined", nil)
}

// Exists succeeds with the value when it is present.
var Exists processor.Processor[any] = func(ctx processor.Context) processor.Result[any] {
	v, ok := ctx.Value().Get()
	if !ok {
		return processor.Fail[any](notDefined(ctx))
	}
	return processor.Succeed(v)
}

// Anything always succeeds with the possibly absent value.
var Anything = processor.Identity

// Check requires a present value accepted by pred. A rejected value fails
// with message.
func Check(pred func(any) bool, message string) processor.Processor[any] {
	return check(pred, func(ctx processor.Context) processor.Reason {
		return processor.NewReason(ctx, processor.CodePredicateFailed, message)
	})
}

func check(pred func(any) bool, reason func(processor.Context) processor.Reason) processor.Processor[any] {
	return func(ctx processor.Context) processor.Result[any] {
		v, ok := ctx.Value().Get()
		if !ok {
			return processor.Fail[any](notDefined(ctx))
		}
		if !pred(v) {
			return processor.Fail[any](reason(ctx))
		}
		return processor.Succeed(v)
	}
}

// Last runs every processor against the same context and keeps all failures.
// On success it yields the value of the final processor. It panics when
// called without processors.
func Last[A any](ps ...processor.Processor[A]) processor.Processor[A] {
	if len(ps) == 0 {
		panic("constraint: Last requires at least one processor")
	}
	return processor.Map(processor.Sequence(ps...), func(values []A) A {
		return values[len(values)-1]
	})
}

// All runs every processor against the same context and keeps all failures.
// On success it yields every value in declaration order.
func All[A any](ps ...processor.Processor[A]) processor.Processor[[]A] {
	return processor.Sequence(ps...)
}

// Optional runs p only when the value is present.
func Optional[A any](p processor.Processor[A]) processor.Processor[maybe.Option[A]] {
	return func(ctx processor.Context) processor.Result[maybe.Option[A]] {
		if ctx.Value().IsNone() {
			return processor.Succeed(maybe.None[A]())
		}
		return processor.Map(p, maybe.Some[A]).Run(ctx)
	}
}
