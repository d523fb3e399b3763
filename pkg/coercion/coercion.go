package coercion

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

const (
	msgUndefined    = "input is undefined"
	msgTypeMismatch = "input type mismatch"
	msgNoCandidate  = "No provided coercions succeeded"
)

// Convert turns a value of the declared input kind into the target value.
// It must be pure; None means the value cannot be converted.
type Convert func(v any) maybe.Option[any]

// New builds a coercion that accepts only values of kind input. Absent
// values and values of another kind fail before convert is called; a None
// from convert fails with message.
func New(input processor.Kind, message string, convert Convert) processor.Processor[any] {
	return coerce([]processor.Kind{input}, convert, func(ctx processor.Context) processor.Reason {
		return processor.NewReason(ctx, processor.CodeNoCoercionFound, message)
	})
}

// ID succeeds with the value unchanged when it is already of kind k. It is
// the first step of every Coercer.
func ID(k processor.Kind) processor.Processor[any] {
	return New(k, msgTypeMismatch, maybe.Some[any])
}

// Coercer tries ID(target) first and then every candidate in order; the
// first success wins. When every attempt fails the individual reasons are
// replaced by a single all_candidates_failed reason.
func Coercer(target processor.Kind, candidates ...processor.Processor[any]) processor.Processor[any] {
	p := ID(target)
	for _, c := range candidates {
		p = p.OrElse(c)
	}
	return p.ReplaceReasons(processor.CodeAllCandidatesFailed, "coercion.no_candidate", msgNoCandidate)
}

func coerce(inputs []processor.Kind, convert Convert, failed func(processor.Context) processor.Reason) processor.Processor[any] {
	return func(ctx processor.Context) processor.Result[any] {
		v, ok := ctx.Value().Get()
		if !ok {
			return processor.Fail[any](processor.NewReason(ctx, processor.CodeValueMissing, msgUndefined).
				WithKey("coercion.undefined", nil))
		}
		if !slices.Contains(inputs, processor.KindOf(v)) {
			return processor.Fail[any](processor.NewReason(ctx, processor.CodeTypeMismatch, msgTypeMismatch).
				WithKey("coercion.type_mismatch", map[string]any{"expected": kindList(inputs)}))
		}
		out, ok := convert(v).Get()
		if !ok {
			return processor.Fail[any](failed(ctx))
		}
		return processor.Succeed(out)
	}
}

// keyed builds the failure reason of a built-in candidate.
func keyed(key, message string, params map[string]any) func(processor.Context) processor.Reason {
	return func(ctx processor.Context) processor.Reason {
		return processor.NewReason(ctx, processor.CodeNoCoercionFound, message).WithKey(key, params)
	}
}

func kindList(kinds []processor.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, " or ")
}

// Integer parses a string as an integer in base, reading the longest valid
// prefix: leading whitespace, an optional sign, a 0x prefix in base 16 and
// then digits. Base 0 means 10, or 16 when the digits carry a 0x prefix.
// Bases outside 2..36, strings without digits and values overflowing int64
// fail. The result is an int64.
func Integer(base int) processor.Processor[any] {
	return coerce([]processor.Kind{processor.KindString}, func(v any) maybe.Option[any] {
		n, ok := parseInteger(stringOf(v), base)
		if !ok {
			return maybe.None[any]()
		}
		return maybe.Some[any](n)
	}, keyed("coercion.integer", fmt.Sprintf("could not parse int in base %d", base), map[string]any{"base": base}))
}

// Float parses the longest decimal prefix of a string: an optional sign,
// digits with an optional fraction and exponent, or Infinity. The result is
// a float64.
var Float = coerce([]processor.Kind{processor.KindString}, func(v any) maybe.Option[any] {
	f, ok := parseFloat(stringOf(v))
	if !ok {
		return maybe.None[any]()
	}
	return maybe.Some[any](f)
}, keyed("coercion.float", "could not parse float", nil))
