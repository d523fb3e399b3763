// Package processor implements the location-aware validation core of conform.
//
// A Processor is a pure function from a Context to a Result. The Context is
// a location inside loosely-typed input (a Root, or a Derived step reached
// through an Index or Field Path) together with the value found there, which
// may be absent. The Result either holds a value or an ordered, non-empty list
// of Reasons, each carrying the Context where it was produced.
//
// # Architecture
//
// Processors never mutate anything. They are built once with combinators and
// run any number of times, concurrently if needed:
//
//   - Map transforms a success value.
//   - Of succeeds with a constant, Identity with the context value.
//   - Ap, Map2, Sequence, Concat, AndThen and OnlyIf run every branch against
//     the same context and keep every failure.
//   - Chain runs a dependent step only after the previous one succeeded.
//   - OrElse tries an alternative against the same context.
//   - Asks runs a processor against a child context; this is how nested
//     checks report full paths.
//   - ErrorMessage and ReplaceReasons collapse failures into one reason.
//   - Lazy builds recursive schemas.
//
// Accumulating versus short-circuiting is chosen per combinator: checks that
// gate each other chain, independent checks accumulate.
//
// Values are classified into a closed set of kinds (KindOf): null, boolean,
// number, string, array and object. Absence is not a kind; it is
// maybe.None.
//
// # Usage
//
//	even := processor.Processor[any](func(ctx processor.Context) processor.Result[any] {
//	    v, ok := ctx.Value().Get()
//	    if n, isInt := processor.AsInt(v); ok && isInt && n%2 == 0 {
//	        return processor.Succeed(v)
//	    }
//	    return processor.Fail[any](processor.NewReason(ctx, processor.CodePredicateFailed, "is not even"))
//	})
//	res := processor.Run(even.Asks(processor.Field("n")), map[string]any{"n": 3})
//
// The constraint and coercion packages provide ready-made processors.
//
// # Error Handling
//
// Failures are data. Reasons implements error, so a failed run converts to
// an ordinary error; errors.Is(err, ErrValidationFailed) matches it and
// ExtractReasons recovers the list. RunCont adapts a run to a
// callback-style API.
//
// # Limits
//
// Asks fails with CodeDepthExceeded when derivation goes deeper than
// DefaultMaxDepth, or the value given through WithMaxDepth.
package processor
