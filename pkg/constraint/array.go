package constraint

import (
	"fmt"

	"github.com/dmitrymomot/conform/pkg/processor"
)

// MaxMissingItems bounds how far past the end of an array an expected
// length may reach. Beyond it Array reports one failure at ["length"]
// instead of one per missing element.
const MaxMissingItems = 1024

// Array validates an array element by element.
//
// The value must be an array; this gates everything else. onLength runs
// against the array's length (path ["length"]) and its result, when it is a
// non-negative integer, becomes the number of elements checked; any other
// result falls back to the actual length. onItem then runs for every index
// below that length and all item failures are kept in ascending index
// order. Indices past the end of the array see an absent value.
func Array[A any](onLength processor.Processor[any], onItem processor.Processor[A]) processor.Processor[[]A] {
	lengthPath := processor.Field(processor.LengthField)

	actualLength := processor.Chain(IsArray, func(any) processor.Processor[any] {
		return IsNumber.Asks(lengthPath)
	})

	effectiveLength := processor.Chain(actualLength, func(actual any) processor.Processor[int] {
		n, _ := processor.AsInt(actual)
		return processor.Chain(onLength.Asks(lengthPath), func(r any) processor.Processor[int] {
			expected, ok := processor.AsInt(r)
			switch {
			case !ok || expected < 0:
				return processor.Of(n)
			case expected-n > MaxMissingItems:
				return tooLong(lengthPath, expected, n)
			}
			return processor.Of(expected)
		})
	})

	return processor.Chain(effectiveLength, func(n int) processor.Processor[[]A] {
		return func(ctx processor.Context) processor.Result[[]A] {
			var (
				values  = make([]A, 0, n)
				reasons []processor.Reason
			)
			for i := range n {
				res := onItem.Asks(processor.Index(i)).Run(ctx)
				if v, ok := res.Get(); ok {
					values = append(values, v)
					continue
				}
				reasons = append(reasons, res.Errors()...)
			}
			if len(reasons) > 0 {
				return processor.Fail[[]A](reasons...)
			}
			return processor.Succeed(values)
		}
	})
}

func tooLong(lengthPath processor.Path, expected, actual int) processor.Processor[int] {
	return func(ctx processor.Context) processor.Result[int] {
		return processor.Fail[int](processor.NewReason(ctx.Derive(lengthPath), processor.CodePredicateFailed,
			fmt.Sprintf("expected length %d exceeds actual length %d by more than %d", expected, actual, MaxMissingItems),
		).WithKey("validation.array_length", map[string]any{
			"expected": expected,
			"actual":   actual,
			"limit":    MaxMissingItems,
		}))
	}
}

// AnyLenArray validates every element of an array of any length.
func AnyLenArray[A any](onItem processor.Processor[A]) processor.Processor[[]A] {
	return Array(IsNumber, onItem)
}
