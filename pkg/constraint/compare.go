package constraint

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/conform/pkg/processor"
)

// IsEq requires the value to equal x. Numbers compare by value across Go
// numeric types; other values compare deeply.
func IsEq(x any) processor.Processor[any] {
	return relational(x, "validation.eq", fmt.Sprintf("is not equal to %v", x), func(v any) bool {
		if c, ok := compare(v, x); ok {
			return c == 0
		}
		return reflect.DeepEqual(v, x)
	})
}

// IsGt requires the value to be greater than x.
func IsGt(x any) processor.Processor[any] {
	return ordered(x, "validation.gt", "is not greater than %v", func(c int) bool { return c > 0 })
}

// IsGte requires the value to be greater than or equal to x.
func IsGte(x any) processor.Processor[any] {
	return ordered(x, "validation.gte", "is not greater than or equal to %v", func(c int) bool { return c >= 0 })
}

// IsLt requires the value to be less than x.
func IsLt(x any) processor.Processor[any] {
	return ordered(x, "validation.lt", "is not less than %v", func(c int) bool { return c < 0 })
}

// IsLte requires the value to be less than or equal to x.
func IsLte(x any) processor.Processor[any] {
	return ordered(x, "validation.lte", "is not less than or equal to %v", func(c int) bool { return c <= 0 })
}

func ordered(x any, key, format string, accept func(int) bool) processor.Processor[any] {
	return relational(x, key, fmt.Sprintf(format, x), func(v any) bool {
		c, ok := compare(v, x)
		return ok && accept(c)
	})
}

func relational(x any, key, message string, pred func(any) bool) processor.Processor[any] {
	return check(pred, func(ctx processor.Context) processor.Reason {
		return processor.NewReason(ctx, processor.CodePredicateFailed, message).
			WithKey(key, map[string]any{"expected": x})
	})
}

// compare orders two numbers or two strings. ok is false for any other pair.
func compare(a, b any) (int, bool) {
	ka, kb := processor.KindOf(a), processor.KindOf(b)
	switch {
	case ka == processor.KindNumber && kb == processor.KindNumber:
		fa, _ := processor.AsFloat(a)
		fb, _ := processor.AsFloat(b)
		return cmp.Compare(fa, fb), true
	case ka == processor.KindString && kb == processor.KindString:
		return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), true
	}
	return 0, false
}

// IsA requires the value to be of kind k.
func IsA(k processor.Kind) processor.Processor[any] {
	return check(
		func(v any) bool { return processor.KindOf(v) == k },
		func(ctx processor.Context) processor.Reason {
			return processor.NewReason(ctx, processor.CodeTypeMismatch, "is not an instance of "+k.String()).
				WithKey("validation.type", map[string]any{"type": k.String()})
		},
	)
}

var (
	IsNull   = IsA(processor.KindNull)
	IsBool   = IsA(processor.KindBool)
	IsNumber = IsA(processor.KindNumber)
	IsString = IsA(processor.KindString)
	IsArray  = IsA(processor.KindArray)
	IsObject = IsA(processor.KindObject)
)
