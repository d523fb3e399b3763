package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conform/pkg/constraint"
	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

var isEven = constraint.Check(func(v any) bool {
	n, ok := processor.AsInt(v)
	return ok && n%2 == 0
}, "is not even")

func TestExists(t *testing.T) {
	t.Parallel()

	t.Run("passes for present value", func(t *testing.T) {
		v, ok := processor.Run(constraint.Exists, 0).Get()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
	})

	t.Run("passes for explicit null", func(t *testing.T) {
		assert.True(t, processor.Run(constraint.Exists, nil).IsSuccess())
	})

	t.Run("fails for absent value", func(t *testing.T) {
		errs := processor.RunMaybe(constraint.Exists, maybe.None[any]()).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "value is not defined", errs[0].Message)
		assert.Equal(t, processor.CodeValueMissing, errs[0].Code)
		assert.Equal(t, "validation.not_defined", errs[0].Key)
	})
}

func TestAnything(t *testing.T) {
	t.Parallel()

	v, ok := processor.RunMaybe(constraint.Anything, maybe.None[any]()).Get()
	assert.True(t, ok)
	assert.True(t, v.IsNone())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("passes when predicate holds", func(t *testing.T) {
		v, ok := processor.Run(isEven, 2).Get()
		assert.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("fails with exactly one reason", func(t *testing.T) {
		errs := processor.Run(isEven, 3).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "is not even", errs[0].Message)
		assert.Equal(t, processor.CodePredicateFailed, errs[0].Code)
		assert.Empty(t, errs[0].Key)
	})

	t.Run("fails when value is absent", func(t *testing.T) {
		errs := processor.RunMaybe(isEven, maybe.None[any]()).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "value is not defined", errs[0].Message)
	})
}

func TestLast(t *testing.T) {
	t.Parallel()

	t.Run("yields the final value", func(t *testing.T) {
		p := constraint.Last(constraint.IsNumber, processor.Map(constraint.IsNumber, func(v any) any {
			n, _ := processor.AsInt(v)
			return n * 10
		}))
		v, ok := processor.Run(p, 4).Get()
		assert.True(t, ok)
		assert.Equal(t, 40, v)
	})

	t.Run("accumulates every failure", func(t *testing.T) {
		p := constraint.Last(constraint.IsString, isEven, constraint.IsGt(10))
		errs := processor.Run(p, 3).Errors()
		require.Len(t, errs, 3)
		assert.Equal(t, "is not an instance of string", errs[0].Message)
		assert.Equal(t, "is not even", errs[1].Message)
		assert.Equal(t, "is not greater than 10", errs[2].Message)
	})

	t.Run("panics without processors", func(t *testing.T) {
		assert.Panics(t, func() { constraint.Last[any]() })
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	v, ok := processor.Run(constraint.All(constraint.IsNumber, isEven), 6).Get()
	assert.True(t, ok)
	assert.Equal(t, []any{6, 6}, v)

	errs := processor.Run(constraint.All(constraint.IsString, isEven), 5).Errors()
	assert.Len(t, errs, 2)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	p := constraint.Optional(isEven)

	v, ok := processor.RunMaybe(p, maybe.None[any]()).Get()
	assert.True(t, ok)
	assert.True(t, v.IsNone())

	v, ok = processor.Run(p, 4).Get()
	assert.True(t, ok)
	assert.Equal(t, maybe.Some[any](4), v)

	assert.True(t, processor.Run(p, 5).IsFailure())
}
