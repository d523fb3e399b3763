package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conform/pkg/constraint"
	"github.com/dmitrymomot/conform/pkg/maybe"
	"github.com/dmitrymomot/conform/pkg/processor"
)

func TestProperty(t *testing.T) {
	t.Parallel()

	p := constraint.Property(isEven, "a")

	t.Run("yields a name and value entry", func(t *testing.T) {
		v, ok := processor.Run(p, map[string]any{"a": 2}).Get()
		assert.True(t, ok)
		assert.Equal(t, maybe.Some(constraint.Entry{Name: "a", Value: 2}), v)
	})

	t.Run("fails fast when the field is missing", func(t *testing.T) {
		errs := processor.Run(p, map[string]any{}).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "value is not defined", errs[0].Message)
		assert.Equal(t, `["a"]`, errs[0].Path())
	})

	t.Run("reports constraint failures at the field", func(t *testing.T) {
		errs := processor.Run(p, map[string]any{"a": 1}).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, "is not even", errs[0].Message)
		assert.Equal(t, `["a"]`, errs[0].Path())
	})
}

func TestOptionalProperty(t *testing.T) {
	t.Parallel()

	t.Run("uses the default when absent", func(t *testing.T) {
		p := constraint.OptionalProperty(isEven, constraint.WithDefault(4), "a")
		v, ok := processor.Run(p, map[string]any{}).Get()
		assert.True(t, ok)
		assert.Equal(t, maybe.Some(constraint.Entry{Name: "a", Value: 4}), v)
	})

	t.Run("keeps a zero default", func(t *testing.T) {
		p := constraint.OptionalProperty(isEven, constraint.WithDefault(0), "a")
		v, ok := processor.Run(p, map[string]any{}).Get()
		assert.True(t, ok)
		assert.Equal(t, maybe.Some(constraint.Entry{Name: "a", Value: 0}), v)
	})

	t.Run("yields no entry without a default", func(t *testing.T) {
		p := constraint.OptionalProperty(isEven, constraint.Options{}, "a")
		v, ok := processor.Run(p, map[string]any{}).Get()
		assert.True(t, ok)
		assert.True(t, v.IsNone())
	})

	t.Run("validates a present field", func(t *testing.T) {
		p := constraint.OptionalProperty(isEven, constraint.WithDefault(4), "a")
		assert.True(t, processor.Run(p, map[string]any{"a": 1}).IsFailure())
		v, ok := processor.Run(p, map[string]any{"a": 8}).Get()
		assert.True(t, ok)
		assert.Equal(t, maybe.Some(constraint.Entry{Name: "a", Value: 8}), v)
	})
}

func TestRejectProperty(t *testing.T) {
	t.Parallel()

	p := constraint.RejectProperty("password")

	v, ok := processor.Run(p, map[string]any{"name": "x"}).Get()
	assert.True(t, ok)
	assert.True(t, v.IsNone())

	errs := processor.Run(p, map[string]any{"password": "secret"}).Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, processor.CodeDisallowed, errs[0].Code)
	assert.Equal(t, "property password is disallowed", errs[0].Message)
	assert.Equal(t, `["password"]`, errs[0].Path())
}

func TestAssoc(t *testing.T) {
	t.Parallel()

	schema := constraint.Assoc(
		constraint.Property(constraint.IsString, "name"),
		constraint.Property(constraint.IsNumber, "age"),
		constraint.Property(constraint.IsString, "email"),
	)

	t.Run("assembles an object", func(t *testing.T) {
		input := map[string]any{"name": "Ann", "age": 30, "email": "ann@example.com", "extra": true}
		v, ok := processor.Run(schema, input).Get()
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"name": "Ann", "age": 30, "email": "ann@example.com"}, v)
	})

	t.Run("reports every missing field in declaration order", func(t *testing.T) {
		errs := processor.Run(schema, map[string]any{"age": 30}).Errors()
		require.Len(t, errs, 2)
		assert.Equal(t, `["name"]`, errs[0].Path())
		assert.Equal(t, `["email"]`, errs[1].Path())
	})

	t.Run("skips absent optional fields", func(t *testing.T) {
		p := constraint.Assoc(
			constraint.Property(constraint.IsString, "name"),
			constraint.OptionalProperty(constraint.IsString, constraint.Options{}, "nick"),
			constraint.RejectProperty("password"),
		)
		v, ok := processor.Run(p, map[string]any{"name": "Ann"}).Get()
		assert.True(t, ok)
		assert.Equal(t, map[string]any{"name": "Ann"}, v)
	})

	t.Run("fails on duplicate names", func(t *testing.T) {
		p := constraint.Assoc(
			constraint.Property(constraint.IsString, "name"),
			constraint.OptionalProperty(constraint.IsString, constraint.WithDefault("x"), "name"),
		)
		errs := processor.Run(p, map[string]any{"name": "Ann"}).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, processor.CodeDuplicate, errs[0].Code)
	})

	t.Run("nested objects report full paths", func(t *testing.T) {
		p := constraint.Assoc(
			constraint.Property(constraint.Assoc(
				constraint.Property(constraint.IsNumber, "zip"),
			), "address"),
		)
		errs := processor.Run(p, map[string]any{"address": map[string]any{"zip": "x"}}).Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, `["address"]["zip"]`, errs[0].Path())
	})
}

func TestObject(t *testing.T) {
	t.Parallel()

	p := constraint.Object(constraint.Property(constraint.IsString, "name"))

	errs := processor.Run(p, []any{1}).Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, processor.CodeTypeMismatch, errs[0].Code)
	assert.Equal(t, "is not an instance of object", errs[0].Message)

	v, ok := processor.Run(p, map[string]any{"name": "x"}).Get()
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"name": "x"}, v)
}
