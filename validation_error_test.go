package conform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/conform"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		e := conform.NewValidationError()
		assert.True(t, e.IsEmpty())
		assert.Equal(t, "validation failed", e.Error())
		assert.Nil(t, e.Unwrap())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		e := conform.NewValidationError()
		e.Add(`["b"]`, "first")
		e.Add("", "root failure")
		e.Add(`["b"]`, "second")

		assert.False(t, e.IsEmpty())
		assert.True(t, e.Has(`["b"]`))
		assert.False(t, e.Has(`["c"]`))
		assert.Equal(t, "first", e.Get(`["b"]`))
		assert.Equal(t, []string{"first", "second"}, e.All(`["b"]`))
		assert.Equal(t, []string{`["b"]`, ""}, e.Paths())
		assert.Equal(t, `validation failed: ["b"]: first, (root): root failure`, e.Error())
	})
}
