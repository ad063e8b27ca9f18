package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("At", func(t *testing.T) {
		t.Parallel()

		r := At(3)
		assert.True(t, r.Found())

		i, ok := r.Index()
		assert.True(t, ok)
		assert.Equal(t, 3, i)
		assert.Equal(t, 3, r.IndexOr(99))
		assert.Equal(t, 3, r.OrMinusOne())
		assert.Equal(t, "Found(3)", r.String())
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Parallel()

		r := NotFound()
		assert.False(t, r.Found())

		_, ok := r.Index()
		assert.False(t, ok)
		assert.Equal(t, 99, r.IndexOr(99))
		assert.Equal(t, -1, r.OrMinusOne())
		assert.Equal(t, "NotFound", r.String())
	})

	t.Run("zero value is not found", func(t *testing.T) {
		t.Parallel()

		var r Result
		assert.False(t, r.Found())
		assert.True(t, r.Equals(NotFound()))
	})

	t.Run("Equals", func(t *testing.T) {
		t.Parallel()

		assert.True(t, At(0).Equals(At(0)))
		assert.False(t, At(0).Equals(At(1)))
		assert.False(t, At(0).Equals(NotFound()))
		assert.True(t, NotFound().Equals(NotFound()))
	})
}
