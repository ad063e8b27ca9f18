package envutil_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotPositive = errors.New("must be positive")

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestString(t *testing.T) {
	t.Run("present value", func(t *testing.T) {
		t.Setenv("TEST_STRING", "hello")

		reader := envutil.String("TEST_STRING")
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", value)
		assert.True(t, reader.HasValue())
		assert.Equal(t, "TEST_STRING=hello", reader.String())
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String("TEST_STRING_MISSING")
		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
		assert.False(t, reader.HasValue())
		assert.Equal(t, "TEST_STRING_MISSING=<not set>", reader.String())
	})

	t.Run("with default", func(t *testing.T) {
		t.Parallel()

		reader := envutil.String("TEST_STRING_MISSING", envutil.Default("default"))
		value, err := reader.Value()
		require.NoError(t, err)
		assert.Equal(t, "default", value)
	})

	t.Run("with fallback", func(t *testing.T) {
		t.Parallel()

		fallback := envutil.NewReader("flag", true, nil, "from-flag")
		reader := envutil.String("TEST_STRING_MISSING", envutil.Fallback(fallback))
		assert.Equal(t, "from-flag", reader.ValueOrElse("x"))
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestBool(t *testing.T) {
	t.Run("true", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "true")

		assert.True(t, envutil.Bool("TEST_BOOL").ValueOrElse(false))
	})

	t.Run("malformed uses fallback", func(t *testing.T) {
		t.Setenv("TEST_BOOL_BAD", "maybe")

		reader := envutil.Bool("TEST_BOOL_BAD", envutil.Default(true))
		require.Error(t, reader.Error())
		assert.False(t, reader.ValueOrElse(false))

		_, err := reader.Value()
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	})

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		assert.True(t, envutil.Bool("TEST_BOOL_MISSING", envutil.Default(true)).ValueOrElse(false))
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestInt(t *testing.T) {
	positive := envutil.Validate(func(n int) error {
		if n <= 0 {
			return errNotPositive
		}

		return nil
	})

	t.Run("valid", func(t *testing.T) {
		t.Setenv("TEST_INT", " 8 ")

		value, err := envutil.Int("TEST_INT", positive).Value()
		require.NoError(t, err)
		assert.Equal(t, 8, value)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Setenv("TEST_INT_NEG", "-1")

		_, err := envutil.Int("TEST_INT_NEG", positive).Value()
		require.ErrorIs(t, err, errNotPositive)
	})

	t.Run("default is validated too", func(t *testing.T) {
		t.Parallel()

		_, err := envutil.Int("TEST_INT_MISSING", envutil.Default(0), positive).Value()
		require.ErrorIs(t, err, errNotPositive)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestIntList(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		t.Setenv("TEST_SIZES", "10, 50,,100")

		value, err := envutil.IntList("TEST_SIZES").Value()
		require.NoError(t, err)
		assert.Equal(t, []int{10, 50, 100}, value)
	})

	t.Run("bad entry", func(t *testing.T) {
		t.Setenv("TEST_SIZES_BAD", "10,x")

		_, err := envutil.IntList("TEST_SIZES_BAD").Value()
		require.Error(t, err)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestChoice(t *testing.T) {
	choices := []string{"bubble", "quick", "merge"}

	t.Run("case insensitive", func(t *testing.T) {
		t.Setenv("TEST_ALG", "Merge")

		value, err := envutil.Choice("TEST_ALG", choices).Value()
		require.NoError(t, err)
		assert.Equal(t, "merge", value)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("TEST_ALG_BAD", "bogo")

		_, err := envutil.Choice("TEST_ALG_BAD", choices).Value()
		require.ErrorIs(t, err, envutil.ErrInvalidChoice)
	})
}

//nolint:tparallel // Cannot use t.Parallel() with subtests that call t.Setenv()
func TestDurationAndLevel(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION", "250ms")

		assert.Equal(t, 250*time.Millisecond, envutil.Duration("TEST_DURATION").ValueOrElse(0))
	})

	t.Run("level", func(t *testing.T) {
		t.Setenv("TEST_LEVEL", " WARN ")

		assert.Equal(t, slog.LevelWarn, envutil.SlogLevel("TEST_LEVEL").ValueOrElse(slog.LevelInfo))
	})

	t.Run("bad level", func(t *testing.T) {
		t.Setenv("TEST_LEVEL_BAD", "loud")

		_, err := envutil.SlogLevel("TEST_LEVEL_BAD").Value()
		require.ErrorIs(t, err, envutil.ErrInvalidLogLevel)
	})
}
