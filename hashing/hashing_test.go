package hashing

import (
	"errors"
	"hash"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

type failingHashable struct{}

func (failingHashable) UpdateHash(hash.Hash) error {
	return errWrite
}

func TestSha256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    Hashable
		expected string
	}{
		{
			name:     "empty string",
			input:    HashableString(""),
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "simple string",
			input:    HashableString("hello"),
			expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:     "string with spaces",
			input:    HashableString("hello world"),
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
		{
			name:     "multi of strings",
			input:    Multi{HashableString("hello"), HashableString(" world")},
			expected: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Sha256(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestXxh3(t *testing.T) {
	t.Parallel()

	a, err := Xxh3(HashableFloats{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, a, 16)

	again, err := Xxh3(HashableFloats{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, a, again)

	reordered, err := Xxh3(HashableFloats{3, 2, 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, reordered)

	split, err := Xxh3(Multi{HashableFloats{1}, HashableFloats{2, 3}})
	require.NoError(t, err)
	assert.NotEqual(t, a, split)
}

func TestHashFuncErrors(t *testing.T) {
	t.Parallel()

	for _, fn := range []HashFunc{Sha256, Xxh3} {
		_, err := fn(Multi{HashableString("x"), failingHashable{}})
		require.ErrorIs(t, err, errWrite)
	}
}
