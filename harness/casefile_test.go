package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCases = `
suites:
  - name: custom
    algorithms: [merge, quick]
    cases:
      - name: reversed
        input: [3, 2, 1]
        expected: [1, 2, 3]
      - name: unchecked
        input: [2.5, -1]
    search:
      - name: find five
        mode: recursive
        input: [1, 3, 5]
        target: 5
        expected: 2
      - name: missing
        input: [1, 3, 5]
        target: 4
        expected: -1
`

func TestParseCases(t *testing.T) {
	t.Parallel()

	suites, err := ParseCases(strings.NewReader(validCases))
	require.NoError(t, err)
	require.Len(t, suites, 1)

	s := suites[0]
	assert.Equal(t, "custom", s.Name)
	assert.Equal(t, []string{"merge", "quick"}, s.Algorithms)
	assert.True(t, s.Covers("merge"))
	assert.False(t, s.Covers("bubble"))
	require.Len(t, s.Cases, 2)
	assert.Equal(t, []float64{3, 2, 1}, s.Cases[0].Input)
	assert.Equal(t, []float64{1, 2, 3}, s.Cases[0].Expected)
	assert.Nil(t, s.Cases[1].Expected)

	require.Len(t, s.Search, 2)
	assert.Equal(t, ModeRecursive, s.Search[0].Mode)
	assert.InDelta(t, 5, s.Search[0].Target, 0)
	assert.Equal(t, 2, s.Search[0].Expected)
	assert.Empty(t, s.Search[1].Mode)
	assert.Equal(t, -1, s.Search[1].Expected)
}

func TestParseCasesInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty document", yaml: ""},
		{name: "no suites", yaml: "suites: []"},
		{name: "unknown field", yaml: "suites:\n  - name: a\n    bogus: 1\n"},
		{name: "not yaml", yaml: "suites: ["},
		{name: "suite without name", yaml: "suites:\n  - cases:\n      - name: a\n        input: [1]\n"},
		{name: "suite without cases", yaml: "suites:\n  - name: a\n"},
		{name: "case without input", yaml: "suites:\n  - name: a\n    cases:\n      - name: b\n"},
		{
			name: "expected length differs",
			yaml: "suites:\n  - name: a\n    cases:\n      - name: b\n        input: [1, 2]\n        expected: [1]\n",
		},
		{
			name: "unknown search mode",
			yaml: "suites:\n  - name: a\n    search:\n      - name: b\n        mode: jump\n        input: [1]\n        target: 1\n",
		},
		{
			name: "unknown algorithm",
			yaml: "suites:\n  - name: a\n    algorithms: [heap]\n    cases:\n      - name: b\n        input: [1]\n",
		},
		{
			name: "expected index out of range",
			yaml: "suites:\n  - name: a\n    search:\n      - name: b\n        input: [1]\n        target: 1\n        expected: 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseCases(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidCaseFile)
		})
	}
}

func TestLoadCaseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCases), 0o600))

	suites, err := LoadCaseFile(path)
	require.NoError(t, err)
	assert.Len(t, suites, 1)

	_, err = LoadCaseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCasesUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := ParseCases(strings.NewReader("suites:\n  - name: a\n    algorithms: [heap]\n    cases:\n      - name: b\n        input: [1]\n"))
	require.ErrorIs(t, err, ErrInvalidCaseFile)
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}
