package harness

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
)

var (
	// ErrMismatch is returned when a result differs from the expected output.
	ErrMismatch = errors.New("result does not match expected output")

	// ErrNotSorted is returned when a sort produced out-of-order output.
	ErrNotSorted = errors.New("output is not sorted")

	// ErrNotPermutation is returned when a sort added, dropped or changed elements.
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// VerifyExpected compares got against expected element by element. NaN
// matches NaN.
func VerifyExpected(expected, got []float64) error {
	if !EqualValues(expected, got) {
		return fmt.Errorf("%w: expected %s, got %s", ErrMismatch, FormatSequence(expected), FormatSequence(got))
	}

	return nil
}

// VerifySorted checks that got is a sorted permutation of input, without
// needing a literal expected value.
func VerifySorted(input, got []float64) error {
	if !sorting.IsSorted(got) {
		return fmt.Errorf("%w: %s", ErrNotSorted, FormatSequence(got))
	}

	if !IsPermutation(input, got) {
		return fmt.Errorf("%w: input %s, got %s", ErrNotPermutation, FormatSequence(input), FormatSequence(got))
	}

	return nil
}

// EqualValues reports whether a and b hold the same values in the same
// order, treating NaN as equal to NaN.
func EqualValues(a, b []float64) bool {
	return slices.EqualFunc(a, b, func(x, y float64) bool {
		return sortable.Float(x).Equals(sortable.Float(y))
	})
}

// IsPermutation reports whether a and b hold the same multiset of values.
// NaNs are counted together since no NaN compares equal to another.
func IsPermutation(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[float64]int, len(a))
	nans := 0

	for _, v := range a {
		if math.IsNaN(v) {
			nans++

			continue
		}

		counts[v]++
	}

	for _, v := range b {
		if math.IsNaN(v) {
			nans--
			if nans < 0 {
				return false
			}

			continue
		}

		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}

	return true
}
