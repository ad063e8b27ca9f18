package sorting

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-algorithms/compare"
)

// BubbleSort sorts s ascending in place and returns s. The returned slice
// shares its backing array with the argument.
//
// It always performs len(s) full passes, comparing every adjacent pair and
// swapping pairs that are strictly out of order, which also makes it stable.
func BubbleSort[S ~[]E, E cmp.Ordered](s S) S {
	return BubbleSortFunc(s, compare.Ordered[E]())
}

// BubbleSortFunc is BubbleSort with a caller-supplied ordering.
func BubbleSortFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) S {
	for range s {
		for j := 0; j < len(s)-1; j++ {
			if less(s[j+1], s[j]) {
				s[j], s[j+1] = s[j+1], s[j]
			}
		}
	}

	return s
}

// BubbleSorted returns a sorted copy of s, leaving s untouched.
func BubbleSorted[S ~[]E, E cmp.Ordered](s S) S {
	return BubbleSortFunc(slices.Clone(s), compare.Ordered[E]())
}

// BubbleSortedFunc is BubbleSorted with a caller-supplied ordering.
func BubbleSortedFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) S {
	return BubbleSortFunc(slices.Clone(s), less)
}
