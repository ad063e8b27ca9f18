package sorting

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-algorithms/compare"
)

// QuickSort returns a new slice holding the elements of s in ascending order.
//
// The pivot is the middle element. Each level partitions into elements less
// than, equal to and greater than the pivot, sorts the outer groups
// recursively and concatenates the three. The sort is not stable.
func QuickSort[S ~[]E, E cmp.Ordered](s S) S {
	return QuickSortFunc(s, compare.Ordered[E]())
}

// QuickSortFunc is QuickSort with a caller-supplied ordering.
func QuickSortFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) S {
	if len(s) <= 1 {
		return slices.Clone(s)
	}

	pivot := s[len(s)/2]

	var lower, equal, greater S

	for _, v := range s {
		switch {
		case less(v, pivot):
			lower = append(lower, v)
		case less(pivot, v):
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	out := make(S, 0, len(s))
	out = append(out, QuickSortFunc(lower, less)...)
	out = append(out, equal...)
	out = append(out, QuickSortFunc(greater, less)...)

	return out
}
