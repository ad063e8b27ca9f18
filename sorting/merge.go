package sorting

import (
	"cmp"
	"slices"

	"github.com/amp-labs/amp-algorithms/compare"
)

// MergeSort returns a new slice holding the elements of s in ascending order.
// It is stable and runs in O(n log n) regardless of the input order.
func MergeSort[S ~[]E, E cmp.Ordered](s S) S {
	return MergeSortFunc(s, compare.Ordered[E]())
}

// MergeSortFunc is MergeSort with a caller-supplied ordering.
func MergeSortFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) S {
	if len(s) <= 1 {
		return slices.Clone(s)
	}

	mid := len(s) / 2

	return MergeFunc(MergeSortFunc(s[:mid], less), MergeSortFunc(s[mid:], less), less)
}

// Merge combines two ascending slices into a new ascending slice. On ties the
// element from left comes first, which is what keeps MergeSort stable.
//
// Example:
//
//	sorting.Merge([]int{1, 4, 9}, []int{2, 4, 5}) // [1 2 4 4 5 9]
func Merge[S ~[]E, E cmp.Ordered](left, right S) S {
	return MergeFunc(left, right, compare.Ordered[E]())
}

// MergeFunc is Merge with a caller-supplied ordering.
func MergeFunc[S ~[]E, E any](left, right S, less compare.LessFunc[E]) S {
	out := make(S, 0, len(left)+len(right))

	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if less.LessOrEqual(left[i], right[j]) {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}

	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
