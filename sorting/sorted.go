package sorting

import (
	"cmp"

	"github.com/amp-labs/amp-algorithms/compare"
)

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedFunc(s, compare.Ordered[E]())
}

// IsSortedFunc reports whether no element of s sorts before its predecessor.
func IsSortedFunc[S ~[]E, E any](s S, less compare.LessFunc[E]) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
