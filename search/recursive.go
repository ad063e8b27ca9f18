package search

import (
	"cmp"

	"github.com/amp-labs/amp-algorithms/compare"
)

type bounds struct {
	low  int
	high int
}

// Option configures BinarySearchRecursive.
type Option func(*bounds)

// WithBounds restricts the search to the inclusive index window [low, high].
// Bounds that fall outside the slice are clamped to it, and a window with
// low > high matches nothing.
func WithBounds(low, high int) Option {
	return func(b *bounds) {
		b.low = low
		b.high = high
	}
}

// BinarySearchRecursive is the recursive formulation of BinarySearch. By
// default it searches the whole slice; pass WithBounds to search a window.
//
// Each call halves the window, so recursion depth is O(log n).
func BinarySearchRecursive[S ~[]E, E cmp.Ordered](s S, target E, opts ...Option) Result {
	return BinarySearchRecursiveFunc(s, target, compare.Ordered[E](), opts...)
}

// BinarySearchRecursiveFunc is BinarySearchRecursive with a caller-supplied ordering.
func BinarySearchRecursiveFunc[S ~[]E, E any](
	s S,
	target E,
	less compare.LessFunc[E],
	opts ...Option,
) Result {
	b := &bounds{low: 0, high: len(s) - 1}

	for _, opt := range opts {
		opt(b)
	}

	low, high := clamp(b.low, b.high, len(s))

	return searchRange(s, target, less, low, high)
}

func searchRange[S ~[]E, E any](s S, target E, less compare.LessFunc[E], low, high int) Result {
	if low > high {
		return NotFound()
	}

	mid := midpoint(low, high)

	switch {
	case less(target, s[mid]):
		return searchRange(s, target, less, low, mid-1)
	case less(s[mid], target):
		return searchRange(s, target, less, mid+1, high)
	default:
		return At(mid)
	}
}

func clamp(low, high, length int) (int, int) {
	if low < 0 {
		low = 0
	}

	if high > length-1 {
		high = length - 1
	}

	return low, high
}
