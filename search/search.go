package search

import (
	"cmp"

	"github.com/amp-labs/amp-algorithms/compare"
)

// BinarySearch looks for target in the sorted slice s and returns the index of
// some element equal to it. When several elements match, which one is returned
// is not specified; use FindFirstOccurrence or FindLastOccurrence to pin it down.
//
// Example:
//
//	search.BinarySearch([]int{1, 3, 5, 7, 9}, 5) // Found(2)
//	search.BinarySearch([]int{1, 3, 5, 7, 9}, 6) // NotFound
func BinarySearch[S ~[]E, E cmp.Ordered](s S, target E) Result {
	return BinarySearchFunc(s, target, compare.Ordered[E]())
}

// BinarySearchFunc is BinarySearch with a caller-supplied ordering.
func BinarySearchFunc[S ~[]E, E any](s S, target E, less compare.LessFunc[E]) Result {
	low, high := 0, len(s)-1

	// If target is present, its index is always within [low, high].
	for low <= high {
		mid := midpoint(low, high)

		switch {
		case less(s[mid], target):
			low = mid + 1
		case less(target, s[mid]):
			high = mid - 1
		default:
			return At(mid)
		}
	}

	return NotFound()
}

// FindFirstOccurrence returns the lowest index holding an element equal to
// target.
//
// Example:
//
//	search.FindFirstOccurrence([]int{1, 2, 2, 2, 3, 4}, 2) // Found(1)
func FindFirstOccurrence[S ~[]E, E cmp.Ordered](s S, target E) Result {
	return FindFirstOccurrenceFunc(s, target, compare.Ordered[E]())
}

// FindFirstOccurrenceFunc is FindFirstOccurrence with a caller-supplied ordering.
func FindFirstOccurrenceFunc[S ~[]E, E any](s S, target E, less compare.LessFunc[E]) Result {
	result := NotFound()
	low, high := 0, len(s)-1

	for low <= high {
		mid := midpoint(low, high)

		switch {
		case less(s[mid], target):
			low = mid + 1
		case less(target, s[mid]):
			high = mid - 1
		default:
			// Keep narrowing left; an earlier match may exist.
			result = At(mid)
			high = mid - 1
		}
	}

	return result
}

// FindLastOccurrence returns the highest index holding an element equal to
// target.
//
// Example:
//
//	search.FindLastOccurrence([]int{1, 2, 2, 2, 3, 4}, 2) // Found(3)
func FindLastOccurrence[S ~[]E, E cmp.Ordered](s S, target E) Result {
	return FindLastOccurrenceFunc(s, target, compare.Ordered[E]())
}

// FindLastOccurrenceFunc is FindLastOccurrence with a caller-supplied ordering.
func FindLastOccurrenceFunc[S ~[]E, E any](s S, target E, less compare.LessFunc[E]) Result {
	result := NotFound()
	low, high := 0, len(s)-1

	for low <= high {
		mid := midpoint(low, high)

		switch {
		case less(s[mid], target):
			low = mid + 1
		case less(target, s[mid]):
			high = mid - 1
		default:
			result = At(mid)
			low = mid + 1
		}
	}

	return result
}

// OccurrenceRange returns the first and last index of target in s. Both
// Results are NotFound when target is absent. When it is present, every index
// between first and last holds an element equal to target.
func OccurrenceRange[S ~[]E, E cmp.Ordered](s S, target E) (Result, Result) {
	return OccurrenceRangeFunc(s, target, compare.Ordered[E]())
}

// OccurrenceRangeFunc is OccurrenceRange with a caller-supplied ordering.
func OccurrenceRangeFunc[S ~[]E, E any](s S, target E, less compare.LessFunc[E]) (Result, Result) {
	first := FindFirstOccurrenceFunc(s, target, less)
	if !first.Found() {
		return first, NotFound()
	}

	return first, FindLastOccurrenceFunc(s, target, less)
}

// midpoint computes low + (high-low)/2, which cannot overflow the way
// (low+high)/2 can.
func midpoint(low, high int) int {
	return low + (high-low)/2
}
