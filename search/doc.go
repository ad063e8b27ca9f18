// Package search implements binary search over sorted slices.
//
// # Overview
//
// Every function in this package expects its input to be sorted in
// non-decreasing order under the ordering in use. On unsorted input the
// functions still terminate without panicking, but the returned Result is
// unspecified: it may report NotFound for a value that is present, or point at
// an arbitrary matching index.
//
// The plain functions ([BinarySearch], [BinarySearchRecursive],
// [FindFirstOccurrence], [FindLastOccurrence]) work on any cmp.Ordered element
// type using the < operator. Each has a Func variant that takes a
// [github.com/amp-labs/amp-algorithms/compare.LessFunc] instead, so slices of
// structs or [github.com/amp-labs/amp-algorithms/sortable.Sortable] values can be
// searched too. Two elements are considered equal when neither sorts before the
// other.
//
// # Results
//
// Searches never return a bare -1. They return a [Result], which is either
// found-at-index or not-found:
//
//	r := search.BinarySearch([]int{1, 3, 5, 7, 9}, 5)
//	if i, ok := r.Index(); ok {
//	    fmt.Println("found at", i) // found at 2
//	}
//
//	search.BinarySearch([]int{1, 3, 5, 7, 9}, 6).OrMinusOne() // -1
//
// # Complexity
//
// All searches run in O(log n) time. The iterative searches use O(1) extra
// space; [BinarySearchRecursive] uses O(log n) stack.
//
// None of the functions modify their input, and all of them are safe to call
// concurrently on the same slice.
package search
