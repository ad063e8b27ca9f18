// Package sorting implements three classic comparison sorts over slices:
// bubble sort, quick sort and merge sort.
//
// # Mutation
//
// [BubbleSort] sorts its argument in place and returns that same slice, so
// callers may rely either on the mutation or on the return value. Use
// [BubbleSorted] for a copy-first variant that leaves the argument alone.
//
// [QuickSort], [MergeSort] and [Merge] are pure: they never modify their
// inputs and always return a newly allocated slice, including for empty and
// single-element inputs.
//
// # Ordering
//
// The plain functions sort any cmp.Ordered element type ascending using <.
// Every function has a Func variant that accepts a
// [github.com/amp-labs/amp-algorithms/compare.LessFunc]. For floating point
// input containing NaN the output is a permutation of the input, but where the
// NaNs end up is unspecified; sort [github.com/amp-labs/amp-algorithms/sortable.Float]
// values instead when that matters.
//
// # Choosing an algorithm
//
//	| Algorithm | Time (avg)  | Time (worst) | Extra space | Stable |
//	|-----------|-------------|--------------|-------------|--------|
//	| bubble    | O(n²)       | O(n²)        | O(1)        | yes    |
//	| quick     | O(n log n)  | O(n²)        | O(n)        | no     |
//	| merge     | O(n log n)  | O(n log n)   | O(n)        | yes    |
//
// The bubble sort here is deliberately unoptimised: it always makes len(s)
// passes over the whole slice, with no shrinking bound and no early exit.
package sorting
