// Package compare provides the ordering vocabulary shared by the search and
// sorting packages: equality via Comparable, and strict orderings via LessFunc.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// LessFunc reports whether a sorts strictly before b. Implementations must be a
// strict weak ordering: irreflexive, transitive, and with transitive incomparability.
type LessFunc[T any] func(a, b T) bool

// Ordered returns the natural ordering of any cmp.Ordered type, i.e. the < operator.
//
// For floating point types the position of NaN is unspecified.
func Ordered[T cmp.Ordered]() LessFunc[T] {
	return func(a, b T) bool {
		return a < b
	}
}

// Reverse returns an ordering that sorts in the opposite direction of less.
func Reverse[T any](less LessFunc[T]) LessFunc[T] {
	return func(a, b T) bool {
		return less(b, a)
	}
}

// By orders values by a derived key.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
//	sorting.MergeSortFunc(people, byAge)
func By[T any, K cmp.Ordered](key func(T) K) LessFunc[T] {
	return func(a, b T) bool {
		return key(a) < key(b)
	}
}

// Equivalent reports whether neither value sorts before the other, which is the
// equality induced by a strict weak ordering.
func (less LessFunc[T]) Equivalent(a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// LessOrEqual reports whether a sorts before or alongside b.
func (less LessFunc[T]) LessOrEqual(a, b T) bool {
	return !less(b, a)
}
