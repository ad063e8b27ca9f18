package sortable

import (
	"github.com/amp-labs/amp-algorithms/compare"
)

// Sortable is a type that knows both equality and its own ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less adapts a Sortable type to a compare.LessFunc. It is usable directly as a
// function value: sortable.Less[sortable.Int].
func Less[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// LessFunc returns Less as a compare.LessFunc, which is handy when the ordering
// has to be stored or reversed.
func LessFunc[T Sortable[T]]() compare.LessFunc[T] {
	return Less[T]
}
