package sorting

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned by Lookup for names that are not registered.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Registered algorithm names.
const (
	NameBubble = "bubble"
	NameQuick  = "quick"
	NameMerge  = "merge"
)

// Algorithm describes one of the sorts in this package.
type Algorithm[E cmp.Ordered] struct {
	Name       string
	Stable     bool
	InPlace    bool
	Complexity string

	// Sort sorts the slice. For in-place algorithms the returned slice is
	// the argument itself.
	Sort func([]E) []E
}

// Algorithms returns every registered sort, in a fixed order.
func Algorithms[E cmp.Ordered]() []Algorithm[E] {
	return []Algorithm[E]{
		{
			Name:       NameBubble,
			Stable:     true,
			InPlace:    true,
			Complexity: "O(n²)",
			Sort:       BubbleSort[[]E, E],
		},
		{
			Name:       NameQuick,
			Stable:     false,
			InPlace:    false,
			Complexity: "O(n log n) average, O(n²) worst",
			Sort:       QuickSort[[]E, E],
		},
		{
			Name:       NameMerge,
			Stable:     true,
			InPlace:    false,
			Complexity: "O(n log n)",
			Sort:       MergeSort[[]E, E],
		},
	}
}

// Names returns the names accepted by Lookup.
func Names() []string {
	return []string{NameBubble, NameQuick, NameMerge}
}

// Lookup finds a registered algorithm by name.
func Lookup[E cmp.Ordered](name string) (Algorithm[E], error) {
	for _, alg := range Algorithms[E]() {
		if alg.Name == name {
			return alg, nil
		}
	}

	return Algorithm[E]{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
