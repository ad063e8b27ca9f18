package harness

import "github.com/amp-labs/amp-algorithms/sorting"

// EdgeCaseSuite covers empty, tiny, duplicate-only, pre-sorted, reversed,
// negative, fractional and large inputs.
func EdgeCaseSuite() Suite {
	return Suite{
		Name: "edge cases",
		Cases: []Case{
			{Name: "Empty array", Input: []float64{}, Expected: []float64{}},
			{Name: "Single element", Input: []float64{42}, Expected: []float64{42}},
			{Name: "Two elements (sorted)", Input: []float64{1, 2}, Expected: []float64{1, 2}},
			{Name: "Two elements (unsorted)", Input: []float64{2, 1}, Expected: []float64{1, 2}},
			{Name: "Duplicate elements", Input: []float64{3, 3, 3, 3}, Expected: []float64{3, 3, 3, 3}},
			{Name: "All same values", Input: []float64{7, 7, 7, 7, 7}, Expected: []float64{7, 7, 7, 7, 7}},
			{Name: "Already sorted", Input: []float64{1, 2, 3, 4, 5}, Expected: []float64{1, 2, 3, 4, 5}},
			{Name: "Reverse sorted", Input: []float64{5, 4, 3, 2, 1}, Expected: []float64{1, 2, 3, 4, 5}},
			{Name: "Negative numbers", Input: []float64{-5, -1, -3, -2, -4}, Expected: []float64{-5, -4, -3, -2, -1}},
			{Name: "Mixed positive/negative", Input: []float64{-2, 3, -1, 0, 2}, Expected: []float64{-2, -1, 0, 2, 3}},
			{
				Name:     "Floating point numbers",
				Input:    []float64{3.14, 2.71, 1.41, 2.23},
				Expected: []float64{1.41, 2.23, 2.71, 3.14},
			},
			{
				Name:     "Large numbers",
				Input:    []float64{1000000, 999999, 1000001},
				Expected: []float64{999999, 1000000, 1000001},
			},
		},
	}
}

// StandardSuite covers ordinary unsorted inputs.
func StandardSuite() Suite {
	return Suite{
		Name: "standard",
		Cases: []Case{
			{
				Name:     "Small unsorted array",
				Input:    []float64{64, 34, 25, 12, 22, 11, 90},
				Expected: []float64{11, 12, 22, 25, 34, 64, 90},
			},
			{Name: "Random order", Input: []float64{3, 7, 1, 4, 6, 2, 5}, Expected: []float64{1, 2, 3, 4, 5, 6, 7}},
			{Name: "Many duplicates", Input: []float64{5, 2, 8, 2, 9, 1, 5, 5}, Expected: []float64{1, 2, 2, 5, 5, 5, 8, 9}},
			{Name: "Single swap needed", Input: []float64{1, 3, 2, 4, 5}, Expected: []float64{1, 2, 3, 4, 5}},
			{Name: "Alternating high/low", Input: []float64{10, 1, 9, 2, 8, 3, 7}, Expected: []float64{1, 2, 3, 7, 8, 9, 10}},
		},
	}
}

// QuickSortSuite runs only against quick sort.
func QuickSortSuite() Suite {
	return Suite{
		Name:       "quick sort",
		Algorithms: []string{sorting.NameQuick},
		Cases: []Case{
			{Name: "Empty array", Input: []float64{}, Expected: []float64{}},
			{Name: "Single element", Input: []float64{42}, Expected: []float64{42}},
			{Name: "Already sorted", Input: []float64{1, 2, 3, 4, 5}, Expected: []float64{1, 2, 3, 4, 5}},
			{Name: "Reverse sorted", Input: []float64{5, 4, 3, 2, 1}, Expected: []float64{1, 2, 3, 4, 5}},
			{
				Name:     "Random array",
				Input:    []float64{64, 34, 25, 12, 22, 11, 90},
				Expected: []float64{11, 12, 22, 25, 34, 64, 90},
			},
			{Name: "Duplicates", Input: []float64{5, 2, 8, 2, 9, 1, 5, 5}, Expected: []float64{1, 2, 2, 5, 5, 5, 8, 9}},
		},
	}
}

// MergeSortSuite runs only against merge sort.
func MergeSortSuite() Suite {
	return Suite{
		Name:       "merge sort",
		Algorithms: []string{sorting.NameMerge},
		Cases: []Case{
			{Name: "Empty array", Input: []float64{}, Expected: []float64{}},
			{Name: "Single element", Input: []float64{42}, Expected: []float64{42}},
			{Name: "Two elements", Input: []float64{2, 1}, Expected: []float64{1, 2}},
			{Name: "Already sorted", Input: []float64{1, 2, 3, 4, 5}, Expected: []float64{1, 2, 3, 4, 5}},
			{Name: "Reverse sorted", Input: []float64{5, 4, 3, 2, 1}, Expected: []float64{1, 2, 3, 4, 5}},
			{
				Name:     "Random array",
				Input:    []float64{64, 34, 25, 12, 22, 11, 90},
				Expected: []float64{11, 12, 22, 25, 34, 64, 90},
			},
			{Name: "Duplicates", Input: []float64{5, 2, 8, 2, 9, 1, 5, 5}, Expected: []float64{1, 2, 2, 5, 5, 5, 8, 9}},
			{Name: "Negative numbers", Input: []float64{-3, -1, -7, -2}, Expected: []float64{-7, -3, -2, -1}},
		},
	}
}

// SearchSuite checks every search mode on an array of odd numbers and on an
// array with a run of duplicates.
func SearchSuite() Suite {
	odd := []float64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	dups := []float64{1, 2, 2, 2, 3, 4, 5}
	short := []float64{1, 3, 5, 7, 9}

	return Suite{
		Name: "search",
		Search: []SearchCase{
			{Name: "Present in middle", Mode: ModeBinary, Input: short, Target: 5, Expected: 2},
			{Name: "Absent between elements", Mode: ModeBinary, Input: short, Target: 6, Expected: -1},
			{Name: "Iterative hit", Mode: ModeBinary, Input: odd, Target: 7, Expected: 3},
			{Name: "Iterative miss", Mode: ModeBinary, Input: odd, Target: 6, Expected: -1},
			{Name: "Recursive hit", Mode: ModeRecursive, Input: odd, Target: 7, Expected: 3},
			{Name: "Recursive miss", Mode: ModeRecursive, Input: odd, Target: 6, Expected: -1},
			{Name: "Empty input", Mode: ModeBinary, Input: []float64{}, Target: 1, Expected: -1},
			{Name: "First occurrence", Mode: ModeFirst, Input: dups, Target: 2, Expected: 1},
			{Name: "Last occurrence", Mode: ModeLast, Input: dups, Target: 2, Expected: 3},
			{Name: "First occurrence absent", Mode: ModeFirst, Input: dups, Target: 6, Expected: -1},
		},
	}
}

// DefaultSuites returns the built-in suites in report order.
func DefaultSuites() []Suite {
	return []Suite{EdgeCaseSuite(), StandardSuite(), QuickSortSuite(), MergeSortSuite(), SearchSuite()}
}

// DefaultPerformanceSizes are the reverse-sorted input sizes timed by default.
func DefaultPerformanceSizes() []int {
	return []int{10, 50, 100, 500}
}
