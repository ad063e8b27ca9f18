// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with the ordering-aware functions
// in the search and sorting packages.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common element types: [Int], [Float], [String] and
// [NaturalString]. Any Sortable type can be handed to the Func variants of the
// search and sorting packages through [Less]:
//
//	names := []sortable.NaturalString{"file10", "file2", "file1"}
//	sorted := sorting.MergeSortFunc(names, sortable.Less[sortable.NaturalString])
//	// sorted: file1, file2, file10
//
// The Sortable interface extends [github.com/amp-labs/amp-algorithms/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering, and Equals should agree with it
// (a.Equals(b) exactly when neither a.LessThan(b) nor b.LessThan(a)). The
// searches rely on that agreement to decide when a target has been found.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe.
package sortable
