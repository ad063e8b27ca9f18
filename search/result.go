package search

import "strconv"

// Result is the outcome of a search: either the index of a matching element,
// or not-found. The zero value is not-found.
type Result struct {
	index int
	found bool
}

// At returns a Result for a match at index i.
func At(i int) Result {
	return Result{index: i, found: true}
}

// NotFound returns the not-found Result.
func NotFound() Result {
	return Result{}
}

// Found reports whether the search matched an element.
func (r Result) Found() bool {
	return r.found
}

// Index returns the matched index and true, or 0 and false when nothing matched.
func (r Result) Index() (int, bool) {
	return r.index, r.found
}

// IndexOr returns the matched index, or def when nothing matched.
func (r Result) IndexOr(def int) int {
	if r.found {
		return r.index
	}

	return def
}

// OrMinusOne returns the matched index, or -1 when nothing matched.
// Use it when interoperating with code that expects the -1 sentinel.
func (r Result) OrMinusOne() int {
	return r.IndexOr(-1)
}

// Equals reports whether two Results describe the same outcome.
func (r Result) Equals(other Result) bool {
	if r.found != other.found {
		return false
	}

	return !r.found || r.index == other.index
}

// String returns "Found(i)" or "NotFound".
func (r Result) String() string {
	if r.found {
		return "Found(" + strconv.Itoa(r.index) + ")"
	}

	return "NotFound"
}
