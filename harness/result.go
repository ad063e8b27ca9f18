package harness

import (
	"time"
)

// Status is the outcome of a single case.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusErrored
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// CaseResult records one sort case run against one algorithm.
type CaseResult struct {
	Suite     string
	Algorithm string
	Case      Case
	Got       []float64
	Elapsed   time.Duration
	Status    Status

	// Err is set for failed and errored cases.
	Err error
}

// SearchResult records one search case.
type SearchResult struct {
	Suite  string
	Case   SearchCase
	Got    int
	Status Status
	Err    error
}

// PerfResult records one timed run over a reverse-sorted input.
type PerfResult struct {
	Algorithm string
	Size      int
	Elapsed   time.Duration
	Correct   bool
}

// InPlaceResult records whether an in-place algorithm both mutated its
// argument and returned it.
type InPlaceResult struct {
	Algorithm string
	Original  []float64
	Argument  []float64
	Returned  []float64

	// Aliased is true when the returned slice shares the argument's backing array.
	Aliased bool

	// Sorted is true when the argument ended up sorted.
	Sorted bool
}

// Passed reports whether the check found both the mutation and the return value.
func (r InPlaceResult) Passed() bool {
	return r.Aliased && r.Sorted
}
