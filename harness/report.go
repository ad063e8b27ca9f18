package harness

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/amp-labs/amp-algorithms/errors"
)

// ErrCasesFailed is returned by Runner.Run when at least one case failed or errored.
var ErrCasesFailed = errors.New("harness cases failed")

// Report is the outcome of a run.
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration

	// Fingerprint identifies the suites that were run; see Fingerprint.
	Fingerprint string

	// Cause is set when the run stopped before finishing, e.g. because its
	// context was cancelled. The results gathered so far are still present.
	Cause error

	Cases       []CaseResult
	Searches    []SearchResult
	Performance []PerfResult
	InPlace     []InPlaceResult

	// IncorrectPerformance counts performance runs whose output was not sorted.
	IncorrectPerformance int
}

func (r *Report) count(status Status) int {
	n := 0

	for _, c := range r.Cases {
		if c.Status == status {
			n++
		}
	}

	for _, s := range r.Searches {
		if s.Status == status {
			n++
		}
	}

	return n
}

// Total is the number of sort and search cases run.
func (r *Report) Total() int {
	return len(r.Cases) + len(r.Searches)
}

func (r *Report) Passed() int {
	return r.count(StatusPassed)
}

func (r *Report) Failed() int {
	return r.count(StatusFailed)
}

func (r *Report) Errored() int {
	return r.count(StatusErrored)
}

// Interrupted reports whether the run stopped before finishing.
func (r *Report) Interrupted() bool {
	return r.Cause != nil
}

// AllPassed is true when the run finished, every case passed, every in-place
// check passed and every performance run produced sorted output.
func (r *Report) AllPassed() bool {
	return !r.Interrupted() && r.Err() == nil
}

// Err joins every failure in the report under ErrCasesFailed, or returns nil.
func (r *Report) Err() error {
	var collection errs.Collection

	for _, c := range r.Cases {
		if c.Status != StatusPassed {
			collection.Add(fmt.Errorf("%s/%s/%s: %w", c.Suite, c.Algorithm, c.Case.Name, c.Err))
		}
	}

	for _, s := range r.Searches {
		if s.Status != StatusPassed {
			collection.Add(fmt.Errorf("%s/%s: %w", s.Suite, s.Case.Name, s.Err))
		}
	}

	for _, p := range r.InPlace {
		if !p.Passed() {
			collection.Add(fmt.Errorf("in-place/%s: %w", p.Algorithm, ErrMismatch))
		}
	}

	for _, p := range r.Performance {
		if !p.Correct {
			collection.Add(fmt.Errorf("performance/%s/%d: %w", p.Algorithm, p.Size, ErrNotSorted))
		}
	}

	if !collection.HasError() {
		return nil
	}

	return fmt.Errorf("%w (%d): %w", ErrCasesFailed, collection.Len(), collection.GetError())
}
