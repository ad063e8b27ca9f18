// Package harness runs literal test suites against the sorting and search
// algorithms and reports the outcome.
//
// A run is described by a [Plan]: which sort algorithms to exercise, which
// suites to feed them, which search cases to check, and which input sizes to
// time. [Runner.Run] executes the plan and returns a [Report]; [Printer]
// renders the report as coloured text in the same shape the original
// manual test script used (PASSED/FAILED/ERRORED lines with input, output and
// timing, a performance table, and an in-place check for bubble sort).
//
// Failing cases are a normal outcome and are recorded in the report. Runner.Run
// only returns a non-nil error for failed cases (wrapping [ErrCasesFailed]) or
// when its context is cancelled.
package harness
