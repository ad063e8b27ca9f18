package harness

import (
	"context"
	"slices"
	"testing"

	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity() sorting.Algorithm[float64] {
	return sorting.Algorithm[float64]{
		Name: "identity",
		Sort: func(s []float64) []float64 { return s },
	}
}

func exploding() sorting.Algorithm[float64] {
	return sorting.Algorithm[float64]{
		Name: "exploding",
		Sort: func([]float64) []float64 { panic("boom") },
	}
}

func sneaky() sorting.Algorithm[float64] {
	return sorting.Algorithm[float64]{
		Name: "sneaky",
		Sort: func(s []float64) []float64 {
			sorting.BubbleSort(s)

			return slices.Clone(s)
		},
	}
}

func smallSuite() Suite {
	return Suite{
		Name: "small",
		Cases: []Case{
			{Name: "sorted", Input: []float64{1, 2}, Expected: []float64{1, 2}},
			{Name: "reversed", Input: []float64{2, 1}, Expected: []float64{1, 2}},
		},
	}
}

func TestRunDefaultPlan(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	runner := NewRunner(WithLogger(slogt.New(t)), WithMetrics(metrics), WithWorkers(2))

	plan := DefaultPlan()
	plan.PerfSizes = []int{10, 50}

	report, err := runner.Run(t.Context(), plan)
	require.NoError(t, err)
	require.NotNil(t, report)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)

	fingerprint, err := Fingerprint(plan.Suites)
	require.NoError(t, err)
	assert.Equal(t, fingerprint, report.Fingerprint)
	assert.Len(t, report.Fingerprint, 16)

	sortCases := len(EdgeCaseSuite().Cases) + len(StandardSuite().Cases)
	searchCases := len(SearchSuite().Search)
	onlyCases := len(QuickSortSuite().Cases) + len(MergeSortSuite().Cases)

	assert.Len(t, report.Cases, sortCases*len(sorting.Names())+onlyCases)
	assert.Len(t, report.Searches, searchCases)
	assert.Equal(t, report.Total(), report.Passed())
	assert.Zero(t, report.Failed())
	assert.Zero(t, report.Errored())
	assert.True(t, report.AllPassed())

	require.Len(t, report.InPlace, 1)
	assert.Equal(t, sorting.NameBubble, report.InPlace[0].Algorithm)
	assert.True(t, report.InPlace[0].Passed())

	require.Len(t, report.Performance, 6)

	for i, alg := range sorting.Names() {
		for j, size := range plan.PerfSizes {
			res := report.Performance[i*len(plan.PerfSizes)+j]
			assert.Equal(t, alg, res.Algorithm)
			assert.Equal(t, size, res.Size)
			assert.True(t, res.Correct)
		}
	}

	assert.InDelta(t, float64(sortCases), testutil.ToFloat64(metrics.casesTotal.WithLabelValues("bubble", "passed")), 0)
	assert.InDelta(t, float64(sortCases+len(MergeSortSuite().Cases)),
		testutil.ToFloat64(metrics.casesTotal.WithLabelValues("merge", "passed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.runsTotal), 0)
	assert.Equal(t, 6, testutil.CollectAndCount(metrics.perfDuration))
	assert.Zero(t, report.IncorrectPerformance)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.perfIncorrect), 0)
}

func TestRunDoesNotModifySuites(t *testing.T) {
	t.Parallel()

	suite := smallSuite()
	before := slices.Clone(suite.Cases[1].Input)

	_, err := NewRunner(WithLogger(slogt.New(t))).Run(t.Context(), Plan{
		Algorithms:  []sorting.Algorithm[float64]{sorting.Algorithms[float64]()[0]},
		Suites:      []Suite{suite},
		SkipInPlace: true,
	})
	require.NoError(t, err)
	assert.Equal(t, before, suite.Cases[1].Input)
}

func TestRunReportsFailures(t *testing.T) {
	t.Parallel()

	report, err := NewRunner(WithLogger(slogt.New(t))).Run(t.Context(), Plan{
		Algorithms: []sorting.Algorithm[float64]{identity(), exploding(), sneaky()},
		Suites:     []Suite{smallSuite()},
	})
	require.ErrorIs(t, err, ErrCasesFailed)
	require.ErrorIs(t, err, ErrMismatch)
	require.ErrorIs(t, err, ErrPanicked)
	require.ErrorIs(t, err, ErrInputModified)

	assert.Equal(t, 6, report.Total())
	assert.Equal(t, 2, report.Passed())
	assert.Equal(t, 2, report.Failed())
	assert.Equal(t, 2, report.Errored())
	assert.False(t, report.AllPassed())

	byName := map[string][]Status{}
	for _, c := range report.Cases {
		byName[c.Algorithm] = append(byName[c.Algorithm], c.Status)
	}

	assert.Equal(t, []Status{StatusPassed, StatusFailed}, byName["identity"])
	assert.Equal(t, []Status{StatusErrored, StatusErrored}, byName["exploding"])
	assert.Equal(t, []Status{StatusPassed, StatusFailed}, byName["sneaky"])
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	report, err := NewRunner(WithLogger(slogt.New(t))).Run(ctx, DefaultPlan())
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrCasesFailed)
	require.NotNil(t, report)
	assert.Empty(t, report.Cases)
	assert.True(t, report.Interrupted())
	require.ErrorIs(t, report.Cause, context.Canceled)
	assert.NoError(t, report.Err())
	assert.False(t, report.AllPassed())
}

func TestRunPerformanceFailure(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics(prometheus.NewRegistry())

	report, err := NewRunner(WithLogger(slogt.New(t)), WithMetrics(metrics)).Run(t.Context(), Plan{
		Algorithms: []sorting.Algorithm[float64]{identity()},
		PerfSizes:  []int{1, 5, 10},
	})
	require.ErrorIs(t, err, ErrCasesFailed)
	require.ErrorIs(t, err, ErrNotSorted)

	require.Len(t, report.Performance, 3)
	assert.True(t, report.Performance[0].Correct)
	assert.False(t, report.Performance[1].Correct)
	assert.False(t, report.Performance[2].Correct)
	assert.Equal(t, 2, report.IncorrectPerformance)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.perfIncorrect), 0)
}

func TestRunCase(t *testing.T) {
	t.Parallel()

	merge, err := sorting.Lookup[float64](sorting.NameMerge)
	require.NoError(t, err)

	res := RunCase(merge, Case{Name: "no expectation", Input: []float64{3, 1, 2}})
	assert.Equal(t, StatusPassed, res.Status)
	assert.Equal(t, []float64{1, 2, 3}, res.Got)
	require.NoError(t, res.Err)

	res = RunCase(identity(), Case{Name: "no expectation", Input: []float64{3, 1, 2}})
	assert.Equal(t, StatusFailed, res.Status)
	require.ErrorIs(t, res.Err, ErrNotSorted)
}

func TestRunSearchCase(t *testing.T) {
	t.Parallel()

	for _, c := range SearchSuite().Search {
		res := RunSearchCase(c)
		assert.Equal(t, StatusPassed, res.Status, c.Name)
		assert.Equal(t, c.Expected, res.Got, c.Name)
	}

	res := RunSearchCase(SearchCase{Name: "default mode", Input: []float64{1, 2, 3}, Target: 3, Expected: 2})
	assert.Equal(t, StatusPassed, res.Status)

	res = RunSearchCase(SearchCase{Name: "bad", Mode: "interpolation", Input: []float64{1}, Target: 1})
	assert.Equal(t, StatusErrored, res.Status)
	require.ErrorIs(t, res.Err, ErrUnknownSearchMode)
	assert.Equal(t, -1, res.Got)

	res = RunSearchCase(SearchCase{Name: "wrong", Mode: ModeFirst, Input: []float64{2, 2, 2}, Target: 2, Expected: 2})
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 0, res.Got)
	require.ErrorIs(t, res.Err, ErrMismatch)
}

func TestCheckInPlace(t *testing.T) {
	t.Parallel()

	bubble, err := sorting.Lookup[float64](sorting.NameBubble)
	require.NoError(t, err)

	res := CheckInPlace(bubble)
	assert.True(t, res.Aliased)
	assert.True(t, res.Sorted)
	assert.Equal(t, []float64{1, 2, 3}, res.Argument)
	assert.Equal(t, []float64{3, 1, 2}, res.Original)

	quick, err := sorting.Lookup[float64](sorting.NameQuick)
	require.NoError(t, err)

	res = CheckInPlace(quick)
	assert.False(t, res.Aliased)
	assert.False(t, res.Sorted)
	assert.Equal(t, []float64{1, 2, 3}, res.Returned)

	res = CheckInPlace(exploding())
	assert.False(t, res.Passed())
}

func TestReverseSorted(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{3, 2, 1}, ReverseSorted(3))
	assert.Empty(t, ReverseSorted(0))
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a, err := Fingerprint(DefaultSuites())
	require.NoError(t, err)

	b, err := Fingerprint(DefaultSuites())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	changed := DefaultSuites()
	changed[0].Cases[1].Input = []float64{43}

	c, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestRunSuiteRestrictedToAlgorithms(t *testing.T) {
	t.Parallel()

	runner := NewRunner(WithLogger(slogt.New(t)))

	plan := DefaultPlan()
	plan.Suites = []Suite{MergeSortSuite(), {
		Name:       "quick and bubble",
		Algorithms: []string{sorting.NameQuick, sorting.NameBubble},
		Cases:      []Case{{Name: "pair", Input: []float64{2, 1}, Expected: []float64{1, 2}}},
	}}
	plan.PerfSizes = nil
	plan.SkipInPlace = true

	report, err := runner.Run(t.Context(), plan)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, res := range report.Cases {
		counts[res.Suite+"/"+res.Algorithm]++
	}

	assert.Equal(t, map[string]int{
		"merge sort/merge":        len(MergeSortSuite().Cases),
		"quick and bubble/quick":  1,
		"quick and bubble/bubble": 1,
	}, counts)
	assert.True(t, report.AllPassed())
}

func TestFingerprintCoversAlgorithms(t *testing.T) {
	t.Parallel()

	suite := MergeSortSuite()

	a, err := Fingerprint([]Suite{suite})
	require.NoError(t, err)

	suite.Algorithms = []string{sorting.NameQuick}

	b, err := Fingerprint([]Suite{suite})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
