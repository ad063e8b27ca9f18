package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	errs "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/search"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/amp-labs/amp-algorithms/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/atomic"
)

const defaultWorkers = 4

var (
	// ErrPanicked marks a case whose algorithm panicked.
	ErrPanicked = errs.ErrPanicRecovery

	// ErrInputModified is returned when a pure sort changed its argument.
	ErrInputModified = errors.New("pure sort modified its input")

	// ErrUnknownSearchMode is returned for search cases with an unrecognised mode.
	ErrUnknownSearchMode = errors.New("unknown search mode")
)

// inPlaceSample is the input used to check in-place algorithms.
var inPlaceSample = []float64{3, 1, 2} //nolint:gochecknoglobals

// Plan describes what a run exercises.
type Plan struct {
	// Algorithms are run against every sort case. Empty means every
	// registered algorithm.
	Algorithms []sorting.Algorithm[float64]

	Suites []Suite

	// PerfSizes are the reverse-sorted input sizes to time. Empty skips the
	// performance run.
	PerfSizes []int

	// SkipInPlace disables the in-place check for in-place algorithms.
	SkipInPlace bool
}

// DefaultPlan runs every algorithm over the built-in suites and sizes.
func DefaultPlan() Plan {
	return Plan{
		Algorithms: sorting.Algorithms[float64](),
		Suites:     DefaultSuites(),
		PerfSizes:  DefaultPerformanceSizes(),
	}
}

type runnerOptions struct {
	log     *slog.Logger
	workers int
	metrics *Metrics
}

// Option configures a Runner.
type Option func(*runnerOptions)

// WithLogger sets the logger used for progress messages. Without it the
// runner logs through logger.Get.
func WithLogger(log *slog.Logger) Option {
	return func(o *runnerOptions) {
		o.log = log
	}
}

// WithWorkers sets how many performance runs execute concurrently.
func WithWorkers(n int) Option {
	return func(o *runnerOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithMetrics records case and performance results into m.
func WithMetrics(m *Metrics) Option {
	return func(o *runnerOptions) {
		o.metrics = m
	}
}

// Runner executes plans. A Runner is safe to reuse across runs.
type Runner struct {
	log     *slog.Logger
	workers int
	metrics *Metrics
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	options := &runnerOptions{
		workers: defaultWorkers,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Runner{
		log:     options.log,
		workers: options.workers,
		metrics: options.metrics,
	}
}

func (r *Runner) logger(ctx context.Context) *slog.Logger {
	if r.log != nil {
		return r.log
	}

	return logger.Get(ctx)
}

// Run executes the plan. The report is always returned, even when the
// context is cancelled part way through. The error wraps ErrCasesFailed when
// any case failed or errored, or is the context's error on cancellation.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if len(plan.Algorithms) == 0 {
		plan.Algorithms = sorting.Algorithms[float64]()
	}

	report := &Report{
		RunID:   uuid.New().String(),
		Started: time.Now(),
	}

	log := r.logger(ctx).With("run_id", report.RunID)

	fingerprint, err := Fingerprint(plan.Suites)
	if err != nil {
		report.Cause = err

		return report, err
	}

	report.Fingerprint = fingerprint

	ctx, span := telemetry.Tracer().Start(ctx, "harness.Run",
		trace.WithAttributes(
			attribute.String("run.id", report.RunID),
			attribute.Int("run.suites", len(plan.Suites)),
			attribute.Int("run.algorithms", len(plan.Algorithms)),
			attribute.String("run.fingerprint", report.Fingerprint),
		))
	defer span.End()

	r.metrics.observeRun()

	log.Info("Starting harness run",
		"suites", len(plan.Suites), "algorithms", len(plan.Algorithms), "fingerprint", fingerprint)

	err = r.run(ctx, log, plan, report)

	report.Elapsed = time.Since(report.Started)

	if err != nil {
		report.Cause = err

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("Harness run interrupted", "error", err, "completed", report.Total())

		return report, err
	}

	if err := report.Err(); err != nil {
		span.SetStatus(codes.Error, "cases failed")
		log.Warn("Harness run finished with failures",
			"failed", report.Failed(), "errored", report.Errored(), "total", report.Total())

		return report, err
	}

	log.Info("Harness run passed", "total", report.Total(), "elapsed", report.Elapsed)

	return report, nil
}

func (r *Runner) run(ctx context.Context, log *slog.Logger, plan Plan, report *Report) error {
	for _, suite := range plan.Suites {
		if err := r.runSuite(ctx, log, suite, plan.Algorithms, report); err != nil {
			return err
		}
	}

	if !plan.SkipInPlace {
		for _, alg := range plan.Algorithms {
			if alg.InPlace {
				report.InPlace = append(report.InPlace, CheckInPlace(alg))
			}
		}
	}

	if len(plan.PerfSizes) > 0 {
		perf, incorrect, err := r.runPerformance(ctx, log, plan.Algorithms, plan.PerfSizes)
		report.Performance = perf
		report.IncorrectPerformance = incorrect

		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runSuite(
	ctx context.Context,
	log *slog.Logger,
	suite Suite,
	algorithms []sorting.Algorithm[float64],
	report *Report,
) error {
	ctx, span := telemetry.Tracer().Start(ctx, "harness.Suite",
		trace.WithAttributes(
			attribute.String("suite.name", suite.Name),
			attribute.Int("suite.cases", len(suite.Cases)),
			attribute.Int("suite.search", len(suite.Search)),
		))
	defer span.End()

	log.Debug("Running suite", "suite", suite.Name)

	for _, alg := range algorithms {
		if !suite.Covers(alg.Name) {
			continue
		}

		for _, c := range suite.Cases {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := RunCase(alg, c)
			res.Suite = suite.Name

			r.metrics.observeCase(res)
			report.Cases = append(report.Cases, res)

			if res.Status != StatusPassed {
				log.Debug("Case did not pass",
					"suite", suite.Name, "algorithm", alg.Name, "case", c.Name, "status", res.Status.String(),
					"error", res.Err)
			}
		}
	}

	for _, c := range suite.Search {
		if err := ctx.Err(); err != nil {
			return err
		}

		res := RunSearchCase(c)
		res.Suite = suite.Name

		r.metrics.observeSearch(res)
		report.Searches = append(report.Searches, res)
	}

	return nil
}

// RunCase sorts a copy of the case input with alg and checks the output. A
// case without an expected value only has to come back as a sorted
// permutation of its input.
func RunCase(alg sorting.Algorithm[float64], c Case) CaseResult {
	res := CaseResult{
		Algorithm: alg.Name,
		Case:      c,
	}

	argument := slices.Clone(c.Input)

	start := time.Now()
	got, err := safeSort(alg, argument)
	res.Elapsed = time.Since(start)

	if err != nil {
		res.Status = StatusErrored
		res.Err = err

		return res
	}

	res.Got = got

	switch {
	case !alg.InPlace && !EqualValues(argument, c.Input):
		res.Err = fmt.Errorf("%w: %s became %s", ErrInputModified, FormatSequence(c.Input), FormatSequence(argument))
	case c.Expected != nil:
		res.Err = VerifyExpected(c.Expected, got)
	default:
		res.Err = VerifySorted(c.Input, got)
	}

	if res.Err != nil {
		res.Status = StatusFailed
	}

	return res
}

func safeSort(alg sorting.Algorithm[float64], input []float64) (out []float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.FromPanic(rec, nil)
		}
	}()

	return alg.Sort(input), nil
}

// Search runs the search selected by mode. An empty mode means ModeBinary.
func Search(mode string, input []float64, target float64) (search.Result, error) {
	switch mode {
	case ModeBinary, "":
		return search.BinarySearch(input, target), nil
	case ModeRecursive:
		return search.BinarySearchRecursive(input, target), nil
	case ModeFirst:
		return search.FindFirstOccurrence(input, target), nil
	case ModeLast:
		return search.FindLastOccurrence(input, target), nil
	default:
		return search.NotFound(), fmt.Errorf("%w: %q", ErrUnknownSearchMode, mode)
	}
}

// RunSearchCase runs one search case and compares the index it finds, or -1,
// with the expected one.
func RunSearchCase(c SearchCase) SearchResult {
	res := SearchResult{Case: c, Got: -1}

	result, err := Search(c.Mode, c.Input, c.Target)
	if err != nil {
		res.Status = StatusErrored
		res.Err = err

		return res
	}

	res.Got = result.OrMinusOne()

	if res.Got != c.Expected {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("%w: expected index %d, got %s", ErrMismatch, c.Expected, result)
	}

	return res
}

// CheckInPlace sorts a fixed sample with alg and records whether the
// argument itself was sorted and returned.
func CheckInPlace(alg sorting.Algorithm[float64]) InPlaceResult {
	argument := slices.Clone(inPlaceSample)

	res := InPlaceResult{
		Algorithm: alg.Name,
		Original:  slices.Clone(inPlaceSample),
		Argument:  argument,
	}

	returned, err := safeSort(alg, argument)
	if err != nil {
		return res
	}

	res.Returned = returned
	res.Aliased = len(returned) == len(argument) && len(argument) > 0 && &returned[0] == &argument[0]
	res.Sorted = sorting.IsSorted(argument) && IsPermutation(res.Original, argument)

	return res
}

// ReverseSorted returns [n, n-1, ..., 1].
func ReverseSorted(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n - i)
	}

	return out
}

func (r *Runner) runPerformance(
	ctx context.Context,
	log *slog.Logger,
	algorithms []sorting.Algorithm[float64],
	sizes []int,
) ([]PerfResult, int, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "harness.Performance",
		trace.WithAttributes(attribute.IntSlice("perf.sizes", sizes)))
	defer span.End()

	pool := pond.NewPool(r.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	results := make([]PerfResult, len(algorithms)*len(sizes))
	incorrect := atomic.NewInt64(0)

	for i, alg := range algorithms {
		for j, size := range sizes {
			slot := i*len(sizes) + j

			group.Submit(func() {
				results[slot] = timeSort(alg, size)
				if !results[slot].Correct {
					incorrect.Inc()
				}
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	for _, res := range results {
		r.metrics.observePerf(res, strconv.Itoa(res.Size))
	}

	bad := int(incorrect.Load())

	r.metrics.observePerfIncorrect(bad)
	span.SetAttributes(attribute.Int("perf.incorrect", bad))
	log.Debug("Performance run complete", "runs", len(results), "incorrect", bad)

	return results, bad, nil
}

func timeSort(alg sorting.Algorithm[float64], size int) PerfResult {
	input := ReverseSorted(size)

	start := time.Now()
	out, err := safeSort(alg, input)
	elapsed := time.Since(start)

	return PerfResult{
		Algorithm: alg.Name,
		Size:      size,
		Elapsed:   elapsed,
		Correct:   err == nil && len(out) == size && sorting.IsSorted(out),
	}
}
