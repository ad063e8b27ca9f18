package harness

import (
	"errors"
	"fmt"

	errs "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/amp-labs/amp-algorithms/sorting"
)

// AllAlgorithms selects every registered algorithm.
const AllAlgorithms = "all"

var errNotPositive = errors.New("must be positive")

// Config is the environment-driven configuration of a run. CLI flags
// override individual fields before Plan is called.
type Config struct {
	Algorithm string
	PerfSizes []int
	NoPerf    bool
	Workers   int
	NoColor   bool
	CasesFile string
}

// AlgorithmChoices lists the values accepted for Config.Algorithm.
func AlgorithmChoices() []string {
	return append(sorting.Names(), AllAlgorithms)
}

// LoadConfig reads SORTCHECK_ALGORITHM, SORTCHECK_PERF_SIZES,
// SORTCHECK_WORKERS, SORTCHECK_NO_COLOR and SORTCHECK_CASES. Every
// invalid variable is reported in the returned error.
func LoadConfig() (Config, error) {
	var collection errs.Collection

	algorithm, err := envutil.Choice("SORTCHECK_ALGORITHM", AlgorithmChoices(),
		envutil.Default(AllAlgorithms)).Value()
	collection.Add(err)

	sizes, err := envutil.IntList("SORTCHECK_PERF_SIZES",
		envutil.Default(DefaultPerformanceSizes()),
		envutil.Validate(allPositive)).Value()
	collection.Add(err)

	workers, err := envutil.Int("SORTCHECK_WORKERS",
		envutil.Default(defaultWorkers),
		envutil.Validate(positive)).Value()
	collection.Add(err)

	noColor, err := envutil.Bool("SORTCHECK_NO_COLOR", envutil.Default(false)).Value()
	collection.Add(err)

	cases, err := envutil.String("SORTCHECK_CASES", envutil.Default("")).Value()
	collection.Add(err)

	if collection.HasError() {
		return Config{}, collection.GetError()
	}

	return Config{
		Algorithm: algorithm,
		PerfSizes: sizes,
		Workers:   workers,
		NoColor:   noColor,
		CasesFile: cases,
	}, nil
}

// Algorithms resolves the configured algorithm name.
func (c Config) Algorithms() ([]sorting.Algorithm[float64], error) {
	if c.Algorithm == "" || c.Algorithm == AllAlgorithms {
		return sorting.Algorithms[float64](), nil
	}

	alg, err := sorting.Lookup[float64](c.Algorithm)
	if err != nil {
		return nil, err
	}

	return []sorting.Algorithm[float64]{alg}, nil
}

// Plan builds the run plan: the built-in suites, or the suites in CasesFile
// when it is set.
func (c Config) Plan() (Plan, error) {
	algorithms, err := c.Algorithms()
	if err != nil {
		return Plan{}, err
	}

	suites := DefaultSuites()

	if c.CasesFile != "" {
		suites, err = LoadCaseFile(c.CasesFile)
		if err != nil {
			return Plan{}, err
		}
	}

	plan := Plan{
		Algorithms: algorithms,
		Suites:     suites,
		PerfSizes:  c.PerfSizes,
	}

	if c.NoPerf {
		plan.PerfSizes = nil
	}

	return plan, nil
}

func positive(n int) error {
	if n <= 0 {
		return fmt.Errorf("%d %w", n, errNotPositive)
	}

	return nil
}

func allPositive(ns []int) error {
	for _, n := range ns {
		if err := positive(n); err != nil {
			return err
		}
	}

	return nil
}
