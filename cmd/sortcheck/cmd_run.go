package main

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/harness"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type runFlags struct {
	algorithm   string
	cases       string
	perfSizes   []int
	noPerf      bool
	noColor     bool
	interactive bool
	workers     int
	metricsFile string
}

func newRunCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the verification suites",
		Long: `Runs the edge case, standard and search suites (or the suites in a YAML case
file) against the selected algorithms, times sorts of reverse-sorted inputs,
and checks that bubble sort works in place.

Exits non-zero when any case fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuites(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.algorithm, "algorithm", "a", harness.AllAlgorithms,
		fmt.Sprintf("algorithm to test %v", harness.AlgorithmChoices()))
	f.StringVar(&flags.cases, "cases", "", "YAML case file replacing the built-in suites")
	f.IntSliceVar(&flags.perfSizes, "perf-sizes", harness.DefaultPerformanceSizes(), "input sizes for the performance run")
	f.BoolVar(&flags.noPerf, "no-perf", false, "skip the performance run")
	f.BoolVar(&flags.noColor, "no-color", false, "disable coloured output")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "choose the algorithm from a menu")
	f.IntVar(&flags.workers, "workers", 0, "concurrent performance runs")
	f.StringVar(&flags.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *harness.Config) error {
	changed := cmd.Flags().Changed

	if changed("algorithm") {
		cfg.Algorithm = f.algorithm
	}

	if changed("cases") {
		cfg.CasesFile = f.cases
	}

	if changed("perf-sizes") {
		cfg.PerfSizes = f.perfSizes
	}

	if changed("workers") {
		cfg.Workers = f.workers
	}

	cfg.NoPerf = cfg.NoPerf || f.noPerf
	cfg.NoColor = cfg.NoColor || f.noColor

	if f.interactive {
		choice, err := cli.Select("Algorithm", harness.AlgorithmChoices()...)
		if err != nil {
			return err
		}

		cfg.Algorithm = choice
	}

	return nil
}

func runSuites(cmd *cobra.Command, flags *runFlags) error {
	ctx := logger.WithSubsystem(cmd.Context(), "run")

	cfg, err := harness.LoadConfig()
	if err != nil {
		return err
	}

	if err := flags.apply(cmd, &cfg); err != nil {
		return err
	}

	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()

	runner := harness.NewRunner(
		harness.WithLogger(logger.Get(ctx)),
		harness.WithWorkers(cfg.Workers),
		harness.WithMetrics(harness.NewMetrics(reg)),
	)

	report, runErr := runner.Run(ctx, plan)

	var opts []harness.PrinterOption
	if cfg.NoColor {
		opts = append(opts, harness.WithoutColor())
	}

	harness.NewPrinter(cmd.OutOrStdout(), opts...).Print(report)

	if flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(flags.metricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if errors.Is(runErr, harness.ErrCasesFailed) {
		logger.Get(ctx).Debug("Run failed", "error", runErr)

		return fmt.Errorf("%w: %d of %d cases did not pass", errReported, report.Failed()+report.Errored(), report.Total())
	}

	return runErr
}
