// Command sortcheck runs the sorting and search verification suites and
// performs ad-hoc sorts and searches from the command line.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-algorithms/build"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/shutdown"
	"github.com/amp-labs/amp-algorithms/telemetry"
	"github.com/spf13/cobra"
)

const appName = "sortcheck"

// buildInfo is injected at release time with
// -ldflags "-X main.buildInfo={...}".
var buildInfo string //nolint:gochecknoglobals

// errReported marks errors whose details were already printed.
var errReported = errors.New("reported")

func main() {
	logger.ConfigureLogging(appName)

	ctx, stop := shutdown.SetupHandler(context.Background())

	err := newRootCmd(os.Stdout).ExecuteContext(ctx)

	shutdown.RunHooks()
	stop()

	if err != nil {
		if !errors.Is(err, errReported) {
			slog.Error("sortcheck failed", "error", err)
		}

		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Verify and exercise the sorting and search algorithms",
		Long: `sortcheck runs literal test suites against bubble, quick and merge sort and
the binary search variants, and reports coloured pass/fail output.

Configuration is read from SORTCHECK_* environment variables; flags override them.`,
		Version:       build.Current(buildInfo).Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return startTelemetry(cmd.Context())
		},
	}

	root.SetOut(out)

	root.AddCommand(
		newRunCmd(),
		newSortCmd(),
		newSearchCmd(),
		newVersionCmd(),
	)

	return root
}

func startTelemetry(ctx context.Context) error {
	cfg, err := telemetry.LoadConfigFromEnv(appName)
	if err != nil {
		return err
	}

	cfg.ServiceVersion = build.Current(buildInfo).Version

	if err := telemetry.Initialize(ctx, cfg); err != nil {
		return err
	}

	handler, err := telemetry.InitializeLogs(ctx, cfg)
	if err != nil {
		return err
	}

	if handler != nil {
		logger.ConfigureLogging(appName, logger.WithHandler(handler))
	}

	shutdown.BeforeShutdown(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		defer cancel()

		if err := telemetry.Shutdown(ctx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	})

	return nil
}
