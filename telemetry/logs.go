package telemetry

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

var loggerProvider *sdklog.LoggerProvider //nolint:gochecknoglobals

// InitializeLogs starts an OTLP log exporter and returns a slog handler that
// feeds it. It returns a nil handler when log export is disabled, so callers
// can pass the result straight to logger.WithHandler.
func InitializeLogs(ctx context.Context, config *Config) (slog.Handler, error) { //nolint:ireturn
	if !config.LogsEnabled || config.LogsEndpoint == "" {
		return nil, nil //nolint:nilnil
	}

	res, err := newResource(ctx, config)
	if err != nil {
		return nil, err
	}

	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.LogsEndpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	return otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(loggerProvider)), nil
}
