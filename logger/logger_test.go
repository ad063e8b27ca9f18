package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// lines decodes each JSON log line written to buf.
func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))

		out = append(out, m)
	}

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")

	ctx := WithSubsystem(t.Context(), "overridden")
	Get(ctx).Info("overridden subsystem")

	ctx = With(t.Context(), "suite", "edge cases")
	ctx = With(ctx, "case", "empty")
	Get(ctx).Debug("with values")

	Get(WithMuted(t.Context(), true)).Error("never printed")

	logged := lines(t, &buf)
	require.Len(t, logged, 3)

	assert.Equal(t, "test", logged[0]["subsystem"])
	assert.Equal(t, "overridden", logged[1]["subsystem"])
	assert.Equal(t, "edge cases", logged[2]["suite"])
	assert.Equal(t, "empty", logged[2]["case"])
}

func TestAnnotateError(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	err := AnnotateError(errBoom, "algorithm", "quick", "size", 500)
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, "boom", err.Error())

	Get().Error("case errored", "error", err)
	Get().Error("plain error", "error", errBoom)

	logged := lines(t, &buf)
	require.Len(t, logged, 2)

	assert.Equal(t, "boom", logged[0]["error"])
	assert.Equal(t, "quick", logged[0]["algorithm"])
	assert.InDelta(t, 500, logged[0]["size"], 0)

	assert.Equal(t, "boom", logged[1]["error"])
	assert.NotContains(t, logged[1], "algorithm")
}

func TestAnnotateError_Nil(t *testing.T) {
	t.Parallel()

	require.NoError(t, AnnotateError(nil, "k", "v"))
}

func TestConfigureLogging_Env(t *testing.T) { //nolint:paralleltest
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer

	ConfigureLogging("sortcheck", WithOutput(&buf))

	Get().Info("filtered out")
	Get().Warn("kept")

	logged := lines(t, &buf)
	require.Len(t, logged, 1)
	assert.Equal(t, "kept", logged[0]["msg"])
	assert.Equal(t, "sortcheck", logged[0]["subsystem"])
}

func TestWithHandler(t *testing.T) { //nolint:paralleltest
	var console, extra bytes.Buffer

	ConfigureLogging("test",
		WithOutput(&console),
		WithLevel(slog.LevelInfo),
		WithHandler(nil),
		WithHandler(slog.NewJSONHandler(&extra, &slog.HandlerOptions{Level: slog.LevelDebug})),
	)

	Get().With("suite", "standard").Debug("debug only")
	Get().Info("both", "error", AnnotateError(errBoom, "case", "empty"))

	assert.NotContains(t, console.String(), "debug only")
	assert.Contains(t, console.String(), "both")

	logged := lines(t, &extra)
	require.Len(t, logged, 2)
	assert.Equal(t, "debug only", logged[0]["msg"])
	assert.Equal(t, "standard", logged[0]["suite"])
	assert.Equal(t, "boom", logged[1]["error"])
	assert.Equal(t, "empty", logged[1]["case"])
}
