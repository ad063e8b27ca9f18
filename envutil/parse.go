package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidChoice   = errors.New("invalid choice")
)

func parseBool(value string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(value))
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

func parseDuration(value string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(value))
}

// parseIntList parses a comma separated list such as "10, 50,100".
// Empty entries are skipped.
func parseIntList(value string) ([]int, error) {
	var out []int

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("list entry %q: %w", part, err)
		}

		out = append(out, n)
	}

	return out, nil
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

func oneOf(choices []string) func(string) (string, error) {
	return func(value string) (string, error) {
		value = strings.ToLower(strings.TrimSpace(value))

		for _, c := range choices {
			if value == c {
				return value, nil
			}
		}

		return value, fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidChoice, value, strings.Join(choices, ", "))
	}
}
