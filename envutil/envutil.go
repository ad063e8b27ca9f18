// Package envutil reads typed configuration from environment variables.
//
// Every function returns a [Reader]; options such as [Default] and [Validate]
// are applied in order:
//
//	workers := envutil.Int("SORTCHECK_WORKERS",
//	    envutil.Default(4),
//	    envutil.Validate(positive)).ValueOrFatal()
package envutil

import (
	"log/slog"
	"os"
	"time"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Choice returns a Reader whose value must be one of choices. Matching is
// case-insensitive and the value is normalised to lower case.
func Choice(key string, choices []string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), oneOf(choices)), opts)
}

// Bool accepts the values understood by strconv.ParseBool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), parseBool), opts)
}

func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), parseInt), opts)
}

// IntList reads a comma separated list of integers.
func IntList(key string, opts ...Option[[]int]) Reader[[]int] {
	return apply(Map(get(key), parseIntList), opts)
}

func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(key), parseDuration), opts)
}

// SlogLevel reads one of debug, info, warn or error.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseSlogLevel), opts)
}
