// Package envutil reads typed configuration values from environment
// variables, with per-context overrides and config-file fallbacks.
package envutil

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
)

func get(ctx context.Context, key string) Reader[string] {
	val, ok := lookup(ctx, key)

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
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool returns a Reader that parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	rdr := Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	})

	return apply(rdr, opts)
}

// Int returns a Reader that parses the variable as a base 10 integer.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	rdr := Map(get(ctx, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})

	return apply(rdr, opts)
}

// SlogLevel returns a Reader that parses the variable as a slog level name
// such as "debug", "info", "warn" or "error" (case-insensitive).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(s string) (slog.Level, error) {
		var lvl slog.Level

		err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))

		return lvl, err
	})

	return apply(rdr, opts)
}
