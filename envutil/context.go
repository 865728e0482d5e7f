package envutil

import (
	"context"
	"os"
)

type envContextKey string

const fallbacksKey envContextKey = "\x00fallbacks"

// WithEnvOverride returns a context in which key reads as value regardless of
// the process environment. Tests use it to avoid os.Setenv.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

// WithFallbacks returns a context in which the given values are used for keys
// that are missing from the process environment. It is how a config file
// loaded with LoadEnvFile supplies defaults that real environment variables
// can still override.
func WithFallbacks(ctx context.Context, vars map[string]string) context.Context {
	if len(vars) == 0 {
		return ctx
	}

	merged := make(map[string]string, len(vars))

	if prev, ok := ctx.Value(fallbacksKey).(map[string]string); ok {
		for k, v := range prev {
			merged[k] = v
		}
	}

	for k, v := range vars {
		merged[k] = v
	}

	return context.WithValue(ctx, fallbacksKey, merged)
}

// lookup resolves key from, in order, a context override, the process
// environment and the context fallbacks.
func lookup(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(envContextKey(key)).(string); ok {
		return val, true
	}

	if val, ok := os.LookupEnv(key); ok {
		return val, true
	}

	if vars, ok := ctx.Value(fallbacksKey).(map[string]string); ok {
		val, found := vars[key]

		return val, found
	}

	return "", false
}
