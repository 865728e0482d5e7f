package envutil

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable. It carries whether the
// variable was present and any error from parsing it, so callers can pick a
// fallback policy at the point of use.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value of the environment variable, or an error if the value
// is missing or if there was an error parsing it.
func (e Reader[A]) Value() (A, error) { //nolint:ireturn
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrElse returns the value of the environment variable, or v if the value
// is missing or could not be parsed. Parse errors are logged.
func (e Reader[A]) ValueOrElse(v A) A { //nolint:ireturn
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue returns true if the environment variable was set and parsed.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError returns true if an error occurred when reading the environment variable.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// WithDefault returns a Reader that yields dfl when the variable is missing.
func (e Reader[A]) WithDefault(dfl A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{key: e.key, present: true, value: dfl}
}

// Map transforms the value of a Reader. Missing values and earlier errors are
// passed through without calling f.
func Map[A, B any](rdr Reader[A], f func(A) (B, error)) Reader[B] {
	out := Reader[B]{key: rdr.key, present: rdr.present, err: rdr.err}

	if !rdr.present || rdr.err != nil {
		return out
	}

	out.value, out.err = f(rdr.value)

	return out
}
