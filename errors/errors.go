// Package errors holds the sentinel errors shared by the natsort command and
// its supporting packages, plus a small error accumulator.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownView is returned when a view name is neither "text" nor "ascii".
	ErrUnknownView = errors.New("unknown view")

	// ErrUnknownCompression is returned when a compression name is not supported.
	ErrUnknownCompression = errors.New("unknown compression")

	// ErrInvalidField is returned when a sort field number is out of range.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidConfig is returned when a configuration file or value cannot be used.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrNotSorted is returned by check mode when the input is out of order.
	ErrNotSorted = errors.New("input is not sorted")
)

// Collection accumulates errors from independent operations, for example one
// per input file, so they can be reported together. It is not safe for
// concurrent use; callers that collect from several goroutines must guard it.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// AddFor appends err prefixed with the name of the source that produced it,
// keeping the original error reachable through errors.Is and errors.As.
// Nil errors are ignored.
func (c *Collection) AddFor(source string, err error) {
	if err != nil {
		c.errors = append(c.errors, fmt.Errorf("%s: %w", source, err))
	}
}

// HasError reports whether at least one error was collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
