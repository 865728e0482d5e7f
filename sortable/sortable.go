// Package sortable defines the ordering contract used by sorted collections.
package sortable

import (
	"github.com/amp-labs/natural/compare"
)

// Sortable extends compare.Comparable with a strict ordering. Equals and
// LessThan must agree: for any a and b exactly one of a.LessThan(b),
// a.Equals(b) and b.LessThan(a) holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare returns -1, 0 or +1 as a sorts before, with or after b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// Comparator returns Compare for T as a compare.Comparator.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return Compare[T]
}
