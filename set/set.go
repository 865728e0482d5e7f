// Package set provides an ordered set keyed by sortable values.
package set

import (
	"iter"

	"github.com/amp-labs/natural/sortable"
)

// A Set is an ordered collection of unique elements. Uniqueness and order are
// both decided by the element's sortable.Sortable implementation, so two
// elements that are Equals to each other occupy a single slot even when their
// underlying values differ.
type Set[K sortable.Sortable[K]] interface {
	// AddAll adds multiple elements to the set. It returns the number of
	// elements that were not already present.
	AddAll(elements ...K) int

	// Add inserts an element and reports whether it was added. If an equal
	// element is already present the set is left unchanged and the stored
	// element is kept.
	Add(element K) bool

	// Remove deletes the element equal to the given one and reports whether
	// anything was removed.
	Remove(element K) bool

	// Clear removes all elements from the set.
	Clear()

	// Contains reports whether an equal element exists in the set.
	Contains(element K) bool

	// Get returns the stored element equal to the given one.
	Get(element K) (K, bool)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in ascending order.
	Entries() []K

	// Seq iterates the elements in ascending order.
	Seq() iter.Seq[K]

	// Backward iterates the elements in descending order.
	Backward() iter.Seq[K]

	// Min returns the smallest element, or false if the set is empty.
	Min() (K, bool)

	// Max returns the largest element, or false if the set is empty.
	Max() (K, bool)

	// Union returns a new set containing all elements from both sets.
	// Elements from this set win over equal elements from other.
	Union(other Set[K]) Set[K]

	// Intersection returns a new set containing the elements of this set
	// that have an equal element in other.
	Intersection(other Set[K]) Set[K]

	// Clone returns a shallow copy of the set.
	Clone() Set[K]
}
