// Package sortable defines the [Sortable] interface used to key ordered
// collections such as [github.com/amp-labs/natural/set.NewRedBlackTreeSet].
//
// # Overview
//
// Sortable extends [github.com/amp-labs/natural/compare.Comparable] with a
// LessThan method, providing both equality and ordering. The ordering does not
// have to be the type's built-in one: [github.com/amp-labs/natural/natural.Natural]
// implements Sortable with natural sort order, where "a7" and "a07" are equal.
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Track struct {
//	    Disc  int
//	    Title string
//	}
//
//	func (t Track) Equals(other Track) bool {
//	    return t.Disc == other.Disc && natural.Compare(t.Title, other.Title) == 0
//	}
//
//	func (t Track) LessThan(other Track) bool {
//	    if t.Disc != other.Disc {
//	        return t.Disc < other.Disc
//	    }
//	    return natural.Less(t.Title, other.Title)
//	}
//
// [Compare] turns any Sortable pair into a three-way result, and [Comparator]
// exposes it as a [github.com/amp-labs/natural/compare.Comparator].
package sortable
