package natural

import (
	"github.com/amp-labs/natural/sortable"
)

// Natural wraps a value so that it orders in natural sort order instead of
// by its own ordering. V selects the view (Text or ASCII) the value is
// compared through. Both views order bytes the same way; the view records
// whether the caller promises valid UTF-8 or plain bytes.
//
// Natural is meant to be built inline as a sort key:
//
//	slices.SortFunc(items, func(a, b Item) int {
//	    return natural.Str(a.Name).Compare(natural.Str(b.Name))
//	})
//
// or used as the element type of an ordered collection:
//
//	names := set.NewRedBlackTreeSet[natural.Natural[string, natural.Text]]()
type Natural[T Bytes, V View] struct {
	// A trailing zero-size field would be padded, so the view marker leads.
	_ [0]V

	Value T
}

var _ sortable.Sortable[Natural[string, Text]] = Natural[string, Text]{}

// New wraps value using the view given as the first type argument.
func New[V View, T Bytes](value T) Natural[T, V] {
	return Natural[T, V]{Value: value}
}

// Str wraps value using the text view.
func Str[T Bytes](value T) Natural[T, Text] {
	return Natural[T, Text]{Value: value}
}

// Ascii wraps value using the ASCII byte view.
func Ascii[T Bytes](value T) Natural[T, ASCII] {
	return Natural[T, ASCII]{Value: value}
}

// Compare returns -1, 0 or +1 as n sorts before, with or after other.
func (n Natural[T, V]) Compare(other Natural[T, V]) int {
	return Compare(n.Value, other.Value)
}

// Equals reports whether n and other are equivalent in natural order. Values
// with different bytes can be equal, for example "a7" and "a07".
func (n Natural[T, V]) Equals(other Natural[T, V]) bool {
	return n.Compare(other) == 0
}

// LessThan reports whether n sorts strictly before other.
func (n Natural[T, V]) LessThan(other Natural[T, V]) bool {
	return n.Compare(other) < 0
}

// String returns the wrapped value as a string.
func (n Natural[T, V]) String() string {
	return string(n.Value)
}

// View returns the wrapped value converted to the view type V. Converting
// between string and []byte copies the value.
func (n Natural[T, V]) View() V {
	return V(n.Value)
}
