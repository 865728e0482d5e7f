// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is a three-way comparison function in the cmp.Compare convention:
// negative when a sorts before b, zero when they are equivalent, positive
// otherwise. Any func(a, b T) int can be converted to a Comparator.
type Comparator[T any] func(a, b T) int

// Reverse returns a comparator that orders values in the opposite direction.
// Equivalent values stay equivalent, so stable sorts keep their input order.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// By returns a comparator that orders values of type T by comparing the keys
// derived from them.
//
// Example:
//
//	byName := compare.By(func(u User) string { return u.Name }, strings.Compare)
func By[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}

// Then returns a comparator that uses c first and falls back to next for
// values c considers equivalent.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if ord := c(a, b); ord != 0 {
			return ord
		}

		return next(a, b)
	}
}

// Less reports whether a sorts strictly before b.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}
