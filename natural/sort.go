package natural

import (
	"slices"
)

// Func returns the natural-order comparator for keys of type K under view V,
// ready for slices.SortFunc, slices.BinarySearchFunc and similar helpers.
func Func[V View, K Bytes]() func(a, b K) int {
	return Compare[K]
}

// SortUnstable sorts s in natural order. Equal elements may be reordered.
//
//	files := []string{"file2.txt", "file11.txt", "file1.txt"}
//	natural.SortUnstable[natural.Text](files)
//	// files == ["file1.txt", "file2.txt", "file11.txt"]
func SortUnstable[V View, S ~[]E, E Bytes](s S) {
	slices.SortFunc(s, Func[V, E]())
}

// SortUnstableByKey sorts s by the natural order of key(e). Equal elements
// may be reordered. key is called on every comparison, so it should be cheap;
// see SortByCachedKey otherwise.
func SortUnstableByKey[V View, S ~[]E, E any, K Bytes](s S, key func(E) K) {
	slices.SortFunc(s, func(a, b E) int {
		return New[V](key(a)).Compare(New[V](key(b)))
	})
}

// Sort sorts s in natural order, keeping equal elements in their original
// order.
func Sort[V View, S ~[]E, E Bytes](s S) {
	slices.SortStableFunc(s, Func[V, E]())
}

// SortByKey sorts s by the natural order of key(e), keeping equal elements in
// their original order. key is called on every comparison.
func SortByKey[V View, S ~[]E, E any, K Bytes](s S, key func(E) K) {
	slices.SortStableFunc(s, func(a, b E) int {
		return New[V](key(a)).Compare(New[V](key(b)))
	})
}

// SortByCachedKey sorts s by the natural order of key(e), keeping equal
// elements in their original order. key is called exactly once per element,
// which pays off when deriving the key allocates or is otherwise expensive.
//
//	natural.SortByCachedKey[natural.Text](ids, strconv.Itoa)
func SortByCachedKey[V View, S ~[]E, E any, K Bytes](s S, key func(E) K) {
	keyed := make([]cachedKey[K, V], len(s))
	for i, e := range s {
		keyed[i] = cachedKey[K, V]{key: New[V](key(e)), index: i}
	}

	// The index tiebreak makes the unstable sort stable.
	slices.SortFunc(keyed, func(a, b cachedKey[K, V]) int {
		if ord := a.key.Compare(b.key); ord != 0 {
			return ord
		}

		return compareLen(a.index, b.index)
	})

	permute(s, keyed)
}

// IsSorted reports whether s is in natural order.
func IsSorted[V View, S ~[]E, E Bytes](s S) bool {
	return slices.IsSortedFunc(s, Func[V, E]())
}

// IsSortedByKey reports whether s is in natural order of key(e).
func IsSortedByKey[V View, S ~[]E, E any, K Bytes](s S, key func(E) K) bool {
	return slices.IsSortedFunc(s, func(a, b E) int {
		return New[V](key(a)).Compare(New[V](key(b)))
	})
}

type cachedKey[K Bytes, V View] struct {
	key   Natural[K, V]
	index int
}

// permute moves s[keyed[i].index] to position i, following each cycle of the
// permutation so every element is moved once.
func permute[S ~[]E, E any, K Bytes, V View](s S, keyed []cachedKey[K, V]) {
	for i := range keyed {
		src := keyed[i].index
		for src < i {
			src = keyed[src].index
		}

		keyed[i].index = src
		s[i], s[src] = s[src], s[i]
	}
}
