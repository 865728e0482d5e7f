package set

import (
	"iter"

	"github.com/amp-labs/natural/sortable"
)

// color represents the color of the link from a node to its parent.
type color bool

const (
	black color = false
	red   color = true
)

// rbtNode is a single node of the tree.
type rbtNode[K sortable.Sortable[K]] struct {
	key   K
	color color
	left  *rbtNode[K]
	right *rbtNode[K]
}

func isRed[K sortable.Sortable[K]](n *rbtNode[K]) bool {
	return n != nil && n.color == red
}

// redBlackTreeSet is a Set backed by a left-leaning red-black tree.
//
// A left-leaning red-black tree is a binary search tree that mirrors a 2-3
// tree: red links lean left, no node has two red links, and every path from
// the root to a nil link has the same number of black links. This keeps the
// height within 2·log2(n) and every operation at O(log n).
//
// The algorithms follow Sedgewick's "Left-leaning Red-Black Trees".
type redBlackTreeSet[K sortable.Sortable[K]] struct {
	root *rbtNode[K]
	size int
}

// NewRedBlackTreeSet creates a new empty red-black tree set.
// The returned set keeps its elements in the order defined by K.
func NewRedBlackTreeSet[K sortable.Sortable[K]]() Set[K] {
	return &redBlackTreeSet[K]{}
}

// AddAll adds multiple elements to the set.
func (r *redBlackTreeSet[K]) AddAll(elements ...K) int {
	added := 0

	for _, element := range elements {
		if r.Add(element) {
			added++
		}
	}

	return added
}

// Add inserts a new element into the set.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Add(element K) bool {
	var added bool

	r.root = r.put(r.root, element, &added)
	r.root.color = black

	if added {
		r.size++
	}

	return added
}

func (r *redBlackTreeSet[K]) put(h *rbtNode[K], key K, added *bool) *rbtNode[K] {
	if h == nil {
		*added = true

		return &rbtNode[K]{key: key, color: red}
	}

	switch sortable.Compare(key, h.key) {
	case -1:
		h.left = r.put(h.left, key, added)
	case 1:
		h.right = r.put(h.right, key, added)
	default:
		return h
	}

	return balance(h)
}

// Remove deletes an element from the set.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Remove(element K) bool {
	if !r.Contains(element) {
		return false
	}

	if !isRed(r.root.left) && !isRed(r.root.right) {
		r.root.color = red
	}

	r.root = r.delete(r.root, element)
	if r.root != nil {
		r.root.color = black
	}

	r.size--

	return true
}

// delete removes key from the subtree rooted at h. The key must be present.
func (r *redBlackTreeSet[K]) delete(h *rbtNode[K], key K) *rbtNode[K] {
	if key.LessThan(h.key) {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}

		h.left = r.delete(h.left, key)

		return balance(h)
	}

	if isRed(h.left) {
		h = rotateRight(h)
	}

	if key.Equals(h.key) && h.right == nil {
		return nil
	}

	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}

	if key.Equals(h.key) {
		h.key = minimum(h.right).key
		h.right = deleteMin(h.right)
	} else {
		h.right = r.delete(h.right, key)
	}

	return balance(h)
}

// Clear removes all elements from the set.
// Time complexity: O(1).
func (r *redBlackTreeSet[K]) Clear() {
	r.root = nil
	r.size = 0
}

// Contains checks if an element exists in the set.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Contains(element K) bool {
	return r.find(element) != nil
}

// Get returns the stored element equal to element.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Get(element K) (K, bool) {
	if n := r.find(element); n != nil {
		return n.key, true
	}

	var zero K

	return zero, false
}

func (r *redBlackTreeSet[K]) find(key K) *rbtNode[K] {
	x := r.root

	for x != nil {
		switch sortable.Compare(key, x.key) {
		case -1:
			x = x.left
		case 1:
			x = x.right
		default:
			return x
		}
	}

	return nil
}

// Size returns the number of elements in the set.
// Time complexity: O(1).
func (r *redBlackTreeSet[K]) Size() int {
	return r.size
}

// Entries returns all elements in the set as a slice, in sorted order.
// Time complexity: O(n).
func (r *redBlackTreeSet[K]) Entries() []K {
	if r.size == 0 {
		return nil
	}

	entries := make([]K, 0, r.size)

	for k := range r.Seq() {
		entries = append(entries, k)
	}

	return entries
}

// Seq returns an iterator that yields elements in ascending order.
// This enables range-over-func syntax: for element := range set.Seq() { ... }
func (r *redBlackTreeSet[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(r.root, yield)
	}
}

// Backward returns an iterator that yields elements in descending order.
func (r *redBlackTreeSet[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		reverseOrder(r.root, yield)
	}
}

// Min returns the smallest element.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Min() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	return minimum(r.root).key, true
}

// Max returns the largest element.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Max() (K, bool) {
	if r.root == nil {
		var zero K

		return zero, false
	}

	x := r.root
	for x.right != nil {
		x = x.right
	}

	return x.key, true
}

// Union returns a new set containing all elements from both this set and the other set.
// Time complexity: O((n + m) log(n + m)).
func (r *redBlackTreeSet[K]) Union(other Set[K]) Set[K] {
	out := r.Clone()

	for k := range other.Seq() {
		out.Add(k)
	}

	return out
}

// Intersection returns a new set containing only elements that exist in both this set and the other set.
// Time complexity: O(n log m).
func (r *redBlackTreeSet[K]) Intersection(other Set[K]) Set[K] {
	out := NewRedBlackTreeSet[K]()

	for k := range r.Seq() {
		if other.Contains(k) {
			out.Add(k)
		}
	}

	return out
}

// Clone creates a shallow copy of the set with all the same elements.
// Time complexity: O(n).
func (r *redBlackTreeSet[K]) Clone() Set[K] {
	return &redBlackTreeSet[K]{
		root: cloneNode(r.root),
		size: r.size,
	}
}

func cloneNode[K sortable.Sortable[K]](n *rbtNode[K]) *rbtNode[K] {
	if n == nil {
		return nil
	}

	return &rbtNode[K]{
		key:   n.key,
		color: n.color,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}

func inOrder[K sortable.Sortable[K]](n *rbtNode[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, yield) && yield(n.key) && inOrder(n.right, yield)
}

func reverseOrder[K sortable.Sortable[K]](n *rbtNode[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}

	return reverseOrder(n.right, yield) && yield(n.key) && reverseOrder(n.left, yield)
}

// rotateLeft turns a right-leaning red link into a left-leaning one.
//
//	  h                x
//	 / \\            // \
//	a   x     =>    h    c
//	   / \         / \
//	  b   c       a   b
func rotateLeft[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red

	return x
}

// rotateRight turns a left-leaning red link into a right-leaning one.
func rotateRight[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red

	return x
}

// flipColors splits or merges a temporary 4-node.
func flipColors[K sortable.Sortable[K]](h *rbtNode[K]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

// moveRedLeft makes h.left or one of its children red, assuming h is red
// and both h.left and h.left.left are black.
func moveRedLeft[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	flipColors(h)

	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}

	return h
}

// moveRedRight makes h.right or one of its children red, assuming h is red
// and both h.right and h.right.left are black.
func moveRedRight[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	flipColors(h)

	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}

	return h
}

// balance restores the left-leaning invariants on the way back up.
func balance[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}

	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}

	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}

	return h
}

func deleteMin[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	if h.left == nil {
		return nil
	}

	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}

	h.left = deleteMin(h.left)

	return balance(h)
}

func minimum[K sortable.Sortable[K]](h *rbtNode[K]) *rbtNode[K] {
	for h.left != nil {
		h = h.left
	}

	return h
}
