package set

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/amp-labs/natural/natural"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type name = natural.Natural[string, natural.Text]

func names(values ...string) []name {
	out := make([]name, 0, len(values))
	for _, v := range values {
		out = append(out, natural.Str(v))
	}

	return out
}

func strs(values []name) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Value)
	}

	return out
}

// checkInvariants verifies the left-leaning red-black properties and returns
// the black height of the tree.
func checkInvariants(t *testing.T, n *rbtNode[name], parentRed bool) int {
	t.Helper()

	if n == nil {
		return 1
	}

	require.False(t, isRed(n.right), "red link leans right at %q", n.key.Value)
	require.False(t, parentRed && n.color == red, "two red links in a row at %q", n.key.Value)

	if n.left != nil {
		require.True(t, n.left.key.LessThan(n.key), "left child out of order at %q", n.key.Value)
	}

	if n.right != nil {
		require.True(t, n.key.LessThan(n.right.key), "right child out of order at %q", n.key.Value)
	}

	leftHeight := checkInvariants(t, n.left, n.color == red)
	rightHeight := checkInvariants(t, n.right, n.color == red)
	require.Equal(t, leftHeight, rightHeight, "black height differs at %q", n.key.Value)

	if n.color == black {
		return leftHeight + 1
	}

	return leftHeight
}

func TestNewRedBlackTreeSet(t *testing.T) {
	t.Parallel()

	s := NewRedBlackTreeSet[name]()
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Size())
	assert.Nil(t, s.Entries())

	_, ok := s.Min()
	assert.False(t, ok)

	_, ok = s.Max()
	assert.False(t, ok)
}

func TestRedBlackTreeSet_Add(t *testing.T) {
	t.Parallel()

	t.Run("keeps natural order", func(t *testing.T) {
		t.Parallel()

		s := NewRedBlackTreeSet[name]()
		added := s.AddAll(names("file2.txt", "file11.txt", "file1.txt")...)

		assert.Equal(t, 3, added)
		assert.Equal(t, []string{"file1.txt", "file2.txt", "file11.txt"}, strs(s.Entries()))
	})

	t.Run("naturally equal values share a slot", func(t *testing.T) {
		t.Parallel()

		s := NewRedBlackTreeSet[name]()
		assert.True(t, s.Add(natural.Str("a7b")))
		assert.False(t, s.Add(natural.Str("a07b")))
		assert.Equal(t, 1, s.Size())

		stored, ok := s.Get(natural.Str("a0007b"))
		require.True(t, ok)
		assert.Equal(t, "a7b", stored.Value, "first inserted element is kept")
	})

	t.Run("matches natural sort", func(t *testing.T) {
		t.Parallel()

		input := []string{"file1.txt", "file1B.txt", "file00.txt", "file11.txt", "file0002.txt"}

		s := NewRedBlackTreeSet[name]()
		s.AddAll(names(input...)...)

		natural.Sort[natural.Text](input)
		assert.Equal(t, input, strs(s.Entries()))
	})
}

func TestRedBlackTreeSet_Remove(t *testing.T) {
	t.Parallel()

	s := NewRedBlackTreeSet[name]()
	s.AddAll(names("v1", "v2", "v10", "v20")...)

	assert.True(t, s.Remove(natural.Str("v02")))
	assert.False(t, s.Remove(natural.Str("v2")))
	assert.False(t, s.Remove(natural.Str("v3")))
	assert.Equal(t, []string{"v1", "v10", "v20"}, strs(s.Entries()))

	for _, v := range []string{"v1", "v10", "v20"} {
		assert.True(t, s.Remove(natural.Str(v)))
	}

	assert.Equal(t, 0, s.Size())
	assert.Nil(t, s.Entries())
}

func TestRedBlackTreeSet_RandomOperationsKeepInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 42)) //nolint:gosec
	s := NewRedBlackTreeSet[name]()
	tree := s.(*redBlackTreeSet[name]) //nolint:forcetypeassert

	reference := map[int]bool{}

	for i := range 3000 {
		n := rng.IntN(400)
		key := natural.Str("item-" + strconv.Itoa(n))

		if rng.IntN(3) == 0 {
			assert.Equal(t, reference[n], s.Remove(key), "remove %d", n)
			delete(reference, n)
		} else {
			assert.Equal(t, !reference[n], s.Add(key), "add %d", n)
			reference[n] = true
		}

		if i%100 == 0 {
			require.False(t, isRed(tree.root), "root must be black")
			checkInvariants(t, tree.root, false)
		}
	}

	expected := make([]int, 0, len(reference))
	for n := range reference {
		expected = append(expected, n)
	}

	slices.Sort(expected)

	actual := make([]int, 0, s.Size())
	for k := range s.Seq() {
		n, err := strconv.Atoi(k.Value[len("item-"):])
		require.NoError(t, err)

		actual = append(actual, n)
	}

	assert.Equal(t, expected, actual)
	assert.Equal(t, len(reference), s.Size())
}

func TestRedBlackTreeSet_Iteration(t *testing.T) {
	t.Parallel()

	s := NewRedBlackTreeSet[name]()
	s.AddAll(names("b3", "b10", "a9", "c1")...)

	var backward []string
	for k := range s.Backward() {
		backward = append(backward, k.Value)
	}

	assert.Equal(t, []string{"c1", "b10", "b3", "a9"}, backward)

	var firstTwo []string
	for k := range s.Seq() {
		if len(firstTwo) == 2 {
			break
		}

		firstTwo = append(firstTwo, k.Value)
	}

	assert.Equal(t, []string{"a9", "b3"}, firstTwo)

	lowest, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, "a9", lowest.Value)

	highest, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, "c1", highest.Value)
}

func TestRedBlackTreeSet_UnionIntersectionClone(t *testing.T) {
	t.Parallel()

	left := NewRedBlackTreeSet[name]()
	left.AddAll(names("x1", "x2", "x3")...)

	right := NewRedBlackTreeSet[name]()
	right.AddAll(names("x02", "x03", "x4")...)

	union := left.Union(right)
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, strs(union.Entries()))

	inter := left.Intersection(right)
	assert.Equal(t, []string{"x2", "x3"}, strs(inter.Entries()))

	clone := left.Clone()
	clone.Add(natural.Str("x9"))
	clone.Remove(natural.Str("x1"))

	assert.Equal(t, []string{"x1", "x2", "x3"}, strs(left.Entries()))
	assert.Equal(t, []string{"x2", "x3", "x9"}, strs(clone.Entries()))

	left.Clear()
	assert.Equal(t, 0, left.Size())
	assert.False(t, left.Contains(natural.Str("x1")))
}
