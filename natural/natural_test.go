package natural_test

import (
	"path/filepath"
	"slices"
	"testing"
	"unsafe"

	"github.com/amp-labs/natural/natural"
	"github.com/amp-labs/natural/sortable"
	"github.com/stretchr/testify/assert"
)

func TestNatural_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, natural.Str("file0002.txt").Compare(natural.Str("file1B.txt")) > 0)
	assert.True(t, natural.Str("file0002.txt").LessThan(natural.Str("file11.txt")))
	assert.False(t, natural.Str("file11.txt").LessThan(natural.Str("file11.txt")))
	assert.True(t, natural.Ascii([]byte("x9")).LessThan(natural.Ascii([]byte("x10"))))
}

func TestNatural_EqualsFollowsNaturalOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{name: "identical", a: "v1.2", b: "v1.2", expected: true},
		{name: "zero padding", a: "a7b", b: "a07b", expected: true},
		{name: "all zero runs", a: "x0", b: "x00", expected: true},
		{name: "different number", a: "v1.2", b: "v1.3", expected: false},
		{name: "different text", a: "a1", b: "b1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, natural.Str(tt.a).Equals(natural.Str(tt.b)))
			assert.Equal(t, tt.expected, natural.Ascii(tt.a).Equals(natural.Ascii(tt.b)))
			assert.Equal(t, tt.expected, sortable.Compare(natural.Str(tt.a), natural.Str(tt.b)) == 0)
		})
	}
}

func TestNatural_AsSortKey(t *testing.T) {
	t.Parallel()

	type release struct {
		Tag  string
		Date string
	}

	releases := []release{
		{Tag: "v1.10.0", Date: "2024-06-01"},
		{Tag: "v1.2.0", Date: "2023-01-15"},
		{Tag: "v1.9.1", Date: "2024-02-10"},
	}

	slices.SortFunc(releases, func(a, b release) int {
		return natural.Str(a.Tag).Compare(natural.Str(b.Tag))
	})

	tags := make([]string, 0, len(releases))
	for _, r := range releases {
		tags = append(tags, r.Tag)
	}

	assert.Equal(t, []string{"v1.2.0", "v1.9.1", "v1.10.0"}, tags)
}

func TestNatural_ExplicitView(t *testing.T) {
	t.Parallel()

	type path string

	p := natural.New[natural.ASCII](path(filepath.Join("logs", "app10.log")))
	q := natural.New[natural.ASCII](path(filepath.Join("logs", "app9.log")))

	assert.Equal(t, 1, p.Compare(q))
	assert.Equal(t, filepath.Join("logs", "app10.log"), p.String())
}

func TestViews_NaturalCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, natural.Text("page2").NaturalCompare("page10"))
	assert.Equal(t, -1, natural.ASCII("page2").NaturalCompare(natural.ASCII("page10")))
	assert.Equal(t, 0, natural.Text("").NaturalCompare(""))
}

func TestNatural_View(t *testing.T) {
	t.Parallel()

	text := natural.Str("file7").View()
	assert.Equal(t, natural.Text("file7"), text)
	assert.Equal(t, -1, text.NaturalCompare("file10"))

	ascii := natural.Ascii("file7").View()
	assert.Equal(t, natural.ASCII("file7"), ascii)
	assert.Equal(t, 0, ascii.NaturalCompare(natural.ASCII("file007")))

	assert.Equal(t, natural.Text("x2"), natural.New[natural.Text]([]byte("x2")).View())
}

func TestNatural_HasNoOverhead(t *testing.T) {
	t.Parallel()

	assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(natural.Natural[string, natural.Text]{}))
	assert.Equal(t, unsafe.Sizeof([]byte(nil)), unsafe.Sizeof(natural.Natural[[]byte, natural.ASCII]{}))
}
