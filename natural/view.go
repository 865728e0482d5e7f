package natural

// Text is the UTF-8 text view of a value. Comparison works on the encoded
// bytes, so only ASCII digits are recognized as numbers.
type Text string

// ASCII is the byte view of a value. The bytes are interpreted as ASCII;
// anything above 0x7F is compared by raw value.
type ASCII []byte

// Sortable is the natural-order capability. It is implemented by Text and
// ASCII only; the unexported method keeps other types out.
type Sortable[V any] interface {
	// NaturalCompare returns -1, 0 or +1 as the receiver sorts before, with
	// or after other in natural order.
	NaturalCompare(other V) int

	sealed()
}

// View is the type constraint naming the two built-in views. It is used as
// an explicit type argument to select how values are compared:
//
//	natural.Sort[natural.Text](names)
//	natural.SortByKey[natural.ASCII](paths, rawPath)
//
// The union lists exact types, so no other type can instantiate it.
type View interface {
	Text | ASCII

	sealed()
}

var (
	_ Sortable[Text]  = Text("")
	_ Sortable[ASCII] = ASCII(nil)
)

// NaturalCompare implements Sortable.
func (t Text) NaturalCompare(other Text) int {
	return Compare(t, other)
}

func (Text) sealed() {}

// NaturalCompare implements Sortable.
func (a ASCII) NaturalCompare(other ASCII) int {
	return Compare(a, other)
}

func (ASCII) sealed() {}
