package natural

// Bytes is the set of byte spans the comparator accepts: anything whose
// underlying type is a string or a byte slice.
type Bytes interface {
	~string | ~[]byte
}

// Compare returns the natural sort order of a and b: -1 if a sorts before b,
// 0 if they are equivalent and +1 if a sorts after b.
//
// Both spans are scanned in lock-step. When both current bytes are ASCII
// digits, the maximal digit runs starting there are compared by magnitude
// (leading zeros ignored, then by number of significant digits, then digit by
// digit). Any other pair of bytes is compared by ordinal value, so a digit
// against a letter is decided by their raw byte values. Once either span runs
// out, the shorter remainder sorts first.
//
// Compare never allocates and accepts any input, including empty spans and
// bytes outside of the ASCII range.
func Compare[S Bytes](a, b S) int {
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		if isDigit(ca) && isDigit(cb) {
			var ord int

			ord, i, j = compareDigits(a, b, i, j)
			if ord != 0 {
				return ord
			}

			continue
		}

		i++
		j++

		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}

	return compareLen(len(a)-i, len(b)-j)
}

// Less reports whether a sorts strictly before b in natural order.
func Less[S Bytes](a, b S) bool {
	return Compare(a, b) < 0
}

// CompareStrings is Compare specialized to strings, handy as a
// func(a, b string) int value.
func CompareStrings(a, b string) int {
	return Compare(a, b)
}

// CompareBytes is Compare specialized to byte slices, handy as a
// func(a, b []byte) int value.
func CompareBytes(a, b []byte) int {
	return Compare(a, b)
}

// compareDigits compares the digit runs starting at a[i] and b[j] and returns
// the result together with the positions just past each run.
func compareDigits[S Bytes](a, b S, i, j int) (int, int, int) {
	aStart, aEnd := digitRun(a, i)
	bStart, bEnd := digitRun(b, j)

	if ord := compareLen(aEnd-aStart, bEnd-bStart); ord != 0 {
		return ord, aEnd, bEnd
	}

	// Same number of significant digits: lexical order is numeric order.
	for k := 0; k < aEnd-aStart; k++ {
		da, db := a[aStart+k], b[bStart+k]

		switch {
		case da < db:
			return -1, aEnd, bEnd
		case da > db:
			return 1, aEnd, bEnd
		}
	}

	return 0, aEnd, bEnd
}

// digitRun returns the bounds of the significant digits of the run starting
// at s[pos]: start skips the leading zeros, end is one past the last digit.
// A run made only of zeros yields start == end.
func digitRun[S Bytes](s S, pos int) (int, int) {
	start := pos
	for start < len(s) && s[start] == '0' {
		start++
	}

	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}

	return start, end
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func compareLen(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
