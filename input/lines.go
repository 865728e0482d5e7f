package input

import (
	"bufio"
	"bytes"
	"io"
)

// DefaultMaxLineSize is the longest line accepted unless Options says
// otherwise.
const DefaultMaxLineSize = 1 << 20

// splitOn returns a bufio.SplitFunc that cuts tokens at sep. A final token
// without a trailing separator is still returned. With '\n' a trailing '\r'
// is dropped so CRLF input splits like LF input.
func splitOn(sep byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}

		if i := bytes.IndexByte(data, sep); i >= 0 {
			return i + 1, trimCR(data[:i], sep), nil
		}

		if atEOF {
			return len(data), trimCR(data, sep), nil
		}

		return 0, nil, nil
	}
}

func trimCR(token []byte, sep byte) []byte {
	if sep == '\n' && len(token) > 0 && token[len(token)-1] == '\r' {
		return token[:len(token)-1]
	}

	return token
}

// splitLines cuts r into lines separated by sep, rejecting any line longer
// than maxLine bytes with bufio.ErrTooLong.
func splitLines(r io.Reader, sep byte, maxLine int) ([]string, error) {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(maxLine, 64*1024)), maxLine)
	scanner.Split(splitOn(sep))

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
