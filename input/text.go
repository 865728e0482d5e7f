package input

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// toUTF8 returns data transcoded to UTF-8 along with the name of the source
// charset. Valid UTF-8 is returned as is. Otherwise the hint is tried first,
// then the charset guessed by chardet. ok is false when no decoder produced
// valid UTF-8, in which case the original bytes are returned.
func toUTF8(data []byte, hint string) ([]byte, string, bool) {
	if utf8.Valid(data) {
		return data, "utf-8", true
	}

	if hint != "" {
		if decoded, ok := decodeAs(data, hint); ok {
			return decoded, hint, true
		}
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return data, "", false
	}

	if decoded, ok := decodeAs(data, best.Charset); ok {
		return decoded, best.Charset, true
	}

	return data, best.Charset, false
}

func decodeAs(data []byte, label string) ([]byte, bool) {
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, false
	}

	decoded, err := io.ReadAll(r)
	if err != nil || !utf8.Valid(decoded) {
		return nil, false
	}

	return decoded, true
}
