package input

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/amp-labs/natural/errors"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression names a stream format understood by Open.
type Compression string

const (
	Auto   Compression = "auto"
	None   Compression = "none"
	Gzip   Compression = "gzip"
	Zstd   Compression = "zstd"
	LZ4    Compression = "lz4"
	Snappy Compression = "snappy"
	Brotli Compression = "brotli"
)

// ParseCompression maps a user supplied name, such as the value of a
// --decompress flag, to a Compression. The empty string means Auto.
func ParseCompression(name string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(name))); c {
	case "":
		return Auto, nil
	case Auto, None, Gzip, Zstd, LZ4, Snappy, Brotli:
		return c, nil
	case "gz":
		return Gzip, nil
	case "zst":
		return Zstd, nil
	case "br":
		return Brotli, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownCompression, name)
	}
}

var magics = []struct { //nolint:gochecknoglobals
	prefix []byte
	kind   Compression
}{
	{prefix: []byte{0x1f, 0x8b}, kind: Gzip},
	{prefix: []byte{0x28, 0xb5, 0x2f, 0xfd}, kind: Zstd},
	{prefix: []byte{0x04, 0x22, 0x4d, 0x18}, kind: LZ4},
	{prefix: []byte("\xff\x06\x00\x00sNaPpY"), kind: Snappy},
}

// magicLen is the longest prefix in magics.
const magicLen = 10

var extensions = map[string]Compression{ //nolint:gochecknoglobals
	".gz":   Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".lz4":  LZ4,
	".sz":   Snappy,
	".br":   Brotli,
}

// detect picks a compression from the leading bytes of the stream, falling
// back to the file extension. Brotli has no magic number and is only
// recognized by extension.
func detect(head []byte, name string) Compression {
	for _, m := range magics {
		if bytes.HasPrefix(head, m.prefix) {
			return m.kind
		}
	}

	if kind, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return kind
	}

	return None
}

// decompress wraps r in a reader for kind. The returned closer releases
// decoder resources and may be nil.
func decompress(r io.Reader, kind Compression) (io.Reader, io.Closer, error) {
	switch kind {
	case None:
		return r, nil, nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		return zr, zr, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}

		rc := zr.IOReadCloser()

		return rc, rc, nil
	case LZ4:
		return lz4.NewReader(r), nil, nil
	case Snappy:
		return snappy.NewReader(r), nil, nil
	case Brotli:
		return brotli.NewReader(r), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", errors.ErrUnknownCompression, kind)
	}
}
