package input

import (
	"bufio"
	"context"
	"io"
	"os"
)

// Stdin is the path that Open maps to standard input.
const Stdin = "-"

type stream struct {
	io.Reader
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context //nolint:containedctx
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}

// Open opens path for reading and transparently decompresses it. Path "-"
// reads standard input. With Auto the format is detected from the first
// bytes of the stream, then from the file extension. The returned
// Compression is the format that was applied.
func Open(ctx context.Context, path string, kind Compression) (io.ReadCloser, Compression, error) {
	return open(ctx, path, os.Stdin, kind)
}

func open(ctx context.Context, path string, stdin io.Reader, kind Compression) (io.ReadCloser, Compression, error) {
	if err := ctx.Err(); err != nil {
		return nil, None, err
	}

	out := &stream{}

	var raw io.Reader

	if path == Stdin {
		raw = stdin
	} else {
		f, err := os.Open(path) // #nosec G304 -- reading user named inputs is the point
		if err != nil {
			return nil, None, err
		}

		out.closers = append(out.closers, f)
		raw = f
	}

	buffered := bufio.NewReader(&ctxReader{ctx: ctx, r: raw})

	if kind == Auto || kind == "" {
		// A short stream yields fewer bytes and an error we can ignore here;
		// the real read reports it again.
		head, _ := buffered.Peek(magicLen)
		kind = detect(head, path)
	}

	r, closer, err := decompress(buffered, kind)
	if err != nil {
		_ = out.Close()

		return nil, None, err
	}

	if closer != nil {
		out.closers = append(out.closers, closer)
	}

	out.Reader = r

	return out, kind, nil
}
