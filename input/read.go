// Package input loads the lines that natsort sorts: files or standard
// input, optionally compressed, in any charset chardet can recognize.
package input

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/natural/errors"
	"github.com/amp-labs/natural/logger"
	"go.uber.org/atomic"
	"golang.org/x/text/unicode/norm"
)

// Options controls how sources are read.
type Options struct {
	// ZeroTerminated splits lines on NUL instead of '\n'.
	ZeroTerminated bool

	// MaxLineSize bounds a single line in bytes. Zero means DefaultMaxLineSize.
	MaxLineSize int

	// Compression forces a format. Zero or Auto detects it.
	Compression Compression

	// Raw skips charset detection. Non UTF-8 data is kept byte for byte and
	// the source is marked ASCIIOnly.
	Raw bool

	// Charset is tried before detection when the data is not UTF-8.
	Charset string

	// Normalize rewrites every line to Unicode NFC.
	Normalize bool

	// Stdin replaces os.Stdin for the path "-".
	Stdin io.Reader

	// Workers bounds how many sources ReadAll loads at once. Zero means
	// GOMAXPROCS.
	Workers int
}

// Source is one loaded input.
type Source struct {
	Name        string
	Lines       []string
	Compression Compression

	// Charset is the detected source charset, "utf-8" for UTF-8 input.
	Charset string

	// ASCIIOnly is set when the data could not be decoded as text, so the
	// lines are raw bytes and should be compared byte for byte.
	ASCIIOnly bool
}

// Stats counts what ReadAll loaded. It is safe for concurrent use.
type Stats struct {
	Sources atomic.Int64
	Lines   atomic.Int64
	Bytes   atomic.Int64
}

// Read loads a single source.
func Read(ctx context.Context, path string, opts Options) (*Source, error) {
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	rc, kind, err := open(ctx, path, stdin, opts.Compression)
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path)
	}

	defer func() {
		_ = rc.Close()
	}()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, logger.AnnotateError(fmt.Errorf("reading %s stream: %w", kind, err), "path", path)
	}

	return decodeSource(ctx, path, kind, data, opts)
}

func decodeSource(ctx context.Context, path string, kind Compression, data []byte, opts Options) (*Source, error) {
	src := &Source{Name: path, Compression: kind, Charset: "utf-8"}

	if opts.Raw {
		if !utf8.Valid(data) {
			src.ASCIIOnly = true
			src.Charset = ""
		}
	} else {
		var ok bool

		data, src.Charset, ok = toUTF8(data, opts.Charset)
		src.ASCIIOnly = !ok
	}

	if src.Charset != "utf-8" || src.ASCIIOnly {
		logger.Get(ctx).Debug("input is not UTF-8",
			"path", path, "charset", src.Charset, "ascii_only", src.ASCIIOnly)
	}

	sep := byte('\n')
	if opts.ZeroTerminated {
		sep = 0
	}

	lines, err := splitLines(bytes.NewReader(data), sep, opts.MaxLineSize)
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path, "max_line_size", opts.MaxLineSize)
	}

	if opts.Normalize && !src.ASCIIOnly {
		for i, line := range lines {
			lines[i] = norm.NFC.String(line)
		}
	}

	src.Lines = lines

	return src, nil
}

// ReadAll loads every path concurrently and returns the sources in the order
// of paths. Failures are collected so one unreadable file does not hide
// problems with the others; on error the sources that did load are still
// returned, with nil in the failed slots.
func ReadAll(ctx context.Context, paths []string, opts Options) ([]*Source, *Stats, error) {
	stats := &Stats{}
	sources := make([]*Source, len(paths))
	failures := make([]error, len(paths))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool := pond.NewPool(workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for i, path := range paths {
		group.Submit(func() {
			src, err := Read(ctx, path, opts)
			if err != nil {
				failures[i] = err

				return
			}

			sources[i] = src

			stats.Sources.Inc()
			stats.Lines.Add(int64(len(src.Lines)))

			for _, line := range src.Lines {
				stats.Bytes.Add(int64(len(line)))
			}
		})
	}

	if err := group.Wait(); err != nil {
		return sources, stats, err
	}

	var errs errors.Collection

	for i, err := range failures {
		errs.AddFor(paths[i], err)
	}

	logger.Get(ctx).Debug("inputs loaded",
		"sources", stats.Sources.Load(), "lines", stats.Lines.Load(), "bytes", stats.Bytes.Load())

	return sources, stats, errs.GetError()
}

// Lines concatenates the lines of all non-nil sources and reports whether any
// of them is ASCIIOnly.
func Lines(sources []*Source) ([]string, bool) {
	total := 0
	for _, src := range sources {
		if src != nil {
			total += len(src.Lines)
		}
	}

	out := make([]string, 0, total)
	asciiOnly := false

	for _, src := range sources {
		if src == nil {
			continue
		}

		out = append(out, src.Lines...)
		asciiOnly = asciiOnly || src.ASCIIOnly
	}

	return out, asciiOnly
}
