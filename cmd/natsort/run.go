package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/amp-labs/natural/compare"
	"github.com/amp-labs/natural/errors"
	"github.com/amp-labs/natural/input"
	"github.com/amp-labs/natural/logger"
	"github.com/amp-labs/natural/natural"
	"github.com/amp-labs/natural/set"
	"github.com/spf13/cobra"
)

func run(ctx context.Context, cmd *cobra.Command, opts *options, paths []string) error {
	compression, err := input.ParseCompression(opts.decompress)
	if err != nil {
		return err
	}

	sources, _, err := input.ReadAll(ctx, paths, input.Options{
		ZeroTerminated: opts.zero,
		MaxLineSize:    opts.maxLine,
		Compression:    compression,
		Raw:            opts.viewForced && opts.view == viewASCII,
		Charset:        opts.charset,
		Normalize:      opts.normalize,
		Stdin:          cmd.InOrStdin(),
		Workers:        opts.workers,
	})
	if err != nil {
		return err
	}

	lines, asciiOnly := input.Lines(sources)

	view := opts.view
	if asciiOnly && !opts.viewForced {
		logger.Get(ctx).Info("input is not valid text, comparing bytes", "view", viewASCII)

		view = viewASCII
	}

	var result iter.Seq[string]

	switch view {
	case viewText:
		result, err = process[natural.Text](lines, opts)
	case viewASCII:
		result, err = process[natural.ASCII](lines, opts)
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownView, view)
	}

	if err != nil || result == nil {
		return err
	}

	return write(cmd, opts, result)
}

// process sorts, deduplicates or checks lines. In check mode the returned
// sequence is nil.
func process[V natural.View](lines []string, opts *options) (iter.Seq[string], error) {
	key := fieldKey(opts.field, opts.separator)

	cmp := compare.By(key, natural.Func[V, string]())
	if opts.reverse {
		cmp = compare.Reverse(cmp)
	}

	switch {
	case opts.check:
		return nil, check[V](lines, key, cmp, opts)
	case opts.unique:
		return unique[V](lines, key, opts.reverse), nil
	}

	switch {
	case opts.reverse && opts.stable:
		slices.SortStableFunc(lines, cmp)
	case opts.reverse:
		slices.SortFunc(lines, cmp)
	case opts.field == 0 && opts.stable:
		natural.Sort[V](lines)
	case opts.field == 0:
		natural.SortUnstable[V](lines)
	case opts.stable:
		natural.SortByCachedKey[V](lines, key)
	default:
		natural.SortUnstableByKey[V](lines, key)
	}

	return slices.Values(lines), nil
}

func check[V natural.View](lines []string, key func(string) string, cmp compare.Comparator[string], opts *options) error {
	var sorted bool

	switch {
	case opts.reverse:
		sorted = slices.IsSortedFunc(lines, cmp)
	case opts.field == 0:
		sorted = natural.IsSorted[V](lines)
	default:
		sorted = natural.IsSortedByKey[V](lines, key)
	}

	if sorted && !opts.unique {
		return nil
	}

	for i := 1; i < len(lines); i++ {
		if opts.unique && cmp(lines[i-1], lines[i]) == 0 {
			return fmt.Errorf("%w: line %d: duplicate %q", errors.ErrNotSorted, i+1, lines[i])
		}

		if cmp(lines[i-1], lines[i]) > 0 {
			return fmt.Errorf("%w: line %d: %q", errors.ErrNotSorted, i+1, lines[i])
		}
	}

	return nil
}

// line is a line keyed by its natural sort key, so the ordered set treats
// lines with naturally equal keys as duplicates.
type line[V natural.View] struct {
	text string
	key  natural.Natural[string, V]
}

func (l line[V]) Equals(other line[V]) bool { return l.key.Equals(other.key) }
func (l line[V]) LessThan(other line[V]) bool { return l.key.LessThan(other.key) }

// unique keeps the first line of every group of naturally equal keys, in
// sorted order.
func unique[V natural.View](lines []string, key func(string) string, reverse bool) iter.Seq[string] {
	seen := set.NewRedBlackTreeSet[line[V]]()

	for _, text := range lines {
		seen.Add(line[V]{text: text, key: natural.New[V](key(text))})
	}

	entries := seen.Seq()
	if reverse {
		entries = seen.Backward()
	}

	return func(yield func(string) bool) {
		for l := range entries {
			if !yield(l.text) {
				return
			}
		}
	}
}

// fieldKey returns the function extracting the sort key of a line: the whole
// line for field 0, otherwise the 1-based field split on sep, or on runs of
// blanks when sep is empty. Missing fields are empty keys.
func fieldKey(field int, sep string) func(string) string {
	if field == 0 {
		return func(s string) string { return s }
	}

	return func(s string) string {
		var fields []string
		if sep == "" {
			fields = strings.Fields(s)
		} else {
			fields = strings.Split(s, sep)
		}

		if field > len(fields) {
			return ""
		}

		return fields[field-1]
	}
}

func write(cmd *cobra.Command, opts *options, lines iter.Seq[string]) (err error) {
	var out io.Writer = cmd.OutOrStdout()

	if opts.output != "" && opts.output != input.Stdin {
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return createErr
		}

		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()

		out = f
	}

	terminator := byte('\n')
	if opts.zero {
		terminator = 0
	}

	w := bufio.NewWriter(out)

	for l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return err
		}

		if err := w.WriteByte(terminator); err != nil {
			return err
		}
	}

	return w.Flush()
}
