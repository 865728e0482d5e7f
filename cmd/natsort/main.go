// Command natsort sorts lines in natural order: runs of digits compare by
// their numeric value, so "file2" sorts before "file10".
//
//	natsort [flags] [file...]
//
// With no files, or when a file is "-", standard input is read. Inputs may be
// gzip, zstd, lz4, snappy or brotli compressed and in any charset that can be
// detected; non UTF-8 data that cannot be decoded is compared byte for byte.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	natserrors "github.com/amp-labs/natural/errors"
)

const (
	exitDisorder = 1
	exitTrouble  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		// Failures before logging was configured have not been reported yet.
		var logged *loggedError
		if !errors.As(err, &logged) {
			_, _ = fmt.Fprintln(os.Stderr, "natsort:", err)
		}

		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, natserrors.ErrNotSorted) {
		return exitDisorder
	}

	return exitTrouble
}
