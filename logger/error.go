package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the error is
// logged through a logger built by ConfigureLoggingWithOptions, the pairs
// are emitted as attributes of the record.
//
//	return logger.AnnotateError(err, "path", path, "line", n)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Time{}, slog.LevelDebug, "", 0)
	r.Add(args...)

	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

// annotatedError is an error carrying structured attributes.
type annotatedError struct {
	err   error
	attrs []slog.Attr
}

func (a *annotatedError) Error() string { return a.err.Error() }
func (a *annotatedError) Unwrap() error { return a.err }

// annotatedHandler lifts the attributes of annotated errors onto the record.
type annotatedHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*annotatedHandler)(nil)

func (h *annotatedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *annotatedHandler) Handle(ctx context.Context, record slog.Record) error {
	var (
		attrs  []slog.Attr
		lifted []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		var ae *annotatedError

		if err, ok := attr.Value.Any().(error); ok && errors.As(err, &ae) {
			lifted = append(lifted, ae.attrs...)
		}

		attrs = append(attrs, attr)

		return true
	})

	if len(lifted) == 0 {
		return h.inner.Handle(ctx, record)
	}

	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	out.AddAttrs(attrs...)
	out.AddAttrs(lifted...)

	return h.inner.Handle(ctx, out)
}

func (h *annotatedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &annotatedHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *annotatedHandler) WithGroup(name string) slog.Handler {
	return &annotatedHandler{inner: h.inner.WithGroup(name)}
}
