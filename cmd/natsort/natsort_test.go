package main

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/natural/envutil"
	"github.com/amp-labs/natural/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The command configures the process-wide slog default, so these tests do not
// run in parallel.

func execute(ctx context.Context, t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	stdout, stderr, err := executeCapture(ctx, t, stdin, args...)

	if stderr != "" {
		t.Log(stderr)
	}

	return stdout, err
}

func executeCapture(ctx context.Context, t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestNatsort_Sorting(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name:  "digits by magnitude",
			stdin: lines("file11.txt", "file2.txt", "file1.txt"),
			want:  lines("file1.txt", "file2.txt", "file11.txt"),
		},
		{
			name:  "leading zeros",
			stdin: lines("file1.txt", "file1B.txt", "file00.txt", "file11.txt", "file0002.txt"),
			want:  lines("file00.txt", "file1.txt", "file1B.txt", "file0002.txt", "file11.txt"),
		},
		{
			name:  "ascii view",
			args:  []string{"--view", "ASCII"},
			stdin: lines("v10", "v9", "v1"),
			want:  lines("v1", "v9", "v10"),
		},
		{
			name:  "unstable",
			args:  []string{"--stable=false"},
			stdin: lines("x20", "x3", "x100"),
			want:  lines("x3", "x20", "x100"),
		},
		{
			name:  "reverse keeps equal lines in input order",
			args:  []string{"-r"},
			stdin: lines("a1", "a01", "b2", "a001"),
			want:  lines("b2", "a1", "a01", "a001"),
		},
		{
			name:  "unique keeps the first of naturally equal lines",
			args:  []string{"-u"},
			stdin: lines("a07b", "x", "a7b", "a0007b"),
			want:  lines("a07b", "x"),
		},
		{
			name:  "unique reversed",
			args:  []string{"-u", "-r"},
			stdin: lines("a7b", "a07b", "x"),
			want:  lines("x", "a7b"),
		},
		{
			name:  "field split on blanks",
			args:  []string{"-k", "2"},
			stdin: lines("z  item10", "y item9", "x\titem10b", "w"),
			want:  lines("w", "y item9", "z  item10", "x\titem10b"),
		},
		{
			name:  "field with separator",
			args:  []string{"-t", ",", "-k", "2"},
			stdin: lines("a,3", "b,20", "c,1"),
			want:  lines("c,1", "a,3", "b,20"),
		},
		{
			name:  "field reversed unstable",
			args:  []string{"-t", ",", "-k", "2", "-r", "--stable=false"},
			stdin: lines("a,3", "b,20", "c,1"),
			want:  lines("b,20", "a,3", "c,1"),
		},
		{
			name:  "unique by field",
			args:  []string{"-t", ":", "-k2", "-u"},
			stdin: lines("first:v2", "second:v02", "third:v1"),
			want:  lines("third:v1", "first:v2"),
		},
		{
			name:  "zero terminated",
			args:  []string{"-z"},
			stdin: "b10\x00b9\nb\x00",
			want:  "b9\nb\x00b10\x00",
		},
		{
			name:  "crlf input",
			stdin: "n10\r\nn9\r\n",
			want:  lines("n9", "n10"),
		},
		{
			name:  "empty input",
			stdin: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t.Context(), t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestNatsort_Check(t *testing.T) { //nolint:paralleltest
	_, err := execute(t.Context(), t, lines("a1", "a2", "a10"), "-c")
	require.NoError(t, err)

	_, err = execute(t.Context(), t, lines("a1", "a10", "a2"), "--check")
	require.ErrorIs(t, err, errors.ErrNotSorted)
	assert.Contains(t, err.Error(), "line 3")
	assert.Equal(t, exitDisorder, exitCode(err))

	_, err = execute(t.Context(), t, lines("a10", "a2", "a1"), "-c", "-r")
	require.NoError(t, err)

	_, err = execute(t.Context(), t, lines("a1", "a01", "a2"), "-c")
	require.NoError(t, err)

	_, err = execute(t.Context(), t, lines("a1", "a01", "a2"), "-c", "-u")
	require.ErrorIs(t, err, errors.ErrNotSorted)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = execute(t.Context(), t, lines("k,2", "j,10"), "-c", "-t", ",", "-k", "2")
	require.NoError(t, err)
}

func TestNatsort_Files(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	var gz bytes.Buffer

	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte(lines("img12.png", "img3.png")))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	first := filepath.Join(dir, "first.txt.gz")
	require.NoError(t, os.WriteFile(first, gz.Bytes(), 0o600))

	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(second, []byte(lines("img1.png", "img20.png")), 0o600))

	out, err := execute(t.Context(), t, lines("img7.png"), first, second, "-")
	require.NoError(t, err)
	assert.Equal(t, lines("img1.png", "img3.png", "img7.png", "img12.png", "img20.png"), out)

	target := filepath.Join(dir, "sorted.txt")
	out, err = execute(t.Context(), t, "", "-o", target, second, first)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, lines("img1.png", "img3.png", "img12.png", "img20.png"), string(written))

	_, err = execute(t.Context(), t, "", filepath.Join(dir, "missing.txt"), second)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, exitTrouble, exitCode(err))
}

func TestNatsort_RawBytes(t *testing.T) { //nolint:paralleltest
	latin1 := "caf\xe9 10\ncaf\xe9 9\n"

	out, err := execute(t.Context(), t, latin1, "--view", "ascii")
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9 9\ncaf\xe9 10\n", out)

	out, err = execute(t.Context(), t, latin1, "--charset", "latin1")
	require.NoError(t, err)
	assert.Equal(t, "café 9\ncafé 10\n", out)
}

func TestNatsort_Configuration(t *testing.T) { //nolint:paralleltest
	dir := t.TempDir()

	cfg := filepath.Join(dir, "natsort.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("env:\n  NATSORT_REVERSE: \"true\"\n  NATSORT_UNIQUE: \"true\"\n"), 0o600))

	input := lines("n1", "n01", "n2")

	out, err := execute(t.Context(), t, input, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, lines("n2", "n1"), out, "config file applies")

	out, err = execute(t.Context(), t, input, "--config", cfg, "--reverse=false")
	require.NoError(t, err)
	assert.Equal(t, lines("n1", "n2"), out, "flag beats config file")

	ctx := envutil.WithEnvOverride(t.Context(), "NATSORT_UNIQUE", "false")
	out, err = execute(ctx, t, input, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, lines("n2", "n1", "n01"), out, "environment beats config file")

	ctx = envutil.WithEnvOverride(t.Context(), "NATSORT_CONFIG", cfg)
	out, err = execute(ctx, t, input)
	require.NoError(t, err)
	assert.Equal(t, lines("n2", "n1"), out, "config path from the environment")
}

func TestNatsort_InvalidSettings(t *testing.T) { //nolint:paralleltest
	tests := []struct {
		name string
		ctx  func(context.Context) context.Context
		args []string
		want error
	}{
		{name: "unknown view", args: []string{"--view", "roman"}, want: errors.ErrUnknownView},
		{name: "negative field", args: []string{"--field=-1"}, want: errors.ErrInvalidField},
		{name: "unknown compression", args: []string{"--decompress", "rar"}, want: errors.ErrUnknownCompression},
		{name: "missing config", args: []string{"--config", "/nonexistent/natsort.yaml"}, want: errors.ErrInvalidConfig},
		{
			name: "bad environment value",
			ctx: func(ctx context.Context) context.Context {
				return envutil.WithEnvOverride(ctx, "NATSORT_FIELD", "second")
			},
			want: errors.ErrInvalidConfig,
		},
		{
			name: "unknown view from environment",
			ctx: func(ctx context.Context) context.Context {
				return envutil.WithEnvOverride(ctx, "NATSORT_VIEW", "utf16")
			},
			want: errors.ErrUnknownView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			if tt.ctx != nil {
				ctx = tt.ctx(ctx)
			}

			_, err := execute(ctx, t, lines("a"), tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, exitTrouble, exitCode(err))
		})
	}
}

func TestFieldKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", fieldKey(0, "")("a b"))
	assert.Equal(t, "b", fieldKey(2, "")("  a   b c"))
	assert.Empty(t, fieldKey(4, "")("a b c"))
	assert.Empty(t, fieldKey(2, ",")("a,,c"))
	assert.Equal(t, "c", fieldKey(3, ",")("a,,c"))
	assert.Equal(t, "b", fieldKey(2, "=")("a=b=c"))
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NATSORT_MAX_LINE_SIZE", envKey("max-line-size"))
	assert.Equal(t, "NATSORT_VIEW", envKey("view"))
}

func TestNatsort_ReportsAnnotatedFailures(t *testing.T) { //nolint:paralleltest
	_, stderr, err := executeCapture(t.Context(), t, "toolongline\n", "--max-line-size", "4", "-")
	require.ErrorIs(t, err, bufio.ErrTooLong)

	var logged *loggedError
	require.ErrorAs(t, err, &logged)

	assert.Contains(t, stderr, "natsort failed")
	assert.Contains(t, stderr, "max_line_size=4")
	assert.Contains(t, stderr, "path=-")

	_, stderr, err = executeCapture(t.Context(), t, lines("a"), "--view", "roman")
	require.ErrorIs(t, err, errors.ErrUnknownView)
	assert.NotErrorAs(t, err, &logged, "settings errors are printed by main")
	assert.Empty(t, stderr)
}
