package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/amp-labs/natural/envutil"
	"github.com/amp-labs/natural/errors"
	"github.com/amp-labs/natural/input"
	"github.com/amp-labs/natural/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	viewText  = "text"
	viewASCII = "ascii"

	envPrefix = "NATSORT_"
)

type options struct {
	view       string
	stable     bool
	reverse    bool
	unique     bool
	field      int
	separator  string
	zero       bool
	normalize  bool
	check      bool
	configPath string
	output     string
	verbose    bool
	decompress string
	charset    string
	maxLine    int
	workers    int

	// viewForced is set when the view came from a flag, the environment or
	// the config file rather than the default.
	viewForced bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "natsort [flags] [file...]",
		Short: "Sort lines in natural order",
		Long: `Sort lines so that runs of digits compare by numeric value:
file2.txt sorts before file10.txt. Every other byte compares by its value.

Flags can also be set through NATSORT_<FLAG> environment variables
(for example NATSORT_REVERSE=true) or through the env map of a YAML or
JSON file given with --config. Flags win over the environment, which wins
over the config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := resolve(cmd.Context(), cmd.Flags(), opts)
			if err != nil {
				return err
			}

			logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			if opts.verbose {
				logOpts = append(logOpts, logger.WithMinLevel(slog.LevelDebug))
			}

			log, err := logger.ConfigureLogging(ctx, "natsort", logOpts...)
			if err != nil {
				return err
			}

			ctx = logger.WithLogger(ctx, log)

			if len(args) == 0 {
				args = []string{input.Stdin}
			}

			if err := run(ctx, cmd, opts, args); err != nil {
				log.Error("natsort failed", "error", err)

				return &loggedError{err: err}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.view, "view", viewText, "comparison view: text or ascii")
	flags.BoolVar(&opts.stable, "stable", true, "keep equal lines in input order")
	flags.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the result of comparisons")
	flags.BoolVarP(&opts.unique, "unique", "u", false, "output only the first of naturally equal lines")
	flags.IntVarP(&opts.field, "field", "k", 0, "sort by the N-th field (1-based), 0 for the whole line")
	flags.StringVarP(&opts.separator, "separator", "t", "", "field separator, runs of blanks when empty")
	flags.BoolVarP(&opts.zero, "zero-terminated", "z", false, "lines end with NUL, not newline")
	flags.BoolVar(&opts.normalize, "normalize", false, "normalize lines to Unicode NFC before sorting")
	flags.BoolVarP(&opts.check, "check", "c", false, "check whether the input is sorted, do not sort")
	flags.StringVar(&opts.configPath, "config", "", "YAML or JSON file with an env map of NATSORT_ settings")
	flags.StringVarP(&opts.output, "output", "o", "", "write the result to this file instead of stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	flags.StringVar(&opts.decompress, "decompress", string(input.Auto),
		"input compression: auto, none, gzip, zstd, lz4, snappy or brotli")
	flags.StringVar(&opts.charset, "charset", "", "charset to try for non UTF-8 input before detection")
	flags.IntVar(&opts.maxLine, "max-line-size", input.DefaultMaxLineSize, "longest accepted line in bytes")
	flags.IntVar(&opts.workers, "workers", 0, "inputs read concurrently, 0 for GOMAXPROCS")

	return cmd
}

// loggedError marks a failure that was already reported through the
// configured logger, together with any attributes annotated on it.
type loggedError struct {
	err error
}

func (l *loggedError) Error() string { return l.err.Error() }
func (l *loggedError) Unwrap() error { return l.err }

// envKey maps a flag name to its environment variable, e.g. "max-line-size"
// to NATSORT_MAX_LINE_SIZE.
func envKey(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// resolve fills in every flag the user did not set from the environment and
// the config file, then validates the result. The returned context carries
// the config file values for later envutil lookups.
func resolve(ctx context.Context, flags *pflag.FlagSet, opts *options) (context.Context, error) {
	if !flags.Changed("config") {
		opts.configPath = envutil.String(ctx, envKey("config")).ValueOrElse("")
	}

	if opts.configPath != "" {
		vars, err := envutil.LoadEnvFile(opts.configPath)
		if err != nil {
			return ctx, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}

		ctx = envutil.WithFallbacks(ctx, vars)
	}

	var errs errors.Collection

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}

		val, err := envutil.String(ctx, envKey(f.Name)).Value()
		if err != nil {
			return
		}

		if err := flags.Set(f.Name, val); err != nil {
			errs.AddFor(envKey(f.Name), fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err))
		}
	})

	if errs.HasError() {
		return ctx, errs.GetError()
	}

	opts.view = strings.ToLower(opts.view)
	opts.viewForced = flags.Changed("view")

	if opts.view != viewText && opts.view != viewASCII {
		return ctx, fmt.Errorf("%w: %q", errors.ErrUnknownView, opts.view)
	}

	if opts.field < 0 {
		return ctx, fmt.Errorf("%w: %d", errors.ErrInvalidField, opts.field)
	}

	return ctx, nil
}
