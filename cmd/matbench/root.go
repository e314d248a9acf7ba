// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/internal/oracle"
	"github.com/katalvlaran/matbench/matrix"
)

// Process exit codes.
const (
	exitOK           = 0
	exitUsage        = 1
	exitVerification = 2
	exitAllocation   = 3
	exitCrossCheck   = 4
	exitFailure      = 5
)

// envLogLevel seeds the --log-level default.
const envLogLevel = "MATBENCH_LOG_LEVEL"

const defaultLogLevel = "warn"

// config holds the parsed flags.
type config struct {
	format     string
	quiet      bool
	crossCheck bool
	maxMemory  int64
	logLevel   string
	noHost     bool
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cmd := newRootCmd(stdout, stderr, getenv)
	if args == nil {
		// cobra falls back to os.Args on a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	code := exitCode(err)
	switch code {
	case exitOK, exitVerification:
		// The verification line is already on stdout.
	case exitUsage:
		fmt.Fprintf(stderr, "matbench: %v\n\n%s", err, cmd.UsageString())
	default:
		fmt.Fprintf(stderr, "matbench: %v\n", err)
	}

	return code
}

// exitCode maps the error taxonomy onto process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, bench.ErrUsage):
		return exitUsage
	case errors.Is(err, bench.ErrVerification):
		return exitVerification
	case errors.Is(err, matrix.ErrAllocation):
		return exitAllocation
	case errors.Is(err, oracle.ErrMismatch), errors.Is(err, oracle.ErrInexact):
		return exitCrossCheck
	default:
		return exitFailure
	}
}

// newRootCmd builds the cobra command. Writers and the environment are
// injected so tests can drive it in-process.
func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	cfg := config{logLevel: defaultLogLevel}
	if lvl := getenv(envLogLevel); lvl != "" {
		cfg.logLevel = lvl
	}

	cmd := &cobra.Command{
		Use:   "matbench <limit> <width> <height>",
		Short: "Repeated dense integer matrix multiplication with self-verification",
		Long: `matbench multiplies an all-ones height×width matrix by an all-ones
width×height matrix <limit> times and checks that every cell of the
height×height product equals <width>. With <limit> 0 nothing is multiplied
and verification is skipped.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return bench.UsageErrorf("%v", err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, args, &cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return bench.UsageErrorf("%v", err)
	})

	f := cmd.Flags()
	f.StringVar(&cfg.format, "format", bench.FormatText.String(), "report format: text, json or yaml")
	f.BoolVarP(&cfg.quiet, "quiet", "q", false, "print nothing on success")
	f.BoolVar(&cfg.crossCheck, "cross-check", false, "recompute the final product with gonum and compare")
	f.Int64Var(&cfg.maxMemory, "max-memory", 0, "refuse runs whose buffers exceed this many bytes (0 = unlimited)")
	f.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level: debug, info, warn or error (env "+envLogLevel+")")
	f.BoolVar(&cfg.noHost, "no-host", false, "omit the host CPU snapshot from the report")

	return cmd
}

// parseDims converts the three positional arguments.
func parseDims(args []string) (limit, width, height int, err error) {
	names := [...]string{"limit", "width", "height"}
	var vals [3]int
	for i, a := range args {
		vals[i], err = strconv.Atoi(a)
		if err != nil {
			return 0, 0, 0, bench.UsageErrorf("%s: %q is not an integer", names[i], a)
		}
	}

	return vals[0], vals[1], vals[2], nil
}

// execute runs the benchmark with the parsed configuration.
func execute(cmd *cobra.Command, args []string, cfg *config, stdout, stderr io.Writer) error {
	limit, width, height, err := parseDims(args)
	if err != nil {
		return err
	}
	format, err := bench.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	var level slog.Level
	if err = level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return bench.UsageErrorf("log level %q: %v", cfg.logLevel, err)
	}
	if cfg.maxMemory < 0 {
		return bench.UsageErrorf("max-memory must be >= 0, got %d", cfg.maxMemory)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	opts := []bench.Option{
		bench.WithLogger(logger),
		bench.WithMemoryLimit(cfg.maxMemory),
		bench.WithHostInfo(!cfg.noHost),
	}
	if cfg.crossCheck {
		opts = append(opts, bench.WithChecker(oracle.Check))
	}

	rep, err := bench.Run(limit, width, height, opts...)
	var verr *bench.VerificationError
	if errors.As(err, &verr) {
		fmt.Fprintln(stdout, verr)
		return err
	}
	if err != nil {
		return err
	}
	if cfg.quiet {
		return nil
	}

	return rep.Encode(cmd.OutOrStdout(), format)
}
