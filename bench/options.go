// SPDX-License-Identifier: MIT
// Package bench - functional options for Run.
//
// Purpose:
//   - Single source of truth for harness defaults.
//   - Option constructors panic only on nonsensical values (programmer error);
//     Run itself never panics on user input.

package bench

import (
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMemoryLimit disables the memory budget (0 = unlimited).
	DefaultMemoryLimit int64 = 0

	// DefaultHostInfo controls whether Report.Host is populated.
	DefaultHostInfo = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilKernel        = "bench: WithKernel: kernel must be non-nil"
	panicNilLogger        = "bench: WithLogger: logger must be non-nil"
	panicNilClock         = "bench: WithClock: clock must be non-nil"
	panicNegativeMemLimit = "bench: WithMemoryLimit: limit must be >= 0"
)

// PassHook observes the output buffer right after pass number pass (0-based)
// finished and before the next reset. The buffer must not be retained.
type PassHook func(pass int, c *matrix.Dense)

// Checker runs after a passing verification, while a, b and c are still
// owned by the harness. A non-nil error fails the run.
type Checker func(a, b, c *matrix.Dense) error

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	kernel   matrix.Kernel
	logger   *slog.Logger
	memLimit int64
	onPass   PassHook
	checker  Checker
	hostInfo bool
	clock    func() time.Time
}

// WithKernel replaces the multiplication kernel (default matrix.MulInto).
// Panics on nil.
func WithKernel(k matrix.Kernel) Option {
	if k == nil {
		panic(panicNilKernel)
	}

	return func(o *options) { o.kernel = k }
}

// WithLogger routes harness logs to l (default: discarded). Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithMemoryLimit caps the combined size in bytes of the three buffers.
// Zero disables the cap. Panics on negative values.
func WithMemoryLimit(bytes int64) Option {
	if bytes < 0 {
		panic(panicNegativeMemLimit)
	}

	return func(o *options) { o.memLimit = bytes }
}

// WithOnPass installs a hook called after every pass. A nil hook removes it.
func WithOnPass(h PassHook) Option {
	return func(o *options) { o.onPass = h }
}

// WithChecker installs an extra correctness check run after Verify succeeds.
// A nil checker removes it.
func WithChecker(c Checker) Option {
	return func(o *options) { o.checker = c }
}

// WithHostInfo toggles the host snapshot in Report.Host.
func WithHostInfo(enabled bool) Option {
	return func(o *options) { o.hostInfo = enabled }
}

// WithClock replaces the time source used for per-pass samples. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicNilClock)
	}

	return func(o *options) { o.clock = now }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		kernel:   matrix.MulInto,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		memLimit: DefaultMemoryLimit,
		hostInfo: DefaultHostInfo,
		clock:    time.Now,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
