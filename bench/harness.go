// SPDX-License-Identifier: MIT
// Package bench - repeated multiplication harness.
//
// Purpose:
//   - Allocate A (height×width), B (width×height) and C (height×height).
//   - Fill A and B with ones, then run limit passes of Reset(C) + kernel(A, B, C).
//   - Verify C once after the last pass (only when limit > 0).
//
// Ownership:
//   - The three buffers belong to Run for its whole duration and are released
//     on every return path. Hooks and checkers must not retain them.

package bench

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matbench/internal/hostinfo"
	"github.com/katalvlaran/matbench/matrix"
)

// shape is a rows×cols request.
type shape struct{ rows, cols int }

// Run executes the benchmark: limit passes of the kernel over all-ones
// operands, followed by a single verification that every cell of C equals width.
//
// Implementation:
//   - Stage 1: validate limit ≥ 0; check the memory budget; allocate A, B, C.
//   - Stage 2: fill A and B with 1.
//   - Stage 3: repeat limit times: Reset(C), kernel(A, B, C), record the pass time.
//   - Stage 4: if limit > 0, Verify(C, width), then the optional Checker.
//
// Returns:
//   - *Report: nil on usage/allocation failure; otherwise populated, also when
//     a kernel, verification or checker error is returned alongside it.
//
// Errors:
//   - ErrUsage (negative limit).
//   - matrix.ErrAllocation joined with its cause (invalid dimensions, overflow, memory).
//   - kernel errors such as matrix.ErrDimensionMismatch (wrapped with "Run").
//   - *VerificationError (matches ErrVerification).
//   - checker errors (wrapped with "Check").
//
// Complexity:
//   - Time O(limit*height²*width), Space O(height*width + height² + MaxSamples).
func Run(limit, width, height int, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	log := o.logger.With("limit", limit, "width", width, "height", height)

	if limit < 0 {
		return nil, benchErrorf(opRun, UsageErrorf("limit must be >= 0, got %d", limit))
	}

	shapes := [...]shape{
		{height, width},  // A
		{width, height},  // B
		{height, height}, // C
	}
	if err := checkBudget(shapes[:], o.memLimit); err != nil {
		log.Error("allocation refused", "err", err)
		return nil, benchErrorf(opRun, err)
	}

	var bufs [len(shapes)]*matrix.Dense
	defer func() {
		for _, m := range bufs {
			if m != nil {
				m.Release()
			}
		}
	}()
	for i, s := range shapes {
		m, err := matrix.NewDense(s.rows, s.cols)
		if err != nil {
			log.Error("allocation failed", "err", err)
			return nil, benchErrorf(opRun, err)
		}
		bufs[i] = m
	}
	a, b, c := bufs[0], bufs[1], bufs[2]

	a.Fill(1)
	b.Fill(1)

	rep := newReport(limit, width, height)
	if o.hostInfo {
		info := hostinfo.Detect()
		rep.Host = &info
	}

	for pass := 0; pass < limit; pass++ {
		start := o.clock()
		c.Reset()
		if err := o.kernel(a, b, c); err != nil {
			rep.finalize()
			log.Error("kernel failed", "pass", pass, "err", err)
			return rep, benchErrorf(opRun, fmt.Errorf("pass %d: %w", pass, err))
		}
		elapsed := o.clock().Sub(start)
		rep.record(elapsed)
		log.Debug("pass done", "pass", pass, "elapsed", elapsed)

		if o.onPass != nil {
			o.onPass(pass, c)
		}
	}
	rep.finalize()

	if limit == 0 {
		log.Info("no passes requested, verification skipped")
		return rep, nil
	}

	if err := Verify(c, width); err != nil {
		log.Error("verification failed", "err", err)
		return rep, err
	}
	rep.Verified = true

	if o.checker != nil {
		if err := o.checker(a, b, c); err != nil {
			log.Error("check failed", "err", err)
			return rep, benchErrorf(opCheck, err)
		}
	}

	log.Info("benchmark verified",
		"passes", rep.Summary.Count,
		"total_s", rep.Summary.Total,
		"macs_per_second", rep.MACsPerSecond)

	return rep, nil
}

// checkBudget sums the footprints of all shapes and refuses the run when the
// total overflows or exceeds limit (limit == 0 means unlimited). Nothing is allocated.
func checkBudget(shapes []shape, limit int64) error {
	var total int64
	for _, s := range shapes {
		n, err := matrix.Footprint(s.rows, s.cols)
		if err != nil {
			return err
		}
		if total > math.MaxInt64-n {
			return fmt.Errorf("combined size: %w: %w", matrix.ErrAllocation, matrix.ErrSizeOverflow)
		}
		total += n
	}
	if limit > 0 && total > limit {
		return fmt.Errorf("%d bytes exceeds budget of %d: %w: %w",
			total, limit, matrix.ErrAllocation, matrix.ErrOutOfMemory)
	}

	return nil
}
