// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with a
// call-site tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> allocation -> dimension mismatch -> index range.

var (
	// ErrAllocation is the umbrella for every failure to obtain a buffer.
	// NewDense always joins it with one of the specific causes below, so
	// errors.Is(err, ErrAllocation) and errors.Is(err, ErrSizeOverflow) both hold.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrSizeOverflow indicates that rows*cols (or its size in bytes) does not fit in int.
	ErrSizeOverflow = errors.New("matrix: size overflows int")

	// ErrOutOfMemory indicates the runtime refused the allocation or the
	// request exceeded the configured memory budget.
	ErrOutOfMemory = errors.New("matrix: cannot obtain memory")

	// ErrOutOfRange indicates that an index (column x or row y) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. MulInto
	// where a.Cols != b.Rows or out is not a.Rows × b.Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates use of a buffer after Release.
	ErrReleased = errors.New("matrix: buffer released")
)
