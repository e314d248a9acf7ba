// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer buffer and the multiplication
// kernel used by the benchmark harness.
//
// The matrix package provides:
//
//   - Dense, a contiguous row-major buffer where cell (x, y) (column, row)
//     lives at offset y*cols + x. The stride is fixed at allocation.
//   - MulInto, an accumulate-only kernel (out += a×b) with a fixed
//     row → contraction → column loop order.
//   - Central validators and sentinel errors (ErrAllocation,
//     ErrDimensionMismatch, ErrOutOfRange, ...) matched with errors.Is.
//
// Buffers are not safe for concurrent use; each one is expected to have a
// single owner for its whole lifetime.
package matrix
