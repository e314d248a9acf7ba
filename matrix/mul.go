// SPDX-License-Identifier: MIT
// Package matrix - accumulate-into multiplication kernel.
//
// Purpose:
//   - out += a × b with a fixed row → contraction → column loop order.
//   - Fail fast on incompatible shapes instead of reading past a stride.
//
// Notes:
//   - The kernel never clears out; callers Reset it between passes.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMulInto = "MulInto"
)

// Kernel is the signature shared by multiplication kernels: accumulate a×b into out.
type Kernel func(a, b, out *Dense) error

// Compile-time assertion that MulInto satisfies Kernel.
var _ Kernel = MulInto

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulInto accumulates the product a×b into out: out[x,y] += Σ_i a[i,y]·b[x,i].
//
// Implementation:
//   - Stage 1: ValidateProductInto(a, b, out); out is untouched on failure.
//   - Stage 2: for each output row y, for each contraction index i, load a[i,y]
//     once and stream it across row i of b into row y of out.
//
// Inputs:
//   - a: r×k, b: k×c, out: r×c (already reset by the caller when a fresh product is wanted).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch (wrapped with "MulInto").
//
// Determinism:
//   - Fixed y → i → x order; the innermost loop walks both b and out contiguously.
//
// Complexity:
//   - Time O(r*k*c), Space O(1).
func MulInto(a, b, out *Dense) error {
	if err := ValidateProductInto(a, b, out); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	var (
		rows, inner, cols = a.r, a.c, b.c
		x, y, i           int
		rowA, rowB, rowO  int
		av                int
	)
	for y = 0; y < rows; y++ {
		rowA = y * inner
		rowO = y * cols
		for i = 0; i < inner; i++ {
			av = a.data[rowA+i]
			rowB = i * cols
			for x = 0; x < cols; x++ {
				out.data[rowO+x] += av * b.data[rowB+x]
			}
		}
	}

	return nil
}
