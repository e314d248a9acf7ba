// SPDX-License-Identifier: MIT

package bench

import "github.com/katalvlaran/matbench/matrix"

// Verify scans c in row-major order (y outer, x inner) and returns a
// *VerificationError for the first cell that is not exactly expected.
// For all-ones operands every cell of the product equals the shared
// dimension, so the harness passes width.
//
// Errors:
//   - *VerificationError (matches ErrVerification) on the first mismatch.
//   - matrix.ErrNilMatrix / matrix.ErrReleased (wrapped with "Verify") when c is unusable.
func Verify(c *matrix.Dense, expected int) error {
	if err := matrix.ValidateLive(c); err != nil {
		return benchErrorf(opVerify, err)
	}

	var mismatch *VerificationError
	c.Do(func(x, y, v int) bool {
		if v != expected {
			mismatch = &VerificationError{Value: v, Expected: expected, X: x, Y: y}
			return false
		}
		return true
	})
	if mismatch != nil {
		return mismatch
	}

	return nil
}
