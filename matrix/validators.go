// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for buffer and shape checks.
//  - Keep kernels minimal by delegating nil/released/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLive ensures m is non-nil and not released.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateLive(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateLive", ErrNilMatrix)
	}
	if m.released {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateShape ensures m is live and exactly rows×cols.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
func ValidateShape(m *Dense, rows, cols int) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.r != rows || m.c != cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("have %dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is live and Rows == Cols.
func ValidateSquare(m *Dense) error {
	if err := ValidateLive(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateProductInto ensures out can receive a×b:
//   - a, b, out live;
//   - a.Cols == b.Rows (the shared contraction dimension);
//   - out is a.Rows × b.Cols.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateProductInto(a, b, out *Dense) error {
	for _, m := range [...]*Dense{a, b, out} {
		if err := ValidateLive(m); err != nil {
			return validatorErrorf("ValidateProductInto", err)
		}
	}
	if a.c != b.r {
		return validatorErrorf("ValidateProductInto",
			fmt.Errorf("a is %dx%d, b is %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	if out.r != a.r || out.c != b.c {
		return validatorErrorf("ValidateProductInto",
			fmt.Errorf("out is %dx%d, want %dx%d: %w", out.r, out.c, a.r, b.c, ErrDimensionMismatch))
	}

	return nil
}
