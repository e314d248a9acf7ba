// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage indicates a malformed invocation: wrong argument count,
	// a non-integer argument or a negative repetition count.
	ErrUsage = errors.New("bench: usage")

	// ErrVerification is matched by every *VerificationError via errors.Is.
	ErrVerification = errors.New("bench: verification failed")
)

// Operation tags for error wrapping.
const (
	opRun    = "Run"
	opVerify = "Verify"
	opCheck  = "Check"
)

// benchErrorf wraps err with an operation tag, preserving it via %w.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// UsageErrorf formats a usage failure that matches ErrUsage.
func UsageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// VerificationError reports the first output cell that disagrees with the
// expected contraction length. X is the column, Y the row.
type VerificationError struct {
	Value    int
	Expected int
	X, Y     int
}

// Error renders the classic benchmark report line: "<value> - error at <x> x <y>".
func (e *VerificationError) Error() string {
	return fmt.Sprintf("%d - error at %d x %d", e.Value, e.X, e.Y)
}

// Is lets errors.Is(err, ErrVerification) match any *VerificationError.
func (e *VerificationError) Is(target error) bool {
	return target == ErrVerification
}
