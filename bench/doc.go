// SPDX-License-Identifier: MIT

// Package bench runs the repeated dense integer multiplication benchmark
// with built-in self-verification.
//
// Run allocates two all-ones operands, A (height×width) and B (width×height),
// multiplies them limit times into a freshly reset height×height buffer C,
// and then checks once that every cell of C equals width, the shared
// contraction length. A mismatch is reported as a *VerificationError carrying
// the first offending coordinates (row-major scan) and value.
//
// With limit == 0 no pass runs and verification is skipped; that is a success.
//
// The harness is single-threaded and synchronous; limit is its only
// termination control.
//
// Typical use:
//
//	rep, err := bench.Run(5, 4, 4, bench.WithLogger(logger))
//	var verr *bench.VerificationError
//	if errors.As(err, &verr) {
//		fmt.Println(verr) // "<value> - error at <x> x <y>"
//	}
package bench
