// SPDX-License-Identifier: MIT

// Command matbench runs the repeated dense integer multiplication benchmark.
//
// Usage:
//
//	matbench <limit> <width> <height> [flags]
//
// It multiplies an all-ones height×width matrix by an all-ones width×height
// matrix limit times and verifies that every cell of the product equals width.
//
// Exit codes: 0 success, 1 usage, 2 verification failure, 3 allocation
// failure, 4 cross-check failure, 5 any other error.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}
