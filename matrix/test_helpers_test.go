// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for buffer/kernel tests.
//   • Keep fixtures row-major: vals[y*cols+x] is cell (x, y).

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matbench/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major slice of length r*c.
// Implementation:
//   - Stage 1: MustDense(r,c).
//   - Stage 2: Set(x, y, vals[y*c+x]) for every cell in row-major order.
//
// Errors:
//   - Fatal test failure on length mismatch or Set error.
func NewFilledDense(t testing.TB, r, c int, vals []int) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: len(vals)=%d, want %d", len(vals), r*c)
	}
	m := MustDense(t, r, c)
	for y := 0; y < r; y++ {
		for x := 0; x < c; x++ {
			if err := m.Set(x, y, vals[y*c+x]); err != nil {
				t.Fatalf("Set(%d,%d): %v", x, y, err)
			}
		}
	}

	return m
}

// OnesDense RETURNS an r×c buffer with every cell = 1.
func OnesDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	m.Fill(1)

	return m
}

// MustAt READS (x, y) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, x, y int) int {
	t.Helper()
	v, err := m.At(x, y)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", x, y, err)
	}

	return v
}

// CompareExact ASSERTS m equals want cell-by-cell; want is indexed [y][x].
func CompareExact(t testing.TB, want [][]int, m *matrix.Dense) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("rows: want %d, got %d", len(want), m.Rows())
	}
	for y := range want {
		if len(want[y]) != m.Cols() {
			t.Fatalf("row %d cols: want %d, got %d", y, len(want[y]), m.Cols())
		}
		for x := range want[y] {
			if got := MustAt(t, m, x, y); got != want[y][x] {
				t.Fatalf("cell (%d,%d): want %d, got %d", x, y, want[y][x], got)
			}
		}
	}
}

// AllEqual RETURNS whether every cell of m equals v.
func AllEqual(m *matrix.Dense, v int) bool {
	ok := true
	m.Do(func(_, _, got int) bool {
		ok = got == v
		return ok
	})

	return ok
}
