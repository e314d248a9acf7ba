// SPDX-License-Identifier: MIT

// Package oracle cross-checks integer products against gonum's float64 GEMM.
//
// The check is exact: it refuses operands whose products could exceed the
// 2^53 range in which float64 represents every integer.
package oracle

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matbench/matrix"
)

// maxExact is the largest magnitude below which every integer is a float64.
const maxExact = 1 << 53

var (
	// ErrMismatch indicates the integer product disagrees with the gonum product.
	ErrMismatch = errors.New("oracle: product mismatch")

	// ErrInexact indicates the operands are too large for an exact float64 check.
	ErrInexact = errors.New("oracle: operands exceed exact float64 range")
)

// toGonum copies m into a new *mat.Dense. gonum uses (row, col) indexing.
func toGonum(m *matrix.Dense) *mat.Dense {
	g := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.Do(func(x, y, v int) bool {
		g.Set(y, x, float64(v))
		return true
	})

	return g
}

// maxAbs returns the largest absolute cell value of m.
func maxAbs(m *matrix.Dense) float64 {
	var hi float64
	m.Do(func(_, _, v int) bool {
		f := float64(v)
		if f < 0 {
			f = -f
		}
		if f > hi {
			hi = f
		}
		return true
	})

	return hi
}

// Product returns a×b computed by gonum.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrReleased, matrix.ErrDimensionMismatch, ErrInexact.
func Product(a, b *matrix.Dense) (*mat.Dense, error) {
	for _, m := range [...]*matrix.Dense{a, b} {
		if err := matrix.ValidateLive(m); err != nil {
			return nil, fmt.Errorf("Product: %w", err)
		}
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Product: %w", matrix.ErrDimensionMismatch)
	}
	if maxAbs(a)*maxAbs(b)*float64(a.Cols()) >= maxExact {
		return nil, fmt.Errorf("Product: %w", ErrInexact)
	}

	var out mat.Dense
	out.Mul(toGonum(a), toGonum(b))

	return &out, nil
}

// Check recomputes a×b with gonum and compares it cell-by-cell with c,
// scanning rows first. It has the bench.Checker signature.
func Check(a, b, c *matrix.Dense) error {
	want, err := Product(a, b)
	if err != nil {
		return fmt.Errorf("Check: %w", err)
	}
	if err = matrix.ValidateShape(c, a.Rows(), b.Cols()); err != nil {
		return fmt.Errorf("Check: %w", err)
	}

	c.Do(func(x, y, v int) bool {
		if w := want.At(y, x); float64(v) != w {
			err = fmt.Errorf("cell (%d,%d): have %d, gonum %g: %w", x, y, v, w, ErrMismatch)
			return false
		}
		return true
	})

	return err
}
