// SPDX-License-Identifier: MIT

package bench_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

func mustFilled(t *testing.T, rows, cols, v int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	m.Fill(v)

	return m
}

func TestVerifyPass(t *testing.T) {
	require.NoError(t, bench.Verify(mustFilled(t, 3, 3, 4), 4))
}

// TestVerifyFirstMismatchRowMajor plants several bad cells and expects the
// first in y-then-x order to be reported.
func TestVerifyFirstMismatchRowMajor(t *testing.T) {
	c := mustFilled(t, 4, 4, 2)
	require.NoError(t, c.Set(3, 2, 9)) // later row
	require.NoError(t, c.Set(2, 1, 7)) // first row with a defect, x=2
	require.NoError(t, c.Set(3, 1, 8)) // same row, larger x

	err := bench.Verify(c, 2)
	var verr *bench.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, 7, verr.Value)
	require.Equal(t, 2, verr.Expected)
	require.Equal(t, 2, verr.X)
	require.Equal(t, 1, verr.Y)
	require.Equal(t, "7 - error at 2 x 1", verr.Error())
}

// TestVerifyExact ensures off-by-one values are never tolerated.
func TestVerifyExact(t *testing.T) {
	c := mustFilled(t, 1, 2, 5)
	require.NoError(t, c.Set(1, 0, 6))
	require.ErrorIs(t, bench.Verify(c, 5), bench.ErrVerification)
}

func TestVerifyUnusableBuffer(t *testing.T) {
	require.ErrorIs(t, bench.Verify(nil, 1), matrix.ErrNilMatrix)

	c := mustFilled(t, 2, 2, 1)
	c.Release()
	err := bench.Verify(c, 1)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.False(t, errors.Is(err, bench.ErrVerification))
}
