// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// naiveProduct is an independent i→j→k reference used to cross-check MulInto.
func naiveProduct(t *testing.T, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	out := MustDense(t, a.Rows(), b.Cols())
	for y := 0; y < a.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			sum := 0
			for k := 0; k < a.Cols(); k++ {
				sum += MustAt(t, a, k, y) * MustAt(t, b, x, k)
			}
			require.NoError(t, out.Set(x, y, sum))
		}
	}

	return out
}

// TestMulIntoKnownProduct multiplies a 2x3 by a 3x2 with hand-computed output.
func TestMulIntoKnownProduct(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []int{
		1, 2, 3,
		4, 5, 6,
	})
	b := NewFilledDense(t, 3, 2, []int{
		7, 8,
		9, 10,
		11, 12,
	})
	out := MustDense(t, 2, 2)

	require.NoError(t, matrix.MulInto(a, b, out))
	CompareExact(t, [][]int{
		{58, 64},
		{139, 154},
	}, out)
}

// TestMulIntoAllOnes checks the benchmark shapes: every cell equals the shared dimension.
func TestMulIntoAllOnes(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"1x1", 1, 1},
		{"w2h3", 2, 3},
		{"w5h2", 5, 2},
		{"w4h4", 4, 4},
		{"w1h9", 1, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := OnesDense(t, tc.height, tc.width)
			b := OnesDense(t, tc.width, tc.height)
			out := MustDense(t, tc.height, tc.height)

			require.NoError(t, matrix.MulInto(a, b, out))
			require.True(t, AllEqual(out, tc.width), "got\n%s", out)
		})
	}
}

// TestMulIntoAccumulates verifies the kernel adds into out instead of overwriting it.
func TestMulIntoAccumulates(t *testing.T) {
	a := OnesDense(t, 2, 3)
	b := OnesDense(t, 3, 2)
	out := MustDense(t, 2, 2)
	out.Fill(10)

	require.NoError(t, matrix.MulInto(a, b, out))
	require.True(t, AllEqual(out, 13))

	require.NoError(t, matrix.MulInto(a, b, out))
	require.True(t, AllEqual(out, 16))
}

// TestMulIntoResetIdempotent runs reset+multiply twice and expects identical results.
func TestMulIntoResetIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := MustDense(t, 4, 6)
	b := MustDense(t, 6, 4)
	a.Do(func(x, y, _ int) bool { require.NoError(t, a.Set(x, y, rng.Intn(19)-9)); return true })
	b.Do(func(x, y, _ int) bool { require.NoError(t, b.Set(x, y, rng.Intn(19)-9)); return true })
	out := MustDense(t, 4, 4)

	out.Reset()
	require.NoError(t, matrix.MulInto(a, b, out))
	first := out.Clone()

	out.Reset()
	require.NoError(t, matrix.MulInto(a, b, out))
	require.True(t, first.Equal(out), "first\n%s\nsecond\n%s", first, out)
}

// TestMulIntoMatchesNaive compares MulInto against an i→j→k reference on random data.
func TestMulIntoMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for trial := 0; trial < 20; trial++ {
		r, k, c := 1+rng.Intn(7), 1+rng.Intn(7), 1+rng.Intn(7)
		a := MustDense(t, r, k)
		b := MustDense(t, k, c)
		a.Do(func(x, y, _ int) bool { require.NoError(t, a.Set(x, y, rng.Intn(200)-100)); return true })
		b.Do(func(x, y, _ int) bool { require.NoError(t, b.Set(x, y, rng.Intn(200)-100)); return true })

		out := MustDense(t, r, c)
		require.NoError(t, matrix.MulInto(a, b, out))
		require.True(t, naiveProduct(t, a, b).Equal(out), "trial %d: %dx%d · %dx%d", trial, r, k, k, c)
	}
}

// TestMulIntoDimensionMismatch checks fail-fast validation and that out stays untouched.
func TestMulIntoDimensionMismatch(t *testing.T) {
	cases := []struct {
		name       string
		ar, ac     int
		br, bc     int
		outr, outc int
	}{
		{"inner", 2, 3, 4, 2, 2, 2},
		{"outRows", 2, 3, 3, 2, 3, 2},
		{"outCols", 2, 3, 3, 2, 2, 3},
		{"swappedRoles", 3, 2, 3, 2, 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := OnesDense(t, tc.ar, tc.ac)
			b := OnesDense(t, tc.br, tc.bc)
			out := MustDense(t, tc.outr, tc.outc)
			out.Fill(5)

			err := matrix.MulInto(a, b, out)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			require.Contains(t, err.Error(), "MulInto")
			require.True(t, AllEqual(out, 5), "out must be untouched on failure")
		})
	}
}

// TestMulIntoNilAndReleased checks the nil/released guards.
func TestMulIntoNilAndReleased(t *testing.T) {
	a := OnesDense(t, 2, 2)
	b := OnesDense(t, 2, 2)
	out := MustDense(t, 2, 2)

	require.ErrorIs(t, matrix.MulInto(nil, b, out), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.MulInto(a, nil, out), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.MulInto(a, b, nil), matrix.ErrNilMatrix)

	b.Release()
	require.ErrorIs(t, matrix.MulInto(a, b, out), matrix.ErrReleased)
}
