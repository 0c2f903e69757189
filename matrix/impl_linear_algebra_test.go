// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestMulSmall(t *testing.T) {
	a := MustDense(t, 2, 2, 1, 2, 3, 4)
	b := MustDense(t, 2, 2, 5, 6, 7, 8)
	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, []int{19, 22, 43, 50}, c.Data())

	rect := MustDense(t, 2, 3, 1.0, 2, 3, 4, 5, 6)
	col := MustDense(t, 3, 1, 1.0, 0, -1)
	rc, err := rect.Mul(col)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, rc.Data())

	_, err = rect.Mul(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = rect.Mul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulMatchesNaive(t *testing.T) {
	for _, shape := range [][3]int{{1, 1, 1}, {7, 5, 3}, {70, 53, 41}, {130, 129, 140}} {
		r, k, c := shape[0], shape[1], shape[2]
		t.Run(fmt.Sprintf("%dx%dx%d", r, k, c), func(t *testing.T) {
			a := randomDense(t, r, k, 11)
			b := randomDense(t, k, c, 12)
			want := naiveMul(t, a, b)

			got, err := a.Mul(b)
			require.NoError(t, err)
			require.Equal(t, want.Data(), got.Data())

			require.Equal(t, want.Data(), matrix.MulWithOptions_TestOnly(a, b, seqOpts...).Data())
			require.Equal(t, want.Data(), matrix.MulWithOptions_TestOnly(a, b, parOpts...).Data())
			withoutAccel(t, func() {
				require.Equal(t, want.Data(), matrix.MulWithOptions_TestOnly(a, b, parOpts...).Data())
			})
		})
	}
}

func TestMulIdentity(t *testing.T) {
	a := randomDense(t, 33, 33, 5)
	id, err := matrix.Identity[float64](33)
	require.NoError(t, err)
	got, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	got, err = id.Mul(a)
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	rect := randomDense(t, 33, 20, 6)
	got, err = id.Mul(rect)
	require.NoError(t, err)
	require.True(t, got.Equal(rect))
}

// randomIntDense fills a rows×cols matrix with integers in [-9, 9].
func randomIntDense(t *testing.T, rows, cols int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, rows*cols)
	for i := range data {
		data[i] = rng.Intn(19) - 9
	}

	return MustDense(t, rows, cols, data...)
}

func TestMulDistributesOverAdd(t *testing.T) {
	for _, opts := range [][]matrix.Option{seqOpts, parOpts} {
		a := randomIntDense(t, 37, 29, 1)
		b := randomIntDense(t, 37, 29, 2)
		c := randomIntDense(t, 29, 41, 3)

		sum, err := a.Add(b)
		require.NoError(t, err)
		left := matrix.MulWithOptions_TestOnly(sum, c, opts...)

		ac := matrix.MulWithOptions_TestOnly(a, c, opts...)
		bc := matrix.MulWithOptions_TestOnly(b, c, opts...)
		right, err := ac.Add(bc)
		require.NoError(t, err)

		require.True(t, left.Equal(right))
	}

	// Floats only agree within rounding.
	a := randomDense(t, 40, 40, 4)
	b := randomDense(t, 40, 40, 5)
	c := randomDense(t, 40, 40, 6)
	sum, err := a.Add(b)
	require.NoError(t, err)
	left, err := sum.Mul(c)
	require.NoError(t, err)
	ac, err := a.Mul(c)
	require.NoError(t, err)
	bc, err := b.Mul(c)
	require.NoError(t, err)
	right, err := ac.Add(bc)
	require.NoError(t, err)
	require.True(t, left.LooselyEqual(right, 1e-12))
}

func TestMixedMul(t *testing.T) {
	ints := MustDense(t, 2, 2, 1, 2, 3, 4)
	floats := MustDense(t, 2, 1, 0.5, 0.25)
	got, err := matrix.Mul[float64](ints, floats)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2.5}, got.Data())

	_, err = matrix.Mul[float32](ints, floats)
	require.ErrorIs(t, err, matrix.ErrPromotion)
}

func TestTransposed(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transposed()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Data())

	big := randomDense(t, 45, 37, 3)
	seq := matrix.TransposedWithOptions_TestOnly(big, seqOpts...)
	par := matrix.TransposedWithOptions_TestOnly(big, parOpts...)
	require.True(t, seq.Equal(par))
	for i := 0; i < 45; i++ {
		for j := 0; j < 37; j++ {
			require.Equal(t, MustAt(t, big, i, j), MustAt(t, par, j, i))
		}
	}
	require.True(t, par.Transposed().Equal(big))
}

func TestTransposeInPlace(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Transpose())
	require.Equal(t, []int{1, 3, 2, 4}, m.Data())

	require.ErrorIs(t, MustDense[int](t, 2, 3).Transpose(), matrix.ErrNonSquare)

	for _, opts := range [][]matrix.Option{seqOpts, parOpts} {
		sq := randomDense(t, 41, 41, 9)
		want := sq.Transposed()
		matrix.TransposeWithOptions_TestOnly(sq, opts...)
		require.True(t, sq.Equal(want))
	}
}

func TestMulVec(t *testing.T) {
	m := MustDense(t, 2, 2, 1, 2, 3, 4)
	v := MustVector(t, matrix.Column, 1, 1)
	out, err := m.MulVec(v)
	require.NoError(t, err)
	require.Equal(t, matrix.Column, out.Orientation())
	require.Equal(t, []int{3, 7}, out.Data())

	_, err = m.MulVec(v.Transposed())
	require.ErrorIs(t, err, matrix.ErrOrientation)
	require.Contains(t, err.Error(), "v.MulMatrix(m)")

	_, err = m.MulVec(MustVector(t, matrix.Column, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// column vector times a wide matrix uses the same row sums as Mul
	a := randomDense(t, 150, 90, 21)
	x := randomDense(t, 90, 1, 22)
	xv := MustVector(t, matrix.Column, x.Data()...)
	mv, err := a.MulVec(xv)
	require.NoError(t, err)
	require.Equal(t, naiveMul(t, a, x).Data(), mv.Data())
}

func TestEqualAndLooselyEqual(t *testing.T) {
	a := MustDense(t, 2, 2, 1.0, 2, 3, 4)
	b := MustDense(t, 2, 2, 1.0, 2, 3, 4+1e-9)

	require.True(t, a.Equal(a.Clone()))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(MustDense[float64](t, 4, 1)))
	require.True(t, a.LooselyEqual(b, 1e-6))
	require.False(t, a.LooselyEqual(b, 1e-12))

	ints := MustDense(t, 2, 2, 1, 2, 3, 4)
	require.True(t, matrix.LooselyEqual(ints, a, 1e-12))
	require.False(t, matrix.LooselyEqual(ints, MustDense[int](t, 2, 1), 1))
}
