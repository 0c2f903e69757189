// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestVectorConstructors(t *testing.T) {
	v, err := matrix.NewVector[float64](3, matrix.Row)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, matrix.Row, v.Orientation())

	_, err = matrix.NewVector[int](0, matrix.Column)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewVectorFromSlice[int](nil, matrix.Column)
	require.ErrorIs(t, err, matrix.ErrNilSource)
	_, err = matrix.NewVectorFromSlice([]int{}, matrix.Column)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	src := []int{1, 2}
	c, err := matrix.NewVectorFromSlice(src, matrix.Column)
	require.NoError(t, err)
	src[0] = 9
	require.Equal(t, []int{1, 2}, c.Data())

	f, err := matrix.ConvertVector[float32](c)
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2}, f.Data())
	require.Equal(t, matrix.Column, f.Orientation())
}

func TestVectorAccess(t *testing.T) {
	v := MustVector(t, matrix.Column, 1, 2, 3)
	require.NoError(t, v.Set(2, 5))
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 5, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(-1, 0), matrix.ErrOutOfRange)

	c := v.Clone()
	c.Fill(0)
	require.Equal(t, []int{1, 2, 5}, v.Data())
	require.Equal(t, []int{0, 0, 0}, c.Data())
}

func TestVectorTranspose(t *testing.T) {
	v := MustVector(t, matrix.Column, 1, 2)
	r := v.Transposed()
	require.Equal(t, matrix.Row, r.Orientation())
	require.Equal(t, matrix.Column, v.Orientation())
	require.Equal(t, v.Data(), r.Data())

	v.Transpose()
	require.True(t, v.Equal(r))
	v.Transpose()
	require.False(t, v.Equal(r), "orientation is part of equality")
}

func TestVectorNorm(t *testing.T) {
	v := MustVector(t, matrix.Column, 3.0, 4.0)
	require.Equal(t, 5.0, v.Norm())

	require.NoError(t, v.Normalize())
	require.True(t, v.LooselyEqual(MustVector(t, matrix.Column, 0.6, 0.8), 1e-12))
	require.InDelta(t, 1.0, v.Norm(), 1e-12)

	z := MustVector(t, matrix.Row, 0.0, 1e-9, -1e-9)
	require.True(t, z.IsNull())
	require.ErrorIs(t, z.Normalize(), matrix.ErrNullVector)
	require.False(t, MustVector(t, matrix.Row, 0.0, 1e-3).IsNull())

	ints := MustVector(t, matrix.Column, 3, 4)
	require.Equal(t, 5.0, ints.Norm())
}

func TestVectorElementwise(t *testing.T) {
	a := MustVector(t, matrix.Row, 1, 2, 3)
	b := MustVector(t, matrix.Row, 4, 5, 6)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{5, 7, 9}, sum.Data())
	require.Equal(t, matrix.Row, sum.Orientation())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []int{-3, -3, -3}, diff.Data())

	_, err = a.Add(b.Transposed())
	require.ErrorIs(t, err, matrix.ErrOrientation)
	_, err = a.Sub(MustVector(t, matrix.Row, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Equal(t, []int{-1, -2, -3}, a.Neg().Data())
	require.Equal(t, []int{2, 3, 4}, a.AddScalar(1).Data())
	require.Equal(t, []int{0, 1, 2}, a.SubScalar(1).Data())
	require.Equal(t, []int{2, 4, 6}, a.MulScalar(2).Data())
	require.Equal(t, []int{9, 8, 7}, matrix.ScalarSubVector(10, a).Data())
}

func TestVectorDot(t *testing.T) {
	a := MustVector(t, matrix.Row, 1, 2, 3)
	b := MustVector(t, matrix.Column, 4, 5, 6)

	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32, d, "orientation is ignored")

	_, err = a.Dot(MustVector(t, matrix.Row, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	f := MustVector(t, matrix.Column, 0.5, 0.5, 0.5)
	mixed, err := matrix.Dot[float64](a, f)
	require.NoError(t, err)
	require.Equal(t, 3.0, mixed)

	_, err = matrix.Dot[int](a, f)
	require.ErrorIs(t, err, matrix.ErrPromotion)
}

func TestVectorDotReproducible(t *testing.T) {
	x := randomDense(t, 1, 20000, 31).Data()
	y := randomDense(t, 1, 20000, 32).Data()

	seq := matrix.DotWithOptions_TestOnly(x, y, seqOpts...)
	par := matrix.DotWithOptions_TestOnly(x, y, parOpts...)
	require.Equal(t, seq, par)

	withoutAccel(t, func() {
		require.Equal(t, seq, matrix.DotWithOptions_TestOnly(x, y, parOpts...))
	})
}

func TestMixedVectorOps(t *testing.T) {
	a := MustVector(t, matrix.Column, 1, 2)
	b := MustVector(t, matrix.Column, 0.5, 0.25)

	sum, err := matrix.AddVectors[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2.25}, sum.Data())

	diff, err := matrix.SubVectors[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1.75}, diff.Data())

	_, err = matrix.AddVectors[float64](a, b.Transposed())
	require.ErrorIs(t, err, matrix.ErrOrientation)
	_, err = matrix.SubVectors[int](a, b)
	require.ErrorIs(t, err, matrix.ErrPromotion)
}

func TestVectorMul(t *testing.T) {
	col := MustVector(t, matrix.Column, 1, 2)
	row := MustVector(t, matrix.Row, 3, 4, 5)

	outer, err := col.Mul(row)
	require.NoError(t, err)
	require.Equal(t, 2, outer.Rows())
	require.Equal(t, 3, outer.Cols())
	require.Equal(t, []int{3, 4, 5, 6, 8, 10}, outer.Data())

	// any differing orientation yields the outer product
	flipped, err := MustVector(t, matrix.Row, 1, 2).Mul(MustVector(t, matrix.Column, 3, 4))
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 6, 8}, flipped.Data())

	unit, err := MustVector(t, matrix.Row, 3).Mul(MustVector(t, matrix.Row, 4))
	require.NoError(t, err)
	require.Equal(t, []int{12}, unit.Data())

	_, err = row.Mul(row)
	require.ErrorIs(t, err, matrix.ErrAmbiguousProduct)
	require.Contains(t, err.Error(), "Dot")
}

func TestVectorMulMatrix(t *testing.T) {
	m := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	row := MustVector(t, matrix.Row, 1, 1)

	out, err := row.MulMatrix(m)
	require.NoError(t, err)
	require.Equal(t, matrix.Row, out.Orientation())
	require.Equal(t, []int{5, 7, 9}, out.Data())

	_, err = row.Transposed().MulMatrix(m)
	require.ErrorIs(t, err, matrix.ErrOrientation)
	require.Contains(t, err.Error(), "m.MulVec(v)")

	_, err = MustVector(t, matrix.Row, 1, 1, 1).MulMatrix(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestVectorString(t *testing.T) {
	require.Equal(t, "1\n2\n", MustVector(t, matrix.Column, 1, 2).String())
	require.Equal(t, "1.00000 2.50000\n", MustVector(t, matrix.Row, 1.0, 2.5).String())
	require.Equal(t, "row", matrix.Row.String())
	require.Equal(t, "column", matrix.Column.String())
}
