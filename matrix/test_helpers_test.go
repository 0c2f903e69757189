// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures (seeded random, SPD builders).
//   - Provide reference kernels the blocked code is checked against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/accel"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Option sets that force each execution path. The parallel set uses a small
// block so even modest sizes produce several tiles.
var (
	seqOpts = []matrix.Option{matrix.WithWorkers(1), matrix.WithBlockSize(16)}
	parOpts = []matrix.Option{matrix.WithWorkers(4), matrix.WithParallelThreshold(0), matrix.WithBlockSize(16)}
)

// MustDense builds a rows×cols matrix from optional row-major data or fails the test.
func MustDense[T numeric.Number](t testing.TB, rows, cols int, data ...T) *matrix.Dense[T] {
	t.Helper()
	if len(data) == 0 {
		m, err := matrix.New[T](rows, cols)
		require.NoError(t, err)
		return m
	}
	m, err := matrix.NewFromSlice(rows, cols, data)
	require.NoError(t, err)

	return m
}

// MustVector builds a vector or fails the test.
func MustVector[T numeric.Number](t testing.TB, o matrix.Orientation, data ...T) *matrix.Vector[T] {
	t.Helper()
	v, err := matrix.NewVectorFromSlice(data, o)
	require.NoError(t, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt[T numeric.Number](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomDense fills a rows×cols matrix with values in [-1, 1) from a fixed seed.
func randomDense(t testing.TB, rows, cols int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return MustDense(t, rows, cols, data...)
}

// randomSPD returns B·Bᵀ + n·I for a random B, which is symmetric positive definite.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	b := randomDense(t, n, n, seed)
	a, err := b.Mul(b.Transposed())
	require.NoError(t, err)
	data := a.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] += float64(n)
	}

	return MustDense(t, n, n, data...)
}

// naiveMul is the textbook triple loop with ascending inner index.
func naiveMul(t testing.TB, a, b *matrix.Dense[float64]) *matrix.Dense[float64] {
	t.Helper()
	r, k, c := a.Rows(), a.Cols(), b.Cols()
	ad, bd := a.Data(), b.Data()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var s float64
			for p := 0; p < k; p++ {
				s += float64(ad[i*k+p] * bd[p*c+j])
			}
			out[i*c+j] = s
		}
	}

	return MustDense(t, r, c, out...)
}

// withoutAccel runs fn with the vector backend disabled.
func withoutAccel(t testing.TB, fn func()) {
	t.Helper()
	accel.Disable()
	defer accel.Enable()
	fn()
}

// requireUnitLower asserts a unit-diagonal lower-triangular matrix.
func requireUnitLower(t testing.TB, l *matrix.Dense[float64]) {
	t.Helper()
	n := l.Rows()
	for i := 0; i < n; i++ {
		require.Equal(t, 1.0, MustAt(t, l, i, i), "L[%d,%d]", i, i)
		for j := i + 1; j < n; j++ {
			require.Zero(t, MustAt(t, l, i, j), "L[%d,%d]", i, j)
		}
	}
}
