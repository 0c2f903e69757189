// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels of Dense.
//
// Purpose:
//   - Matrix product (three-level cache blocking, tiles in parallel),
//     blocked transposes, matrix·vector, equality and identity helpers.
//   - Define operation tags and the shared error wrapper.
//
// Notes:
//   - Every output element is accumulated in ascending inner index, on every
//     path. Blocking and parallelism change which goroutine writes a tile, not
//     the arithmetic, so Mul agrees bit for bit with the naive triple loop.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opConvert     = "Convert"
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opMulMatrix   = "MulMatrix"
	opTranspose   = "Transpose"
	opTransposed  = "Transposed"
	opIdentity    = "MakeIdentity"
	opPermutation = "Permutation"
	opDot         = "Dot"
	opNormalize   = "Normalize"
	opOuter       = "Outer"
	opPLU         = "PLU"
	opCholesky    = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// blocks returns ceil(n/bs).
func blocks(n, bs int) int {
	return (n + bs - 1) / bs
}

// perItem spreads work evenly over items, rounding up.
func perItem(work, items int) int {
	if items <= 0 {
		return work
	}

	return (work + items - 1) / items
}

// Mul returns the matrix product m·o.
//
// Implementation:
//   - Stage 1: ValidateMulCompat (m.Cols == o.Rows).
//   - Stage 2: tile the output into BlockSize×BlockSize tiles; for each tile
//     walk the inner dimension in BlockSize chunks and accumulate
//     c[i,j0:j1] += a[i,k]·b[k,j0:j1] (contiguous axpy through the backend).
//   - Stage 3: tiles run in parallel when rows*cols exceeds the threshold;
//     each tile is written by exactly one task.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r·k·c), Space O(r·c).
func (m *Dense[T]) Mul(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompat(m, o); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulBlocked(m, o, defaultOptions()), nil
}

// mulBlocked is the product kernel; shapes are validated by the caller.
func mulBlocked[T numeric.Number](a, b *Dense[T], o Options) *Dense[T] {
	n, inner, m := a.r, a.c, b.c
	out := newUnchecked[T](n, m)
	bs := o.blockSize
	rb, cb := blocks(n, bs), blocks(m, bs)
	work := n * m
	logDispatch(opMul, work, o)

	parallel.ForGrid(rb, cb, perItem(work, rb*cb), o.par(), func(bi, bj int) {
		i0, i1 := bi*bs, min((bi+1)*bs, n)
		j0, j1 := bj*bs, min((bj+1)*bs, m)
		for k0 := 0; k0 < inner; k0 += bs {
			k1 := min(k0+bs, inner)
			for i := i0; i < i1; i++ {
				crow := out.data[i*m+j0 : i*m+j1]
				arow := a.data[i*inner : (i+1)*inner]
				for k := k0; k < k1; k++ {
					axpy(arow[k], b.data[k*m+j0:k*m+j1], crow)
				}
			}
		}
	})

	return out
}

// Mul returns a·b in the common type R of A and B.
// Errors: ErrPromotion, ErrNilMatrix, ErrDimensionMismatch.
func Mul[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := ValidateMulCompat(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ra, rb, err := promote[R](a, b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulBlocked(ra, rb, defaultOptions()), nil
}

// Transpose transposes a square matrix in place by swapping upper-triangle
// tiles with their mirror. Row-tile bands run in parallel; bands touch
// disjoint element pairs.
// Errors: ErrNonSquare.
func (m *Dense[T]) Transpose() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	transposeSquare(m, defaultOptions())

	return nil
}

func transposeSquare[T numeric.Number](m *Dense[T], o Options) {
	n, bs := m.r, o.blockSize
	nb := blocks(n, bs)
	parallel.For(nb, perItem(n*n, nb), o.par(), func(lo, hi int) {
		for bi := lo; bi < hi; bi++ {
			i0, i1 := bi*bs, min((bi+1)*bs, n)
			for bj := bi; bj < nb; bj++ {
				j0, j1 := bj*bs, min((bj+1)*bs, n)
				for i := i0; i < i1; i++ {
					start := j0
					if bi == bj {
						start = i + 1
					}
					for j := start; j < j1; j++ {
						m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
					}
				}
			}
		}
	})
}

// Transposed returns a new cols×rows matrix equal to mᵀ.
// Cache-blocked; row tiles of m run in parallel above the threshold.
// Complexity: Time O(r·c), Space O(r·c).
func (m *Dense[T]) Transposed() *Dense[T] {
	return transposedBlocked(m, defaultOptions())
}

func transposedBlocked[T numeric.Number](m *Dense[T], o Options) *Dense[T] {
	r, c, bs := m.r, m.c, o.blockSize
	out := newUnchecked[T](c, r)
	nb := blocks(r, bs)
	parallel.For(nb, perItem(r*c, nb), o.par(), func(lo, hi int) {
		for bi := lo; bi < hi; bi++ {
			i0, i1 := bi*bs, min((bi+1)*bs, r)
			for j0 := 0; j0 < c; j0 += bs {
				j1 := min(j0+bs, c)
				for i := i0; i < i1; i++ {
					for j := j0; j < j1; j++ {
						out.data[j*r+i] = m.data[i*c+j]
					}
				}
			}
		}
	})

	return out
}

// MulVec returns m·v for a column vector v of length Cols.
// Errors: ErrNilMatrix, ErrOrientation (row vector), ErrDimensionMismatch.
func (m *Dense[T]) MulVec(v *Vector[T]) (*Vector[T], error) {
	if m == nil || v == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if v.orient != Column {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("matrix times row vector, did you mean v.MulMatrix(m)?: %w", ErrOrientation))
	}
	if len(v.data) != m.c {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("%dx%d · %d: %w", m.r, m.c, len(v.data), ErrDimensionMismatch))
	}

	o := defaultOptions()
	out := &Vector[T]{orient: Column, data: make([]T, m.r)}
	parallel.For(m.r, m.c, o.par(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := m.data[i*m.c : (i+1)*m.c]
			var s T
			for j, a := range row {
				s += T(a * v.data[j])
			}
			out.data[i] = s
		}
	})

	return out, nil
}

// Equal reports exact equality of shape and elements.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// LooselyEqual reports equal shape and every |m[i,j]-o[i,j]| < eps.
func (m *Dense[T]) LooselyEqual(o *Dense[T], eps float64) bool {
	return LooselyEqual(m, o, eps)
}

// LooselyEqual compares matrices of possibly different element types in float64.
func LooselyEqual[A, B numeric.Number](a *Dense[A], b *Dense[B], eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i, v := range a.data {
		if !numeric.IsClose(float64(v), float64(b.data[i]), eps) {
			return false
		}
	}

	return true
}

// MakeIdentity overwrites a square matrix with the identity.
// Errors: ErrNonSquare.
func (m *Dense[T]) MakeIdentity() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opIdentity, err)
	}
	m.Fill(0)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}
