// SPDX-License-Identifier: MIT
// Package matrix: Cholesky decomposition of symmetric positive-definite matrices.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// Cholesky returns the lower-triangular L with L·Lᵀ = A.
//
// Implementation (blocked, right-looking):
//   - Stage 1: require A symmetric within Epsilon; copy A into W.
//   - Stage 2: for each diagonal block of width BlockSize:
//     a) unblocked factorization of the diagonal block,
//     L[j,j] = sqrt(A[j,j] - Σ L[j,k]²), failing when the radicand is not > 0;
//     b) triangular solve of the sub-diagonal panel (rows in parallel);
//     c) symmetric rank-k update of the trailing lower triangle (rows in parallel).
//   - Stage 3: copy the lower triangle; the upper triangle of L is zero.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotPositiveDefinite.
// Complexity: Time O(n³/3), Space O(n²).
func Cholesky[T numeric.Float](a *Dense[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(a, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := a.r
	w := a.Data()
	if err := choleskyInPlace(w, n, o); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	l := newUnchecked[T](n, n)
	for i := 0; i < n; i++ {
		copy(l.data[i*n:i*n+i+1], w[i*n:i*n+i+1])
	}

	return l, nil
}

// choleskyInPlace overwrites the lower triangle of the n×n buffer w with L.
// The strict upper triangle is left untouched.
func choleskyInPlace[T numeric.Float](w []T, n int, o Options) error {
	bs := o.blockSize
	logDispatch(opCholesky, n*n*n/3, o)

	for k0 := 0; k0 < n; k0 += bs {
		k1 := min(k0+bs, n)

		// a) diagonal block; columns < k0 were folded in by earlier updates.
		for j := k0; j < k1; j++ {
			d := w[j*n+j]
			for k := k0; k < j; k++ {
				d -= T(w[j*n+k] * w[j*n+k])
			}
			// NaN radicands fail this test too.
			if !(d > 0) {
				return fmt.Errorf("column %d radicand %g: %w", j, float64(d), ErrNotPositiveDefinite)
			}
			ljj := numeric.Sqrt(d)
			w[j*n+j] = ljj
			for i := j + 1; i < k1; i++ {
				s := w[i*n+j]
				for k := k0; k < j; k++ {
					s -= T(w[i*n+k] * w[j*n+k])
				}
				w[i*n+j] = s / ljj
			}
		}
		if k1 == n {
			break
		}

		// b) L21 = A21·L11⁻ᵀ
		rest := n - k1
		width := k1 - k0
		parallel.For(rest, width*width, o.par(), func(lo, hi int) {
			for i := k1 + lo; i < k1+hi; i++ {
				for j := k0; j < k1; j++ {
					s := w[i*n+j]
					for k := k0; k < j; k++ {
						s -= T(w[i*n+k] * w[j*n+k])
					}
					w[i*n+j] = s / w[j*n+j]
				}
			}
		})

		// c) A22 -= L21·L21ᵀ, lower triangle only
		parallel.For(rest, rest*width/2, o.par(), func(lo, hi int) {
			for i := k1 + lo; i < k1+hi; i++ {
				li := w[i*n+k0 : i*n+k1]
				for j := k1; j <= i; j++ {
					lj := w[j*n+k0 : j*n+k1]
					var s T
					for k, x := range li {
						s += T(x * lj[k])
					}
					w[i*n+j] -= s
				}
			}
		})
	}

	return nil
}
