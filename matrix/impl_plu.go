// SPDX-License-Identifier: MIT
// Package matrix: PLU decomposition with partial pivoting.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// PLU factors a square matrix as PermutationMatrix(P)·A = L·U with L unit
// lower triangular and U upper triangular.
//
// Implementation:
//   - Stage 1: validate (non-nil, square), copy A into a packed buffer W that
//     holds L below the diagonal and U on/above it.
//   - Stage 2: for each column panel of width BlockSize:
//     a) panel factorization: per column pick the max-|value| pivot at or
//     below the diagonal, swap full rows of W and entries of P, store the
//     multipliers and eliminate inside the panel columns (rows in parallel);
//     b) U12 = L11⁻¹·A12 by unit forward substitution in the panel rows;
//     c) A22 -= L21·U12, rows independent and in parallel, each row update an
//     axpy through the vector backend.
//   - Stage 3: unpack L (unit diagonal) and U.
//
// Behavior highlights:
//   - A pivot with |pivot| < PivotEpsilon (including the last column) fails
//     with ErrSingular under SingularRaise (default). Under SingularSkip the
//     column's sub-diagonal is zeroed and the factorization continues.
//   - Sequential and parallel runs are bit-identical for a fixed BlockSize.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
func PLU[T numeric.Float](a *Dense[T], opts ...Option) (Permutation, *Dense[T], *Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}
	o := gatherOptions(opts...)
	n := a.r
	w := a.Data()
	perm := IdentityPermutation(n)
	if err := pluInPlace(w, n, perm, o); err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}

	l := newUnchecked[T](n, n)
	u := newUnchecked[T](n, n)
	for i := 0; i < n; i++ {
		copy(l.data[i*n:i*n+i], w[i*n:i*n+i])
		l.data[i*n+i] = 1
		copy(u.data[i*n+i:(i+1)*n], w[i*n+i:(i+1)*n])
	}

	return perm, l, u, nil
}

// pluInPlace runs the blocked factorization on the packed n×n buffer w and
// records row exchanges in perm.
func pluInPlace[T numeric.Float](w []T, n int, perm Permutation, o Options) error {
	bs := o.blockSize
	logDispatch(opPLU, n*n*n, o)

	for k0 := 0; k0 < n; k0 += bs {
		k1 := min(k0+bs, n)

		// a) panel
		for i := k0; i < k1; i++ {
			p, best := i, numeric.Abs(w[i*n+i])
			for r := i + 1; r < n; r++ {
				if v := numeric.Abs(w[r*n+i]); v > best {
					p, best = r, v
				}
			}
			// NaN pivots fail this test too.
			if !(float64(best) >= o.pivotEps) {
				if o.singular == SingularRaise {
					return fmt.Errorf("column %d pivot %g: %w", i, float64(best), ErrSingular)
				}
				Logger().V(1).Info("skipping singular column", "column", i, "pivot", float64(best))
				for r := i + 1; r < n; r++ {
					w[r*n+i] = 0
				}
				continue
			}
			if p != i {
				swapRows(w, n, i, p)
				perm[i], perm[p] = perm[p], perm[i]
			}

			piv := w[i*n+i]
			pivRow := w[i*n+i+1 : i*n+k1]
			below := n - i - 1
			parallel.For(below, k1-i, o.par(), func(lo, hi int) {
				for r := i + 1 + lo; r < i+1+hi; r++ {
					mult := w[r*n+i] / piv
					w[r*n+i] = mult
					axpy(-mult, pivRow, w[r*n+i+1:r*n+k1])
				}
			})
		}
		if k1 == n {
			break
		}

		// b) U12 = L11⁻¹·A12
		for i := k0; i < k1; i++ {
			src := w[i*n+k1 : (i+1)*n]
			for r := i + 1; r < k1; r++ {
				axpy(-w[r*n+i], src, w[r*n+k1:(r+1)*n])
			}
		}

		// c) A22 -= L21·U12
		rest := n - k1
		parallel.For(rest, (k1-k0)*rest, o.par(), func(lo, hi int) {
			for r := k1 + lo; r < k1+hi; r++ {
				dst := w[r*n+k1 : (r+1)*n]
				for i := k0; i < k1; i++ {
					axpy(-w[r*n+i], w[i*n+k1:(i+1)*n], dst)
				}
			}
		})
	}

	return nil
}

// swapRows exchanges full rows i and j of the packed n×n buffer.
func swapRows[T numeric.Number](w []T, n, i, j int) {
	ri, rj := w[i*n:(i+1)*n], w[j*n:(j+1)*n]
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}
}
