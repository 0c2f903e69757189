// SPDX-License-Identifier: MIT
// Package matrix: solvers built on the PLU kernel.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

const (
	opSolve   = "Solve"
	opInverse = "Inverse"
	opDet     = "Det"
)

// factorized holds the packed PLU buffer of an n×n matrix.
type factorized[T numeric.Float] struct {
	n    int
	w    []T // L strictly below the diagonal (unit diagonal implied), U on and above
	perm Permutation
}

// factorize runs PLU under SingularRaise regardless of the policy in o.
func factorize[T numeric.Float](a *Dense[T], o Options) (*factorized[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, err
	}
	o.singular = SingularRaise
	f := &factorized[T]{n: a.r, w: a.Data(), perm: IdentityPermutation(a.r)}
	if err := pluInPlace(f.w, f.n, f.perm, o); err != nil {
		return nil, err
	}

	return f, nil
}

// solveInto solves A·x = b for one right-hand side. x and b must not alias.
// Stage 1: y = P·b, then L·y = P·b by forward substitution.
// Stage 2: U·x = y by backward substitution.
func (f *factorized[T]) solveInto(x, b []T) error {
	n, w := f.n, f.w
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for k := 0; k < i; k++ {
			sum -= T(w[i*n+k] * x[k])
		}
		x[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for k := i + 1; k < n; k++ {
			sum -= T(w[i*n+k] * x[k])
		}
		pivot := w[i*n+i]
		if pivot == 0 {
			return fmt.Errorf("zero pivot at %d: %w", i, ErrSingular)
		}
		x[i] = sum / pivot
	}

	return nil
}

// Solve returns x with A·x = b for a square A and a column vector b.
// The factorization always raises on a pivot below PivotEpsilon;
// WithSingularPolicy has no effect here, nor in Inverse and Det.
// Errors: ErrNilMatrix, ErrNonSquare, ErrOrientation, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) factorization + O(n²) substitution.
func Solve[T numeric.Float](a *Dense[T], b *Vector[T], opts ...Option) (*Vector[T], error) {
	if b == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if b.orient != Column {
		return nil, matrixErrorf(opSolve, ErrOrientation)
	}
	if a != nil && len(b.data) != a.r {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	f, err := factorize(a, gatherOptions(opts...))
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := &Vector[T]{orient: Column, data: make([]T, f.n)}
	if err = f.solveInto(x.data, b.data); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Inverse returns A⁻¹, solving one identity column per task.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T numeric.Float](a *Dense[T], opts ...Option) (*Dense[T], error) {
	o := gatherOptions(opts...)
	f, err := factorize(a, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	inv := newUnchecked[T](n, n)
	errs := make([]error, n)
	parallel.For(n, n*n, o.par(), func(lo, hi int) {
		e := make([]T, n)
		x := make([]T, n)
		for col := lo; col < hi; col++ {
			clear(e)
			e[col] = 1
			if errs[col] = f.solveInto(x, e); errs[col] != nil {
				continue
			}
			for i, v := range x {
				inv.data[i*n+col] = v
			}
		}
	})
	for _, err = range errs {
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	return inv, nil
}

// Det returns the determinant as sign(P)·Π U[i,i]. A matrix that PLU
// rejects as singular has determinant 0.
// Errors: ErrNilMatrix, ErrNonSquare.
func Det[T numeric.Float](a *Dense[T], opts ...Option) (T, error) {
	f, err := factorize(a, gatherOptions(opts...))
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	det := T(f.perm.Sign())
	for i := 0; i < f.n; i++ {
		det *= f.w[i*f.n+i]
	}

	return det, nil
}
