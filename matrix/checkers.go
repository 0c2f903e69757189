// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Boolean shape predicates of Dense, evaluated within the default epsilon.
//   - IsSingular / IsPositiveDefinite run the in-place factorization kernels on
//     one working copy, without building factor matrices, and map the error to a bool.
//
// Notes:
//   - Triangular and diagonal predicates are false for non-square matrices.
//   - Integer matrices are factorized in float64; float32 stays in float32.

package matrix

import (
	"github.com/katalvlaran/lvlinalg/numeric"
)

// IsSquare reports rows == cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// IsSymmetric reports a square matrix with m[i,j] ≈ m[j,i] for all i<j.
func (m *Dense[T]) IsSymmetric() bool {
	return ValidateSymmetric(m, defaultOptions().eps) == nil
}

// IsUpperTriangular reports a square matrix whose entries below the diagonal are ≈0.
func (m *Dense[T]) IsUpperTriangular() bool {
	return m.IsSquare() && m.zeroWhere(func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports a square matrix whose entries above the diagonal are ≈0.
func (m *Dense[T]) IsLowerTriangular() bool {
	return m.IsSquare() && m.zeroWhere(func(i, j int) bool { return i < j })
}

// IsDiagonal reports a matrix that is both upper and lower triangular.
func (m *Dense[T]) IsDiagonal() bool {
	return m.IsSquare() && m.zeroWhere(func(i, j int) bool { return i != j })
}

// zeroWhere reports whether every entry selected by pick is ≈0.
func (m *Dense[T]) zeroWhere(pick func(i, j int) bool) bool {
	eps := defaultOptions().eps
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if pick(i, j) && !numeric.IsClose(float64(m.data[i*m.c+j]), 0, eps) {
				return false
			}
		}
	}

	return true
}

// IsSingular reports whether PLU under the raise policy fails.
// Non-square matrices are singular.
// Complexity: O(n³) time, O(n²) extra space.
func (m *Dense[T]) IsSingular() bool {
	if !m.IsSquare() {
		return true
	}
	o := defaultOptions()
	o.singular = SingularRaise
	if f32, ok := any(m.data).([]float32); ok {
		w := append([]float32(nil), f32...)
		return pluInPlace(w, m.r, IdentityPermutation(m.r), o) != nil
	}
	w := numeric.Convert[float64](m.data)

	return pluInPlace(w, m.r, IdentityPermutation(m.r), o) != nil
}

// IsPositiveDefinite reports whether the matrix is symmetric and the Cholesky
// kernel succeeds on it.
// Complexity: O(n³) time, O(n²) extra space.
func (m *Dense[T]) IsPositiveDefinite() bool {
	if !m.IsSymmetric() {
		return false
	}
	o := defaultOptions()
	if f32, ok := any(m.data).([]float32); ok {
		w := append([]float32(nil), f32...)
		return choleskyInPlace(w, m.r, o) == nil
	}
	w := numeric.Convert[float64](m.data)

	return choleskyInPlace(w, m.r, o) == nil
}
