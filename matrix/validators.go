// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/symmetry checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap
//    once more with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[T numeric.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinaryNotNil ensures both operands are non-nil.
func ValidateBinaryNotNil[A, B numeric.Number](a *Dense[A], b *Dense[B]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateBinaryNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Complexity: O(1).
func ValidateSameShape[A, B numeric.Number](a *Dense[A], b *Dense[B]) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare[T numeric.Number](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// ValidateMulCompat checks a.Cols == b.Rows for the product a·b.
func ValidateMulCompat[A, B numeric.Number](a *Dense[A], b *Dense[B]) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompat",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric checks square shape and |m[i,j] - m[j,i]| < eps for all i<j.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric[T numeric.Number](m *Dense[T], eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !numeric.IsClose(m.data[i*n+j], m.data[j*n+i], eps) {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// validateDims rejects non-positive dimensions.
func validateDims(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// validateIndex reports ErrOutOfRange for (r,c) outside a rows×cols shape.
func validateIndex(r, c, rows, cols int) error {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", r, c, rows, cols, ErrOutOfRange)
	}

	return nil
}
