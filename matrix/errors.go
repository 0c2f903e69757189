// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; option constructors panic on
// programmer errors only.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// NOTE ON CLASSES
// ---------------
// Every sentinel belongs to exactly one class root, so callers can branch on
// the class (errors.Is(err, ErrInvalidArgument)) or on the precise cause
// (errors.Is(err, ErrNonSquare)). Messages are prefixed with "linalg: ".
//
//   ErrInvalidArgument  - the inputs violate a documented precondition.
//   ErrOutOfRange       - an index is outside the container bounds.
//   ErrRuntime          - valid inputs, but the numeric procedure cannot finish.

// Class roots.
var (
	// ErrInvalidArgument is the class of precondition violations.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrRuntime is the class of numeric failures on well-formed input.
	ErrRuntime = errors.New("linalg: runtime failure")
)

// ErrInvalidArgument children.
var (
	// ErrInvalidDimensions is returned when a requested dimension is ≤ 0.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidArgument)

	// ErrNilSource is returned when a constructor receives a nil slice.
	ErrNilSource = fmt.Errorf("%w: nil source data", ErrInvalidArgument)

	// ErrSizeMismatch is returned when source data does not hold rows*cols values.
	ErrSizeMismatch = fmt.Errorf("%w: source size does not match dimensions", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Dense or *Vector (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil operand", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add on different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)

	// ErrAsymmetry signals that a symmetric matrix was required (within eps).
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric within eps", ErrInvalidArgument)

	// ErrNotPositiveDefinite is returned by Cholesky when a radicand is not > 0.
	ErrNotPositiveDefinite = fmt.Errorf("%w: matrix is not positive definite", ErrInvalidArgument)

	// ErrNullVector is returned when normalizing a vector whose elements are all ≈0.
	ErrNullVector = fmt.Errorf("%w: null vector", ErrInvalidArgument)

	// ErrOrientation is returned when a vector has the wrong orientation for the operation.
	ErrOrientation = fmt.Errorf("%w: wrong vector orientation", ErrInvalidArgument)

	// ErrAmbiguousProduct is returned for the product of two same-oriented vectors.
	ErrAmbiguousProduct = fmt.Errorf("%w: ambiguous vector product (did you mean Dot?)", ErrInvalidArgument)

	// ErrNotPermutation is returned when a slice is not a permutation of 0..n-1.
	ErrNotPermutation = fmt.Errorf("%w: not a permutation", ErrInvalidArgument)

	// ErrPromotion is returned by mixed-type operations whose result type is not
	// the common type of the operands. It also matches numeric.ErrPromotion.
	ErrPromotion = fmt.Errorf("%w: %w", ErrInvalidArgument, numeric.ErrPromotion)
)

// ErrRuntime children.
var (
	// ErrSingular is returned by PLU when a pivot falls below the pivot epsilon
	// under the raise policy.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrRuntime)
)
