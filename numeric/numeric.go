// SPDX-License-Identifier: MIT

// Package numeric holds the element-type rules shared by every container in
// lvlinalg: the Number/Float constraints, tolerant comparison and the
// common-type promotion used by mixed-type operators.
//
// Purpose:
//   - One definition of "approximately equal" (IsClose) for all checkers and pivot tests.
//   - One promotion rule (Common) for every binary operator on two element types.
//
// AI-Hints:
//   - Compare floats with IsClose, never with ==, unless the values are exact by construction.
//   - Mixed-type callers pick the result type explicitly and let CheckPromotion verify it.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the default absolute tolerance of IsClose.
const Epsilon = 1e-6

// Number is any built-in integer or floating-point type (named types included).
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any built-in floating-point type. Factorizations are defined over Float.
type Float interface {
	constraints.Float
}

// IsClose reports whether |a-b| < eps. The difference is taken in float64 so
// unsigned operands never wrap around.
// Complexity: O(1).
func IsClose[T Number](a, b T, eps float64) bool {
	return math.Abs(float64(a)-float64(b)) < eps
}

// IsCloseDefault is IsClose with the package Epsilon.
func IsCloseDefault[T Number](a, b T) bool {
	return IsClose(a, b, Epsilon)
}

// Abs returns |v| in the element type.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sqrt returns the square root of v converted back to T.
func Sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}
