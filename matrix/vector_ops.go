// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// reduceChunk is the fixed chunk of the Norm/Dot reductions. Partial sums are
// combined in chunk order, so results never depend on the worker count.
const reduceChunk = 4096

// validatePair checks nil, orientation and length for element-wise vector ops.
func validatePair[A, B numeric.Number](a *Vector[A], b *Vector[B]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.orient != b.orient {
		return fmt.Errorf("%s and %s: %w", a.orient, b.orient, ErrOrientation)
	}
	if len(a.data) != len(b.data) {
		return fmt.Errorf("len %d and %d: %w", len(a.data), len(b.data), ErrDimensionMismatch)
	}

	return nil
}

// Norm returns the Euclidean norm sqrt(Σ v[i]²), accumulated in float64.
func (v *Vector[T]) Norm() float64 {
	o := defaultOptions()
	sum := parallel.Reduce(len(v.data), reduceChunk, o.par(),
		func(lo, hi int) float64 {
			s := 0.0
			for _, x := range v.data[lo:hi] {
				f := float64(x)
				s += float64(f * f)
			}
			return s
		},
		func(acc, p float64) float64 { return acc + p })

	return math.Sqrt(sum)
}

// IsNull reports whether every element is ≈0 within the default epsilon.
func (v *Vector[T]) IsNull() bool {
	eps := defaultOptions().eps
	for _, x := range v.data {
		if !numeric.IsClose(float64(x), 0, eps) {
			return false
		}
	}

	return true
}

// Normalize divides every element by the norm, in place.
// Integer vectors truncate toward zero.
// Errors: ErrNullVector.
func (v *Vector[T]) Normalize() error {
	if v.IsNull() {
		return matrixErrorf(opNormalize, ErrNullVector)
	}
	n := v.Norm()
	for i, x := range v.data {
		v.data[i] = T(float64(x) / n)
	}

	return nil
}

// Add returns v + o. Errors: ErrOrientation, ErrDimensionMismatch.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := v.Clone()
	ewAdd(out.data, o.data, defaultOptions())

	return out, nil
}

// Sub returns v - o. Errors: ErrOrientation, ErrDimensionMismatch.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := v.Clone()
	ewSub(out.data, o.data, defaultOptions())

	return out, nil
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := v.Clone()
	ewNeg(out.data)

	return out
}

// AddScalar returns v + s element-wise.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	out := v.Clone()
	ewAddScalar(out.data, s, defaultOptions())

	return out
}

// SubScalar returns v - s element-wise.
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	out := v.Clone()
	ewAddScalar(out.data, -s, defaultOptions())

	return out
}

// MulScalar returns v * s element-wise.
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	out := v.Clone()
	ewScale(out.data, s, defaultOptions())

	return out
}

// ScalarSubVector returns s - v, computed as -(v - s).
func ScalarSubVector[T numeric.Number](s T, v *Vector[T]) *Vector[T] {
	out := v.SubScalar(s)
	ewNeg(out.data)

	return out
}

// Dot returns Σ v[i]·o[i]. Orientation is ignored; lengths must match.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if v == nil || o == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(v.data) != len(o.data) {
		return 0, matrixErrorf(opDot, fmt.Errorf("len %d and %d: %w", len(v.data), len(o.data), ErrDimensionMismatch))
	}

	return dot(v.data, o.data, defaultOptions()), nil
}

func dot[T numeric.Number](a, b []T, o Options) T {
	return parallel.Reduce(len(a), reduceChunk, o.par(),
		func(lo, hi int) T {
			var s T
			for i := lo; i < hi; i++ {
				s += T(a[i] * b[i])
			}
			return s
		},
		func(acc, p T) T { return acc + p })
}

// Mul multiplies two vectors as matrices.
//   - different orientations: outer product, len(v)×len(o), r[i,j] = v[i]·o[j];
//   - same orientation, both of length 1: the 1×1 product;
//   - same orientation otherwise: ErrAmbiguousProduct (did you mean Dot?).
func (v *Vector[T]) Mul(o *Vector[T]) (*Dense[T], error) {
	if v == nil || o == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	if v.orient == o.orient {
		if len(v.data) == 1 && len(o.data) == 1 {
			return &Dense[T]{r: 1, c: 1, data: []T{v.data[0] * o.data[0]}}, nil
		}
		return nil, matrixErrorf(opOuter, ErrAmbiguousProduct)
	}

	n, m := len(v.data), len(o.data)
	out := newUnchecked[T](n, m)
	parallel.For(n, m, defaultOptions().par(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			row := out.data[i*m : (i+1)*m]
			for j, x := range o.data {
				row[j] = v.data[i] * x
			}
		}
	})

	return out, nil
}

// MulMatrix returns v·m for a row vector v of length m.Rows(); the result is a
// row vector of length m.Cols().
// Errors: ErrNilMatrix, ErrOrientation (column vector), ErrDimensionMismatch.
func (v *Vector[T]) MulMatrix(m *Dense[T]) (*Vector[T], error) {
	if v == nil || m == nil {
		return nil, matrixErrorf(opMulMatrix, ErrNilMatrix)
	}
	if v.orient != Row {
		return nil, matrixErrorf(opMulMatrix, fmt.Errorf("column vector times matrix, did you mean m.MulVec(v)?: %w", ErrOrientation))
	}
	if len(v.data) != m.r {
		return nil, matrixErrorf(opMulMatrix, fmt.Errorf("%d · %dx%d: %w", len(v.data), m.r, m.c, ErrDimensionMismatch))
	}

	out := &Vector[T]{orient: Row, data: make([]T, m.c)}
	for i, x := range v.data {
		axpy(x, m.data[i*m.c:(i+1)*m.c], out.data)
	}

	return out, nil
}

// ---------- mixed element types ----------

func promoteVectors[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) ([]R, []R, error) {
	if err := checkPromotion[R, A, B](); err != nil {
		return nil, nil, err
	}

	return numeric.Convert[R](a.data), numeric.Convert[R](b.data), nil
}

// AddVectors returns a + b in the common type R of A and B.
func AddVectors[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ra, rb, err := promoteVectors[R](a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ewAdd(ra, rb, defaultOptions())

	return &Vector[R]{orient: a.orient, data: ra}, nil
}

// SubVectors returns a - b in the common type R of A and B.
func SubVectors[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ra, rb, err := promoteVectors[R](a, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ewSub(ra, rb, defaultOptions())

	return &Vector[R]{orient: a.orient, data: ra}, nil
}

// Dot returns Σ a[i]·b[i] in the common type R of A and B.
func Dot[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (R, error) {
	if a == nil || b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(a.data) != len(b.data) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	ra, rb, err := promoteVectors[R](a, b)
	if err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return dot(ra, rb, defaultOptions()), nil
}
