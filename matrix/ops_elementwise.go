// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise operators of Dense (fresh-result and in-place forms)
//     and the mixed-type package functions Add/Sub/Scale.
//   - Share one set of *private* flat-slice kernels (ew*) with Vector.
//
// Determinism & Performance:
//   - Each element is produced by the same single operation on every path, so
//     the accelerated, fallback, sequential and parallel runs agree bit for bit.
//   - Large buffers are split into contiguous chunks above the parallel threshold.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/accel"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// ---------- private flat kernels ----------

// ewAdd computes dst[i] += x[i]. len(dst) == len(x).
func ewAdd[T numeric.Number](dst, x []T, o Options) {
	parallel.For(len(dst), 1, o.par(), func(lo, hi int) {
		d, s := dst[lo:hi], x[lo:hi]
		if accel.Add(d, s) {
			return
		}
		for i := range d {
			d[i] += s[i]
		}
	})
}

// ewSub computes dst[i] -= x[i]. len(dst) == len(x).
func ewSub[T numeric.Number](dst, x []T, o Options) {
	parallel.For(len(dst), 1, o.par(), func(lo, hi int) {
		d, s := dst[lo:hi], x[lo:hi]
		for i := range d {
			d[i] -= s[i]
		}
	})
}

// ewAddScalar computes dst[i] += s.
func ewAddScalar[T numeric.Number](dst []T, s T, o Options) {
	parallel.For(len(dst), 1, o.par(), func(lo, hi int) {
		d := dst[lo:hi]
		for i := range d {
			d[i] += s
		}
	})
}

// ewScale computes dst[i] *= s.
func ewScale[T numeric.Number](dst []T, s T, o Options) {
	parallel.For(len(dst), 1, o.par(), func(lo, hi int) {
		d := dst[lo:hi]
		if accel.Scale(s, d) {
			return
		}
		for i := range d {
			d[i] *= s
		}
	})
}

// ewNeg computes dst[i] = -dst[i].
func ewNeg[T numeric.Number](dst []T) {
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// axpy computes y[i] += alpha*x[i] through the backend when it supports T.
// The explicit conversion keeps the fallback from fusing into an FMA.
func axpy[T numeric.Number](alpha T, x, y []T) {
	if accel.Axpy(alpha, x, y) {
		return
	}
	x = x[:len(y)]
	for i := range y {
		y[i] += T(alpha * x[i])
	}
}

// ---------- Dense: fresh results ----------

// Add returns m + o. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.Clone()
	ewAdd(out.data, o.data, defaultOptions())

	return out, nil
}

// Sub returns m - o. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.Clone()
	ewSub(out.data, o.data, defaultOptions())

	return out, nil
}

// Neg returns -m.
func (m *Dense[T]) Neg() *Dense[T] {
	out := m.Clone()
	ewNeg(out.data)

	return out
}

// AddScalar returns m + s element-wise.
func (m *Dense[T]) AddScalar(s T) *Dense[T] {
	out := m.Clone()
	ewAddScalar(out.data, s, defaultOptions())

	return out
}

// SubScalar returns m - s element-wise.
func (m *Dense[T]) SubScalar(s T) *Dense[T] {
	out := m.Clone()
	ewAddScalar(out.data, -s, defaultOptions())

	return out
}

// MulScalar returns m * s element-wise.
func (m *Dense[T]) MulScalar(s T) *Dense[T] {
	out := m.Clone()
	ewScale(out.data, s, defaultOptions())

	return out
}

// ScalarAdd returns s + m.
func ScalarAdd[T numeric.Number](s T, m *Dense[T]) *Dense[T] {
	return m.AddScalar(s)
}

// ScalarSub returns s - m, computed as -(m - s).
func ScalarSub[T numeric.Number](s T, m *Dense[T]) *Dense[T] {
	out := m.SubScalar(s)
	ewNeg(out.data)

	return out
}

// ScalarMul returns s * m.
func ScalarMul[T numeric.Number](s T, m *Dense[T]) *Dense[T] {
	return m.MulScalar(s)
}

// ---------- Dense: in place ----------

// AddInPlace computes m += o.
func (m *Dense[T]) AddInPlace(o *Dense[T]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opAdd, err)
	}
	ewAdd(m.data, o.data, defaultOptions())

	return nil
}

// SubInPlace computes m -= o.
func (m *Dense[T]) SubInPlace(o *Dense[T]) error {
	if err := ValidateSameShape(m, o); err != nil {
		return matrixErrorf(opSub, err)
	}
	ewSub(m.data, o.data, defaultOptions())

	return nil
}

// AddScalarInPlace computes m += s element-wise.
func (m *Dense[T]) AddScalarInPlace(s T) {
	ewAddScalar(m.data, s, defaultOptions())
}

// ScaleInPlace computes m *= s element-wise.
func (m *Dense[T]) ScaleInPlace(s T) {
	ewScale(m.data, s, defaultOptions())
}

// NegInPlace negates every element.
func (m *Dense[T]) NegInPlace() {
	ewNeg(m.data)
}

// ---------- mixed element types ----------

// checkPromotion reports ErrPromotion unless R is the common type of A and B.
func checkPromotion[R, A, B numeric.Number]() error {
	if numeric.CheckPromotion[R, A, B]() == nil {
		return nil
	}
	want := numeric.Common(numeric.TypeOf[A](), numeric.TypeOf[B]())

	return fmt.Errorf("%s and %s promote to %s, got %s: %w",
		numeric.TypeOf[A](), numeric.TypeOf[B](), want, numeric.TypeOf[R](), ErrPromotion)
}

// promote checks R against the common type of A and B and converts both operands.
func promote[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], *Dense[R], error) {
	if err := checkPromotion[R, A, B](); err != nil {
		return nil, nil, err
	}
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, nil, err
	}
	ra := &Dense[R]{r: a.r, c: a.c, data: numeric.Convert[R](a.data)}
	rb := &Dense[R]{r: b.r, c: b.c, data: numeric.Convert[R](b.data)}

	return ra, rb, nil
}

// Add returns a + b in the common type R of A and B.
// Example: Add[float64](ints, floats).
// Errors: ErrPromotion, ErrNilMatrix, ErrDimensionMismatch.
func Add[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ra, rb, err := promote[R](a, b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ewAdd(ra.data, rb.data, defaultOptions())

	return ra, nil
}

// Sub returns a - b in the common type R of A and B.
func Sub[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ra, rb, err := promote[R](a, b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	ewSub(ra.data, rb.data, defaultOptions())

	return ra, nil
}

// Scale returns a * s in the common type R of A and B.
func Scale[R, A, B numeric.Number](a *Dense[A], s B) (*Dense[R], error) {
	if err := checkPromotion[R, A, B](); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense[R]{r: a.r, c: a.c, data: numeric.Convert[R](a.data)}
	ewScale(out.data, R(s), defaultOptions())

	return out, nil
}
