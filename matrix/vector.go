// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Orientation tells whether a Vector is a row (1×n) or a column (n×1).
type Orientation uint8

const (
	// Column is the default orientation.
	Column Orientation = iota
	// Row vectors multiply matrices from the left.
	Row
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// Vector is a dense vector with an orientation. It owns its data; len(data) > 0.
type Vector[T numeric.Number] struct {
	orient Orientation
	data   []T
}

// NewVector returns a zero vector of length n.
// Errors: ErrInvalidDimensions (n ≤ 0).
func NewVector[T numeric.Number](n int, orient Orientation) (*Vector[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("length %d: %w", n, ErrInvalidDimensions))
	}

	return &Vector[T]{orient: orient, data: make([]T, n)}, nil
}

// NewVectorFromSlice copies data into a new vector.
// Errors: ErrNilSource, ErrInvalidDimensions (empty data).
func NewVectorFromSlice[T numeric.Number](data []T, orient Orientation) (*Vector[T], error) {
	if data == nil {
		return nil, matrixErrorf(opNew, ErrNilSource)
	}
	if len(data) == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("length 0: %w", ErrInvalidDimensions))
	}
	v := &Vector[T]{orient: orient, data: make([]T, len(data))}
	copy(v.data, data)

	return v, nil
}

// ConvertVector returns a copy of v with elements converted to R.
func ConvertVector[R, T numeric.Number](v *Vector[T]) (*Vector[R], error) {
	if v == nil {
		return nil, matrixErrorf(opConvert, ErrNilMatrix)
	}

	return &Vector[R]{orient: v.orient, data: numeric.Convert[R](v.data)}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// Orientation returns Row or Column.
func (v *Vector[T]) Orientation() Orientation { return v.orient }

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Data returns a copy of the elements.
func (v *Vector[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{orient: v.orient, data: v.Data()}
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Transpose flips the orientation in place; element order is unchanged.
func (v *Vector[T]) Transpose() {
	if v.orient == Row {
		v.orient = Column
	} else {
		v.orient = Row
	}
}

// Transposed returns a copy with the opposite orientation.
func (v *Vector[T]) Transposed() *Vector[T] {
	out := v.Clone()
	out.Transpose()

	return out
}

// Equal reports equal orientation, length and elements.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.orient != o.orient || len(v.data) != len(o.data) {
		return false
	}
	for i, x := range v.data {
		if o.data[i] != x {
			return false
		}
	}

	return true
}

// LooselyEqual reports equal orientation and length and every |v[i]-o[i]| < eps.
func (v *Vector[T]) LooselyEqual(o *Vector[T], eps float64) bool {
	return LooselyEqualVectors(v, o, eps)
}

// LooselyEqualVectors compares vectors of possibly different element types in float64.
func LooselyEqualVectors[A, B numeric.Number](a *Vector[A], b *Vector[B], eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.orient != b.orient || len(a.data) != len(b.data) {
		return false
	}
	for i, x := range a.data {
		if !numeric.IsClose(float64(x), float64(b.data[i]), eps) {
			return false
		}
	}

	return true
}

// String renders a column vector one value per line and a row vector on one line.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	_ = v.Print(&sb)

	return sb.String()
}

// Print writes the String rendering to w.
func (v *Vector[T]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	verb := elemVerb[T]()
	sep := byte('\n')
	if v.orient == Row {
		sep = ' '
	}
	for i, x := range v.data {
		if i > 0 {
			_ = bw.WriteByte(sep)
		}
		fmt.Fprintf(bw, verb, x)
	}
	_ = bw.WriteByte('\n')

	return bw.Flush()
}
