// SPDX-License-Identifier: MIT

// Package matrix: Dense is the row-major generic matrix. It stores elements in
// a flat slice for performance and cache friendliness, and exclusively owns
// that slice: constructors copy their input and accessors return copies.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Dense is a row-major rows×cols matrix of T.
// Invariants: r > 0, c > 0, len(data) == r*c, element (i,j) lives at data[i*c+j].
type Dense[T numeric.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// New creates a rows×cols matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// newUnchecked allocates a zero matrix for internal callers that already
// validated the shape.
func newUnchecked[T numeric.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// NewFromSlice copies a row-major flat slice of exactly rows*cols values.
// Errors: ErrInvalidDimensions, ErrNilSource, ErrSizeMismatch.
func NewFromSlice[T numeric.Number](rows, cols int, data []T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if data == nil {
		return nil, matrixErrorf(opNew, ErrNilSource)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNew, fmt.Errorf("len %d, want %d: %w", len(data), rows*cols, ErrSizeMismatch))
	}
	m := newUnchecked[T](rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewFromRows copies a row-of-rows source. The outer length must equal rows and
// every inner length must equal cols.
// Errors: ErrInvalidDimensions, ErrNilSource, ErrSizeMismatch.
func NewFromRows[T numeric.Number](rows, cols int, data [][]T) (*Dense[T], error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if data == nil {
		return nil, matrixErrorf(opNew, ErrNilSource)
	}
	if len(data) != rows {
		return nil, matrixErrorf(opNew, fmt.Errorf("%d rows, want %d: %w", len(data), rows, ErrSizeMismatch))
	}
	m := newUnchecked[T](rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrSizeMismatch))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Convert returns a copy of m with every element converted to R.
// Conversion follows Go rules (float→int truncates toward zero).
func Convert[R, T numeric.Number](m *Dense[T]) (*Dense[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}

	return &Dense[R]{r: m.r, c: m.c, data: numeric.Convert[R](m.data)}, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Size returns rows*cols.
func (m *Dense[T]) Size() int { return len(m.data) }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		var zero T
		return zero, denseErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := validateIndex(row, col, m.r, m.c); err != nil {
		return denseErrorf("Set", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a row-major copy of the elements.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String renders the matrix one row per line, entries separated by a space.
// Floats use five fixed decimals, integers use %d. Intended for debugging.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	_ = m.Print(&sb)

	return sb.String()
}

// Print writes the String rendering to w.
func (m *Dense[T]) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	verb := elemVerb[T]()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, verb, m.data[i*m.c+j])
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// elemVerb picks the fmt verb for T.
func elemVerb[T numeric.Number]() string {
	if numeric.TypeOf[T]().Class == numeric.FloatClass {
		return "%.5f"
	}

	return "%d"
}
