// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlinalg/numeric"
)

// Zeros returns a rows×cols zero matrix.
func Zeros[T numeric.Number](rows, cols int) (*Dense[T], error) {
	return New[T](rows, cols)
}

// Ones returns a rows×cols matrix filled with 1.
func Ones[T numeric.Number](rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(1)

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T numeric.Number](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// PermutationMatrix builds the n×n matrix whose row i has a single 1 at column p[i],
// so PermutationMatrix(p)·A reorders the rows of A by p.
// Errors: ErrInvalidDimensions (empty p), ErrNotPermutation.
func PermutationMatrix[T numeric.Number](p Permutation) (*Dense[T], error) {
	if len(p) == 0 {
		return nil, matrixErrorf(opPermutation, ErrInvalidDimensions)
	}
	if err := p.Validate(); err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	n := len(p)
	m := newUnchecked[T](n, n)
	for i, src := range p {
		m.data[i*n+src] = 1
	}

	return m, nil
}
