// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/numeric"
)

// Permutation is a row permutation of 0..n-1. P[i] is the original row index
// that ends up at position i.
type Permutation []int

// IdentityPermutation returns [0, 1, ..., n-1].
func IdentityPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Validate reports ErrNotPermutation unless p holds every value of 0..n-1 once.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return fmt.Errorf("position %d value %d: %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Inverse returns q with q[p[i]] = i. p must be valid.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v] = i
	}

	return q
}

// Sign returns +1 for an even permutation and -1 for an odd one. p must be valid.
// Complexity: O(n) by cycle decomposition.
func (p Permutation) Sign() int {
	visited := make([]bool, len(p))
	sign := 1
	for i := range p {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = p[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// PermuteRows returns PermutationMatrix(p)·m without forming the permutation matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(p) != rows), ErrNotPermutation.
func PermuteRows[T numeric.Number](p Permutation, m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	if len(p) != m.r {
		return nil, matrixErrorf(opPermutation, ErrDimensionMismatch)
	}
	if err := p.Validate(); err != nil {
		return nil, matrixErrorf(opPermutation, err)
	}
	out := newUnchecked[T](m.r, m.c)
	for i, src := range p {
		copy(out.data[i*m.c:(i+1)*m.c], m.data[src*m.c:(src+1)*m.c])
	}

	return out, nil
}
