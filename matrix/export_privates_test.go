// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose the option-taking kernels behind Mul/Transpose/Transposed/Dot so
//     matrix_test can pin block size, workers and threshold.
//   - Expose a read-only view of the resolved Options.
//
// The file is a _test.go file in package matrix: it compiles only into the
// test binary and never widens the production API.

import (
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// OptionsSnapshot is a stable, read-only view of Options.
type OptionsSnapshot struct {
	BlockSize int
	Threshold int
	Workers   int
	Eps       float64
	PivotEps  float64
	Singular  SingularPolicy
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		BlockSize: o.blockSize,
		Threshold: o.threshold,
		Workers:   o.workers,
		Eps:       o.eps,
		PivotEps:  o.pivotEps,
		Singular:  o.singular,
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the process defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// MulWithOptions_TestOnly runs the blocked product kernel with explicit options.
func MulWithOptions_TestOnly[T numeric.Number](a, b *Dense[T], opts ...Option) *Dense[T] {
	return mulBlocked(a, b, gatherOptions(opts...))
}

// TransposedWithOptions_TestOnly runs the blocked out-of-place transpose with explicit options.
func TransposedWithOptions_TestOnly[T numeric.Number](m *Dense[T], opts ...Option) *Dense[T] {
	return transposedBlocked(m, gatherOptions(opts...))
}

// TransposeWithOptions_TestOnly runs the in-place square transpose with explicit options.
func TransposeWithOptions_TestOnly[T numeric.Number](m *Dense[T], opts ...Option) {
	transposeSquare(m, gatherOptions(opts...))
}

// DotWithOptions_TestOnly runs the chunked dot reduction with explicit options.
func DotWithOptions_TestOnly[T numeric.Number](a, b []T, opts ...Option) T {
	return dot(a, b, gatherOptions(opts...))
}

// ParallelConfig_TestOnly returns the parallel.Config the kernels run with.
func ParallelConfig_TestOnly(opts ...Option) parallel.Config {
	return gatherOptions(opts...).par()
}
