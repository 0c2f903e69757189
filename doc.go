// Package lvlinalg is a dense linear-algebra core for Go: generic matrices
// and vectors, blocked products, and PLU / Cholesky factorizations that run
// the same on one goroutine or many.
//
// What is inside?
//
//	numeric/  - Number and Float constraints, tolerance helpers, type promotion
//	matrix/   - Dense[T], Vector[T], element-wise and product kernels,
//	            PLU with partial pivoting, Cholesky, Solve / Inverse / Det
//	parallel/ - bounded fork-join loops (For, ForGrid, Reduce) over errgroup
//	accel/    - optional vector backend selected from CPU features
//	config/   - LINALG_* environment defaults
//
// Guarantees:
//
//   - Results never depend on the worker count, the block size, or whether
//     the accelerated backend is active: every path accumulates in the same
//     order.
//   - Operations return errors instead of panicking (only invalid options
//     panic); every error wraps one of
//     matrix.ErrInvalidArgument, matrix.ErrOutOfRange or matrix.ErrRuntime.
//   - Mixed element types are combined only through an explicit result type,
//     e.g. matrix.Add[float64](ints, floats).
//
// Quick start:
//
//	a, _ := matrix.NewFromRows(3, 3, [][]float64{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}})
//	p, l, u, err := matrix.PLU(a)
//
// Tuning comes from functional options per call (matrix.WithWorkers,
// matrix.WithBlockSize, ...) layered over the LINALG_* environment.
package lvlinalg
