// SPDX-License-Identifier: MIT

// Package matrix provides generic dense matrices and vectors and the two
// classical factorizations built on them.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major rows×cols matrix over any integer or float type,
//     with bounds-checked access, element-wise operators, a cache-blocked
//     parallel product, blocked transposes and shape predicates.
//   - Vector[T]: a dense vector with a Row or Column orientation, norms, dot
//     and outer products, and matrix·vector products in both directions.
//   - PLU: blocked LU with partial pivoting, PermutationMatrix(P)·A = L·U.
//   - Cholesky: blocked factorization L·Lᵀ = A of symmetric positive-definite A.
//   - Solve, Inverse, Det: solvers on top of the PLU kernel.
//
// Mixed element types are combined by package functions whose result type is
// given explicitly and must be the common type of the operands:
//
//	sum, err := matrix.Add[float64](ints, floats)
//
// Every constructor copies its input and every accessor returns a copy, so a
// Dense or Vector never shares its buffer. Values are not synchronized:
// concurrent reads are fine, concurrent writes need external locking.
//
// Large operations split their work across goroutines above a work threshold.
// The split never changes the arithmetic, so results are identical with any
// worker count. Tuning comes from functional options and, process-wide, from
// the LINALG_* environment variables (see package config).
//
// Errors are sentinels matched with errors.Is; each belongs to one of the
// classes ErrInvalidArgument, ErrOutOfRange or ErrRuntime.
package matrix
