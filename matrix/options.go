// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for kernels and factorizations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Effective defaults are the constants below overridden once per process
//     by the LINALG_* environment (see package config). A malformed
//     environment is logged and ignored.
//   - Methods without an options parameter (Mul, Transposed, Norm...) run
//     with the effective defaults.
package matrix

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvlinalg/accel"
	"github.com/katalvlaran/lvlinalg/config"
	"github.com/katalvlaran/lvlinalg/numeric"
	"github.com/katalvlaran/lvlinalg/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the tile/panel width of multiply, transpose, PLU and Cholesky.
	DefaultBlockSize = 128

	// DefaultParallelThreshold is the minimum work (element updates) before forking.
	DefaultParallelThreshold = 10000

	// DefaultWorkers bounds concurrent chunks; 0 means GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultEpsilon is the tolerance of the shape predicates and the symmetry check.
	DefaultEpsilon = numeric.Epsilon

	// DefaultPivotEpsilon is the PLU near-zero pivot threshold.
	DefaultPivotEpsilon = 1e-9

	// DefaultSingularPolicy raises on the first near-zero pivot.
	DefaultSingularPolicy = SingularRaise
)

// SingularPolicy selects what PLU does with a near-zero pivot.
type SingularPolicy uint8

const (
	// SingularRaise fails with ErrSingular.
	SingularRaise SingularPolicy = iota
	// SingularSkip zeroes the sub-diagonal of the column and continues.
	SingularSkip
)

// String implements fmt.Stringer.
func (p SingularPolicy) String() string {
	switch p {
	case SingularRaise:
		return "raise"
	case SingularSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid    = "matrix: WithBlockSize: size must be > 0"
	panicWorkersInvalid      = "matrix: WithWorkers: workers must be >= 0"
	panicThresholdInvalid    = "matrix: WithParallelThreshold: threshold must be >= 0"
	panicEpsilonInvalid      = "matrix: WithEpsilon: eps must be finite and > 0"
	panicPivotEpsilonInvalid = "matrix: WithPivotEpsilon: eps must be finite and > 0"
	panicPolicyInvalid       = "matrix: WithSingularPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	blockSize int     // > 0; DefaultBlockSize
	threshold int     // >= 0; DefaultParallelThreshold
	workers   int     // >= 0; DefaultWorkers
	eps       float64 // > 0; DefaultEpsilon
	pivotEps  float64 // > 0; DefaultPivotEpsilon
	singular  SingularPolicy
}

// WithBlockSize sets the tile/panel width. Results depend on the block size
// only through floating-point summation order.
func WithBlockSize(size int) Option {
	if size <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = size }
}

// WithWorkers bounds the number of concurrent chunks; 0 means GOMAXPROCS, 1 disables forking.
func WithWorkers(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithParallelThreshold sets the minimum work before a region forks.
// 0 forks whenever there are at least two chunks.
func WithParallelThreshold(threshold int) Option {
	if threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithEpsilon sets the tolerance of the symmetry check used by Cholesky.
// The predicates without options (IsSymmetric, IsNull, IsUpperTriangular,
// IsLowerTriangular, IsDiagonal, IsPositiveDefinite) always use the process
// default: DefaultEpsilon, or LINALG_EPSILON when set.
func WithEpsilon(eps float64) Option {
	if !validTol(eps) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotEpsilon sets the PLU near-zero pivot threshold.
func WithPivotEpsilon(eps float64) Option {
	if !validTol(eps) {
		panic(panicPivotEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEps = eps }
}

// WithSingularPolicy selects the PLU behavior on a near-zero pivot.
func WithSingularPolicy(p SingularPolicy) Option {
	if p != SingularRaise && p != SingularSkip {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.singular = p }
}

// ---------- Resolution ----------

// envDefaults resolves the process defaults once: compiled-in constants,
// overridden by the environment when it parses and validates.
var envDefaults = sync.OnceValue(func() Options {
	o := Options{
		blockSize: DefaultBlockSize,
		threshold: DefaultParallelThreshold,
		workers:   DefaultWorkers,
		eps:       DefaultEpsilon,
		pivotEps:  DefaultPivotEpsilon,
		singular:  DefaultSingularPolicy,
	}

	cfg, err := config.Load()
	if err != nil {
		Logger().Error(err, "ignoring LINALG_* environment, using compiled-in defaults")
		logBackend()

		return o
	}
	if !cfg.Accelerate {
		accel.Disable()
	}
	logBackend()

	o.blockSize = cfg.BlockSize
	o.threshold = cfg.ParallelThreshold
	o.workers = cfg.Workers
	o.eps = cfg.Epsilon
	o.pivotEps = cfg.PivotEpsilon

	return o
})

// defaultOptions returns the effective process defaults.
func defaultOptions() Options {
	return envDefaults()
}

// gatherOptions applies opts over the process defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// par returns the parallel configuration of the kernels. parallel.For
// compares each region's items × cost with Threshold, so regions below the
// threshold run on the caller goroutine.
func (o Options) par() parallel.Config {
	return parallel.Config{Workers: o.workers, Threshold: o.threshold}
}

func validTol(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
