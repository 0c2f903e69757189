// SPDX-License-Identifier: MIT

// Package accel is the pluggable vector backend behind the dense kernels.
//
// Purpose:
//   - Route the three hot primitives (y += x, x *= α, y += α·x) to a backend
//     when one is active and supports the element type.
//   - Let callers keep a plain generic loop as the fallback.
//
// Contract:
//   - Add, Scale and Axpy return false when no backend is active, the element
//     type has no typed primitive, or the slice lengths differ. In that case
//     nothing was written and the caller runs its own loop.
//   - A backend must produce results identical to the scalar loop
//     (one rounding per multiply, one per add, index order).
//   - SetBackend, Disable and Enable are safe for concurrent use; swapping the
//     backend while kernels run is allowed, a kernel sees either old or new.
package accel

import (
	"sync/atomic"
)

// Backend provides typed vector primitives. Implementations may wrap BLAS,
// Accelerate or hand-written assembly.
type Backend interface {
	// Name identifies the backend in logs.
	Name() string

	// AddFloat64 computes y[i] += x[i]; len(x) == len(y).
	AddFloat64(y, x []float64)
	AddFloat32(y, x []float32)
	AddInt32(y, x []int32)

	// ScaleFloat64 computes x[i] *= alpha.
	ScaleFloat64(alpha float64, x []float64)
	ScaleFloat32(alpha float32, x []float32)

	// AxpyFloat64 computes y[i] += alpha*x[i]; len(x) == len(y).
	AxpyFloat64(alpha float64, x, y []float64)
	AxpyFloat32(alpha float32, x, y []float32)
}

type holder struct{ b Backend }

var (
	current atomic.Pointer[holder]
	enabled atomic.Bool
)

func init() {
	enabled.Store(true)
	if DetectFeatures().Vector() {
		current.Store(&holder{b: unrolled{}})
	}
}

// SetBackend installs b as the active backend; nil removes it.
func SetBackend(b Backend) {
	if b == nil {
		current.Store(nil)
		return
	}
	current.Store(&holder{b: b})
}

// Current returns the active backend, or nil when none is active or
// acceleration is disabled.
func Current() Backend {
	if !enabled.Load() {
		return nil
	}
	h := current.Load()
	if h == nil {
		return nil
	}
	return h.b
}

// Name returns the active backend name, or "generic" when none is active.
func Name() string {
	if b := Current(); b != nil {
		return b.Name()
	}
	return "generic"
}

// Disable turns acceleration off without forgetting the installed backend.
func Disable() { enabled.Store(false) }

// Enable turns acceleration back on.
func Enable() { enabled.Store(true) }

// Enabled reports whether acceleration is switched on.
func Enabled() bool { return enabled.Load() }

// Add computes y[i] += x[i] on the backend. It reports false if nothing ran.
func Add[T any](y, x []T) bool {
	b := Current()
	if b == nil || len(x) != len(y) {
		return false
	}
	switch ys := any(y).(type) {
	case []float64:
		b.AddFloat64(ys, any(x).([]float64))
	case []float32:
		b.AddFloat32(ys, any(x).([]float32))
	case []int32:
		b.AddInt32(ys, any(x).([]int32))
	default:
		return false
	}
	return true
}

// Scale computes x[i] *= alpha on the backend. It reports false if nothing ran.
func Scale[T any](alpha T, x []T) bool {
	b := Current()
	if b == nil {
		return false
	}
	switch xs := any(x).(type) {
	case []float64:
		b.ScaleFloat64(any(alpha).(float64), xs)
	case []float32:
		b.ScaleFloat32(any(alpha).(float32), xs)
	default:
		return false
	}
	return true
}

// Axpy computes y[i] += alpha*x[i] on the backend. It reports false if nothing ran.
func Axpy[T any](alpha T, x, y []T) bool {
	b := Current()
	if b == nil || len(x) != len(y) {
		return false
	}
	switch ys := any(y).(type) {
	case []float64:
		b.AxpyFloat64(any(alpha).(float64), any(x).([]float64), ys)
	case []float32:
		b.AxpyFloat32(any(alpha).(float32), any(x).([]float32), ys)
	default:
		return false
	}
	return true
}
