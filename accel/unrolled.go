// SPDX-License-Identifier: MIT

package accel

// unrolled is the portable default backend: 4-way unrolled loops with the
// bounds checks hoisted out of the body. Every element still sees exactly one
// multiply and one add in index order, so results match the scalar fallback
// bit for bit. Products are converted explicitly to forbid FMA fusion.
type unrolled struct{}

// Unrolled returns the portable unrolled backend.
func Unrolled() Backend { return unrolled{} }

func (unrolled) Name() string { return "unrolled" }

func (unrolled) AddFloat64(y, x []float64) { addUnrolled(y, x) }
func (unrolled) AddFloat32(y, x []float32) { addUnrolled(y, x) }
func (unrolled) AddInt32(y, x []int32)     { addUnrolled(y, x) }

func (unrolled) ScaleFloat64(alpha float64, x []float64) { scaleUnrolled(alpha, x) }
func (unrolled) ScaleFloat32(alpha float32, x []float32) { scaleUnrolled(alpha, x) }

func (unrolled) AxpyFloat64(alpha float64, x, y []float64) { axpyUnrolled(alpha, x, y) }
func (unrolled) AxpyFloat32(alpha float32, x, y []float32) { axpyUnrolled(alpha, x, y) }

func addUnrolled[T float32 | float64 | int32](y, x []T) {
	n := len(y)
	x = x[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += x[i]
		y[i+1] += x[i+1]
		y[i+2] += x[i+2]
		y[i+3] += x[i+3]
	}
	for ; i < n; i++ {
		y[i] += x[i]
	}
}

func scaleUnrolled[T float32 | float64](alpha T, x []T) {
	n := len(x)
	i := 0
	for ; i+4 <= n; i += 4 {
		x[i] *= alpha
		x[i+1] *= alpha
		x[i+2] *= alpha
		x[i+3] *= alpha
	}
	for ; i < n; i++ {
		x[i] *= alpha
	}
}

func axpyUnrolled[T float32 | float64](alpha T, x, y []T) {
	n := len(y)
	x = x[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		y[i] += T(alpha * x[i])
		y[i+1] += T(alpha * x[i+1])
		y[i+2] += T(alpha * x[i+2])
		y[i+3] += T(alpha * x[i+3])
	}
	for ; i < n; i++ {
		y[i] += T(alpha * x[i])
	}
}
