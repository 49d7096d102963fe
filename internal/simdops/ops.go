// Package simdops provides SIMD-accelerated vector operations on path rows.
//
// Operations dispatch to github.com/tphakala/simd, which selects AVX2/SSE/NEON
// kernels at runtime and falls back to pure Go on other platforms.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations on float64 vectors.
// Function pointers keep call sites independent of the SIMD backend, so
// tests and benchmarks can swap in reference implementations.
type Ops struct {
	// DotProduct returns Σ a[i]*b[i]. Callers pass slices of equal length.
	DotProduct func(a, b []float64) float64

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Div divides element-wise: dst[i] = a[i] / b[i]
	Div func(dst, a, b []float64)
}

// ops64 is pre-instantiated to avoid repeated allocation.
var ops64 = Ops{
	DotProduct: f64.DotProduct,
	Sum:        f64.Sum,
	Div:        f64.Div,
}

// Default returns the SIMD operations used by the planner.
func Default() *Ops {
	return &ops64
}

// Reference returns scalar implementations with the same semantics as Default.
// Used to cross-check the SIMD backend.
func Reference() *Ops {
	return &Ops{
		DotProduct: func(a, b []float64) float64 {
			n := min(len(a), len(b))
			var sum float64
			for i := range n {
				sum += a[i] * b[i]
			}
			return sum
		},
		Sum: func(a []float64) float64 {
			var sum float64
			for _, v := range a {
				sum += v
			}
			return sum
		},
		Div: func(dst, a, b []float64) {
			n := min(len(dst), len(a), len(b))
			for i := range n {
				dst[i] = a[i] / b[i]
			}
		},
	}
}
