package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesReference(t *testing.T) {
	simd := Default()
	ref := Reference()

	// Odd length exercises the scalar tail of vectorized kernels.
	a := make([]float64, 67)
	b := make([]float64, 67)
	for i := range a {
		a[i] = float64(i)*0.25 - 3
		b[i] = float64(i%7) - 2.5
	}

	assert.InDelta(t, ref.DotProduct(a, b), simd.DotProduct(a, b), 1e-9)
	assert.InDelta(t, ref.Sum(a), simd.Sum(a), 1e-9)

	want := make([]float64, len(a))
	got := make([]float64, len(a))
	divisor := make([]float64, len(a))
	for i := range divisor {
		divisor[i] = float64(i%5 + 1)
	}
	ref.Div(want, a, divisor)
	simd.Div(got, a, divisor)
	// Division is correctly rounded on every backend.
	assert.Equal(t, want, got)
}

func TestDivInPlace(t *testing.T) {
	v := []float64{0.1, -2, 4}
	Default().Div(v, v, []float64{5, 4, 8})
	assert.Equal(t, []float64{0.02, -0.5, 0.5}, v)
}

func TestEmptyInputs(t *testing.T) {
	assert.Zero(t, Default().Sum(nil))
	assert.Zero(t, Reference().DotProduct(nil, nil))
}
