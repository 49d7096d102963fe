// Package testutil provides reusable test helper functions for path planner tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-path-planner/internal/path"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	SmoothTolerance  = 1e-6
)

// MustPath builds a path from rows or fails the test.
func MustPath(t testing.TB, rows [][]float64) *path.Path {
	t.Helper()
	p, err := path.New(rows)
	require.NoError(t, err)
	return p
}

// Zigzag returns an n-point 2D path alternating between y=0 and y=amplitude
// with unit x spacing. Useful as a worst case for smoothing.
func Zigzag(n int, amplitude float64) [][]float64 {
	rows := make([][]float64, n)
	for i := range n {
		y := 0.0
		if i%2 == 1 {
			y = amplitude
		}
		rows[i] = []float64{float64(i), y}
	}
	return rows
}

// AssertEndpointsPreserved verifies that got starts and ends exactly at the
// first and last point of want.
func AssertEndpointsPreserved(t *testing.T, want, got *path.Path) bool {
	t.Helper()
	ok := assert.Equal(t, want.First(), got.First(), "first point moved")
	return assert.Equal(t, want.Last(), got.Last(), "last point moved") && ok
}

// AssertNoNaNOrInf verifies that no value of the path is NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, rows [][]float64) bool {
	t.Helper()
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) {
				return assert.Fail(t, "found NaN", "rows[%d][%d] is NaN", i, j)
			}
			if math.IsInf(v, 0) {
				return assert.Fail(t, "found Inf", "rows[%d][%d] is Inf", i, j)
			}
		}
	}
	return true
}

// AssertRowsInDelta verifies that two matrices have the same shape and
// agree elementwise within tolerance.
func AssertRowsInDelta(t *testing.T, want, got [][]float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), "row count mismatch") {
		return false
	}
	for i := range want {
		if !assert.InDeltaSlice(t, want[i], got[i], tolerance, "row %d", i) {
			return false
		}
	}
	return true
}

// AssertNonIncreasing verifies s[i] <= s[i-1]*(1+slack) for every i.
// slack absorbs floating-point noise in convergence sequences.
func AssertNonIncreasing(t *testing.T, s []float64, slack float64) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1]*(1+slack) {
			return assert.Fail(t, "not non-increasing",
				"s[%d]=%g > s[%d]=%g", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
