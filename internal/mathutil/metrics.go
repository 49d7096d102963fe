// Package mathutil provides geometric measurements over planned paths.
package mathutil

import (
	"math"

	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/simdops"
)

// clampDims limits dims to [1, p.Dim()]. Non-positive dims select all columns.
func clampDims(p *path.Path, dims int) int {
	if dims <= 0 || dims > p.Dim() {
		return p.Dim()
	}
	return dims
}

// SegmentLengths returns the Euclidean length of every segment of p,
// measured over the leading dims dimensions.
// A path with fewer than two points has no segments.
func SegmentLengths(p *path.Path, dims int) []float64 {
	n := p.Len()
	if n < minSegmentPoints {
		return []float64{}
	}

	dims = clampDims(p, dims)
	ops := simdops.Default()
	diff := make([]float64, dims)
	lengths := make([]float64, n-1)

	prev := p.RawRow(0)[:dims]
	for i := 1; i < n; i++ {
		cur := p.RawRow(i)[:dims]
		for j := range dims {
			diff[j] = cur[j] - prev[j]
		}
		lengths[i-1] = math.Sqrt(ops.DotProduct(diff, diff))
		prev = cur
	}

	return lengths
}

// ArcLength returns the polyline length of p over the leading dims dimensions.
func ArcLength(p *path.Path, dims int) float64 {
	lengths := SegmentLengths(p, dims)
	if len(lengths) == 0 {
		return 0
	}
	return simdops.Default().Sum(lengths)
}

// MaxDeviation returns the largest Euclidean distance between corresponding
// points of a and b over the leading dims dimensions, and the index where it
// occurs. Paths of different length compare over the shorter prefix.
func MaxDeviation(a, b *path.Path, dims int) (float64, int) {
	n := min(a.Len(), b.Len())
	if n == 0 {
		return 0, -1
	}

	dims = min(clampDims(a, dims), clampDims(b, dims))
	ops := simdops.Default()
	diff := make([]float64, dims)

	maxDev, maxIdx := 0.0, 0
	for i := range n {
		ra, rb := a.RawRow(i), b.RawRow(i)
		for j := range dims {
			diff[j] = ra[j] - rb[j]
		}
		if d := math.Sqrt(ops.DotProduct(diff, diff)); d > maxDev {
			maxDev, maxIdx = d, i
		}
	}

	return maxDev, maxIdx
}
