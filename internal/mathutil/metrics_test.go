package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-path-planner/internal/path"
)

func mustPath(t *testing.T, rows [][]float64) *path.Path {
	t.Helper()
	p, err := path.New(rows)
	require.NoError(t, err)
	return p
}

func TestSegmentLengths(t *testing.T) {
	p := mustPath(t, [][]float64{{0, 0, 90}, {3, 4, 180}, {3, 10, 270}})

	assert.InDeltaSlice(t, []float64{5, 6}, SegmentLengths(p, DefaultSpatialDims), 1e-12)

	// Heading dimension participates when all dims are requested.
	all := SegmentLengths(p, 0)
	require.Len(t, all, 2)
	assert.Greater(t, all[0], 90.0)
}

func TestSegmentLengths_SinglePoint(t *testing.T) {
	p := mustPath(t, [][]float64{{1, 1}})
	assert.Empty(t, SegmentLengths(p, 2))
	assert.Zero(t, ArcLength(p, 2))
}

func TestArcLength(t *testing.T) {
	p := mustPath(t, [][]float64{{0, 0}, {10, 0}, {10, 10}})
	assert.InDelta(t, 20.0, ArcLength(p, DefaultSpatialDims), 1e-12)
}

func TestArcLength_DimsClamped(t *testing.T) {
	p := mustPath(t, [][]float64{{0}, {2}, {5}})
	assert.InDelta(t, 5.0, ArcLength(p, DefaultSpatialDims), 1e-12)
}

func TestMaxDeviation(t *testing.T) {
	a := mustPath(t, [][]float64{{0, 0}, {1, 1}, {2, 2}})
	b := mustPath(t, [][]float64{{0, 0}, {1, 4}, {2, 2.5}})

	dev, idx := MaxDeviation(a, b, DefaultSpatialDims)
	assert.InDelta(t, 3.0, dev, 1e-12)
	assert.Equal(t, 1, idx)

	dev, idx = MaxDeviation(a, a, DefaultSpatialDims)
	assert.Zero(t, dev)
	assert.Equal(t, 0, idx)
}
