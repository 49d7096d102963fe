package engine

import (
	"context"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/testutil"
)

// =============================================================================
// Injection length law and endpoints
// =============================================================================

func TestInject_LengthLaw(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()

	inputs := map[string][][]float64{
		"two points":   {{0, 0}, {10, 0}},
		"three points": {{0, 0}, {10, 0}, {10, 10}},
		"4d waypoints": {{2, 2, 0, 1}, {2, 7, 90, 2}, {2, 12, 180, 3}, {7, 22, 450, 6}, {22, 2, 1080, 1}},
	}

	for name, rows := range inputs {
		p := testutil.MustPath(t, rows)
		for k := 0; k <= 8; k++ {
			out, err := Inject(p, k)
			require.NoError(t, err, "%s k=%d", name, k)

			assert.Equal(t, p.Len()+k*(p.Len()-1), out.Len(), "%s k=%d", name, k)
			assert.Equal(t, InjectedLen(p.Len(), k), out.Len())
			assert.Equal(t, p.Dim(), out.Dim())
			testutil.AssertEndpointsPreserved(t, p, out)
		}
	}
}

func TestInject_InterpolatedValues(t *testing.T) {
	p := testutil.MustPath(t, [][]float64{{0, 0}, {10, 0}, {10, 10}})

	out, err := Inject(p, 4)
	require.NoError(t, err)

	want := [][]float64{
		{0, 0}, {2, 0}, {4, 0}, {6, 0}, {8, 0},
		{10, 0}, {10, 2}, {10, 4}, {10, 6}, {10, 8},
		{10, 10},
	}
	testutil.AssertRowsInDelta(t, want, out.Rows(), testutil.DefaultTolerance)
}

func TestInject_OriginalPointsKept(t *testing.T) {
	p := testutil.MustPath(t, [][]float64{{1, 2}, {2, 7}, {4, 7}, {6, 9}, {10, 11}})
	const k = 3

	out, err := Inject(p, k)
	require.NoError(t, err)

	for i := range p.Len() {
		assert.Equal(t, p.Row(i), out.Row(i*(k+1)), "original point %d", i)
	}
}

func TestInject_AllDimensionsInterpolated(t *testing.T) {
	// Heading and node index are blended linearly like x and y.
	p := testutil.MustPath(t, [][]float64{{0, 0, 0, 1}, {4, 8, 90, 2}})

	out, err := Inject(p, 1)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	assert.InDeltaSlice(t, []float64{2, 4, 45, 1.5}, out.Row(1), testutil.DefaultTolerance)
}

// =============================================================================
// Zero injection and errors
// =============================================================================

func TestInject_ZeroIsCopy(t *testing.T) {
	p := testutil.MustPath(t, [][]float64{{0, 0}, {3, 1}, {5, 5}})

	out, err := Inject(p, 0)
	require.NoError(t, err)

	want, err := path.Copy(p)
	require.NoError(t, err)
	assert.True(t, want.Equal(out))

	out.RawRow(1)[0] = 100
	assert.Equal(t, 3.0, p.At(1, 0), "zero injection must not alias its input")
}

func TestInject_Errors(t *testing.T) {
	single := testutil.MustPath(t, [][]float64{{1, 1}})
	pair := testutil.MustPath(t, [][]float64{{0, 0}, {1, 1}})

	_, err := Inject(single, 2)
	require.ErrorIs(t, err, path.ErrInvalidInput)

	_, err = Inject(nil, 2)
	require.ErrorIs(t, err, path.ErrInvalidInput)

	_, err = Inject(pair, -1)
	require.ErrorIs(t, err, path.ErrInvalidInput)

	_, err = Inject(pair, MaxPathPoints)
	require.ErrorIs(t, err, ErrPathTooLarge)
	require.NotErrorIs(t, err, path.ErrInvalidInput)
}

func TestInject_DividesSegment(t *testing.T) {
	// 0.1*(1/5) and 0.1/5 differ in the last bit; injected points use the
	// division so 0.02 steps come out exact.
	p := testutil.MustPath(t, [][]float64{{0, 1}, {0.1, 1.1}})

	out, err := Inject(p, 4)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0, 1},
		{0.02, 1.02},
		{0.04, 1.04},
		{0.06, 1.06},
		{0.08, 1.08},
		{0.1, 1.1},
	}, out.Rows())
}

// =============================================================================
// Stage adapter
// =============================================================================

func TestInjectStage(t *testing.T) {
	stage, err := NewInjectStage(5)
	require.NoError(t, err)
	assert.Equal(t, "inject(5)", stage.Name())
	assert.Equal(t, 13, stage.OutputLen(3))

	p := testutil.MustPath(t, [][]float64{{0, 0}, {10, 0}, {10, 10}})
	out, err := stage.Process(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 13, out.Len())

	_, err = NewInjectStage(-2)
	require.ErrorIs(t, err, path.ErrInvalidInput)
}
