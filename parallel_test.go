package planner

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-path-planner/internal/testutil"
)

// TestPlanners_Concurrent verifies that independent planners running in
// parallel produce the same paths as sequential runs.
func TestPlanners_Concurrent(t *testing.T) {
	const sessions = 8

	inputs := make([][][]float64, sessions)
	for i := range inputs {
		inputs[i] = testutil.Zigzag(4+i, float64(i+1))
	}

	// Sequential reference
	want := make([][][]float64, sessions)
	for i, waypoints := range inputs {
		smooth, err := SmoothWaypoints(waypoints, 15, 0.1)
		require.NoError(t, err)
		want[i] = smooth
	}

	got := make([][][]float64, sessions)
	errs := make([]error, sessions)

	var wg sync.WaitGroup
	for i, waypoints := range inputs {
		wg.Add(1)
		go func(session int, waypoints [][]float64) {
			defer wg.Done()

			p, err := New(waypoints, nil)
			if err != nil {
				errs[session] = err
				return
			}
			if err := p.Calculate(15, 0.1); err != nil {
				errs[session] = fmt.Errorf("session %d: %w", session, err)
				return
			}
			got[session] = p.SmoothPath()
		}(i, waypoints)
	}
	wg.Wait()

	for i := range sessions {
		require.NoError(t, errs[i])
		assert.Equal(t, want[i], got[i], "session %d", i)
	}
}

// TestPlanners_ShareNoState verifies that calculating one planner leaves
// another planner built from the same waypoints untouched.
func TestPlanners_ShareNoState(t *testing.T) {
	waypoints := [][]float64{{0, 0}, {10, 0}, {10, 10}}
	a := mustPlanner(t, waypoints, nil)
	b := mustPlanner(t, waypoints, &Config{Preset: PresetSmooth})

	require.NoError(t, a.Calculate(5, 0.1))
	assert.Nil(t, b.SmoothPath())
	assert.Equal(t, [3]int{}, b.Schedule())

	require.NoError(t, b.Calculate(2, 0.5))
	assert.Len(t, a.SmoothPath(), 49)
	assert.Len(t, b.SmoothPath(), 3)
	assert.Equal(t, waypoints, a.OriginalPath())
}
