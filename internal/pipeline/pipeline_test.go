package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-path-planner/internal/path"
)

func TestBuildPipeline_StageLayout(t *testing.T) {
	s := PlanSchedule(3, 5, 0.1)
	p, err := BuildPipeline(s)
	require.NoError(t, err)

	want := []StageSpec{
		{Type: StageInject, Pass: 1, Count: 5, InputLen: 3, Len: 13},
		{Type: StageSmooth, Pass: 1, InputLen: 13, Len: 13},
		{Type: StageInject, Pass: 2, Count: 3, InputLen: 13, Len: 49},
		{Type: StageSmooth, Pass: 2, InputLen: 49, Len: 49},
		{Type: StageInject, Pass: 3, Count: 0, InputLen: 49, Len: 49},
		{Type: StageSmooth, Pass: 3, InputLen: 49, Len: 49},
	}
	assert.Equal(t, want, p.GetStages())
	assert.Equal(t, ScheduleLen, p.GetPasses())
	assert.Equal(t, s.FinalPoints, p.GetFinalLen())
	assert.Equal(t, s, p.GetSchedule())
}

func TestBuildPipeline_ZeroScheduleKeepsLength(t *testing.T) {
	s := PlanSchedule(60, 50, 0.5)
	require.False(t, s.Feasible)

	p, err := BuildPipeline(s)
	require.NoError(t, err)
	for _, st := range p.GetStages() {
		assert.Equal(t, 60, st.Len, "%s pass %d", st.Type, st.Pass)
	}
}

func TestBuildPipeline_Errors(t *testing.T) {
	_, err := BuildPipeline(Schedule{})
	require.ErrorIs(t, err, path.ErrInvalidInput)

	_, err = BuildPipeline(Schedule{Waypoints: 4, Counts: [ScheduleLen]int{1, -1, 0}})
	require.ErrorIs(t, err, path.ErrInvalidInput)
}

func TestStageType_String(t *testing.T) {
	assert.Equal(t, "inject", StageInject.String())
	assert.Equal(t, "smooth", StageSmooth.String())
	assert.Equal(t, "StageType(9)", StageType(9).String())
}
