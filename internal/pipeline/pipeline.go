// Package pipeline implements the multi-pass densification pipeline.
// A schedule of injection counts is expanded into alternating inject and
// smooth stages, each pass feeding the next.
package pipeline

import (
	"context"
	"fmt"

	"github.com/tphakala/go-path-planner/internal/path"
)

// Stage represents a single processing stage in the planning pipeline.
// Each stage maps a whole path to a new path; there is no streaming state.
type Stage interface {
	// Process transforms the input path. Implementations must not modify p.
	Process(ctx context.Context, p *path.Path) (*path.Path, error)

	// Name returns a short description for logs.
	Name() string

	// OutputLen returns the number of points produced from n input points.
	OutputLen(n int) int
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageInject inserts evenly spaced points between neighbors.
	StageInject StageType = iota

	// StageSmooth relaxes interior points toward their neighbors.
	StageSmooth
)

// String returns the stage type name.
func (t StageType) String() string {
	switch t {
	case StageInject:
		return "inject"
	case StageSmooth:
		return "smooth"
	default:
		return fmt.Sprintf("StageType(%d)", int(t))
	}
}

// StageSpec specifies parameters for creating a stage.
type StageSpec struct {
	Type     StageType
	Pass     int // 1-based pass number
	Count    int // Injection count (StageInject only)
	InputLen int // Expected points entering the stage
	Len      int // Expected points leaving the stage
}

// Pipeline is the ordered list of stages derived from a schedule.
type Pipeline struct {
	schedule Schedule
	stages   []StageSpec
}

// BuildPipeline expands a schedule into one inject and one smooth stage per
// pass. Passes with a zero count still get an inject stage so every pass
// has the same shape; injecting zero points is a copy.
func BuildPipeline(schedule Schedule) (*Pipeline, error) {
	if schedule.Waypoints < 1 {
		return nil, fmt.Errorf("%w: pipeline needs at least one waypoint, got %d",
			path.ErrInvalidInput, schedule.Waypoints)
	}

	p := &Pipeline{
		schedule: schedule,
		stages:   make([]StageSpec, 0, defaultStageCapacity),
	}

	n := schedule.Waypoints
	for i, count := range schedule.Counts {
		if count < 0 {
			return nil, fmt.Errorf("%w: negative injection count %d in pass %d",
				path.ErrInvalidInput, count, i+1)
		}

		injected := PointsAfter(n, count)
		p.stages = append(p.stages,
			StageSpec{Type: StageInject, Pass: i + 1, Count: count, InputLen: n, Len: injected},
			StageSpec{Type: StageSmooth, Pass: i + 1, InputLen: injected, Len: injected},
		)
		n = injected
	}

	return p, nil
}

// GetStages returns the pipeline stages.
func (p *Pipeline) GetStages() []StageSpec {
	return p.stages
}

// GetSchedule returns the schedule the pipeline was built from.
func (p *Pipeline) GetSchedule() Schedule {
	return p.schedule
}

// GetPasses returns the number of inject+smooth passes.
func (p *Pipeline) GetPasses() int {
	return len(p.stages) / stagesPerPass
}

// GetFinalLen returns the expected number of points after the last stage.
func (p *Pipeline) GetFinalLen() int {
	if len(p.stages) == 0 {
		return p.schedule.Waypoints
	}
	return p.stages[len(p.stages)-1].Len
}
