package planner

import (
	"fmt"

	"github.com/tphakala/go-path-planner/internal/pipeline"
)

// stagePipeline wraps pipeline.Pipeline with planner-specific stage specs.
type stagePipeline struct {
	*pipeline.Pipeline
	stages []stageSpec
}

// stageSpec extends pipeline.StageSpec with the engine that runs it.
type stageSpec struct {
	pipeline.StageSpec
	engine string // Implementation: "inject", "smooth"
}

// planSchedule picks the schedule search configured for the planner.
func planSchedule(config *Config, numWaypoints int, totalTime, timeStep float64) pipeline.Schedule {
	if config.MaximalSearch {
		return pipeline.PlanScheduleMaximal(numWaypoints, totalTime, timeStep)
	}
	return pipeline.PlanSchedule(numWaypoints, totalTime, timeStep)
}

// buildPipeline expands a schedule into planner stage specs.
func buildPipeline(schedule pipeline.Schedule) (*stagePipeline, error) {
	p, err := pipeline.BuildPipeline(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	sp := &stagePipeline{
		Pipeline: p,
		stages:   make([]stageSpec, 0, len(p.GetStages())),
	}

	for _, stage := range p.GetStages() {
		s := stageSpec{
			StageSpec: stage,
		}

		switch stage.Type {
		case pipeline.StageInject:
			s.engine = "inject"
		case pipeline.StageSmooth:
			s.engine = "smooth"
		default:
			s.engine = "unknown"
		}

		sp.stages = append(sp.stages, s)
	}

	return sp, nil
}

// createStage creates a Stage implementation based on the specification.
// Smoothing stages take their weights from config.Tuning.
func createStage(spec stageSpec, config *Config) (pipeline.Stage, error) {
	switch spec.Type {
	case pipeline.StageInject:
		return newInjectStage(spec.Count)

	case pipeline.StageSmooth:
		return newSmoothStage(config.Tuning)

	default:
		return nil, fmt.Errorf("unsupported stage type: %v", spec.Type)
	}
}
