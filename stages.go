package planner

import (
	"github.com/tphakala/go-path-planner/internal/engine"
	"github.com/tphakala/go-path-planner/internal/pipeline"
)

// newInjectStage creates a linear injection stage.
func newInjectStage(count int) (pipeline.Stage, error) {
	stage, err := engine.NewInjectStage(count)
	if err != nil {
		return nil, err
	}
	return stage, nil
}

// newSmoothStage creates a gradient-descent smoothing stage from the path
// weights of t. The velocity weights are not used here.
func newSmoothStage(t Tuning) (pipeline.Stage, error) {
	stage, err := engine.NewSmoothStage(smoothParams(t))
	if err != nil {
		return nil, err
	}
	return stage, nil
}

// smoothParams maps path tuning to engine parameters.
func smoothParams(t Tuning) engine.SmoothParams {
	return engine.SmoothParams{
		DataWeight:    t.PathAlpha,
		SmoothWeight:  t.PathBeta,
		Tolerance:     t.PathTolerance,
		MaxIterations: t.MaxIterations,
	}
}

// Ensure implementations satisfy the interface
var (
	_ pipeline.Stage = (*engine.InjectStage)(nil)
	_ pipeline.Stage = (*engine.SmoothStage)(nil)
	_ statsProvider  = (*engine.SmoothStage)(nil)
)
