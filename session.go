package planner

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"

	"github.com/tphakala/go-path-planner/internal/engine"
	"github.com/tphakala/go-path-planner/internal/mathutil"
	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/pipeline"
)

// tracer writes to trace with key 'planner'
func tracer() tracing.Trace {
	return tracing.Select("planner")
}

// Planner is one planning session. It owns a private copy of the
// waypoints and the result of its most recent Calculate.
//
// A Planner must not be used from several goroutines at once.
type Planner struct {
	id       uuid.UUID
	config   Config
	original *path.Path

	// Result of the last Calculate; smooth is nil unless it succeeded.
	schedule pipeline.Schedule
	smooth   *path.Path
	raw      *path.Path // final round before smoothing
	passes   []PassInfo
}

// statsProvider is implemented by stages that record smoothing statistics.
type statsProvider interface {
	Stats() engine.SmoothStats
}

// Calculate plans and runs the densification for a trajectory of
// totalTime played back every timeStep. See CalculateContext.
func (p *Planner) Calculate(totalTime, timeStep float64) error {
	return p.CalculateContext(context.Background(), totalTime, timeStep)
}

// CalculateContext plans the injection schedule for totalTime/timeStep
// points and runs one inject+smooth round per schedule entry, zero entries
// included. The result replaces any previous smooth path. On error the
// planner holds no smooth path; a *NonConvergenceError carries the partial
// result of the failing round.
//
// The context is checked between smoothing passes. A schedule whose final
// path would exceed MaxPathPoints fails with ErrPathTooLarge before any
// stage runs.
func (p *Planner) CalculateContext(ctx context.Context, totalTime, timeStep float64) error {
	p.smooth = nil
	p.raw = nil
	p.passes = nil

	if err := validateBudget(totalTime, timeStep); err != nil {
		return err
	}

	schedule := planSchedule(&p.config, p.original.Len(), totalTime, timeStep)
	p.schedule = schedule

	if !schedule.Feasible && p.config.RequireFeasibleSchedule {
		return schedule.Err()
	}

	if schedule.FinalPoints > MaxPathPoints {
		return fmt.Errorf("%w: schedule %v yields %d points from %d waypoints, limit %d",
			ErrPathTooLarge, schedule.Counts, schedule.FinalPoints, p.original.Len(), MaxPathPoints)
	}

	pl, err := buildPipeline(schedule)
	if err != nil {
		return err
	}

	working := p.original
	var raw *path.Path
	passes := make([]PassInfo, 0, pl.GetPasses())

	for i, spec := range pl.stages {
		stage, err := createStage(spec, &p.config)
		if err != nil {
			return fmt.Errorf("failed to create stage %d: %w", i, err)
		}

		tracer().Debugf("planner %s: pass %d %s (%s), %d -> %d points",
			p.id, spec.Pass, stage.Name(), spec.engine, spec.InputLen, spec.Len)

		out, err := stage.Process(ctx, working)
		if err != nil {
			out, err = p.handleStageError(spec, stage, err)
			if err != nil {
				return err
			}
		}

		if err := checkStageLen(spec, stage, working, out); err != nil {
			return err
		}

		switch spec.Type {
		case pipeline.StageInject:
			raw = out
			passes = append(passes, PassInfo{Count: spec.Count, Points: out.Len()})

		case pipeline.StageSmooth:
			if sp, ok := stage.(statsProvider); ok && len(passes) > 0 {
				stats := sp.Stats()
				last := &passes[len(passes)-1]
				last.Iterations = stats.Iterations
				last.Change = stats.Change
				last.Converged = stats.Converged
			}
		}

		working = out
	}

	p.smooth = working
	p.raw = raw
	p.passes = passes

	tracer().Infof("planner %s: %d waypoints -> %d points, schedule %v",
		p.id, p.original.Len(), working.Len(), schedule.Counts)

	return nil
}

// handleStageError converts a failed stage into the caller-facing error, or
// accepts a best-effort smoothing result when configured to.
func (p *Planner) handleStageError(spec stageSpec, stage pipeline.Stage, err error) (*path.Path, error) {
	var nce *engine.NonConvergenceError
	if !errors.As(err, &nce) {
		return nil, fmt.Errorf("stage %s (pass %d): %w", stage.Name(), spec.Pass, err)
	}

	if p.config.BestEffort && !nce.Diverged && nce.Path != nil {
		tracer().Infof("planner %s: pass %d did not converge after %d iterations, keeping best effort",
			p.id, spec.Pass, nce.Iterations)
		return nce.Path, nil
	}

	var partial [][]float64
	if nce.Path != nil {
		partial = nce.Path.Rows()
	}

	return nil, &NonConvergenceError{
		Pass:       spec.Pass,
		Iterations: nce.Iterations,
		Change:     nce.Change,
		Tolerance:  nce.Tolerance,
		Diverged:   nce.Diverged,
		Partial:    partial,
	}
}

// checkStageLen verifies that a stage produced the number of points the
// pipeline planned for it.
func checkStageLen(spec stageSpec, stage pipeline.Stage, in, out *path.Path) error {
	want := stage.OutputLen(in.Len())
	if want != spec.Len || out.Len() != spec.Len {
		return fmt.Errorf("stage %s (pass %d): produced %d points from %d, planned %d",
			stage.Name(), spec.Pass, out.Len(), in.Len(), spec.Len)
	}
	return nil
}

func validateBudget(totalTime, timeStep float64) error {
	if !(totalTime > 0) || math.IsInf(totalTime, 0) {
		return fmt.Errorf("%w: total time must be positive and finite, got %v", ErrInvalidInput, totalTime)
	}
	if !(timeStep > 0) || math.IsInf(timeStep, 0) {
		return fmt.Errorf("%w: time step must be positive and finite, got %v", ErrInvalidInput, timeStep)
	}
	return nil
}

// SmoothPath returns a copy of the smooth path, or nil if the last
// Calculate failed or none has run.
func (p *Planner) SmoothPath() [][]float64 {
	if p.smooth == nil {
		return nil
	}
	return p.smooth.Rows()
}

// OriginalPath returns a copy of the waypoints.
func (p *Planner) OriginalPath() [][]float64 {
	return p.original.Rows()
}

// Schedule returns the injection counts of the last Calculate.
func (p *Planner) Schedule() [pipeline.ScheduleLen]int {
	return p.schedule.Counts
}

// Tuning returns the smoothing weights in effect.
func (p *Planner) Tuning() Tuning {
	return p.config.Tuning
}

// SetTuning replaces the smoothing weights and switches the planner to
// PresetCustom. It takes effect on the next Calculate.
func (p *Planner) SetTuning(t Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	p.config.Tuning = t
	p.config.Preset = PresetCustom
	return nil
}

// ID returns the session identifier used in trace output.
func (p *Planner) ID() string {
	return p.id.String()
}

// GetInfo returns information about the planner and its last run.
func (p *Planner) GetInfo() Info {
	info := Info{
		SessionID:    p.id.String(),
		Preset:       p.config.Preset,
		Schedule:     p.schedule.Counts,
		TargetPoints: p.schedule.TargetPoints,
		Feasible:     p.schedule.Feasible,
		Waypoints:    p.original.Len(),
	}

	if p.smooth == nil {
		return info
	}

	dims := p.config.SpatialDims
	info.Points = p.smooth.Len()
	info.Passes = append([]PassInfo(nil), p.passes...)
	info.ArcLength = mathutil.ArcLength(p.smooth, dims)
	if p.raw != nil {
		info.RawArcLength = mathutil.ArcLength(p.raw, dims)
		info.MaxDeviation, _ = mathutil.MaxDeviation(p.smooth, p.raw, dims)
	}

	return info
}
