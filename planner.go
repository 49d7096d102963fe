package planner

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tphakala/go-path-planner/internal/engine"
	"github.com/tphakala/go-path-planner/internal/mathutil"
	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/pipeline"
)

// Config holds planner configuration.
type Config struct {
	// Preset selects predefined smoothing weights. Tuning is only read
	// when Preset is PresetCustom.
	Preset Preset

	// Tuning holds the smoothing weights for PresetCustom.
	Tuning Tuning

	// MaximalSearch makes the three-round schedule search keep the
	// combination with the most points instead of the last fitting one.
	MaximalSearch bool

	// RequireFeasibleSchedule makes Calculate fail with
	// ErrNoFeasibleSchedule when no injection schedule fits the point
	// budget. By default the planner injects nothing and only smooths.
	RequireFeasibleSchedule bool

	// BestEffort accepts the last smoothing result when a round does not
	// converge within Tuning.MaxIterations. By default Calculate fails.
	// Diverged rounds always fail.
	BestEffort bool

	// SpatialDims is the number of leading columns measured as position
	// in Info. Zero selects 2 (x, y).
	SpatialDims int
}

// Tuning holds the smoothing weights. It is a value object; change it
// through Planner.SetTuning before calling Calculate.
type Tuning struct {
	// PathAlpha weights the pull toward the original points.
	PathAlpha float64

	// PathBeta weights the pull toward the neighbors.
	PathBeta float64

	// PathTolerance ends smoothing once a pass changes the path by less
	// than this summed absolute amount.
	PathTolerance float64

	// MaxIterations caps smoothing passes per round. Zero selects the
	// engine default of 100000.
	MaxIterations int

	// VelocityAlpha, VelocityBeta and VelocityTolerance are not used by the
	// planner. They travel with the path tuning for velocity profiling
	// done on the smooth path by the caller.
	VelocityAlpha     float64
	VelocityBeta      float64
	VelocityTolerance float64
}

// Preset enumerates predefined smoothing strengths.
type Preset int

const (
	// PresetDefault uses alpha 0.7, beta 0.3, tolerance 1e-7.
	PresetDefault Preset = iota

	// PresetSmooth favors the neighbors and rounds corners strongly.
	PresetSmooth

	// PresetTight stays close to the injected points.
	PresetTight

	// PresetCustom indicates manual configuration of Config.Tuning.
	PresetCustom
)

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case PresetDefault:
		return "default"
	case PresetSmooth:
		return "smooth"
	case PresetTight:
		return "tight"
	case PresetCustom:
		return "custom"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// Common errors returned by the planner.
var (
	// ErrInvalidInput indicates malformed waypoints or a non-positive
	// time budget.
	ErrInvalidInput = path.ErrInvalidInput

	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid planner configuration")

	// ErrNonConvergence indicates that smoothing did not settle within its
	// iteration cap. The returned error is a *NonConvergenceError.
	ErrNonConvergence = engine.ErrNonConvergence

	// ErrNoFeasibleSchedule indicates that no injection schedule fits the
	// point budget. Only returned with Config.RequireFeasibleSchedule.
	ErrNoFeasibleSchedule = pipeline.ErrNoFeasibleSchedule

	// ErrPathTooLarge indicates that the planned schedule would produce
	// more than MaxPathPoints points.
	ErrPathTooLarge = engine.ErrPathTooLarge
)

// MaxPathPoints is the largest smooth path Calculate will produce.
const MaxPathPoints = engine.MaxPathPoints

// NonConvergenceError reports the smoothing round that failed to converge.
// Partial holds the last smoothing result of that round.
type NonConvergenceError struct {
	Pass       int // 1-based round
	Iterations int
	Change     float64
	Tolerance  float64
	Diverged   bool
	Partial    [][]float64
}

func (e *NonConvergenceError) Error() string {
	if e.Diverged {
		return fmt.Sprintf("%v: pass %d diverged after %d iterations", ErrNonConvergence, e.Pass, e.Iterations)
	}
	return fmt.Sprintf("%v: pass %d change %g still >= tolerance %g after %d iterations",
		ErrNonConvergence, e.Pass, e.Change, e.Tolerance, e.Iterations)
}

// Unwrap makes errors.Is(err, ErrNonConvergence) hold.
func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Preset: PresetDefault,
		Tuning: DefaultTuning(),
	}
}

// DefaultTuning returns the default smoothing weights.
func DefaultTuning() Tuning {
	return GetPresetTuning(PresetDefault)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preset < PresetDefault || c.Preset > PresetCustom {
		return fmt.Errorf("%w: unknown preset %d", ErrInvalidConfig, int(c.Preset))
	}

	if c.SpatialDims < 0 {
		return fmt.Errorf("%w: spatial dims must be >= 0", ErrInvalidConfig)
	}

	if c.Preset == PresetCustom {
		if err := c.Tuning.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that all weights are finite and the iteration cap is not
// negative. Weight ranges are not enforced; alpha and beta are
// conventionally in [0, 1] and tolerance is positive.
func (t *Tuning) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"path alpha", t.PathAlpha},
		{"path beta", t.PathBeta},
		{"path tolerance", t.PathTolerance},
		{"velocity alpha", t.VelocityAlpha},
		{"velocity beta", t.VelocityBeta},
		{"velocity tolerance", t.VelocityTolerance},
	}
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, w.name, w.value)
		}
	}

	if t.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must be >= 0, got %d", ErrInvalidConfig, t.MaxIterations)
	}

	return nil
}

// GetPresetTuning returns the tuning for a preset.
func GetPresetTuning(preset Preset) Tuning {
	t := Tuning{
		VelocityAlpha:     defaultVelocityAlpha,
		VelocityBeta:      defaultVelocityBeta,
		VelocityTolerance: defaultVelocityTolerance,
	}

	switch preset {
	case PresetSmooth:
		t.PathAlpha = smoothPathAlpha
		t.PathBeta = smoothPathBeta
		t.PathTolerance = smoothPathTolerance

	case PresetTight:
		t.PathAlpha = tightPathAlpha
		t.PathBeta = tightPathBeta
		t.PathTolerance = tightPathTolerance

	default:
		t.PathAlpha = defaultPathAlpha
		t.PathBeta = defaultPathBeta
		t.PathTolerance = defaultPathTolerance
	}

	return t
}

// New creates a planner session for waypoints. The waypoints are copied;
// later changes to the slice do not affect the planner. A nil config uses
// DefaultConfig.
func New(waypoints [][]float64, config *Config) (*Planner, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.Preset != PresetCustom {
		cfg.Tuning = GetPresetTuning(cfg.Preset)
	}
	if cfg.SpatialDims == 0 {
		cfg.SpatialDims = mathutil.DefaultSpatialDims
	}

	if len(waypoints) < minWaypoints {
		return nil, fmt.Errorf("%w: need at least %d waypoints, got %d",
			ErrInvalidInput, minWaypoints, len(waypoints))
	}

	original, err := path.New(waypoints)
	if err != nil {
		return nil, err
	}

	p := &Planner{
		id:       uuid.New(),
		config:   cfg,
		original: original,
	}

	tracer().Debugf("planner %s: %d waypoints, %d dims, preset %s",
		p.id, original.Len(), original.Dim(), cfg.Preset)

	return p, nil
}

// Info describes the most recent Calculate run.
type Info struct {
	// SessionID identifies the planner in logs.
	SessionID string

	// Preset is the configured preset.
	Preset Preset

	// Schedule holds the injection counts per round.
	Schedule [pipeline.ScheduleLen]int

	// TargetPoints is totalTime / timeStep.
	TargetPoints float64

	// Feasible reports whether the schedule fit the target. When false no
	// points were injected.
	Feasible bool

	// Waypoints is the number of input points.
	Waypoints int

	// Points is the number of points in the smooth path (0 before a
	// successful Calculate).
	Points int

	// Passes holds smoothing statistics per round.
	Passes []PassInfo

	// RawArcLength is the length of the densified path before smoothing
	// in its final round, over the spatial dimensions.
	RawArcLength float64

	// ArcLength is the length of the smooth path.
	ArcLength float64

	// MaxDeviation is the largest distance between a smooth point and
	// its unsmoothed counterpart in the final round.
	MaxDeviation float64
}

// PassInfo describes one inject+smooth round.
type PassInfo struct {
	Count      int     // points injected per segment
	Points     int     // points after injection
	Iterations int     // smoothing passes
	Change     float64 // summed change of the last smoothing pass
	Converged  bool
}
