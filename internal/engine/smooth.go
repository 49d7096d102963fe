package engine

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-path-planner/internal/path"
)

// SmoothParams configures a gradient-descent smoothing run.
type SmoothParams struct {
	// DataWeight pulls each point back toward its original position (alpha).
	DataWeight float64

	// SmoothWeight pulls each point toward the midpoint of its neighbors (beta).
	SmoothWeight float64

	// Tolerance ends the run once the summed absolute change of one full
	// pass drops below it.
	Tolerance float64

	// MaxIterations caps the number of passes. Values <= 0 select
	// DefaultMaxIterations.
	MaxIterations int

	// OnIteration, if set, is called after every pass with the 1-based pass
	// number and that pass's summed change.
	OnIteration func(iteration int, change float64)
}

// Validate checks that all weights are finite numbers.
func (s SmoothParams) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"data weight", s.DataWeight},
		{"smooth weight", s.SmoothWeight},
		{"tolerance", s.Tolerance},
	}
	for _, w := range weights {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", path.ErrInvalidInput, w.name, w.value)
		}
	}
	return nil
}

func (s SmoothParams) maxIterations() int {
	if s.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

// SmoothStats describes a finished smoothing run.
type SmoothStats struct {
	Iterations int     // passes performed
	Change     float64 // summed change of the last pass
	Converged  bool    // last pass change < tolerance
}

// Smooth optimizes the points of p into a smooth trajectory by gradient
// descent. For every interior point i and dimension j it applies
//
//	r[i][j] += a*(p[i][j] - r[i][j]) + b*(r[i-1][j] + r[i+1][j] - 2*r[i][j])
//
// in place (Gauss–Seidel order), until the summed absolute change of one
// pass is below params.Tolerance. The first and last points are never moved.
//
// Convergence is not guaranteed for every weight choice. After
// params.MaxIterations passes, or when the change becomes non-finite, Smooth
// returns the best-effort path together with a *NonConvergenceError. If ctx
// is cancelled it returns the best-effort path and the context error.
//
// BigO: N * iterations
func Smooth(ctx context.Context, p *path.Path, params SmoothParams) (*path.Path, SmoothStats, error) {
	var stats SmoothStats

	if p.Len() == 0 {
		return nil, stats, fmt.Errorf("%w: cannot smooth an empty path", path.ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return nil, stats, err
	}

	result := p.Clone()
	n := p.Len()

	// No interior points: a single pass changes nothing.
	if n < minSmoothPoints {
		stats.Iterations = 1
		stats.Converged = true
		if params.OnIteration != nil {
			params.OnIteration(stats.Iterations, 0)
		}
		return result, stats, nil
	}

	maxIter := params.maxIterations()
	delta := make([]float64, p.Dim())

	for stats.Iterations < maxIter {
		if stats.Iterations%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return result, stats, fmt.Errorf("smoothing cancelled after %d iterations: %w", stats.Iterations, err)
			}
		}

		change := 0.0
		for i := 1; i < n-1; i++ {
			orig := p.RawRow(i)
			cur := result.RawRow(i)
			prev := result.RawRow(i - 1)
			next := result.RawRow(i + 1)

			for j := range cur {
				delta[j] = params.DataWeight*(orig[j]-cur[j]) +
					params.SmoothWeight*(prev[j]+next[j]-laplacianCenter*cur[j])
			}

			floats.Add(cur, delta)
			change += floats.Norm(delta, 1)
		}

		stats.Iterations++
		stats.Change = change

		if params.OnIteration != nil {
			params.OnIteration(stats.Iterations, change)
		}

		if math.IsNaN(change) || math.IsInf(change, 0) {
			tracer().Errorf("smoothing diverged after %d iterations (a=%g, b=%g)",
				stats.Iterations, params.DataWeight, params.SmoothWeight)
			return result, stats, &NonConvergenceError{
				Iterations: stats.Iterations,
				Change:     change,
				Tolerance:  params.Tolerance,
				Diverged:   true,
				Path:       result,
			}
		}

		if change < params.Tolerance {
			stats.Converged = true
			tracer().Debugf("smoothing %d points converged after %d iterations (change=%g)",
				n, stats.Iterations, change)
			return result, stats, nil
		}
	}

	tracer().Errorf("smoothing %d points stopped at iteration cap %d (change=%g, tolerance=%g)",
		n, maxIter, stats.Change, params.Tolerance)

	return result, stats, &NonConvergenceError{
		Iterations: stats.Iterations,
		Change:     stats.Change,
		Tolerance:  params.Tolerance,
		Path:       result,
	}
}
