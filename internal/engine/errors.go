package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tphakala/go-path-planner/internal/path"
)

// tracer writes to trace with key 'planner'
func tracer() tracing.Trace {
	return tracing.Select("planner")
}

// ErrNonConvergence indicates the smoother hit its iteration cap (or
// diverged) before the per-pass change dropped below tolerance.
var ErrNonConvergence = errors.New("smoothing did not converge")

// ErrPathTooLarge indicates that injection would produce more than
// MaxPathPoints points.
var ErrPathTooLarge = errors.New("path exceeds point limit")

// NonConvergenceError reports a smoothing run that stopped without meeting
// its tolerance. Path holds the best-effort result at the time it stopped.
type NonConvergenceError struct {
	Iterations int
	Change     float64
	Tolerance  float64
	Diverged   bool // change became NaN or Inf
	Path       *path.Path
}

func (e *NonConvergenceError) Error() string {
	if e.Diverged {
		return fmt.Sprintf("%v: diverged after %d iterations", ErrNonConvergence, e.Iterations)
	}
	return fmt.Sprintf("%v: change %g still >= tolerance %g after %d iterations",
		ErrNonConvergence, e.Change, e.Tolerance, e.Iterations)
}

// Unwrap makes errors.Is(err, ErrNonConvergence) hold.
func (e *NonConvergenceError) Unwrap() error {
	return ErrNonConvergence
}
