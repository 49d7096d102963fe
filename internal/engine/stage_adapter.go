package engine

import (
	"context"
	"fmt"

	"github.com/tphakala/go-path-planner/internal/path"
)

// InjectStage wraps Inject as a pipeline stage with a fixed count.
type InjectStage struct {
	count int
}

// NewInjectStage creates a stage that injects count points per segment.
func NewInjectStage(count int) (*InjectStage, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: injection count must be >= 0, got %d", path.ErrInvalidInput, count)
	}
	return &InjectStage{count: count}, nil
}

// Process injects points into p. The context is unused; injection cost is
// bounded by the output size.
func (s *InjectStage) Process(_ context.Context, p *path.Path) (*path.Path, error) {
	return Inject(p, s.count)
}

// Name returns a short description for logs.
func (s *InjectStage) Name() string {
	return fmt.Sprintf("inject(%d)", s.count)
}

// OutputLen returns the number of points produced from n input points.
func (s *InjectStage) OutputLen(n int) int {
	return InjectedLen(n, s.count)
}

// SmoothStage wraps Smooth as a pipeline stage and remembers the
// statistics of its most recent run.
type SmoothStage struct {
	params SmoothParams
	last   SmoothStats
}

// NewSmoothStage creates a smoothing stage with the given parameters.
func NewSmoothStage(params SmoothParams) (*SmoothStage, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &SmoothStage{params: params}, nil
}

// Process smooths p. On non-convergence it returns the best-effort path
// along with the error so the caller can decide whether to accept it.
func (s *SmoothStage) Process(ctx context.Context, p *path.Path) (*path.Path, error) {
	out, stats, err := Smooth(ctx, p, s.params)
	s.last = stats
	return out, err
}

// Name returns a short description for logs.
func (s *SmoothStage) Name() string {
	return fmt.Sprintf("smooth(a=%g, b=%g, tol=%g)", s.params.DataWeight, s.params.SmoothWeight, s.params.Tolerance)
}

// OutputLen returns n; smoothing never changes the point count.
func (s *SmoothStage) OutputLen(n int) int {
	return n
}

// Stats returns the statistics of the most recent Process call.
func (s *SmoothStage) Stats() SmoothStats {
	return s.last
}
