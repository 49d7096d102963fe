package engine

// Injection constants
const (
	// minInjectPoints is the smallest path that has a segment to inject into.
	minInjectPoints = 2

	// MaxPathPoints bounds the size of an injected path.
	MaxPathPoints = 1 << 24
)

// Smoothing constants
const (
	// minSmoothPoints is the smallest path with an interior point to adjust.
	minSmoothPoints = 3

	// DefaultMaxIterations caps the gradient-descent loop when the caller
	// does not choose a limit.
	DefaultMaxIterations = 100000

	// ctxCheckInterval is the number of smoothing passes between
	// cancellation checks.
	ctxCheckInterval = 64

	// laplacianCenter is the weight of the center point in the discrete
	// second difference prev + next - 2*cur.
	laplacianCenter = 2.0
)
