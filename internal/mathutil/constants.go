package mathutil

// Spatial dimension conventions.
const (
	// DefaultSpatialDims is the number of leading dimensions treated as
	// spatial (x, y) when measuring path geometry.
	DefaultSpatialDims = 2

	// minSegmentPoints is the number of points needed to form one segment.
	minSegmentPoints = 2
)
