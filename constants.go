package planner

// Default path tuning
const (
	defaultPathAlpha     = 0.7
	defaultPathBeta      = 0.3
	defaultPathTolerance = 1e-7
)

// Reserved velocity tuning, carried for downstream velocity profiling
const (
	defaultVelocityAlpha     = 0.1
	defaultVelocityBeta      = 0.3
	defaultVelocityTolerance = 1e-7
)

// Preset tuning parameters
const (
	// Smooth: neighbors dominate, paths round off corners strongly
	smoothPathAlpha     = 0.3
	smoothPathBeta      = 0.35
	smoothPathTolerance = 1e-7

	// Tight: stays close to the injected points
	tightPathAlpha     = 0.9
	tightPathBeta      = 0.05
	tightPathTolerance = 1e-9
)

// Path limits
const (
	minWaypoints = 2 // Injection needs at least one segment
)
