package main

// Default command-line flag values
const (
	defaultTotalTime = 15.0 // seconds to traverse the path
	defaultTimeStep  = 0.1  // control loop period in seconds
)

// Waypoint file limits
const (
	maxWaypointFileSize = 16 * 1024 * 1024 // 16MB
	maxTuningFileSize   = 1 * 1024 * 1024  // 1MB
	commentPrefix       = "#"
)

// Plot layout
const (
	plotWidthInch   = 8
	plotHeightInch  = 8
	plotLineWidth   = 1.5
	plotMarkerSize  = 4
	plotLegendInset = -10
	plotXDim        = 0
	plotYDim        = 1
	minPlotDims     = 2
)
