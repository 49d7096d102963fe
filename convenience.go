package planner

import (
	"io"
	"strings"

	"github.com/tphakala/go-path-planner/internal/path"
	"github.com/tphakala/go-path-planner/internal/pipeline"
)

// Common playback periods for convenience functions, in seconds.
const (
	// Step10Hz is a 100 ms control period.
	Step10Hz = 0.1

	// Step50Hz is a 20 ms control period, typical for robot controllers.
	Step50Hz = 0.02

	// Step100Hz is a 10 ms control period.
	Step100Hz = 0.01
)

// SmoothWaypoints is a convenience function for one-shot planning with the
// default tuning. It returns the smooth path for a trajectory of totalTime
// played back every timeStep.
func SmoothWaypoints(waypoints [][]float64, totalTime, timeStep float64) ([][]float64, error) {
	return SmoothWaypointsPreset(waypoints, totalTime, timeStep, PresetDefault)
}

// SmoothWaypointsPreset is like SmoothWaypoints with a preset tuning.
func SmoothWaypointsPreset(waypoints [][]float64, totalTime, timeStep float64, preset Preset) ([][]float64, error) {
	p, err := New(waypoints, &Config{Preset: preset})
	if err != nil {
		return nil, err
	}

	if err := p.Calculate(totalTime, timeStep); err != nil {
		return nil, err
	}

	return p.SmoothPath(), nil
}

// InjectionCounts returns the injection schedule the planner would use for
// numWaypoints points and the given time budget, without running it.
func InjectionCounts(numWaypoints int, totalTime, timeStep float64) [pipeline.ScheduleLen]int {
	return pipeline.PlanSchedule(numWaypoints, totalTime, timeStep).Counts
}

// PointCount returns the number of points produced from numWaypoints points
// by the given injection counts.
func PointCount(numWaypoints int, counts ...int) int {
	return pipeline.PointsAfter(numWaypoints, counts...)
}

// WriteTSV writes rows as tab-separated text: every value followed by a
// tab, every row followed by a newline.
func WriteTSV(w io.Writer, rows [][]float64) error {
	return path.WriteRowsTSV(w, rows)
}

// Format returns rows in the WriteTSV format.
func Format(rows [][]float64) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = WriteTSV(&sb, rows)
	return sb.String()
}
