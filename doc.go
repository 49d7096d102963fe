// Package planner turns a sparse list of waypoints into a dense, smooth
// trajectory in pure Go.
//
// A trajectory is played back at a fixed control period, so the planner
// first works out how many points the playback needs (totalTime/timeStep)
// and then densifies the waypoints in up to three rounds. Each round
// linearly injects evenly spaced points between neighbors and relaxes the
// result by gradient-descent smoothing.
//
// # Features
//
//   - Paths of any dimensionality; x, y, heading or a node index are all
//     interpolated and smoothed the same way
//   - Automatic injection schedule from the playback budget
//   - Bounded, cancellable smoothing with convergence statistics
//   - Presets for common smoothing strengths plus fully custom tuning
//   - Geometric diagnostics (arc length, deviation) via
//     github.com/tphakala/simd
//   - Tab-separated output for plotting and inspection
//
// # Quick Start
//
// For one-shot planning:
//
//	waypoints := [][]float64{{1, 1}, {5, 1}, {9, 12}, {12, 9}, {15, 6}}
//	smooth, err := planner.SmoothWaypoints(waypoints, 15, 0.1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated planning with custom tuning:
//
//	p, err := planner.New(waypoints, &planner.Config{Preset: planner.PresetSmooth})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Calculate(15, 0.1); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(planner.Format(p.SmoothPath()))
//
// # Injection Schedule
//
// Injecting k points into every segment of an n-point path yields
// n + k(n-1) points. Below 100 target points the planner uses two rounds
// and keeps the combination with the most points that still fits. From 100
// target points on it uses three rounds and keeps the last fitting
// combination of its search, which existing trajectories depend on; set
// [Config.MaximalSearch] to pick the largest fitting combination instead.
// When nothing fits, no points are injected and the waypoints are only
// smoothed. Schedules that would produce more than [MaxPathPoints] points
// fail with [ErrPathTooLarge].
//
// # Smoothing
//
// Each interior point is pulled toward its original position with weight
// [Tuning.PathAlpha] and toward its neighbors with weight
// [Tuning.PathBeta]. The first and last waypoint never move. Smoothing ends
// once one pass changes the path by less than [Tuning.PathTolerance] in
// total, or fails with [ErrNonConvergence] after [Tuning.MaxIterations]
// passes.
//
// # Thread Safety
//
// A [Planner] owns all of its buffers and shares nothing with other
// planners, so distinct planners may run concurrently. A single [Planner]
// must not be used from several goroutines at once.
package planner
