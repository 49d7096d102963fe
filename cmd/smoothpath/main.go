// Command smoothpath densifies and smooths a waypoint path for timed
// playback and writes the result as tab-separated values.
//
// Usage:
//
//	smoothpath [flags] [waypoints.tsv]
//
// Waypoints are read from the named file, or stdin when no file is given.
// Each line holds one point; values are separated by whitespace or commas.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	planner "github.com/tphakala/go-path-planner"
)

type options struct {
	totalTime  float64
	timeStep   float64
	preset     string
	alpha      float64
	beta       float64
	tolerance  float64
	maxIter    int
	tuningPath string
	plotPath   string
	bestEffort bool
	strict     bool
	maximal    bool
	verbose    bool
	demo       bool
	input      string
	set        map[string]bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var opts options
	flag.Float64Var(&opts.totalTime, "time", defaultTotalTime, "Time to traverse the path in seconds")
	flag.Float64Var(&opts.timeStep, "step", defaultTimeStep, "Control loop period in seconds")
	flag.StringVar(&opts.preset, "preset", "default", "Smoothing preset: default, smooth, tight")
	flag.Float64Var(&opts.alpha, "alpha", 0, "Weight toward the original points (overrides preset)")
	flag.Float64Var(&opts.beta, "beta", 0, "Weight toward neighboring points (overrides preset)")
	flag.Float64Var(&opts.tolerance, "tolerance", 0, "Smoothing convergence tolerance (overrides preset)")
	flag.IntVar(&opts.maxIter, "max-iter", 0, "Smoothing pass cap per round (0 = engine default)")
	flag.StringVar(&opts.tuningPath, "config", "", "JSON tuning file")
	flag.StringVar(&opts.plotPath, "plot", "", "Write a PNG plot of the first two columns")
	flag.BoolVar(&opts.bestEffort, "best-effort", false, "Accept paths that did not converge")
	flag.BoolVar(&opts.strict, "strict", false, "Fail when no injection schedule fits the point budget")
	flag.BoolVar(&opts.maximal, "maximal", false, "Prefer the schedule with the most points")
	flag.BoolVar(&opts.verbose, "v", false, "Log the schedule and smoothing statistics")
	flag.BoolVar(&opts.demo, "demo", false, "Plan the built-in demonstration route")
	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	switch flag.NArg() {
	case 0:
		opts.input = "-"
	case 1:
		opts.input = flag.Arg(0)
	default:
		return fmt.Errorf("expected at most one waypoint file, got %d", flag.NArg())
	}

	waypoints := demoWaypoints
	if !opts.demo {
		var err error
		waypoints, err = readWaypointsFile(opts.input)
		if err != nil {
			return err
		}
	}

	config, err := buildConfig(&opts)
	if err != nil {
		return err
	}

	p, err := planner.New(waypoints, config)
	if err != nil {
		return fmt.Errorf("failed to create planner: %w", err)
	}

	calcErr := p.Calculate(opts.totalTime, opts.timeStep)
	if opts.verbose {
		logInfo(p.GetInfo())
	}
	if calcErr != nil {
		return fmt.Errorf("planning failed: %w", calcErr)
	}

	smooth := p.SmoothPath()

	out := bufio.NewWriter(os.Stdout)
	if err := planner.WriteTSV(out, smooth); err != nil {
		return fmt.Errorf("failed to write path: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write path: %w", err)
	}

	if opts.plotPath != "" {
		if err := savePlot(opts.plotPath, waypoints, smooth); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("plot written to %s", opts.plotPath)
		}
	}

	return nil
}

// buildConfig resolves the tuning from the preset, the tuning file and the
// explicit flags, in that order.
func buildConfig(opts *options) (*planner.Config, error) {
	preset, err := parsePreset(opts.preset)
	if err != nil {
		return nil, err
	}

	config := planner.DefaultConfig()
	config.Preset = preset
	config.BestEffort = opts.bestEffort
	config.RequireFeasibleSchedule = opts.strict
	config.MaximalSearch = opts.maximal

	custom := false
	tuning := planner.GetPresetTuning(preset)

	if opts.tuningPath != "" {
		tf, err := loadTuningFile(opts.tuningPath)
		if err != nil {
			return nil, err
		}
		tf.apply(&tuning)
		custom = true
	}

	if opts.set["alpha"] {
		tuning.PathAlpha = opts.alpha
		custom = true
	}
	if opts.set["beta"] {
		tuning.PathBeta = opts.beta
		custom = true
	}
	if opts.set["tolerance"] {
		tuning.PathTolerance = opts.tolerance
		custom = true
	}
	if opts.set["max-iter"] {
		tuning.MaxIterations = opts.maxIter
		custom = true
	}

	if custom {
		config.Preset = planner.PresetCustom
		config.Tuning = tuning
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func logInfo(info planner.Info) {
	log.Printf("session %s, preset %s", info.SessionID, info.Preset)
	log.Printf("schedule %v: %d waypoints -> %d points (target %g, feasible %v)",
		info.Schedule, info.Waypoints, info.Points, info.TargetPoints, info.Feasible)
	for i, pass := range info.Passes {
		log.Printf("  round %d: inject %d -> %d points, %d iterations, change %.3g, converged %v",
			i+1, pass.Count, pass.Points, pass.Iterations, pass.Change, pass.Converged)
	}
	if info.Points > 0 {
		log.Printf("arc length %.3f (raw %.3f), max deviation %.4f",
			info.ArcLength, info.RawArcLength, info.MaxDeviation)
	}
}
