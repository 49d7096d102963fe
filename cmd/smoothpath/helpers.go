package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	planner "github.com/tphakala/go-path-planner"
)

// demoWaypoints is a 13-point x, y, heading, node route around three sides
// of a 20 m square.
var demoWaypoints = [][]float64{
	{2, 2, 0, 1},
	{2, 7, 90, 2},
	{2, 12, 180, 3},
	{2, 17, 270, 4},
	{2, 22, 360, 5},
	{7, 22, 450, 6},
	{12, 22, 540, 7},
	{17, 22, 630, 6},
	{22, 22, 720, 5},
	{22, 17, 810, 4},
	{22, 12, 900, 3},
	{22, 7, 990, 2},
	{22, 2, 1080, 1},
}

// parseWaypoints reads one waypoint per line. Values are separated by
// whitespace or commas. Blank lines and lines starting with # are skipped.
func parseWaypoints(r io.Reader) ([][]float64, error) {
	var rows [][]float64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q: %w", lineNo, field, err)
			}
			row[i] = v
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: expected %d values, got %d", lineNo, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read waypoints: %w", err)
	}

	return rows, nil
}

// readWaypointsFile parses a waypoint file, or stdin when name is "-".
func readWaypointsFile(name string) ([][]float64, error) {
	if name == "-" {
		return parseWaypoints(os.Stdin)
	}

	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	if info.Size() > maxWaypointFileSize {
		return nil, fmt.Errorf("input file too large: %d bytes (max %d)", info.Size(), maxWaypointFileSize)
	}

	f, err := os.Open(name) // #nosec G304 -- user-provided input path
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseWaypoints(f)
}

// tuningFile is the JSON form of planner.Tuning. Fields left out keep the
// value of the selected preset.
type tuningFile struct {
	PathAlpha         *float64 `json:"path_alpha,omitempty"`
	PathBeta          *float64 `json:"path_beta,omitempty"`
	PathTolerance     *float64 `json:"path_tolerance,omitempty"`
	MaxIterations     *int     `json:"max_iterations,omitempty"`
	VelocityAlpha     *float64 `json:"velocity_alpha,omitempty"`
	VelocityBeta      *float64 `json:"velocity_beta,omitempty"`
	VelocityTolerance *float64 `json:"velocity_tolerance,omitempty"`
}

// loadTuningFile reads a JSON tuning file.
func loadTuningFile(name string) (*tuningFile, error) {
	if filepath.Ext(name) != ".json" {
		return nil, fmt.Errorf("tuning file must have .json extension: %s", name)
	}

	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	if info.Size() > maxTuningFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", info.Size(), maxTuningFileSize)
	}

	data, err := os.ReadFile(name) // #nosec G304 -- user-provided config path
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	var tf tuningFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	return &tf, nil
}

// apply overrides the fields of t that are set in the file.
func (tf *tuningFile) apply(t *planner.Tuning) {
	if tf.PathAlpha != nil {
		t.PathAlpha = *tf.PathAlpha
	}
	if tf.PathBeta != nil {
		t.PathBeta = *tf.PathBeta
	}
	if tf.PathTolerance != nil {
		t.PathTolerance = *tf.PathTolerance
	}
	if tf.MaxIterations != nil {
		t.MaxIterations = *tf.MaxIterations
	}
	if tf.VelocityAlpha != nil {
		t.VelocityAlpha = *tf.VelocityAlpha
	}
	if tf.VelocityBeta != nil {
		t.VelocityBeta = *tf.VelocityBeta
	}
	if tf.VelocityTolerance != nil {
		t.VelocityTolerance = *tf.VelocityTolerance
	}
}

func parsePreset(s string) (planner.Preset, error) {
	switch s {
	case "default":
		return planner.PresetDefault, nil
	case "smooth":
		return planner.PresetSmooth, nil
	case "tight":
		return planner.PresetTight, nil
	default:
		return 0, fmt.Errorf("unknown preset %q (want default, smooth or tight)", s)
	}
}

// toXYs projects rows onto the plot dimensions.
func toXYs(rows [][]float64) (plotter.XYs, error) {
	pts := make(plotter.XYs, len(rows))
	for i, row := range rows {
		if len(row) < minPlotDims {
			return nil, fmt.Errorf("row %d has %d values, need at least %d to plot", i, len(row), minPlotDims)
		}
		pts[i].X = row[plotXDim]
		pts[i].Y = row[plotYDim]
	}
	return pts, nil
}

// savePlot renders the waypoints and the smooth path as a PNG.
func savePlot(name string, waypoints, smooth [][]float64) error {
	waypointXYs, err := toXYs(waypoints)
	if err != nil {
		return err
	}
	smoothXYs, err := toXYs(smooth)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Smooth path (%d waypoints, %d points)", len(waypoints), len(smooth))
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(smoothXYs)
	if err != nil {
		return fmt.Errorf("failed to create path line: %w", err)
	}
	line.Color = color.RGBA{R: 0, G: 90, B: 200, A: 255}
	line.Width = vg.Points(plotLineWidth)

	scatter, err := plotter.NewScatter(waypointXYs)
	if err != nil {
		return fmt.Errorf("failed to create waypoint markers: %w", err)
	}
	scatter.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	scatter.Radius = vg.Points(plotMarkerSize)

	p.Add(line, scatter)
	p.Legend.Add("smooth", line)
	p.Legend.Add("waypoints", scatter)
	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(plotLegendInset)

	if err := p.Save(plotWidthInch*vg.Inch, plotHeightInch*vg.Inch, name); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
