package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brennerm/slashgrid/internal/dates"
	"github.com/brennerm/slashgrid/internal/grid"
	"github.com/brennerm/slashgrid/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the gridlines and axis labels of a chart frame",
	Example: `  slashgrid render --min 0 --max 25000 --width 60 --height 12
  slashgrid render --min -1 --max 1 --points 8 --date-format "%a" --every 2`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	fs := renderCmd.Flags()
	addGridFlags(fs)
	addSourceFlags(fs)
	fs.Int("width", 60, "Frame width in cells")
	fs.Int("height", 12, "Frame height in cells")
	fs.Float64("pad-top", 1, "Top padding")
	fs.Float64("pad-bottom", 1, "Bottom padding")
	fs.Float64("pad-left", 0, "Left padding")
	fs.Float64("pad-right", 0, "Right padding")
	fs.Bool("dynamic-padding", true, "Widen the left padding to fit the y labels")
	fs.Bool("grid", true, "Draw a gridline per y label")
	fs.Bool("baseline", false, "Draw only the baseline when --grid=false")
	fs.Bool("right", false, "Draw the y axis on the right")
	fs.Int("points", 6, "Number of x labels")
	fs.String("from", "", "First x date (RFC 3339, default: now minus --span)")
	fs.Duration("span", 5*24*time.Hour, "Time between the first and last x date")
	fs.String("date-format", dates.DefaultFormat, "strftime format of x labels")
	fs.String("date-sep", dates.DefaultSeparator, "Separator between start and end dates")
	fs.Int("every", 1, "Draw every n-th x label")
	fs.Bool("border", true, "Draw a border around the frame")
	fs.Bool("no-color", false, "Disable colors")
}

func runRender(cmd *cobra.Command, _ []string) error {
	v, err := newConfig(cmd)
	if err != nil {
		return err
	}
	chart, err := renderChart(v)
	if err != nil {
		return err
	}
	frame, err := grid.Draw(chart)
	if err != nil {
		return fmt.Errorf("failed to lay out frame: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), render.Frame(frame, render.Options{
		Border:  v.GetBool("border"),
		NoColor: v.GetBool("no-color"),
	}))
	return nil
}

// renderChart assembles a single-series chart from the command's settings.
func renderChart(v *viper.Viper) (grid.Chart, error) {
	cfg, err := gridConfig(v)
	if err != nil {
		return grid.Chart{}, err
	}
	rng, err := axisRange(v)
	if err != nil {
		return grid.Chart{}, err
	}
	points, err := datePoints(v)
	if err != nil {
		return grid.Chart{}, err
	}

	geom := grid.Geometry{
		Width:  float64(v.GetInt("width")),
		Height: float64(v.GetInt("height")),
		Padding: grid.Padding{
			Top:    v.GetFloat64("pad-top"),
			Right:  v.GetFloat64("pad-right"),
			Bottom: v.GetFloat64("pad-bottom"),
			Left:   v.GetFloat64("pad-left"),
		},
		ShowEvery: v.GetInt("every"),
	}
	if geom.Width < 1 || geom.Height < 1 {
		return grid.Chart{}, fmt.Errorf("frame must be at least 1x1, got %vx%v", geom.Width, geom.Height)
	}

	y := grid.Axis{ID: grid.AxisY1, Show: true}
	if v.GetBool("right") {
		y.ID = grid.AxisY2
	}
	axes := grid.Axes{X1: grid.Axis{ID: grid.AxisX1, Show: len(points) > 0}}
	if y.ID == grid.AxisY2 {
		axes.Y2 = y
	} else {
		axes.Y1 = y
	}

	// The x ticks are spread over the plot width left after padding, which
	// is not known until the y labels have been measured.
	chart := grid.Chart{
		Layout:             grid.Layout{Grid: cfg, Geometry: geom},
		Axes:               axes,
		Ranges:             []grid.Range{rng},
		Scales:             []float64{plotHeight(geom) / (rng.Max - rng.Min)},
		Series:             [][]grid.Point{points},
		Dates:              grid.DateOptions{Format: v.GetString("date-format"), Separator: v.GetString("date-sep")},
		DateFormatter:      dates.Strftime{},
		DynamicLeftPadding: v.GetBool("dynamic-padding") && y.ID == grid.AxisY1,
		Measure:            render.Measure,
	}
	chart.Layout.Geometry.XTick = xTick(chart, len(points))
	return chart, nil
}

func plotHeight(g grid.Geometry) float64 {
	return g.Height - g.Padding.Top - g.Padding.Bottom
}

// xTick spreads n labels over the plot width, accounting for the left
// padding the y labels will claim.
func xTick(c grid.Chart, n int) float64 {
	if n < 1 {
		return 0
	}
	g := c.Layout.Geometry
	left := g.Padding.Left
	if c.DynamicLeftPadding {
		if y, err := c.Layout.YAxis(c.Axes.Y1, c.Ranges[0], c.Scales[0]); err == nil {
			left = grid.DynamicLeftPadding(left, y.Ticks, c.Measure)
		}
	}
	return (g.Width - left - g.Padding.Right) / float64(n)
}

// datePoints spreads --points dates evenly over --span starting at --from.
func datePoints(v *viper.Viper) ([]grid.Point, error) {
	n := v.GetInt("points")
	if n <= 0 {
		return nil, nil
	}
	span := v.GetDuration("span")

	from := time.Now().Add(-span)
	if s := v.GetString("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("invalid --from %q: %w", s, err)
		}
		from = t
	}

	points := make([]grid.Point, n)
	for i := range points {
		var offset time.Duration
		if n > 1 {
			offset = span * time.Duration(i) / time.Duration(n-1)
		}
		points[i] = grid.Point{Date: from.Add(offset)}
	}
	return points, nil
}
