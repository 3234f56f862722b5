// Package render draws a grid.Frame onto a terminal cell canvas.
package render

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/brennerm/slashgrid/internal/grid"
)

var (
	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	yLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	xLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("202"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("202"))
)

// GridRune is drawn along gridlines.
const GridRune = runes.LineHorizontal

// Options controls how a frame is rendered.
type Options struct {
	Border  bool
	NoColor bool
}

// Measure returns the width of a label in terminal cells.
func Measure(label string) float64 {
	return float64(lipgloss.Width(label))
}

// cell maps a frame coordinate onto a canvas row or column.
func cell(v float64, limit int) int {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i >= limit {
		return limit - 1
	}
	return i
}

// Frame renders f. The canvas is one row taller than the geometry so labels
// on the bottom edge stay visible.
func Frame(f grid.Frame, opts Options) string {
	g := f.Geometry
	width := int(math.Ceil(g.Width))
	height := int(math.Ceil(g.Height)) + 1
	if width < 1 || height < 1 {
		return ""
	}

	gs, ys, xs := gridStyle, yLabelStyle, xLabelStyle
	if opts.NoColor {
		plain := lipgloss.NewStyle()
		gs, ys, xs = plain, plain, plain
	}
	c := canvas.New(width, height)

	for _, line := range f.GridLines {
		start := canvas.Point{X: cell(line.X1, width), Y: cell(line.Y1, height)}
		end := cell(line.X2, width+1)
		if end >= width {
			graph.DrawHorizonalLineRight(&c, start, gs)
			continue
		}
		for x := start.X; x < end; x++ {
			c.SetRuneWithStyle(canvas.Point{X: x, Y: start.Y}, GridRune, gs)
		}
	}

	for _, axis := range f.YAxes {
		for _, tick := range axis.Ticks {
			w := lipgloss.Width(tick.Label)
			x := int(g.Padding.Left) - 1 - w
			if axis.Anchor == grid.AnchorRight {
				x = width - w
			}
			c.SetStringWithStyle(canvas.Point{X: max(x, 0), Y: cell(tick.Y, height)}, tick.Label, ys)
		}
	}

	for _, axis := range f.XAxes {
		for _, tick := range axis.Ticks {
			w := lipgloss.Width(tick.Label)
			x := int(math.Round(tick.X - float64(w)/2))
			c.SetStringWithStyle(canvas.Point{X: x, Y: cell(tick.Y, height)}, tick.Label, xs)
		}
	}

	out := c.View()
	if opts.Border {
		return borderStyle.Render(out)
	}
	return out
}
