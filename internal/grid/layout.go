package grid

import (
	"fmt"
	"math"
	"strings"
)

// MinimumLeftPadding keeps dynamically padded labels off the plot area.
const MinimumLeftPadding = 3

// Axis identifiers.
const (
	AxisY1 = "y1"
	AxisY2 = "y2"
	AxisX1 = "x1"
	AxisX2 = "x2"
)

// Anchor is the side a y axis is drawn on.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

func (a Anchor) String() string {
	if a == AnchorRight {
		return "right"
	}
	return "left"
}

// GridConfig controls gridlines and y label generation.
type GridConfig struct {
	NumYLabels         int
	Precision          Precision
	ThousandsSeparator string
	DecimalSeparator   string
	// MaxPrecision caps duplicate avoidance; <= 0 means DefaultMaxPrecision.
	MaxPrecision int
	Show         bool
	ShowBaseline bool
}

// Validate rejects configurations the layout cannot interpolate.
func (c GridConfig) Validate() error {
	if c.NumYLabels < 2 {
		return fmt.Errorf("num y labels %d: %w", c.NumYLabels, ErrTooFewTicks)
	}
	return nil
}

// Padding around the plot area.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Geometry is the drawing area in pixels (or terminal cells).
type Geometry struct {
	Width           float64
	Height          float64
	Padding         Padding
	LabelLineHeight float64
	// XTick is the horizontal distance between x labels.
	XTick float64
	// ShowEvery draws every n-th x label. Values below 1 draw all of them.
	ShowEvery  int
	LabelWidth float64
}

// Axis describes one of the four chart axes.
type Axis struct {
	ID          string
	Show        bool
	SeriesIndex int
	// Labels are preset x labels. Empty means derive them from the series.
	Labels []string
}

// Anchor returns the side the axis is drawn on.
func (a Axis) Anchor() Anchor {
	if a.ID == AxisY2 {
		return AnchorRight
	}
	return AnchorLeft
}

// LabelFormatter decorates a formatted label before it is placed.
type LabelFormatter func(label string, axis Axis) string

// MeasureFunc returns the rendered width of a label.
type MeasureFunc func(label string) float64

// Line is a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
}

// YTick is a positioned y label.
type YTick struct {
	Value float64
	Label string
	Y     float64
}

// YAxisLayout holds the ticks of one y axis.
type YAxisLayout struct {
	ID        string
	Anchor    Anchor
	Precision Precision
	Ticks     []YTick
}

// XTick is a positioned x label.
type XTick struct {
	Index int
	Label string
	X     float64
	Y     float64
}

// XAxisLayout holds the ticks of one x axis.
type XAxisLayout struct {
	ID    string
	Ticks []XTick
}

// Layout computes gridline and tick positions for a chart.
type Layout struct {
	Grid     GridConfig
	Geometry Geometry
	// LabelFormatter is applied to every y label except the topmost.
	LabelFormatter LabelFormatter
	// TopLabelFormatter is applied to the topmost y label.
	TopLabelFormatter LabelFormatter
}

// availableHeight is the plot height between the top and bottom padding.
func (l Layout) availableHeight() float64 {
	g := l.Geometry
	return g.Height - g.Padding.Top - g.Padding.Bottom
}

// rowY is the y coordinate of gridline i counted from the bottom.
func (l Layout) rowY(i int) float64 {
	g := l.Geometry
	n := l.Grid.NumYLabels
	return g.Height -
		float64(i)/float64(n-1)*l.availableHeight() -
		g.Padding.Bottom +
		g.Padding.Top
}

// GridLines returns the horizontal gridlines, the baseline alone, or nothing,
// depending on Show and ShowBaseline.
func (l Layout) GridLines() ([]Line, error) {
	g := l.Geometry
	switch {
	case l.Grid.Show:
		if err := l.Grid.Validate(); err != nil {
			return nil, err
		}
		lines := make([]Line, l.Grid.NumYLabels)
		for i := range lines {
			y := l.rowY(i)
			lines[i] = Line{X1: 0, Y1: y, X2: g.Width, Y2: y}
		}
		return lines, nil
	case l.Grid.ShowBaseline:
		y := g.Height - g.Padding.Bottom + g.Padding.Top
		return []Line{{X1: 0, Y1: y, X2: g.Width, Y2: y}}, nil
	}
	return nil, nil
}

// StartPrecision is the precision label generation starts from. A zero
// precision is raised by one when the axis draws more than one pixel per
// value unit and the span does not divide evenly into the label count,
// otherwise fractional ticks would all round to integers.
func (c GridConfig) StartPrecision(rng Range, scale float64) Precision {
	p := c.Precision
	if p != Digits(0) || scale <= 1 || c.NumYLabels < 2 {
		return p
	}
	span := math.Round(rng.Max + math.Abs(rng.Min))
	if math.Mod(span, float64(c.NumYLabels-1)) != 0 {
		return p.Escalate()
	}
	return p
}

// YAxis labels the given range and places the labels on the axis. scale is
// the number of pixels per value unit.
func (l Layout) YAxis(axis Axis, rng Range, scale float64) (YAxisLayout, error) {
	if err := l.Grid.Validate(); err != nil {
		return YAxisLayout{}, err
	}

	precision := l.Grid.StartPrecision(rng, scale)
	labels, digits, err := UniqueLabels(rng.Max, rng.Min, precision.Digits(), l.Grid.NumYLabels, l.Grid.MaxPrecision)
	if err != nil {
		return YAxisLayout{}, fmt.Errorf("axis %s: %w", axis.ID, err)
	}
	if digits != precision.Digits() {
		precision = Digits(digits)
	}

	n := l.Grid.NumYLabels
	ticks := make([]YTick, n)
	for i, raw := range labels {
		label := FormatNumber(raw, precision, l.Grid.ThousandsSeparator, l.Grid.DecimalSeparator)
		if i == n-1 {
			label = applyFormatter(l.TopLabelFormatter, label, axis)
		} else {
			label = applyFormatter(l.LabelFormatter, label, axis)
		}
		ticks[i] = YTick{
			Value: interpolate(rng.Min, rng.Max, i, n),
			Label: label,
			Y:     l.rowY(i) - l.Geometry.LabelLineHeight,
		}
	}

	return YAxisLayout{
		ID:        axis.ID,
		Anchor:    axis.Anchor(),
		Precision: precision,
		Ticks:     ticks,
	}, nil
}

func applyFormatter(f LabelFormatter, label string, axis Axis) string {
	if f == nil {
		return label
	}
	return f(label, axis)
}

// DynamicLeftPadding returns the left padding needed to fit the widest
// label, or current when it already fits.
func DynamicLeftPadding(current float64, ticks []YTick, measure MeasureFunc) float64 {
	if measure == nil {
		return current
	}
	widest := 0.0
	for _, t := range ticks {
		if w := measure(t.Label); w > widest {
			widest = w
		}
	}
	if current < widest {
		return widest + MinimumLeftPadding
	}
	return current
}

// XAxis places the axis' preset labels. Only every ShowEvery-th label is
// kept. X is the label centre, offset by half its measured width from the
// tick origin. x1 labels sit on the bottom edge and x2 labels one label
// line under twice the top padding.
func (l Layout) XAxis(axis Axis, measure MeasureFunc) XAxisLayout {
	g := l.Geometry
	axisY := g.Height
	if axis.ID == AxisX2 {
		// Below the label line, clear of the top padding.
		axisY = g.Padding.Top + g.LabelLineHeight + g.Padding.Top
	}
	every := g.ShowEvery
	if every < 1 {
		every = 1
	}

	out := XAxisLayout{ID: axis.ID}
	for i, raw := range axis.Labels {
		if i%every != 0 {
			continue
		}
		label := strings.TrimSpace(raw)
		x := float64(i)*g.XTick + g.Padding.Left
		if measure != nil {
			x += measure(label) / 2
		}
		out.Ticks = append(out.Ticks, XTick{Index: i, Label: label, X: x, Y: axisY})
	}
	return out
}
