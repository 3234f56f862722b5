package grid

import (
	"fmt"
	"time"
)

// DateOptions configures x label dates.
type DateOptions struct {
	Format    string
	Separator string
	Location  *time.Location
}

// DateRangeFormatter turns the dates of one data point into an x label.
// start is zero when the point has no start date.
type DateRangeFormatter interface {
	FormatRange(start, end time.Time, opts DateOptions) string
}

// Point is the date information of a single data point.
type Point struct {
	Start time.Time
	End   time.Time
	// Date is used as the end when End is zero.
	Date time.Time
}

// XLabels builds one label per point.
func XLabels(points []Point, f DateRangeFormatter, opts DateOptions) []string {
	labels := make([]string, 0, len(points))
	for _, p := range points {
		end := p.End
		if end.IsZero() {
			end = p.Date
		}
		labels = append(labels, f.FormatRange(p.Start, end, opts))
	}
	return labels
}

// Axes groups the four axes of a chart.
type Axes struct {
	Y1 Axis
	Y2 Axis
	X1 Axis
	X2 Axis
}

// Chart is everything Draw needs for one draw cycle.
type Chart struct {
	Layout Layout
	Axes   Axes
	// Ranges and Scales are indexed by an axis' SeriesIndex. Scales holds
	// pixels per value unit.
	Ranges []Range
	Scales []float64
	// Series holds the points x labels are derived from, by SeriesIndex.
	Series        [][]Point
	Dates         DateOptions
	DateFormatter DateRangeFormatter
	// DynamicLeftPadding widens the left padding to fit the y labels.
	DynamicLeftPadding bool
	Measure            MeasureFunc
}

// HasData reports whether there is anything to label.
func (c Chart) HasData() bool {
	return len(c.Ranges) > 0
}

// Frame is the computed layout of one draw cycle.
type Frame struct {
	Geometry  Geometry
	GridLines []Line
	YAxes     []YAxisLayout
	XAxes     []XAxisLayout
}

// Draw lays out the gridlines followed by the y1, y2, x1 and x2 axes.
// Axes are skipped when the chart has no data. The caller's chart is not
// modified; the final geometry, including any dynamic padding, is returned
// in the frame.
func Draw(c Chart) (Frame, error) {
	l := c.Layout
	lines, err := l.GridLines()
	if err != nil {
		return Frame{}, err
	}
	frame := Frame{GridLines: lines}

	if !c.HasData() {
		frame.Geometry = l.Geometry
		return frame, nil
	}

	for _, axis := range []Axis{c.Axes.Y1, c.Axes.Y2} {
		if !axis.Show {
			continue
		}
		rng, scale, err := c.seriesScale(axis)
		if err != nil {
			return Frame{}, err
		}
		y, err := l.YAxis(axis, rng, scale)
		if err != nil {
			return Frame{}, err
		}
		frame.YAxes = append(frame.YAxes, y)
		if c.DynamicLeftPadding {
			l.Geometry.Padding.Left = DynamicLeftPadding(l.Geometry.Padding.Left, y.Ticks, c.Measure)
		}
	}

	for _, axis := range []Axis{c.Axes.X1, c.Axes.X2} {
		if !axis.Show {
			continue
		}
		if len(axis.Labels) == 0 {
			if c.DateFormatter == nil {
				return Frame{}, fmt.Errorf("axis %s: %w", axis.ID, ErrNoDateFormatter)
			}
			if axis.SeriesIndex < 0 || axis.SeriesIndex >= len(c.Series) {
				return Frame{}, fmt.Errorf("axis %s: series index %d out of range", axis.ID, axis.SeriesIndex)
			}
			axis.Labels = XLabels(c.Series[axis.SeriesIndex], c.DateFormatter, c.Dates)
		}
		frame.XAxes = append(frame.XAxes, l.XAxis(axis, c.Measure))
	}

	frame.Geometry = l.Geometry
	return frame, nil
}

func (c Chart) seriesScale(axis Axis) (Range, float64, error) {
	i := axis.SeriesIndex
	if i < 0 || i >= len(c.Ranges) {
		return Range{}, 0, fmt.Errorf("axis %s: series index %d out of range", axis.ID, i)
	}
	scale := 0.0
	if i < len(c.Scales) {
		scale = c.Scales[i]
	}
	return c.Ranges[i], scale, nil
}
