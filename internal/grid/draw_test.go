package grid

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

type fakeDates struct{}

func (fakeDates) FormatRange(start, end time.Time, opts DateOptions) string {
	if start.IsZero() {
		return end.Format("Jan 2")
	}
	return fmt.Sprintf("%s%s%s", start.Format("Jan 2"), opts.Separator, end.Format("Jan 2"))
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestXLabels(t *testing.T) {
	points := []Point{
		{Date: day(1)},
		{Start: day(2), End: day(3)},
		{Start: day(4), Date: day(5)},
	}
	got := XLabels(points, fakeDates{}, DateOptions{Separator: "-"})
	want := []string{"Mar 1", "Mar 2-Mar 3", "Mar 4-Mar 5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func testChart() Chart {
	return Chart{
		Layout: testLayout(),
		Axes: Axes{
			Y1: Axis{ID: AxisY1, Show: true},
			X1: Axis{ID: AxisX1, Show: true},
		},
		Ranges:        []Range{{Min: 0, Max: 10000}},
		Scales:        []float64{0.01},
		Series:        [][]Point{{{Date: day(1)}, {Date: day(2)}}},
		DateFormatter: fakeDates{},
		Measure:       func(s string) float64 { return float64(len(s)) },
	}
}

func TestDrawWithoutData(t *testing.T) {
	c := testChart()
	c.Ranges = nil
	frame, err := Draw(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame.GridLines) != 5 {
		t.Fatalf("expected gridlines without data, got %d", len(frame.GridLines))
	}
	if len(frame.YAxes) != 0 || len(frame.XAxes) != 0 {
		t.Fatalf("expected no axes without data, got %+v", frame)
	}
}

func TestDrawAxes(t *testing.T) {
	c := testChart()
	c.DynamicLeftPadding = true
	frame, err := Draw(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame.YAxes) != 1 || frame.YAxes[0].ID != AxisY1 {
		t.Fatalf("expected only y1, got %+v", frame.YAxes)
	}
	if top := frame.YAxes[0].Ticks[4].Label; top != "10,000" {
		t.Fatalf("expected top label 10,000, got %q", top)
	}
	// "10,000" is 6 wide, beyond the initial padding of 4.
	if frame.Geometry.Padding.Left != 9 {
		t.Fatalf("expected left padding 9, got %v", frame.Geometry.Padding.Left)
	}
	if c.Layout.Geometry.Padding.Left != 4 {
		t.Fatalf("expected caller geometry untouched, got %v", c.Layout.Geometry.Padding.Left)
	}
	if len(frame.XAxes) != 1 {
		t.Fatalf("expected x1, got %+v", frame.XAxes)
	}
	x := frame.XAxes[0]
	if x.Ticks[0].Label != "Mar 1" || x.Ticks[1].Label != "Mar 2" {
		t.Fatalf("unexpected x labels: %+v", x.Ticks)
	}
	if x.Ticks[1].X != 10+9+2.5 {
		t.Fatalf("expected x ticks to use the widened padding, got %v", x.Ticks[1].X)
	}
}

func TestDrawPresetXLabels(t *testing.T) {
	c := testChart()
	c.DateFormatter = nil
	c.Axes.X1.Labels = []string{"a", "b"}
	frame, err := Draw(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.XAxes[0].Ticks[1].Label != "b" {
		t.Fatalf("expected preset labels, got %+v", frame.XAxes[0].Ticks)
	}
}

func TestDrawErrors(t *testing.T) {
	c := testChart()
	c.DateFormatter = nil
	if _, err := Draw(c); !errors.Is(err, ErrNoDateFormatter) {
		t.Fatalf("expected ErrNoDateFormatter, got %v", err)
	}

	c = testChart()
	c.Axes.Y1.SeriesIndex = 3
	if _, err := Draw(c); err == nil {
		t.Fatalf("expected error for a missing series")
	}

	c = testChart()
	c.Ranges = []Range{{Min: 1, Max: 1}}
	if _, err := Draw(c); !errors.Is(err, ErrRangeTooNarrow) {
		t.Fatalf("expected ErrRangeTooNarrow, got %v", err)
	}
}
