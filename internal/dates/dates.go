// Package dates formats x axis date ranges with strftime patterns.
package dates

import (
	"time"

	"github.com/tebeka/strftime"

	"github.com/brennerm/slashgrid/internal/grid"
)

const (
	DefaultFormat    = "%b %d"
	DefaultSeparator = " - "
)

// Strftime is a grid.DateRangeFormatter.
type Strftime struct{}

// FormatRange prints end alone when start is zero or falls on the same
// label as end, and "start<sep>end" otherwise.
func (Strftime) FormatRange(start, end time.Time, opts grid.DateOptions) string {
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	endLabel := formatTime(format, end, opts.Location)
	if start.IsZero() {
		return endLabel
	}
	startLabel := formatTime(format, start, opts.Location)
	if end.IsZero() {
		return startLabel
	}
	if startLabel == endLabel {
		return endLabel
	}
	return startLabel + sep + endLabel
}

func formatTime(format string, t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	label, err := strftime.Format(format, t)
	if err != nil {
		return t.Format(time.DateOnly)
	}
	return label
}
