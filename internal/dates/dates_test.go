package dates

import (
	"testing"
	"time"

	"github.com/brennerm/slashgrid/internal/grid"
)

func TestStrftimeFormatRange(t *testing.T) {
	start := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 7, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end time.Time
		opts       grid.DateOptions
		want       string
	}{
		{"end only", time.Time{}, end, grid.DateOptions{}, "Mar 07"},
		{"range", start, end, grid.DateOptions{}, "Mar 01 - Mar 07"},
		{"custom separator", start, end, grid.DateOptions{Separator: "/"}, "Mar 01/Mar 07"},
		{"same label collapses", start, start.Add(time.Hour), grid.DateOptions{}, "Mar 01"},
		{"custom format", start, end, grid.DateOptions{Format: "%Y-%m-%d %H:%M"}, "2024-03-01 09:00 - 2024-03-07 17:00"},
		{"start only", start, time.Time{}, grid.DateOptions{}, "Mar 01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strftime{}.FormatRange(tt.start, tt.end, tt.opts)
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStrftimeUsesLocation(t *testing.T) {
	end := time.Date(2024, time.March, 1, 23, 0, 0, 0, time.UTC)
	loc := time.FixedZone("plus2", 2*60*60)
	got := Strftime{}.FormatRange(time.Time{}, end, grid.DateOptions{Format: "%d %H", Location: loc})
	if got != "02 01" {
		t.Fatalf("expected the date in the configured zone, got %q", got)
	}
}

func TestStrftimeSatisfiesGrid(t *testing.T) {
	var _ grid.DateRangeFormatter = Strftime{}
}
