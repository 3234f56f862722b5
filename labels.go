package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brennerm/slashgrid/internal/grid"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the y axis labels for a range",
	Example: `  slashgrid labels --min 0 --max 1 --ticks 5
  slashgrid labels --min -2500 --max 10000 --precision round --table --height 200
  slashgrid labels --url http://localhost:9090/metrics --metric process_cpu_seconds_total`,
	Args: cobra.NoArgs,
	RunE: runLabels,
}

func init() {
	addGridFlags(labelsCmd.Flags())
	addSourceFlags(labelsCmd.Flags())
	labelsCmd.Flags().Float64("height", 0, "Axis height; when set, --table also prints label positions")
	labelsCmd.Flags().Float64("pad-top", 0, "Top padding")
	labelsCmd.Flags().Float64("pad-bottom", 0, "Bottom padding")
	labelsCmd.Flags().Bool("table", false, "Print a table with values and positions")
	labelsCmd.Flags().Bool("summary", false, "Print the range and final precision")
}

func runLabels(cmd *cobra.Command, _ []string) error {
	v, err := newConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := gridConfig(v)
	if err != nil {
		return err
	}
	rng, err := axisRange(v)
	if err != nil {
		return err
	}

	layout := grid.Layout{
		Grid: cfg,
		Geometry: grid.Geometry{
			Height:  v.GetFloat64("height"),
			Padding: grid.Padding{Top: v.GetFloat64("pad-top"), Bottom: v.GetFloat64("pad-bottom")},
		},
	}
	axis, err := layout.YAxis(grid.Axis{ID: grid.AxisY1}, rng, v.GetFloat64("scale"))
	if err != nil {
		return fmt.Errorf("failed to label range: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"min":       rng.Min,
		"max":       rng.Max,
		"requested": cfg.Precision,
		"final":     axis.Precision,
	}).Debug("labelled axis")

	out := cmd.OutOrStdout()
	if v.GetBool("summary") {
		fmt.Fprintf(out, "range %s .. %s, %d labels, precision %s\n",
			humanize.SIWithDigits(rng.Min, 2, ""), humanize.SIWithDigits(rng.Max, 2, ""),
			len(axis.Ticks), axis.Precision)
	}

	if !v.GetBool("table") {
		// Top label first, the way the axis reads.
		for i := len(axis.Ticks) - 1; i >= 0; i-- {
			fmt.Fprintln(out, axis.Ticks[i].Label)
		}
		return nil
	}

	fmt.Fprintln(out, labelsTable(axis, layout.Geometry.Height > 0))
	return nil
}

// labelsTable renders the ticks top label first.
func labelsTable(axis grid.YAxisLayout, withY bool) string {
	headers := []string{"#", "value", "label"}
	if withY {
		headers = append(headers, "y")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(axisStyle).
		Headers(headers...)
	for i := len(axis.Ticks) - 1; i >= 0; i-- {
		tick := axis.Ticks[i]
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(tick.Value, 'g', -1, 64),
			tick.Label,
		}
		if withY {
			row = append(row, strconv.FormatFloat(tick.Y, 'f', 2, 64))
		}
		t.Row(row...)
	}
	return t.String()
}
