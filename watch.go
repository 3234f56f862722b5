package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/brennerm/slashgrid/internal/grid"
)

const (
	ticksBoxWidth   = 28
	ticksContentPad = 1
)

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Chart a Prometheus metric live with grid-computed y labels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args[0])
	},
}

func init() {
	fs := watchCmd.Flags()
	addGridFlags(fs)
	fs.String("metric", "", "The metric to visualize (if empty, the first metric is chosen)")
	fs.Duration("interval", 2*time.Second, "The interval to poll for new metrics")
}

// metricItem implements list.Item for the metric list
type metricItem string

func (i metricItem) FilterValue() string { return string(i) }

// metricDelegate is the list item delegate
type metricDelegate struct{}

func (d metricDelegate) Height() int                             { return 1 }
func (d metricDelegate) Spacing() int                            { return 0 }
func (d metricDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d metricDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(metricItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i)
	if index == m.Index() {
		fmt.Fprint(w, listSelectedItemStyle.Render("> "+str))
		return
	}
	fmt.Fprint(w, listItemStyle.Render(str))
}

// TickMsg signals time to fetch new metrics
type TickMsg time.Time

// MetricsMsg contains fetched metrics data
type MetricsMsg struct {
	Metric  string
	Samples []MetricSample
	Err     error
}

// MetricsListMsg contains a list of all available metrics
type MetricsListMsg struct {
	Metrics []string
	Err     error
}

// Model is the bubbletea model of the watch command.
type Model struct {
	url        string
	metricName string
	interval   time.Duration
	grid       grid.GridConfig

	chart       timeserieslinechart.Model
	series      []string // series names in arrival order, for stable colors
	yRange      grid.Range
	yRangeSet   bool
	precision   grid.Precision
	lastUpdate  time.Time
	err         error
	width       int
	height      int
	termWidth   int
	termHeight  int
	selectMode  bool
	metricsList list.Model
	showTicks   bool
	ticksView   viewport.Model
}

// gridLabelFormatter formats ntcharts y labels with the precision the grid
// settles on for rng drawn at scale cells per unit.
func gridLabelFormatter(cfg grid.GridConfig, rng grid.Range, scale float64) (func(int, float64) string, grid.Precision) {
	p := cfg.StartPrecision(rng, scale)
	_, digits, err := grid.UniqueLabels(rng.Max, rng.Min, p.Digits(), cfg.NumYLabels, cfg.MaxPrecision)
	switch {
	case err != nil:
		logrus.WithError(err).Debug("keeping configured precision")
	case digits != p.Digits():
		p = grid.Digits(digits)
	}

	return func(_ int, v float64) string {
		return grid.FormatValue(v, p, cfg.ThousandsSeparator, cfg.DecimalSeparator)
	}, p
}

func newChart(width, height int, interval time.Duration) timeserieslinechart.Model {
	return timeserieslinechart.New(width, height,
		timeserieslinechart.WithAxesStyles(axisStyle, labelStyle),
		timeserieslinechart.WithStyle(graphStyle),
		timeserieslinechart.WithLineStyle(runes.ThinLineStyle),
		timeserieslinechart.WithUpdateHandler(timeserieslinechart.SecondUpdateHandler(int(interval.Seconds()))),
		timeserieslinechart.WithXLabelFormatter(timeserieslinechart.HourTimeLabelFormatter()),
	)
}

// NewModel creates a new model
func NewModel(url, metricName string, interval time.Duration, cfg grid.GridConfig) Model {
	width, height := 100, 20

	l := list.New([]list.Item{}, metricDelegate{}, 50, 20)
	l.Title = "Select a metric:"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = listTitleStyle

	tv := viewport.New(ticksBoxWidth-2-2*ticksContentPad, height)
	tv.MouseWheelEnabled = true

	return Model{
		url:         url,
		metricName:  metricName,
		interval:    interval,
		grid:        cfg,
		chart:       newChart(width, height, interval),
		width:       width,
		height:      height,
		metricsList: l,
		precision:   cfg.Precision,
		ticksView:   tv,
	}
}

// fetchMetricCmd returns a command that fetches metrics
func fetchMetricCmd(url, metricName string) tea.Cmd {
	return func() tea.Msg {
		samples, err := fetchAllMetricSeries(url, metricName)
		return MetricsMsg{Metric: metricName, Samples: samples, Err: err}
	}
}

// fetchAllMetricsCmd returns a command that fetches all available metrics
func fetchAllMetricsCmd(url string) tea.Cmd {
	return func() tea.Msg {
		metrics, err := fetchAllMetrics(url)
		return MetricsListMsg{Metrics: metrics, Err: err}
	}
}

// tickCmd returns a command that ticks at the specified interval
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	m.chart.DrawXYAxisAndLabel()
	return tea.Batch(
		fetchMetricCmd(m.url, m.metricName),
		tickCmd(m.interval),
	)
}

// applyRange widens the y range to cover rng and relabels the axis.
func (m *Model) applyRange(rng grid.Range) {
	if m.yRangeSet {
		if rng.Min >= m.yRange.Min && rng.Max <= m.yRange.Max {
			return
		}
		rng.Min = min(rng.Min, m.yRange.Min)
		rng.Max = max(rng.Max, m.yRange.Max)
	}
	m.yRange = rng
	m.yRangeSet = true
	m.chart.SetYRange(rng.Min, rng.Max)
	m.chart.SetViewYRange(rng.Min, rng.Max)
	m.relabel()
}

// relabel recomputes the y label precision for the current range.
func (m *Model) relabel() {
	if !m.yRangeSet {
		return
	}
	formatter, p := gridLabelFormatter(m.grid, m.yRange, m.scale())
	if p != m.precision {
		logrus.WithFields(logrus.Fields{
			"metric": m.metricName,
			"from":   m.precision,
			"to":     p,
		}).Debug("y label precision changed")
	}
	m.precision = p
	m.chart.YLabelFormatter = formatter
	m.chart.DrawXYAxisAndLabel()
	m.rebuildTicks()
}

// scale is the number of chart rows per value unit.
func (m *Model) scale() float64 {
	return float64(m.height) / (m.yRange.Max - m.yRange.Min)
}

// rebuildTicks lists the grid labels with their chart rows.
func (m *Model) rebuildTicks() {
	if !m.yRangeSet {
		return
	}
	layout := grid.Layout{
		Grid:     m.grid,
		Geometry: grid.Geometry{Height: float64(m.height)},
	}
	y, err := layout.YAxis(grid.Axis{ID: grid.AxisY1}, m.yRange, m.scale())
	if err != nil {
		m.ticksView.SetContent(err.Error())
		return
	}

	var sb strings.Builder
	for i := len(y.Ticks) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%3.0f  %s\n", y.Ticks[i].Y, y.Ticks[i].Label)
	}
	m.ticksView.SetContent(sb.String())
}

func (m *Model) resetChart() {
	m.chart = newChart(m.width, m.height, m.interval)
	m.chart.DrawXYAxisAndLabel()
	m.err = nil
	m.series = nil
	m.yRangeSet = false
	m.precision = m.grid.Precision
	m.lastUpdate = time.Time{}
	m.ticksView.SetContent("")
}

// resizeChart resizes the chart based on terminal dimensions
func (m *Model) resizeChart() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}

	headerFooterHeight := 7
	if m.err != nil {
		headerFooterHeight += 2
	}

	chartWidth := m.termWidth - 6
	if m.showTicks {
		chartWidth -= ticksBoxWidth + 3
	}
	chartWidth = max(chartWidth, 40)
	chartHeight := max(m.termHeight-headerFooterHeight, 10)

	if chartWidth != m.width || chartHeight != m.height {
		m.width = chartWidth
		m.height = chartHeight
		m.chart.Resize(m.width, m.height)
		m.chart.DrawXYAxisAndLabel()
		m.chart.DrawAll()
		m.rebuildTicks()
	}
	m.ticksView.Height = max(m.height-4, 1)
}

func (m *Model) seriesIndex(name string) int {
	for i, s := range m.series {
		if s == name {
			return i
		}
	}
	m.series = append(m.series, name)
	return len(m.series) - 1
}

func (m Model) handleMetrics(msg MetricsMsg) (tea.Model, tea.Cmd) {
	// Ignore messages for the wrong metric (can happen when switching metrics)
	if msg.Metric != m.metricName {
		return m, nil
	}
	if msg.Err != nil {
		logrus.WithError(msg.Err).WithField("metric", msg.Metric).Warn("fetch failed")
		m.err = msg.Err
		return m, nil
	}

	m.err = nil
	m.lastUpdate = time.Now()

	if rng, err := seriesRange(msg.Samples); err == nil {
		m.applyRange(rng)
	}

	for _, sample := range msg.Samples {
		i := m.seriesIndex(sample.FullName)
		m.chart.SetDataSetStyle(sample.FullName, seriesStyle(i))
		m.chart.SetDataSetLineStyle(sample.FullName, runes.ThinLineStyle)
		m.chart.PushDataSet(sample.FullName, timeserieslinechart.TimePoint{
			Time:  m.lastUpdate,
			Value: sample.Value,
		})
	}
	m.chart.DrawAll()
	return m, nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case TickMsg:
		return m, tea.Batch(
			fetchMetricCmd(m.url, m.metricName),
			tickCmd(m.interval),
		)
	case MetricsMsg:
		return m.handleMetrics(msg)
	}

	if m.selectMode {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.String() {
			case "enter":
				if i, ok := m.metricsList.SelectedItem().(metricItem); ok {
					m.metricName = string(i)
					m.resetChart()
				}
				m.metricsList.ResetFilter()
				m.selectMode = false
				return m, fetchMetricCmd(m.url, m.metricName)
			case "ctrl+c":
				return m, tea.Quit
			case "q", "esc":
				if m.metricsList.FilterState() != list.Filtering {
					m.metricsList.ResetFilter()
					m.selectMode = false
					return m, nil
				}
			}
		case MetricsListMsg:
			if msg.Err != nil {
				m.err = msg.Err
				m.selectMode = false
				return m, nil
			}
			items := make([]list.Item, len(msg.Metrics))
			for i, metric := range msg.Metrics {
				items[i] = metricItem(metric)
			}
			m.metricsList.SetItems(items)
			return m, nil
		}

		m.metricsList, cmd = m.metricsList.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "m":
			m.selectMode = true
			return m, fetchAllMetricsCmd(m.url)
		case "t":
			m.showTicks = !m.showTicks
			m.resizeChart()
			return m, nil
		case "+":
			m.grid.NumYLabels++
			m.relabel()
			return m, nil
		case "-":
			if m.grid.NumYLabels > 2 {
				m.grid.NumYLabels--
				m.relabel()
			}
			return m, nil
		case "r":
			m.resetChart()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.selectMode {
			m.metricsList.SetSize(msg.Width-4, msg.Height-10)
		} else {
			m.resizeChart()
		}
	}

	if m.showTicks {
		m.ticksView, cmd = m.ticksView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) header() string {
	title := titleStyle.Render(fmt.Sprintf("slashgrid  %s", m.metricName))
	info := fmt.Sprintf("%s | every %s | %d labels | precision %s", m.url, m.interval, m.grid.NumYLabels, m.precision)
	if m.yRangeSet {
		info += fmt.Sprintf(" | range %s .. %s",
			humanize.SIWithDigits(m.yRange.Min, 2, ""), humanize.SIWithDigits(m.yRange.Max, 2, ""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, helpStyle.Render(info))
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.header())
	sb.WriteString("\n\n")

	if m.selectMode {
		sb.WriteString(m.metricsList.View())
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("Press Enter to select, Esc/q to cancel, / to filter"))
		return sb.String()
	}

	if m.err != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		sb.WriteString("\n\n")
	}

	body := borderStyle.Render(m.chart.View())
	if m.showTicks {
		ticks := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("202")).
			Padding(0, ticksContentPad).
			Width(ticksBoxWidth).
			Height(m.height).
			Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Ticks"), m.ticksView.View()))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", ticks)
	}
	sb.WriteString(lipgloss.NewStyle().MarginLeft(2).MarginRight(2).Render(body))
	sb.WriteString("\n")

	help := keyStyle.Render("q") + valStyle.Render("Quit") + "  " +
		keyStyle.Render("m") + valStyle.Render("Metrics") + "  " +
		keyStyle.Render("t") + valStyle.Render("Ticks") + "  " +
		keyStyle.Render("+/-") + valStyle.Render("Labels") + "  " +
		keyStyle.Render("r") + valStyle.Render("Reset")
	sb.WriteString(lipgloss.NewStyle().Width(m.termWidth).Render(help))
	return sb.String()
}

func runWatch(cmd *cobra.Command, url string) error {
	v, err := newConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err := gridConfig(v)
	if err != nil {
		return err
	}

	metric := v.GetString("metric")
	if metric == "" {
		metrics, err := fetchAllMetrics(url)
		if err != nil {
			return fmt.Errorf("error fetching metrics: %w", err)
		}
		if len(metrics) == 0 {
			return fmt.Errorf("no metrics found at the endpoint")
		}
		metric = metrics[0]
	}

	m := NewModel(url, metric, v.GetDuration("interval"), cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
