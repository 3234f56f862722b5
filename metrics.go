package main

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brennerm/slashgrid/internal/grid"
)

const scrapeTimeout = 10 * time.Second

// MetricSample represents a single metric sample
type MetricSample struct {
	FullName string // Full metric name including labels
	Value    float64
}

// BaseName is the metric name without labels.
func (s MetricSample) BaseName() string {
	name, _, _ := strings.Cut(s.FullName, "{")
	return name
}

// scrape reads every sample exposed by a Prometheus text endpoint.
func scrape(ctx context.Context, url string) ([]MetricSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var samples []MetricSample
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments and empty lines
		if strings.HasPrefix(line, "#") || len(strings.TrimSpace(line)) == 0 {
			continue
		}

		sample, ok := parseSampleLine(line)
		if !ok {
			logrus.WithField("line", line).Debug("skipping unparseable sample")
			continue
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read metrics: %w", err)
	}
	return samples, nil
}

// fetchAllMetrics fetches all available metric names from the endpoint
func fetchAllMetrics(url string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	samples, err := scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, s := range samples {
		if name := s.BaseName(); !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// fetchAllMetricSeries fetches all series for a specific metric
func fetchAllMetricSeries(url, metricName string) ([]MetricSample, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	samples, err := scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	var series []MetricSample
	for _, s := range samples {
		if s.BaseName() != metricName {
			continue
		}
		// If no labels, add empty labels
		if !strings.Contains(s.FullName, "{") {
			s.FullName += "{}"
		}
		series = append(series, s)
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("metric %q not found", metricName)
	}
	return series, nil
}

// parseSampleLine parses a single exposition line such as
// `metric_name{label="value"} 123.45 1627847261`. The timestamp is ignored.
func parseSampleLine(line string) (MetricSample, bool) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return MetricSample{}, false
	}

	val, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return MetricSample{}, false
	}
	return MetricSample{FullName: parts[0], Value: val}, true
}

// seriesRange is the span of the sample values, widened by a tenth of each
// bound's magnitude so the extremes do not sit on the frame.
func seriesRange(samples []MetricSample) (grid.Range, error) {
	if len(samples) == 0 {
		return grid.Range{}, fmt.Errorf("no samples to derive a range from")
	}
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return valueRange(values)
}

func valueRange(values []float64) (grid.Range, error) {
	rng := grid.Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rng.Min = math.Min(rng.Min, v)
		rng.Max = math.Max(rng.Max, v)
	}
	if rng.Min > rng.Max {
		return grid.Range{}, fmt.Errorf("no finite values to derive a range from")
	}

	if rng.Degenerate() {
		// All values are the same, create a small range around the value
		if rng.Min == 0 {
			return grid.Range{Min: -1, Max: 1}, nil
		}
		delta := math.Abs(rng.Min) * 0.1
		return grid.Range{Min: rng.Min - delta, Max: rng.Max + delta}, nil
	}

	rng.Min -= math.Abs(rng.Min) * 0.1
	rng.Max += math.Abs(rng.Max) * 0.1
	return rng, nil
}
