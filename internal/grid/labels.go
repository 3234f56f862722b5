// Package grid computes axis label sets and the positions of gridlines and
// ticks for a 2-D chart.
package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultMaxPrecision caps duplicate-avoidance escalation when no ceiling
// is configured.
const DefaultMaxPrecision = 20

// Range is the numeric span of an axis.
type Range struct {
	Min float64
	Max float64
}

// Validate checks that r can be interpolated.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return ErrInvalidRange
	}
	if r.Min > r.Max {
		return ErrInvertedRange
	}
	return nil
}

// Degenerate reports whether the range collapses to a single value.
func (r Range) Degenerate() bool {
	return r.Min == r.Max
}

// GenerateLabels returns tickCount labels evenly spaced from minVal to
// maxVal inclusive, each fixed to precision digits.
func GenerateLabels(maxVal, minVal float64, precision, tickCount int) ([]string, error) {
	if tickCount < 2 {
		return nil, ErrTooFewTicks
	}
	if err := (Range{Min: minVal, Max: maxVal}).Validate(); err != nil {
		return nil, err
	}

	labels := make([]string, tickCount)
	for i := range labels {
		labels[i] = fixed(interpolate(minVal, maxVal, i, tickCount), precision)
	}
	return labels, nil
}

// UniqueLabels generates labels and raises the precision until no two
// labels are equal. It returns the labels and the precision they were
// generated at. Escalation stops at maxPrecision, or DefaultMaxPrecision
// when maxPrecision <= 0.
func UniqueLabels(maxVal, minVal float64, precision, tickCount, maxPrecision int) ([]string, int, error) {
	if maxPrecision <= 0 {
		maxPrecision = DefaultMaxPrecision
	}
	if precision < 0 {
		precision = 0
	}

	labels, err := GenerateLabels(maxVal, minVal, precision, tickCount)
	if err != nil {
		return nil, precision, err
	}
	if minVal == maxVal {
		return nil, precision, &RangeError{Min: minVal, Max: maxVal, Precision: precision, Err: ErrRangeTooNarrow}
	}

	for HasDuplicates(labels) {
		if precision >= maxPrecision {
			return nil, precision, &RangeError{Min: minVal, Max: maxVal, Precision: precision, Err: ErrRangeTooNarrow}
		}
		precision++
		if labels, err = GenerateLabels(maxVal, minVal, precision, tickCount); err != nil {
			return nil, precision, err
		}
	}
	return labels, precision, nil
}

// interpolate returns tick i of n spread evenly from minVal to maxVal. Both
// bounds are weighted separately so ranges wider than the largest float64
// stay finite.
func interpolate(minVal, maxVal float64, i, n int) float64 {
	t := float64(i) / float64(n-1)
	return minVal*(1-t) + maxVal*t
}

// HasDuplicates reports whether any two labels are textually identical.
func HasDuplicates(labels []string) bool {
	n := len(labels)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if labels[i] == labels[j] {
				return true
			}
		}
	}
	return false
}

// fixed renders v with exactly digits decimals, rounding ties away from
// zero. Zero, including a negative value that rounds to zero, is "0".
func fixed(v float64, digits int) string {
	if v == 0 {
		return "0"
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}
	s := decimal.NewFromFloat(v).StringFixed(int32(digits))
	if isZeroText(s) {
		return "0"
	}
	return s
}

// isZeroText reports whether s is a zero such as "-0" or "0.000".
func isZeroText(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	return strings.Trim(s, "0.") == "" && strings.ContainsRune(s, '0')
}
