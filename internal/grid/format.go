package grid

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSeparator is used for both separators when none is given.
const DefaultSeparator = " "

// FormatNumber groups the integer part of num by thousands and replaces its
// decimal point. When precision is set, num is first re-rounded to it.
//
// "0" is returned untouched, and any value that rounds to zero becomes "0".
func FormatNumber(num string, precision Precision, thousandsSeparator, decimalSeparator string) string {
	if thousandsSeparator == "" {
		thousandsSeparator = DefaultSeparator
	}
	if decimalSeparator == "" {
		decimalSeparator = DefaultSeparator
	}

	if num == "0" {
		return "0"
	}

	if precision.IsSet() {
		if v, err := strconv.ParseFloat(strings.TrimSpace(num), 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
			if precision.IsRound() {
				num = decimal.NewFromFloat(v).Round(0).String()
			} else {
				num = decimal.NewFromFloat(v).StringFixed(int32(precision.Digits()))
			}
		}
	}
	if isZeroText(num) {
		return "0"
	}

	intPart, fracPart, _ := strings.Cut(num, ".")
	if fracPart != "" {
		fracPart = decimalSeparator + fracPart
	}
	return groupThousands(intPart, thousandsSeparator) + fracPart
}

// FormatValue fixes v to the digits of precision and formats the result
// with FormatNumber.
func FormatValue(v float64, precision Precision, thousandsSeparator, decimalSeparator string) string {
	return FormatNumber(fixed(v, precision.Digits()), precision, thousandsSeparator, decimalSeparator)
}

// groupThousands inserts sep every three digits from the right of the
// trailing digit run of s. Anything before that run, such as a sign, is
// kept as is.
func groupThousands(s, sep string) string {
	start := len(s)
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	digits := s[start:]
	if len(digits) <= 3 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + (len(digits)-1)/3*len(sep))
	b.WriteString(s[:start])
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
