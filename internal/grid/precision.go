package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision is the number of digits shown after the decimal point, or the
// round-to-integer policy. The zero value is Digits(0).
type Precision struct {
	digits int
	round  bool
}

// Round rounds labels to the nearest integer.
var Round = Precision{round: true}

// Digits returns a fixed-point precision. Negative counts are clamped to 0.
func Digits(n int) Precision {
	if n < 0 {
		n = 0
	}
	return Precision{digits: n}
}

// ParsePrecision accepts "round" or a non-negative integer.
func ParsePrecision(s string) (Precision, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "round") {
		return Round, nil
	}
	if s == "" {
		return Precision{}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Precision{}, fmt.Errorf("invalid precision %q: %w", s, err)
	}
	if n < 0 {
		return Precision{}, fmt.Errorf("invalid precision %q: must not be negative", s)
	}
	return Digits(n), nil
}

// IsRound reports whether p is the round policy.
func (p Precision) IsRound() bool { return p.round }

// Digits is the fixed digit count used when generating labels. Round
// generates with zero digits.
func (p Precision) Digits() int {
	if p.round {
		return 0
	}
	return p.digits
}

// IsSet reports whether the formatter re-rounds input under p.
func (p Precision) IsSet() bool {
	return p.round || p.digits > 0
}

// Escalate returns the next finer precision. Round escalates to Digits(1).
func (p Precision) Escalate() Precision {
	return Digits(p.Digits() + 1)
}

func (p Precision) String() string {
	if p.round {
		return "round"
	}
	return strconv.Itoa(p.digits)
}
