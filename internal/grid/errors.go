package grid

import (
	"errors"
	"fmt"
)

// ErrTooFewTicks indicates a tick count below two.
var ErrTooFewTicks = errors.New("tick count must be at least 2")

// ErrInvertedRange indicates a range whose minimum exceeds its maximum.
var ErrInvertedRange = errors.New("range minimum exceeds maximum")

// ErrInvalidRange indicates a range bound that is NaN or infinite.
var ErrInvalidRange = errors.New("range bounds must be finite")

// ErrRangeTooNarrow indicates that no precision up to the ceiling yields
// distinct labels.
var ErrRangeTooNarrow = errors.New("range too narrow to label")

// ErrNoDateFormatter indicates x labels had to be derived but no
// DateRangeFormatter was configured.
var ErrNoDateFormatter = errors.New("no date range formatter configured")

// RangeError reports a range that could not be labelled.
type RangeError struct {
	Min       float64
	Max       float64
	Precision int
	Err       error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("labelling range [%g, %g] at precision %d: %v", e.Min, e.Max, e.Precision, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
