// Package quad estimates definite integrals of uniformly sampled sequences.
//
// All rules are pure functions of their input: Simpson's odd-length
// requirement is met by integrating a padded copy, never by editing the
// caller's slice.
package quad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

var (
	// ErrTooFewSamples is returned for sequences with fewer than 2 samples.
	ErrTooFewSamples = fmt.Errorf("quad: too few samples: %w", errs.ErrConfig)

	// ErrInvalidStep is returned when h is not a finite positive number.
	ErrInvalidStep = fmt.Errorf("quad: step must be finite and positive: %w", errs.ErrConfig)

	// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
	ErrUnknownMethod = fmt.Errorf("quad: unknown method: %w", errs.ErrConfig)
)

func checkInput(y []float64, h float64) error {
	if len(y) < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", ErrTooFewSamples, len(y))
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidStep, h)
	}
	return nil
}

// Trapezoid returns h/2 * (y0 + y[n-1] + 2·Σ interior).
func Trapezoid(y []float64, h float64) (float64, error) {
	if err := checkInput(y, h); err != nil {
		return 0, err
	}
	n := len(y)
	interior := floats.Sum(y[1 : n-1])
	return h / 2 * (y[0] + y[n-1] + 2*interior), nil
}

// PadOdd returns y unchanged if its length is odd, otherwise a new slice with
// the last sample duplicated at the end. The input is never modified.
func PadOdd(y []float64) []float64 {
	if len(y)%2 == 1 {
		return y
	}
	out := make([]float64, len(y)+1)
	copy(out, y)
	out[len(y)] = y[len(y)-1]
	return out
}

// Simpson applies the composite 1/3 rule. Even-length input is padded with
// PadOdd first, which adds one h-wide panel of the final value.
func Simpson(y []float64, h float64) (float64, error) {
	if err := checkInput(y, h); err != nil {
		return 0, err
	}
	p := PadOdd(y)
	n := len(p)
	sum := p[0] + p[n-1]
	for i := 1; i < n-1; i++ {
		if i%2 == 1 {
			sum += 4 * p[i]
		} else {
			sum += 2 * p[i]
		}
	}
	return h / 3 * sum, nil
}

// LeftRectangle sums the first n-1 samples scaled by h.
func LeftRectangle(y []float64, h float64) (float64, error) {
	if err := checkInput(y, h); err != nil {
		return 0, err
	}
	return h * floats.Sum(y[:len(y)-1]), nil
}

// RightRectangle sums the last n-1 samples scaled by h.
func RightRectangle(y []float64, h float64) (float64, error) {
	if err := checkInput(y, h); err != nil {
		return 0, err
	}
	return h * floats.Sum(y[1:]), nil
}
