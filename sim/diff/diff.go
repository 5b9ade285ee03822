package diff

import (
	"fmt"
	"math"
)

func checkInput(y []float64, h float64, need int) error {
	if len(y) < need {
		return fmt.Errorf("%w: need at least %d, got %d", ErrTooFewSamples, need, len(y))
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidStep, h)
	}
	return nil
}

// FirstDerivative returns dy/dx at every sample of y, spaced h apart.
//
// With n = 2 both points use the one-sided difference. With n = 3 or 4 the
// boundary formulas already cover every index and no interior point exists.
func FirstDerivative(y []float64, h float64) ([]float64, error) {
	if err := checkInput(y, h, 2); err != nil {
		return nil, err
	}
	n := len(y)
	d := make([]float64, n)

	for i := 2; i < n-2; i++ {
		d[i] = (-y[i+2] + 8*y[i+1] - 8*y[i-1] + y[i-2]) / (12 * h)
	}

	if n == 2 {
		d[0] = (y[1] - y[0]) / h
		d[1] = d[0]
		return d, nil
	}

	d[0] = (y[1] - y[0]) / h
	d[1] = (y[2] - y[0]) / (2 * h)
	d[n-2] = (y[n-1] - y[n-3]) / (2 * h)
	d[n-1] = (y[n-1] - y[n-2]) / h
	return d, nil
}

// SecondDerivative returns d²y/dx² at every sample of y, spaced h apart.
// It needs at least three samples.
func SecondDerivative(y []float64, h float64) ([]float64, error) {
	if err := checkInput(y, h, 3); err != nil {
		return nil, err
	}
	n := len(y)
	d := make([]float64, n)
	h2 := h * h

	for i := 2; i < n-2; i++ {
		d[i] = (-y[i+2] + 16*y[i+1] - 30*y[i] + 16*y[i-1] - y[i-2]) / (12 * h2)
	}

	lo := (y[2] - 2*y[1] + y[0]) / h2
	hi := (y[n-1] - 2*y[n-2] + y[n-3]) / h2
	d[0], d[1] = lo, lo
	d[n-2], d[n-1] = hi, hi
	return d, nil
}

// Gradient is the 2nd-order central difference with one-sided ends:
// (y[i+1]-y[i-1])/2h inside, forward and backward differences at the edges.
func Gradient(y []float64, h float64) ([]float64, error) {
	if err := checkInput(y, h, 2); err != nil {
		return nil, err
	}
	n := len(y)
	d := make([]float64, n)
	for i := 1; i < n-1; i++ {
		d[i] = (y[i+1] - y[i-1]) / (2 * h)
	}
	d[0] = (y[1] - y[0]) / h
	d[n-1] = (y[n-1] - y[n-2]) / h
	return d, nil
}
