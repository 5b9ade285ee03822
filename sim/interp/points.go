package interp

import (
	"fmt"
	"math"
	"sort"
)

// points is a private, x-sorted copy of the caller's samples.
type points struct {
	x, y []float64
}

func (p points) Len() int           { return len(p.x) }
func (p points) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p points) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.y[i], p.y[j] = p.y[j], p.y[i]
}

func newPoints(xs, ys []float64) (points, error) {
	if len(xs) != len(ys) {
		return points{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return points{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	p := points{x: make([]float64, len(xs)), y: make([]float64, len(ys))}
	copy(p.x, xs)
	copy(p.y, ys)
	for i := range p.x {
		if !isFinite(p.x[i]) || !isFinite(p.y[i]) {
			return points{}, fmt.Errorf("%w: point %d is (%v, %v)", ErrNonFinite, i, p.x[i], p.y[i])
		}
	}
	if !sort.IsSorted(p) {
		sort.Stable(p)
	}
	for i := 1; i < len(p.x); i++ {
		if p.x[i] == p.x[i-1] {
			return points{}, fmt.Errorf("%w: x=%v", ErrDuplicateAbscissa, p.x[i])
		}
	}
	return p, nil
}

// interval returns k such that x lies in [x[k], x[k+1]], clamped to the
// first and last intervals for out-of-range queries.
func (p points) interval(x float64) int {
	k := sort.SearchFloat64s(p.x, x) - 1
	if k < 0 {
		return 0
	}
	if last := len(p.x) - 2; k > last {
		return last
	}
	return k
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func evalAll(eval func(float64) float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = eval(x)
	}
	return out
}
