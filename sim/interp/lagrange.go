package interp

import (
	"math"
	"sort"
)

// Lagrange is the full-degree polynomial through every node.
type Lagrange struct {
	x, y []float64
}

// NewLagrange builds the Lagrange polynomial through the points.
//
// With chebyshev set, the polynomial is instead built on n Chebyshev nodes
// spanning the data's x-range, with node values read off a piecewise-linear
// interpolation of the data. Clustering nodes toward the ends dampens Runge
// oscillation between them; it does not remove it, and the resulting curve
// no longer passes exactly through the input points.
func NewLagrange(xs, ys []float64, chebyshev bool) (*Lagrange, error) {
	p, err := newPoints(xs, ys)
	if err != nil {
		return nil, err
	}
	if !chebyshev {
		return &Lagrange{x: p.x, y: p.y}, nil
	}
	lin := &Linear{pts: p}
	nodes := ChebyshevNodes(len(p.x), p.x[0], p.x[len(p.x)-1])
	return &Lagrange{x: nodes, y: lin.EvalAll(nodes)}, nil
}

// ChebyshevNodes returns n cosine-spaced abscissas mapped onto (lo, hi),
// in ascending order.
func ChebyshevNodes(n int, lo, hi float64) []float64 {
	mid, half := (lo+hi)/2, (hi-lo)/2
	nodes := make([]float64, n)
	for k := range nodes {
		nodes[k] = mid + half*math.Cos(float64(2*k+1)*math.Pi/float64(2*n))
	}
	sort.Float64s(nodes)
	return nodes
}

// Eval computes Σ y_j·L_j(x) with the product form of each basis polynomial.
func (lg *Lagrange) Eval(x float64) float64 {
	sum := 0.0
	for j := range lg.x {
		basis := 1.0
		for m := range lg.x {
			if m != j {
				basis *= (x - lg.x[m]) / (lg.x[j] - lg.x[m])
			}
		}
		sum += lg.y[j] * basis
	}
	return sum
}

func (lg *Lagrange) EvalAll(xs []float64) []float64 { return evalAll(lg.Eval, xs) }

// Nodes returns a copy of the abscissas the polynomial was built on.
func (lg *Lagrange) Nodes() []float64 {
	return append([]float64(nil), lg.x...)
}
