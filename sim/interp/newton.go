package interp

// Newton is the interpolating polynomial in Newton form.
type Newton struct {
	x    []float64
	coef []float64 // divided differences f[x0], f[x0,x1], ...
}

// NewNewton builds the divided-difference table in place: after pass j,
// coef[i] holds f[x_{i-j}, ..., x_i] for every i >= j.
func NewNewton(xs, ys []float64) (*Newton, error) {
	p, err := newPoints(xs, ys)
	if err != nil {
		return nil, err
	}
	n := len(p.x)
	coef := make([]float64, n)
	copy(coef, p.y)
	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			coef[i] = (coef[i] - coef[i-1]) / (p.x[i] - p.x[i-j])
		}
	}
	return &Newton{x: p.x, coef: coef}, nil
}

// Eval uses Horner-style nested multiplication.
func (nw *Newton) Eval(x float64) float64 {
	n := len(nw.coef)
	v := nw.coef[n-1]
	for k := n - 2; k >= 0; k-- {
		v = v*(x-nw.x[k]) + nw.coef[k]
	}
	return v
}

func (nw *Newton) EvalAll(xs []float64) []float64 { return evalAll(nw.Eval, xs) }

// Coefficients returns a copy of the divided differences.
func (nw *Newton) Coefficients() []float64 {
	return append([]float64(nil), nw.coef...)
}
