package interp

// SplineCoefficients is the per-interval cubic
//
//	S_i(x) = A[i] + B[i]·dx + C[i]·dx² + D[i]·dx³,  dx = x - X[i]
//
// for i in 0..len(X)-2.
type SplineCoefficients struct {
	X []float64 // knots, len n
	A []float64 // len n-1
	B []float64
	C []float64
	D []float64
}

// Intervals returns the [X[i], X[i+1]] bounds of every cubic piece.
func (c SplineCoefficients) Intervals() [][2]float64 {
	out := make([][2]float64, len(c.X)-1)
	for i := range out {
		out[i] = [2]float64{c.X[i], c.X[i+1]}
	}
	return out
}

// Spline is a natural cubic spline: second derivative zero at both ends.
type Spline struct {
	pts   points
	coefs SplineCoefficients
	// derivative at the last knot, used for right-hand extrapolation
	endSlope float64
}

// NewSpline fits a natural cubic spline through the points. The second
// derivative coefficients come from a tridiagonal system solved by forward
// elimination and back-substitution.
func NewSpline(xs, ys []float64) (*Spline, error) {
	p, err := newPoints(xs, ys)
	if err != nil {
		return nil, err
	}
	x, y := p.x, p.y
	n := len(x) - 1 // number of intervals

	h := make([]float64, n)
	for i := range h {
		h[i] = x[i+1] - x[i]
	}

	alpha := make([]float64, n+1)
	for i := 1; i < n; i++ {
		alpha[i] = 3/h[i]*(y[i+1]-y[i]) - 3/h[i-1]*(y[i]-y[i-1])
	}

	// forward elimination; l[0] = 1, mu[0] = z[0] = 0 encode c[0] = 0
	l := make([]float64, n+1)
	mu := make([]float64, n+1)
	z := make([]float64, n+1)
	l[0] = 1
	for i := 1; i < n; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}
	l[n] = 1

	// back-substitution; c[n] = 0 is the right natural condition
	c := make([]float64, n+1)
	b := make([]float64, n)
	d := make([]float64, n)
	for j := n - 1; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		b[j] = (y[j+1]-y[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3
		d[j] = (c[j+1] - c[j]) / (3 * h[j])
	}

	a := make([]float64, n)
	copy(a, y[:n])

	last := n - 1
	hl := h[last]
	return &Spline{
		pts: p,
		coefs: SplineCoefficients{
			X: p.x,
			A: a,
			B: b,
			C: c[:n],
			D: d,
		},
		endSlope: b[last] + 2*c[last]*hl + 3*d[last]*hl*hl,
	}, nil
}

// Eval evaluates the cubic of the enclosing interval. Outside the knot range
// it extends the curve linearly with the spline's slope at the nearest end
// knot, so the extrapolation is continuous with the spline.
func (s *Spline) Eval(x float64) float64 {
	xs := s.pts.x
	if x < xs[0] {
		return s.coefs.A[0] + s.coefs.B[0]*(x-xs[0])
	}
	if last := len(xs) - 1; x > xs[last] {
		return s.pts.y[last] + s.endSlope*(x-xs[last])
	}
	i := s.pts.interval(x)
	dx := x - xs[i]
	return s.coefs.A[i] + dx*(s.coefs.B[i]+dx*(s.coefs.C[i]+dx*s.coefs.D[i]))
}

func (s *Spline) EvalAll(xs []float64) []float64 { return evalAll(s.Eval, xs) }

// Coefficients returns a copy of the per-interval coefficient set.
func (s *Spline) Coefficients() SplineCoefficients {
	return SplineCoefficients{
		X: append([]float64(nil), s.coefs.X...),
		A: append([]float64(nil), s.coefs.A...),
		B: append([]float64(nil), s.coefs.B...),
		C: append([]float64(nil), s.coefs.C...),
		D: append([]float64(nil), s.coefs.D...),
	}
}
