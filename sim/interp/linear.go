package interp

// Linear joins consecutive points with straight segments and extends the
// first and last segments beyond the data range.
type Linear struct {
	pts points
}

// NewLinear builds a piecewise-linear interpolator.
func NewLinear(xs, ys []float64) (*Linear, error) {
	p, err := newPoints(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Linear{pts: p}, nil
}

// Eval interpolates between the bracketing knots; out-of-range queries use
// the slope of the nearest boundary segment.
func (l *Linear) Eval(x float64) float64 {
	i := l.pts.interval(x)
	x0, x1 := l.pts.x[i], l.pts.x[i+1]
	y0, y1 := l.pts.y[i], l.pts.y[i+1]
	slope := (y1 - y0) / (x1 - x0)
	return y0 + slope*(x-x0)
}

func (l *Linear) EvalAll(xs []float64) []float64 { return evalAll(l.Eval, xs) }
