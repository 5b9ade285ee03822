package interp

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// PolyFit is a least-squares polynomial fitted on data linearly normalized
// into [0, 1] on both axes. Normalization keeps the Vandermonde system
// usable for high degrees and large-magnitude data.
type PolyFit struct {
	degree       int
	xMin, xScale float64
	yMin, yScale float64
	coef         []float64 // ascending powers, normalized space
}

// NewPolyFit fits a polynomial of the given degree. The degree must satisfy
// 0 <= degree < number of points.
func NewPolyFit(xs, ys []float64, degree int) (*PolyFit, error) {
	p, err := newPoints(xs, ys)
	if err != nil {
		return nil, err
	}
	n := len(p.x)
	if degree < 0 || degree >= n {
		return nil, fmt.Errorf("%w: degree %d with %d points", ErrDegree, degree, n)
	}

	pf := &PolyFit{degree: degree}
	pf.xMin, pf.xScale = span(p.x)
	pf.yMin, pf.yScale = span(p.y)

	cols := degree + 1
	design := mat.NewDense(n, cols, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		xn := (p.x[i] - pf.xMin) / pf.xScale
		v := 1.0
		for j := 0; j < cols; j++ {
			design.Set(i, j, v)
			v *= xn
		}
		rhs.SetVec(i, (p.y[i]-pf.yMin)/pf.yScale)
	}

	var qr mat.QR
	qr.Factorize(design)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("interp: least-squares solve: %w", err)
		}
		logrus.Warnf("interp: degree-%d fit is ill-conditioned (cond=%.3g)", degree, float64(cond))
	}
	pf.coef = make([]float64, cols)
	for j := range pf.coef {
		pf.coef[j] = sol.AtVec(j)
	}
	return pf, nil
}

// span returns the minimum and the range of v; a zero range maps to 1 so a
// constant series normalizes to zero instead of dividing by zero.
func span(v []float64) (lo, scale float64) {
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	scale = hi - lo
	if scale == 0 {
		scale = 1
	}
	return lo, scale
}

// Eval normalizes x, evaluates the fitted polynomial and denormalizes.
func (pf *PolyFit) Eval(x float64) float64 {
	xn := (x - pf.xMin) / pf.xScale
	v := 0.0
	for j := len(pf.coef) - 1; j >= 0; j-- {
		v = v*xn + pf.coef[j]
	}
	return v*pf.yScale + pf.yMin
}

func (pf *PolyFit) EvalAll(xs []float64) []float64 { return evalAll(pf.Eval, xs) }

// Degree reports the fitted polynomial degree.
func (pf *PolyFit) Degree() int { return pf.degree }

// FitEval fits and evaluates in one call. Fitting without evaluating is not
// supported here, so an empty at is an error.
func FitEval(xs, ys []float64, degree int, at []float64) ([]float64, error) {
	if len(at) == 0 {
		return nil, ErrNoEvalPoint
	}
	pf, err := NewPolyFit(xs, ys, degree)
	if err != nil {
		return nil, err
	}
	return pf.EvalAll(at), nil
}
