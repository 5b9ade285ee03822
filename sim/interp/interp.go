package interp

import "fmt"

// Interpolator evaluates a curve built from samples.
type Interpolator interface {
	// Eval evaluates the curve at x, extrapolating when x is out of range.
	Eval(x float64) float64
	// EvalAll evaluates the curve at each of xs.
	EvalAll(xs []float64) []float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Lagrange{}
	_ Interpolator = &Newton{}
	_ Interpolator = &PolyFit{}
	_ Interpolator = &Linear{}
)

// Kind selects an interpolation strategy.
type Kind string

const (
	KindSpline   Kind = "spline"
	KindLagrange Kind = "lagrange"
	KindNewton   Kind = "newton"
	KindPolyFit  Kind = "polyfit"
	KindLinear   Kind = "linear"
)

var validKinds = map[Kind]bool{
	KindSpline:   true,
	KindLagrange: true,
	KindNewton:   true,
	KindPolyFit:  true,
	KindLinear:   true,
}

// ParseKind maps a user-supplied name to a Kind. There is no default: the
// strategy is always an explicit choice.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !validKinds[k] {
		return "", fmt.Errorf("%w %q; valid: spline, lagrange, newton, polyfit, linear", ErrUnknownKind, name)
	}
	return k, nil
}

// Options carries the strategy-specific knobs used by New.
type Options struct {
	// Chebyshev resamples Lagrange input on Chebyshev nodes.
	Chebyshev bool
	// Degree is the PolyFit polynomial degree.
	Degree int
}

// New builds the interpolator named by kind.
func New(kind Kind, xs, ys []float64, opts Options) (Interpolator, error) {
	switch kind {
	case KindSpline:
		return NewSpline(xs, ys)
	case KindLagrange:
		return NewLagrange(xs, ys, opts.Chebyshev)
	case KindNewton:
		return NewNewton(xs, ys)
	case KindPolyFit:
		return NewPolyFit(xs, ys, opts.Degree)
	case KindLinear:
		return NewLinear(xs, ys)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(kind))
	}
}
