// Package estimate recovers the SIRD parameters {r, a, b} from an observed
// epidemic table.
//
// The removal rates come from cumulative totals over the integrated
// infected count:
//
//	a = R_abs[last] / ∫ I_abs dt
//	b = D_abs[last] / ∫ I_abs dt
//
// and r is the median of the pointwise estimator
//
//	r_i = (dI/dt_i + (a+b)·I_i) / (S_i·I_i)
//
// over rows where S·I and I are large enough for the ratio to be
// meaningful. The median keeps near-zero denominators from dominating.
package estimate

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/sird-sim/sird-sim/sim"
	"github.com/sird-sim/sird-sim/sim/diff"
	"github.com/sird-sim/sird-sim/sim/quad"
	"github.com/sird-sim/sird-sim/sim/table"
)

var (
	// ErrNoValidSamples is returned when no row passes the S·I and I
	// thresholds, leaving the median undefined.
	ErrNoValidSamples = fmt.Errorf("estimate: no valid samples for r: %w", sim.ErrMissingData)

	// ErrZeroIntegral is returned when ∫ I_abs dt is zero or not finite.
	ErrZeroIntegral = fmt.Errorf("estimate: infected integral is zero or not finite: %w", sim.ErrMissingData)

	// ErrLengthMismatch is returned when the input series differ in length.
	ErrLengthMismatch = fmt.Errorf("estimate: series lengths differ: %w", sim.ErrConfig)
)

// Config selects the numerical rules used by an Estimator.
type Config struct {
	Integration quad.Method `yaml:"integration"`
	Derivative  diff.Scheme `yaml:"derivative"`
	MinSI       float64     `yaml:"min_si"` // rows need S·I above this
	MinI        float64     `yaml:"min_i"`  // rows need I above this
}

// DefaultConfig integrates with Simpson, differentiates with the five-point
// stencil and masks rows with S·I <= 1e-9 or I <= 1e-6.
func DefaultConfig() Config {
	return Config{
		Integration: quad.MethodSimpson,
		Derivative:  diff.FivePoint,
		MinSI:       1e-9,
		MinI:        1e-6,
	}
}

// Estimator recovers {r, a, b}. It holds no state besides its Config.
type Estimator struct {
	cfg Config
}

// New validates cfg and returns an Estimator.
func New(cfg Config) (*Estimator, error) {
	if _, err := quad.ParseMethod(string(cfg.Integration)); err != nil {
		return nil, err
	}
	if _, err := diff.ParseScheme(string(cfg.Derivative)); err != nil {
		return nil, err
	}
	if cfg.Integration == "" {
		cfg.Integration = quad.MethodSimpson
	}
	if cfg.Derivative == "" {
		cfg.Derivative = diff.FivePoint
	}
	if cfg.MinSI < 0 || cfg.MinI < 0 || math.IsNaN(cfg.MinSI) || math.IsNaN(cfg.MinI) {
		return nil, fmt.Errorf("estimate: thresholds must be non-negative (min_si=%v min_i=%v): %w",
			cfg.MinSI, cfg.MinI, sim.ErrConfig)
	}
	return &Estimator{cfg: cfg}, nil
}

// Estimate reads I_abs, R_abs, D_abs, S and I from tbl. The parameters are
// not checked against R0 >= 1; sim.NewSimulator does that.
func (e *Estimator) Estimate(tbl *table.Table) (sim.Params, error) {
	names := []string{table.ColS, table.ColI, table.ColIAbs, table.ColRAbs, table.ColDAbs}
	if err := tbl.Require(names...); err != nil {
		return sim.Params{}, fmt.Errorf("estimating parameters: %w", err)
	}
	cols := make([][]float64, len(names))
	for k, name := range names {
		cols[k], _ = tbl.Column(name)
	}
	return e.EstimateSeries(cols[0], cols[1], cols[2], cols[3], cols[4])
}

// EstimateSeries is Estimate over bare slices with unit step.
func (e *Estimator) EstimateSeries(s, i, iAbs, rAbs, dAbs []float64) (sim.Params, error) {
	n := len(s)
	for _, col := range [][]float64{i, iAbs, rAbs, dAbs} {
		if len(col) != n {
			return sim.Params{}, fmt.Errorf("%w: S=%d I=%d I_abs=%d R_abs=%d D_abs=%d",
				ErrLengthMismatch, len(s), len(i), len(iAbs), len(rAbs), len(dAbs))
		}
	}

	integral, err := quad.Integrate(e.cfg.Integration, iAbs, 1)
	if err != nil {
		return sim.Params{}, fmt.Errorf("integrating I_abs: %w", err)
	}
	if integral == 0 || math.IsNaN(integral) || math.IsInf(integral, 0) {
		return sim.Params{}, fmt.Errorf("%w: %v", ErrZeroIntegral, integral)
	}
	a := rAbs[n-1] / integral
	b := dAbs[n-1] / integral

	dI, err := e.cfg.Derivative.First(i, 1)
	if err != nil {
		return sim.Params{}, fmt.Errorf("differentiating I: %w", err)
	}

	rs := make([]float64, 0, n)
	masked := 0
	for k := range s {
		si := s[k] * i[k]
		if !(si > e.cfg.MinSI && i[k] > e.cfg.MinI) {
			masked++
			continue
		}
		r := (dI[k] + (a+b)*i[k]) / si
		if math.IsNaN(r) || math.IsInf(r, 0) {
			masked++
			continue
		}
		rs = append(rs, r)
	}
	if masked > 0 {
		logrus.Warnf("estimate: %d of %d rows masked (S·I <= %g or I <= %g)", masked, n, e.cfg.MinSI, e.cfg.MinI)
	}
	if len(rs) == 0 {
		return sim.Params{}, fmt.Errorf("%w: all %d rows masked", ErrNoValidSamples, n)
	}

	p := sim.Params{R: Median(rs), A: a, B: b}
	logrus.Debugf("estimate: %s from %d samples (integral %.6g, %s, %s)",
		p, len(rs), integral, e.cfg.Integration, e.cfg.Derivative)
	return p, nil
}

// Median returns the middle value of v, averaging the two middle values
// for even lengths. v is not modified. The median of an empty slice is NaN.
func Median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
