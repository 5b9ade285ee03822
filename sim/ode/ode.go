// Package ode integrates systems of ordinary differential equations with
// explicit fixed-step Runge-Kutta methods.
//
// Methods are described by their Butcher tableau and share one stepping
// routine. Every step clamps each state component at zero: the package is
// used for compartment populations, which cannot go negative.
package ode

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

var (
	// ErrInvalidStep is returned when dt is not finite and positive or tMax
	// is not finite and non-negative.
	ErrInvalidStep = fmt.Errorf("ode: invalid time step or horizon: %w", errs.ErrConfig)

	// ErrEmptyState is returned for a zero-length initial state or a nil
	// derivative function.
	ErrEmptyState = fmt.Errorf("ode: empty initial state or nil derivative: %w", errs.ErrConfig)

	// ErrDimensionMismatch is returned when the derivative function returns
	// a vector whose length differs from the state.
	ErrDimensionMismatch = fmt.Errorf("ode: derivative length differs from state: %w", errs.ErrConfig)

	// ErrUnknownMethod is returned for unrecognized method names.
	ErrUnknownMethod = fmt.Errorf("ode: unknown integration method: %w", errs.ErrConfig)
)

// State is a point in the system's state space.
type State []float64

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Func returns dy/dt at state y and time t. It must not retain y.
type Func func(y State, t float64) State

// Solution is the time grid and the state at every grid point.
type Solution struct {
	T []float64
	Y []State
}

// Len is the number of grid points, including t = 0.
func (s *Solution) Len() int { return len(s.T) }

// butcherTableau describes an explicit Runge-Kutta method, see
// https://en.wikipedia.org/wiki/Runge–Kutta_methods.
type butcherTableau struct {
	stages  int
	nodes   []float64
	weights []float64
	matrix  [][]float64
}

var (
	eulerTableau = butcherTableau{
		stages:  1,
		nodes:   []float64{0},
		weights: []float64{1},
		matrix:  [][]float64{nil},
	}
	rk4Tableau = butcherTableau{
		stages:  4,
		nodes:   []float64{0, 1. / 2., 1. / 2., 1},
		weights: []float64{1. / 6., 1. / 3., 1. / 3., 1. / 6.},
		matrix: [][]float64{
			nil,
			{1. / 2.},
			{0, 1. / 2.},
			{0, 0, 1.},
		},
	}
)

// step advances y by dt and clamps the result at zero.
func (bt butcherTableau) step(f Func, y State, t, dt float64) (State, error) {
	k := make([]State, bt.stages)
	for s := 0; s < bt.stages; s++ {
		stage := y.Clone()
		for j, a := range bt.matrix[s] {
			if a != 0 {
				floats.AddScaled(stage, dt*a, k[j])
			}
		}
		k[s] = f(stage, t+bt.nodes[s]*dt)
		if len(k[s]) != len(y) {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(k[s]), len(y))
		}
	}

	next := y.Clone()
	for s, w := range bt.weights {
		floats.AddScaled(next, dt*w, k[s])
	}
	for i, v := range next {
		next[i] = math.Max(v, 0)
	}
	return next, nil
}

// Steps returns floor(tMax/dt), tolerant of representation error so that
// e.g. 100/0.1 yields 1000.
func Steps(tMax, dt float64) int {
	return int(math.Floor(tMax/dt + 1e-9))
}

// Grid returns steps+1 evenly spaced times from 0 to tMax inclusive.
func Grid(tMax float64, steps int) []float64 {
	if steps == 0 {
		return []float64{0}
	}
	t := make([]float64, steps+1)
	floats.Span(t, 0, tMax)
	return t
}

func validate(f Func, y0 State, tMax, dt float64) error {
	if f == nil || len(y0) == 0 {
		return ErrEmptyState
	}
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
		return fmt.Errorf("%w: dt=%v", ErrInvalidStep, dt)
	}
	if math.IsNaN(tMax) || math.IsInf(tMax, 0) || tMax < 0 {
		return fmt.Errorf("%w: tMax=%v", ErrInvalidStep, tMax)
	}
	return nil
}

func (bt butcherTableau) solve(f Func, y0 State, tMax, dt float64) (*Solution, error) {
	if err := validate(f, y0, tMax, dt); err != nil {
		return nil, err
	}
	n := Steps(tMax, dt)
	sol := &Solution{T: Grid(tMax, n), Y: make([]State, 0, n+1)}
	y := y0.Clone()
	sol.Y = append(sol.Y, y)
	for k := 0; k < n; k++ {
		next, err := bt.step(f, y, sol.T[k], dt)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", k, err)
		}
		sol.Y = append(sol.Y, next)
		y = next
	}
	return sol, nil
}

// Euler integrates with y_{k+1} = y_k + dt·f(y_k, t_k).
func Euler(f Func, y0 State, tMax, dt float64) (*Solution, error) {
	return eulerTableau.solve(f, y0, tMax, dt)
}

// RK4 integrates with the classical four-stage Runge-Kutta method.
func RK4(f Func, y0 State, tMax, dt float64) (*Solution, error) {
	return rk4Tableau.solve(f, y0, tMax, dt)
}
