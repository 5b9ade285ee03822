package ode

import "fmt"

// Method names a fixed-step integrator.
type Method string

const (
	MethodEuler Method = "euler"
	MethodRK4   Method = "rk4"
)

var tableaus = map[Method]butcherTableau{
	MethodEuler: eulerTableau,
	MethodRK4:   rk4Tableau,
}

// ParseMethod maps a user-supplied name to a Method. Empty selects RK4.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return MethodRK4, nil
	}
	m := Method(name)
	if _, ok := tableaus[m]; !ok {
		return "", fmt.Errorf("%w %q; valid: euler, rk4", ErrUnknownMethod, name)
	}
	return m, nil
}

// Solve integrates f from y0 over [0, tMax] with step dt using method m.
// The grid has floor(tMax/dt)+1 points.
func Solve(m Method, f Func, y0 State, tMax, dt float64) (*Solution, error) {
	bt, ok := tableaus[m]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, string(m))
	}
	return bt.solve(f, y0, tMax, dt)
}
