package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/sird-sim/sird-sim/sim/ode"
	"github.com/sird-sim/sird-sim/sim/table"
)

// MinInitialInfected floors I0 so a zero-infected row still seeds an epidemic.
const MinInitialInfected = 1e-5

// InitialState is the (S, I, R, D) row a simulation starts from.
type InitialState struct {
	S float64 `yaml:"S" json:"S"`
	I float64 `yaml:"I" json:"I"`
	R float64 `yaml:"R" json:"R"`
	D float64 `yaml:"D" json:"D"`
}

// Validate rejects negative or non-finite compartments.
func (s InitialState) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"S", s.S}, {"I", s.I}, {"R", s.R}, {"D", s.D}} {
		if v.val < 0 || math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("sim: initial %s = %v must be finite and non-negative: %w", v.name, v.val, ErrConfig)
		}
	}
	return nil
}

func (s InitialState) vector() ode.State {
	return ode.State{s.S, math.Max(s.I, MinInitialInfected), s.R, s.D}
}

// InitialFromTable reads S, I, R and D at the given row.
func InitialFromTable(tbl *table.Table, row int) (InitialState, error) {
	if err := tbl.Require(table.Compartments...); err != nil {
		return InitialState{}, err
	}
	var vals [4]float64
	for k, name := range table.Compartments {
		v, err := tbl.Value(name, row)
		if err != nil {
			return InitialState{}, err
		}
		vals[k] = v
	}
	return InitialState{S: vals[0], I: vals[1], R: vals[2], D: vals[3]}, nil
}

// Simulator integrates the SIRD vector field for a fixed, validated
// parameter set.
type Simulator struct {
	params Params
}

// NewSimulator validates p and returns a ready simulator.
func NewSimulator(p Params) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{params: p}, nil
}

// Params returns the simulator's parameter set.
func (s *Simulator) Params() Params { return s.params }

// R0 is recomputed from the parameters on every call.
func (s *Simulator) R0() float64 { return s.params.R0() }

// Derivative is the SIRD vector field:
//
//	dS = -r·S·I
//	dI = r·S·I - (a+b)·I
//	dR = a·I
//	dD = b·I
func (s *Simulator) Derivative(y ode.State, _ float64) ode.State {
	p := s.params
	sus, inf := y[0], y[1]
	contact := p.R * sus * inf
	return ode.State{
		-contact,
		contact - (p.A+p.B)*inf,
		p.A * inf,
		p.B * inf,
	}
}

// Resolve simulates from initial over [0, tMax] with step dt. I0 is floored
// at MinInitialInfected. The returned trajectory has floor(tMax/dt)+1 rows
// and belongs to the caller.
func (s *Simulator) Resolve(initial InitialState, tMax, dt float64, m ode.Method) (*Trajectory, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	sol, err := ode.Solve(m, s.Derivative, initial.vector(), tMax, dt)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", s.params, err)
	}
	traj := trajectoryFromSolution(sol)
	logrus.Debugf("sim: resolved %s with %s over %d rows (tMax=%v dt=%v)", s.params, m, traj.Len(), tMax, dt)
	return traj, nil
}
