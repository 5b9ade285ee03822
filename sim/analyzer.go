package sim

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/table"
)

// Analyzer computes post-hoc diagnostics over a trajectory, real or
// simulated, for a fixed parameter set.
type Analyzer struct {
	params Params
}

// NewAnalyzer validates p with the same rules as NewSimulator.
func NewAnalyzer(p Params) (*Analyzer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{params: p}, nil
}

// R0 is recomputed from the parameters on every call.
func (a *Analyzer) R0() float64 { return a.params.R0() }

// growth is the model's dI/dt at row k.
func (a *Analyzer) growth(traj *Trajectory, k int) float64 {
	p := a.params
	return p.R*traj.I[k]*traj.S[k] - (p.A+p.B)*traj.I[k]
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// PeakIndex returns the first row where dI/dt = r·I·S - (a+b)·I turns from
// growing to not growing: the first k with sign(g[k+1]) < sign(g[k]),
// reported as k+1. ok is false when no such change exists.
func (a *Analyzer) PeakIndex(traj *Trajectory) (idx int, ok bool) {
	for k := 0; k+1 < traj.Len(); k++ {
		if sign(a.growth(traj, k+1))-sign(a.growth(traj, k)) < 0 {
			return k + 1, true
		}
	}
	return 0, false
}

// HerdImmunityThreshold is 1 - S at the peak row.
func (a *Analyzer) HerdImmunityThreshold(traj *Trajectory) (float64, bool) {
	peak, ok := a.PeakIndex(traj)
	if !ok {
		return 0, false
	}
	return 1 - traj.S[peak], true
}

// CriticalTime returns the first row where I exceeds imax.
func (a *Analyzer) CriticalTime(traj *Trajectory, imax float64) (int, bool) {
	for k, v := range traj.I {
		if v > imax {
			return k, true
		}
	}
	return 0, false
}

// CapacityFromBeds converts hospital beds per thousand inhabitants into the
// infected fraction Imax the health system can absorb.
func CapacityFromBeds(litsParMille float64) float64 {
	return litsParMille / 1000
}

// CapacityFromTable reads the beds-per-thousand constant from row 0.
func CapacityFromTable(tbl *table.Table) (float64, error) {
	beds, err := tbl.Value(table.ColBedsPerMille, 0)
	if err != nil {
		return 0, fmt.Errorf("hospital capacity: %w", err)
	}
	return CapacityFromBeds(beds), nil
}

// Summary bundles every analytic. Nil pointers mean the quantity does not
// exist for this trajectory.
type Summary struct {
	R0            float64  `yaml:"r0" json:"r0"`
	PeakIndex     *int     `yaml:"peak_index" json:"peak_index"`
	PeakTime      *float64 `yaml:"peak_time" json:"peak_time"`
	PeakInfected  *float64 `yaml:"peak_infected" json:"peak_infected"`
	HerdImmunity  *float64 `yaml:"herd_immunity_threshold" json:"herd_immunity_threshold"`
	Capacity      float64  `yaml:"capacity" json:"capacity"`
	CriticalIndex *int     `yaml:"critical_index" json:"critical_index"`
	CriticalTime  *float64 `yaml:"critical_time" json:"critical_time"`
	FinalDeceased float64  `yaml:"final_deceased" json:"final_deceased"`
}

// Summarize runs every analytic over traj with hospital capacity imax.
func (a *Analyzer) Summarize(traj *Trajectory, imax float64) *Summary {
	s := &Summary{R0: a.R0(), Capacity: imax}
	if n := traj.Len(); n > 0 {
		s.FinalDeceased = traj.D[n-1]
	}
	if peak, ok := a.PeakIndex(traj); ok {
		t, inf, hit := traj.T[peak], traj.I[peak], 1-traj.S[peak]
		s.PeakIndex, s.PeakTime, s.PeakInfected, s.HerdImmunity = &peak, &t, &inf, &hit
	}
	if crit, ok := a.CriticalTime(traj, imax); ok {
		t := traj.T[crit]
		s.CriticalIndex, s.CriticalTime = &crit, &t
	}
	return s
}
