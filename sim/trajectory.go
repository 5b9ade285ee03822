package sim

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/ode"
	"github.com/sird-sim/sird-sim/sim/table"
)

// Trajectory is a time-ordered sequence of (t, S, I, R, D) rows, stored
// column-wise.
type Trajectory struct {
	T []float64
	S []float64
	I []float64
	R []float64
	D []float64
}

func trajectoryFromSolution(sol *ode.Solution) *Trajectory {
	n := sol.Len()
	traj := &Trajectory{
		T: append([]float64(nil), sol.T...),
		S: make([]float64, n),
		I: make([]float64, n),
		R: make([]float64, n),
		D: make([]float64, n),
	}
	for k, y := range sol.Y {
		traj.S[k], traj.I[k], traj.R[k], traj.D[k] = y[0], y[1], y[2], y[3]
	}
	return traj
}

// TrajectoryFromTable reads S, I, R and D from tbl, using its index as time.
// This lets the analytics run over observed data.
func TrajectoryFromTable(tbl *table.Table) (*Trajectory, error) {
	if err := tbl.Require(table.Compartments...); err != nil {
		return nil, err
	}
	traj := &Trajectory{T: tbl.Index()}
	cols := []*[]float64{&traj.S, &traj.I, &traj.R, &traj.D}
	for k, name := range table.Compartments {
		v, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		*cols[k] = v
	}
	return traj, nil
}

// Len is the number of rows.
func (t *Trajectory) Len() int { return len(t.T) }

// Row returns (t, S, I, R, D) at index k.
func (t *Trajectory) Row(k int) [5]float64 {
	return [5]float64{t.T[k], t.S[k], t.I[k], t.R[k], t.D[k]}
}

// Total is S+I+R+D at index k.
func (t *Trajectory) Total(k int) float64 {
	return t.S[k] + t.I[k] + t.R[k] + t.D[k]
}

// ToTable converts the trajectory to a table indexed by t.
func (t *Trajectory) ToTable() (*table.Table, error) {
	tbl := table.New(t.T)
	for k, col := range [][]float64{t.S, t.I, t.R, t.D} {
		if err := tbl.Set(table.Compartments[k], col); err != nil {
			return nil, fmt.Errorf("trajectory to table: %w", err)
		}
	}
	return tbl, nil
}
