package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// RelErrFloor replaces observed values of smaller magnitude in the
// relative-error denominator.
const RelErrFloor = 1e-9

// Comparison aligns simulated and observed infected fractions row by row.
type Comparison struct {
	T         []float64
	Simulated []float64
	Observed  []float64
	AbsErr    []float64
	RelErr    []float64
}

// Len is the number of aligned rows.
func (c *Comparison) Len() int { return len(c.T) }

// MeanAbsErr averages AbsErr.
func (c *Comparison) MeanAbsErr() float64 { return stat.Mean(c.AbsErr, nil) }

// MeanRelErr averages RelErr.
func (c *Comparison) MeanRelErr() float64 { return stat.Mean(c.RelErr, nil) }

// CompareWithObserved aligns traj.I with observed by row index over the
// shorter of the two and computes absolute and relative error. Observed
// values with magnitude below RelErrFloor are floored for the relative error.
func CompareWithObserved(traj *Trajectory, observed []float64) (*Comparison, error) {
	n := min(traj.Len(), len(observed))
	if n == 0 {
		return nil, fmt.Errorf("%w: trajectory has %d rows, observed has %d", ErrNoOverlap, traj.Len(), len(observed))
	}
	c := &Comparison{
		T:         append([]float64(nil), traj.T[:n]...),
		Simulated: append([]float64(nil), traj.I[:n]...),
		Observed:  append([]float64(nil), observed[:n]...),
		AbsErr:    make([]float64, n),
		RelErr:    make([]float64, n),
	}
	for k := 0; k < n; k++ {
		diff := math.Abs(c.Simulated[k] - c.Observed[k])
		den := c.Observed[k]
		if math.Abs(den) < RelErrFloor {
			den = RelErrFloor
		}
		c.AbsErr[k] = diff
		c.RelErr[k] = diff / math.Abs(den)
	}
	return c, nil
}
