package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sird-sim/sird-sim/sim/internal/testutil"
	"github.com/sird-sim/sird-sim/sim/ode"
)

// TestSimulator_GoldenDataset pins trajectories and diagnostics of reference
// runs so integrator or vector-field changes show up as diffs.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			p := Params{R: tc.Params.R, A: tc.Params.A, B: tc.Params.B}
			s, err := NewSimulator(p)
			require.NoError(t, err)
			m, err := ode.ParseMethod(tc.Method)
			require.NoError(t, err)

			initial := InitialState{S: tc.Initial.S, I: tc.Initial.I, R: tc.Initial.R, D: tc.Initial.D}
			traj, err := s.Resolve(initial, tc.Horizon, tc.DT, m)
			require.NoError(t, err)
			require.Equal(t, tc.Metrics.Rows, traj.Len())

			an, err := NewAnalyzer(p)
			require.NoError(t, err)
			peak, ok := an.PeakIndex(traj)
			require.True(t, ok)
			assert.Equal(t, tc.Metrics.PeakIndex, peak)

			hit, ok := an.HerdImmunityThreshold(traj)
			require.True(t, ok)

			last := traj.Len() - 1
			testutil.AssertFloat64Equal(t, "peak_infected", tc.Metrics.PeakInfected, traj.I[peak], 1e-9)
			testutil.AssertFloat64Equal(t, "herd_immunity", tc.Metrics.HerdImmunity, hit, 1e-9)
			testutil.AssertFloat64Equal(t, "final_s", tc.Metrics.FinalS, traj.S[last], 1e-9)
			testutil.AssertFloat64Equal(t, "final_d", tc.Metrics.FinalD, traj.D[last], 1e-9)

			total0 := traj.Total(0)
			for k := 0; k < traj.Len(); k++ {
				assert.InDelta(t, total0, traj.Total(k), 1e-12, "row %d", k)
			}
		})
	}
}
