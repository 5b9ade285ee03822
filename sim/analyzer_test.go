package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sird-sim/sird-sim/sim/table"
)

// With r=0.5 and a+b=0.2, dI/dt changes sign when S drops below 0.4.
var peakParams = Params{R: 0.5, A: 0.1, B: 0.1}

func peakTrajectory() *Trajectory {
	return &Trajectory{
		T: []float64{0, 1, 2, 3, 4},
		S: []float64{0.9, 0.6, 0.45, 0.35, 0.3},
		I: []float64{0.1, 0.2, 0.3, 0.25, 0.2},
		R: []float64{0, 0.15, 0.2, 0.3, 0.35},
		D: []float64{0, 0.05, 0.05, 0.1, 0.15},
	}
}

func TestNewAnalyzer_Validates(t *testing.T) {
	_, err := NewAnalyzer(Params{R: 0.1, A: 0.3, B: 0.3})
	assert.ErrorIs(t, err, ErrSubcritical)
}

func TestAnalyzer_PeakIndex(t *testing.T) {
	an, err := NewAnalyzer(peakParams)
	require.NoError(t, err)

	// GIVEN growth positive for rows 0..2 and negative from row 3
	// WHEN the peak is located
	idx, ok := an.PeakIndex(peakTrajectory())

	// THEN the first non-growing row is reported
	require.True(t, ok)
	assert.Equal(t, 3, idx)
}

func TestAnalyzer_PeakIndex_NoSignChange(t *testing.T) {
	an, err := NewAnalyzer(peakParams)
	require.NoError(t, err)
	traj := peakTrajectory()
	traj.S = []float64{0.9, 0.9, 0.9, 0.9, 0.9}

	_, ok := an.PeakIndex(traj)
	assert.False(t, ok)

	_, ok = an.HerdImmunityThreshold(traj)
	assert.False(t, ok)
}

func TestAnalyzer_HerdImmunityThreshold(t *testing.T) {
	an, err := NewAnalyzer(peakParams)
	require.NoError(t, err)

	hit, ok := an.HerdImmunityThreshold(peakTrajectory())
	require.True(t, ok)
	assert.InDelta(t, 0.65, hit, 1e-12)
}

func TestAnalyzer_CriticalTime(t *testing.T) {
	an, err := NewAnalyzer(peakParams)
	require.NoError(t, err)
	traj := peakTrajectory()

	tests := []struct {
		name   string
		imax   float64
		want   int
		wantOK bool
	}{
		{"breached on third row", 0.22, 2, true},
		{"equal is not a breach", 0.3, 0, false},
		{"breached immediately", 0.05, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := an.CriticalTime(traj, tc.imax)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCapacity(t *testing.T) {
	assert.InDelta(t, 0.0059, CapacityFromBeds(5.9), 1e-15)

	tbl := table.Sequential(2)
	_, err := CapacityFromTable(tbl)
	assert.ErrorIs(t, err, ErrMissingData)

	require.NoError(t, tbl.Set(table.ColBedsPerMille, []float64{3, 3}))
	imax, err := CapacityFromTable(tbl)
	require.NoError(t, err)
	assert.InDelta(t, 0.003, imax, 1e-15)
}

func TestAnalyzer_Summarize(t *testing.T) {
	an, err := NewAnalyzer(peakParams)
	require.NoError(t, err)

	s := an.Summarize(peakTrajectory(), 0.22)
	assert.InDelta(t, 2.5, s.R0, 1e-12)
	require.NotNil(t, s.PeakIndex)
	assert.Equal(t, 3, *s.PeakIndex)
	assert.Equal(t, 3.0, *s.PeakTime)
	assert.Equal(t, 0.25, *s.PeakInfected)
	assert.InDelta(t, 0.65, *s.HerdImmunity, 1e-12)
	require.NotNil(t, s.CriticalIndex)
	assert.Equal(t, 2, *s.CriticalIndex)
	assert.Equal(t, 0.15, s.FinalDeceased)

	// Nothing breaches a capacity of one.
	s = an.Summarize(peakTrajectory(), 1)
	assert.Nil(t, s.CriticalIndex)
	assert.Nil(t, s.CriticalTime)
}
