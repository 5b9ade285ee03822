package table

import (
	"errors"
	"math"
	"testing"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sirdTable(t *testing.T, s, i, r, d []float64) *Table {
	t.Helper()
	tbl := Sequential(len(s))
	require.NoError(t, tbl.Set(ColS, s))
	require.NoError(t, tbl.Set(ColI, i))
	require.NoError(t, tbl.Set(ColR, r))
	require.NoError(t, tbl.Set(ColD, d))
	return tbl
}

func TestTable_SetAndColumn(t *testing.T) {
	tbl := New([]float64{0, 1, 2})
	vals := []float64{1, 2, 3}
	require.NoError(t, tbl.Set("x", vals))

	// Mutating the caller's slice does not leak into the table.
	vals[0] = 99
	got, err := tbl.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	// Mutating the returned copy does not leak either.
	got[1] = -1
	again, _ := tbl.Column("x")
	assert.Equal(t, 2.0, again[1])

	assert.True(t, tbl.Has("x"))
	assert.False(t, tbl.Has("y"))
	assert.Equal(t, 3, tbl.Len())
}

func TestTable_SetLengthMismatch(t *testing.T) {
	tbl := New([]float64{0, 1, 2})
	err := tbl.Set("x", []float64{1, 2})
	assert.ErrorIs(t, err, ErrLength)
	assert.ErrorIs(t, err, errs.ErrConfig)
}

func TestTable_MissingColumn(t *testing.T) {
	tbl := New([]float64{0})
	_, err := tbl.Column(ColIAbs)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.True(t, errors.Is(err, errs.ErrMissingData))
	assert.Contains(t, err.Error(), ColIAbs)

	assert.ErrorIs(t, tbl.Require(ColS), errs.ErrMissingData)
}

func TestTable_ColumnsKeepInsertionOrder(t *testing.T) {
	tbl := New([]float64{0})
	for _, name := range []string{"D", "S", "I"} {
		require.NoError(t, tbl.Set(name, []float64{0}))
	}
	require.NoError(t, tbl.Set("S", []float64{1}))
	assert.Equal(t, []string{"D", "S", "I"}, tbl.Columns())
}

func TestTable_Row(t *testing.T) {
	tbl := sirdTable(t, []float64{0.9, 0.8}, []float64{0.1, 0.15}, []float64{0, 0.04}, []float64{0, 0.01})
	row, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"S": 0.8, "I": 0.15, "R": 0.04, "D": 0.01}, row)

	_, err = tbl.Row(2)
	assert.ErrorIs(t, err, ErrRowRange)
	_, err = tbl.Value(ColS, -1)
	assert.ErrorIs(t, err, ErrRowRange)
}

func TestTable_Validate(t *testing.T) {
	ok := []float64{0.5, 0.5}
	zero := []float64{0, 0}
	tests := []struct {
		name    string
		tbl     func(t *testing.T) *Table
		wantErr bool
	}{
		{"valid", func(t *testing.T) *Table { return sirdTable(t, ok, []float64{0.3, 0.3}, []float64{0.1, 0.1}, []float64{0.1, 0.1}) }, false},
		{"sum within tolerance", func(t *testing.T) *Table {
			return sirdTable(t, ok, ok, []float64{5e-7, 5e-7}, zero)
		}, false},
		{"sum exceeds one", func(t *testing.T) *Table { return sirdTable(t, ok, ok, []float64{0.01, 0}, zero) }, true},
		{"negative value", func(t *testing.T) *Table { return sirdTable(t, ok, []float64{-0.1, 0}, zero, zero) }, true},
		{"above one", func(t *testing.T) *Table { return sirdTable(t, []float64{1.2, 0}, zero, zero, zero) }, true},
		{"nan", func(t *testing.T) *Table { return sirdTable(t, ok, zero, []float64{math.NaN(), 0}, zero) }, true},
		{"decreasing index", func(t *testing.T) *Table {
			tbl := New([]float64{1, 0})
			require.NoError(t, tbl.Set(ColS, ok))
			return tbl
		}, true},
		{"duplicate index", func(t *testing.T) *Table {
			tbl := New([]float64{3, 3})
			require.NoError(t, tbl.Set(ColS, ok))
			return tbl
		}, true},
		{"partial compartments skip sum check", func(t *testing.T) *Table {
			tbl := Sequential(2)
			require.NoError(t, tbl.Set(ColS, []float64{1, 1}))
			require.NoError(t, tbl.Set(ColI, []float64{1, 1}))
			return tbl
		}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tbl(t).Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.ErrorIs(t, err, errs.ErrConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_Split(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		frac      float64
		minRows   int
		wantTrain int
	}{
		{"fraction dominates", 100, 0.8, 50, 80},
		{"minimum dominates", 60, 0.8, 50, 50},
		{"minimum clipped to length", 30, 0.8, 50, 30},
		{"zero fraction", 10, 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tbl := Sequential(tc.n)
			vals := make([]float64, tc.n)
			for i := range vals {
				vals[i] = float64(i) * 10
			}
			require.NoError(t, tbl.Set("v", vals))

			train, test, err := tbl.Split(tc.frac, tc.minRows)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTrain, train.Len())
			assert.Equal(t, tc.n-tc.wantTrain, test.Len())
			if test.Len() > 0 {
				first, _ := test.Value("v", 0)
				assert.Equal(t, float64(tc.wantTrain)*10, first)
				assert.Equal(t, float64(tc.wantTrain), test.Index()[0])
			}
		})
	}

	_, _, err := Sequential(3).Split(1.5, 0)
	assert.ErrorIs(t, err, ErrRowRange)
}

func TestTable_Slice(t *testing.T) {
	tbl := Sequential(5)
	require.NoError(t, tbl.Set("v", []float64{0, 1, 2, 3, 4}))
	part, err := tbl.Slice(1, 3)
	require.NoError(t, err)
	got, _ := part.Column("v")
	assert.Equal(t, []float64{1, 2}, got)
	assert.Equal(t, []float64{1, 2}, part.Index())

	_, err = tbl.Slice(3, 1)
	assert.ErrorIs(t, err, ErrRowRange)
	_, err = tbl.Slice(0, 6)
	assert.ErrorIs(t, err, ErrRowRange)
}
