package diff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sird-sim/sird-sim/sim/internal/errs"
)

// quartic and its analytic derivatives
func quartic(x float64) float64   { return x*x*x*x - 2*x*x*x + 3*x - 1 }
func quarticD1(x float64) float64 { return 4*x*x*x - 6*x*x + 3 }
func quarticD2(x float64) float64 { return 12*x*x - 12*x }

func sample(f func(float64) float64, n int, h float64) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = f(float64(i) * h)
	}
	return y
}

func TestFirstDerivative_InteriorExactForQuartic(t *testing.T) {
	for _, h := range []float64{1, 0.5, 0.125} {
		y := sample(quartic, 12, h)
		d, err := FirstDerivative(y, h)
		require.NoError(t, err)
		require.Len(t, d, len(y))
		for i := 2; i <= len(y)-3; i++ {
			x := float64(i) * h
			assert.InDelta(t, quarticD1(x), d[i], 1e-9*math.Max(1, math.Abs(quarticD1(x))), "h=%v i=%d", h, i)
		}
	}
}

func TestSecondDerivative_InteriorExactForQuartic(t *testing.T) {
	for _, h := range []float64{1, 0.5, 0.125} {
		y := sample(quartic, 12, h)
		d, err := SecondDerivative(y, h)
		require.NoError(t, err)
		for i := 2; i <= len(y)-3; i++ {
			x := float64(i) * h
			assert.InDelta(t, quarticD2(x), d[i], 1e-7*math.Max(1, math.Abs(quarticD2(x))), "h=%v i=%d", h, i)
		}
	}
}

func TestFirstDerivative_BoundaryFormulas(t *testing.T) {
	// GIVEN y = x² sampled at h = 1
	y := []float64{0, 1, 4, 9, 16, 25}
	d, err := FirstDerivative(y, 1)
	require.NoError(t, err)

	// THEN the ends use one-sided differences and the near ends the 3-point central rule
	assert.Equal(t, 1.0, d[0])  // forward: 1-0
	assert.Equal(t, 2.0, d[1])  // central: (4-0)/2, exact
	assert.Equal(t, 8.0, d[4])  // central: (25-9)/2, exact
	assert.Equal(t, 9.0, d[5])  // backward: 25-16
	assert.Equal(t, 4.0, d[2])  // 5-point, exact
	assert.Equal(t, 6.0, d[3])  // 5-point, exact
}

func TestFirstDerivative_BoundaryLowerOrderOnQuartic(t *testing.T) {
	h := 0.01
	y := sample(quartic, 20, h)
	d, err := FirstDerivative(y, h)
	require.NoError(t, err)
	n := len(y)
	// one-sided ends are O(h), near ends O(h²)
	assert.InDelta(t, quarticD1(0), d[0], 0.1)
	assert.InDelta(t, quarticD1(h), d[1], 1e-2)
	assert.InDelta(t, quarticD1(float64(n-2)*h), d[n-2], 1e-2)
	assert.InDelta(t, quarticD1(float64(n-1)*h), d[n-1], 0.1)
	// but they are not exact
	assert.NotEqual(t, quarticD1(0), d[0])
}

func TestSecondDerivative_BoundaryPairsShareFormula(t *testing.T) {
	y := sample(quartic, 9, 0.25)
	d, err := SecondDerivative(y, 0.25)
	require.NoError(t, err)
	assert.Equal(t, d[0], d[1])
	assert.Equal(t, d[7], d[8])

	// exact for a quadratic everywhere
	q := sample(func(x float64) float64 { return 3*x*x - x + 2 }, 9, 0.25)
	dq, err := SecondDerivative(q, 0.25)
	require.NoError(t, err)
	for i := range dq {
		assert.InDelta(t, 6.0, dq[i], 1e-9, "i=%d", i)
	}
}

func TestFirstDerivative_ShortSequences(t *testing.T) {
	tests := []struct {
		name string
		y    []float64
		want []float64
	}{
		{"two", []float64{1, 3}, []float64{2, 2}},
		{"three", []float64{0, 1, 4}, []float64{1, 2, 3}},
		{"four", []float64{0, 1, 4, 9}, []float64{1, 2, 4, 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := FirstDerivative(tc.y, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestDerivative_InvalidInput(t *testing.T) {
	_, err := FirstDerivative([]float64{1}, 1)
	assert.ErrorIs(t, err, ErrTooFewSamples)
	assert.ErrorIs(t, err, errs.ErrConfig)

	_, err = SecondDerivative([]float64{1, 2}, 1)
	assert.ErrorIs(t, err, ErrTooFewSamples)

	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = FirstDerivative([]float64{1, 2, 3}, h)
		assert.ErrorIs(t, err, ErrInvalidStep, "h=%v", h)
	}
}

func TestDerivative_DoesNotMutateInput(t *testing.T) {
	y := []float64{1, 4, 9, 16, 25, 36}
	orig := append([]float64(nil), y...)
	_, _ = FirstDerivative(y, 1)
	_, _ = SecondDerivative(y, 1)
	_, _ = Gradient(y, 1)
	assert.Equal(t, orig, y)
}

func TestGradient_CentralInterior(t *testing.T) {
	d, err := Gradient([]float64{0, 1, 4, 9, 16}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 6, 7}, d)
}

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("")
	require.NoError(t, err)
	assert.Equal(t, FivePoint, s)

	s, err = ParseScheme("central")
	require.NoError(t, err)
	assert.Equal(t, Central, s)

	_, err = ParseScheme("spectral")
	assert.ErrorIs(t, err, ErrUnknownScheme)
	assert.ErrorIs(t, err, errs.ErrConfig)
}

func TestScheme_FirstDispatch(t *testing.T) {
	y := []float64{0, 1, 4, 9, 16, 25}
	five, err := FivePoint.First(y, 1)
	require.NoError(t, err)
	central, err := Central.First(y, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, five[2])
	assert.Equal(t, 4.0, central[2])
	assert.NotEqual(t, five[0], 0.0)

	_, err = Scheme("bogus").First(y, 1)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}
