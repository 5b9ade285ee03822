package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Calibration holds a statistical comparison between an observed and a
// simulated series.
type Calibration struct {
	ObservedP50   float64 `yaml:"observed_p50" json:"observed_p50"`
	SimulatedP50  float64 `yaml:"simulated_p50" json:"simulated_p50"`
	ObservedP90   float64 `yaml:"observed_p90" json:"observed_p90"`
	SimulatedP90  float64 `yaml:"simulated_p90" json:"simulated_p90"`
	ObservedP99   float64 `yaml:"observed_p99" json:"observed_p99"`
	SimulatedP99  float64 `yaml:"simulated_p99" json:"simulated_p99"`
	MAPE          float64 `yaml:"mape" json:"mape"`
	PearsonR      float64 `yaml:"pearson_r" json:"pearson_r"`
	RMSE          float64 `yaml:"rmse" json:"rmse"`
	BiasDirection string  `yaml:"bias_direction" json:"bias_direction"` // "over-predict", "under-predict", "neutral"
	Quality       string  `yaml:"quality" json:"quality"`               // "excellent", "good", "fair", "poor"
	Count         int     `yaml:"count" json:"count"`
}

// Calibrate scores simulated against observed. Both series must be
// non-empty and of equal length.
func Calibrate(observed, simulated []float64) (*Calibration, error) {
	if len(observed) == 0 || len(simulated) == 0 {
		return nil, fmt.Errorf("calibrate: empty series: %w", ErrMissingData)
	}
	if len(observed) != len(simulated) {
		return nil, fmt.Errorf("calibrate: mismatched lengths observed=%d simulated=%d: %w",
			len(observed), len(simulated), ErrConfig)
	}

	c := &Calibration{Count: len(observed)}

	obsSorted := sortedCopy(observed)
	simSorted := sortedCopy(simulated)
	c.ObservedP50 = percentileFromSorted(obsSorted, 50)
	c.SimulatedP50 = percentileFromSorted(simSorted, 50)
	c.ObservedP90 = percentileFromSorted(obsSorted, 90)
	c.SimulatedP90 = percentileFromSorted(simSorted, 90)
	c.ObservedP99 = percentileFromSorted(obsSorted, 99)
	c.SimulatedP99 = percentileFromSorted(simSorted, 99)

	// MAPE skips rows with a zero observation.
	mapeSum, biasSum, sqSum := 0.0, 0.0, 0.0
	mapeCount := 0
	for i := range observed {
		d := simulated[i] - observed[i]
		sqSum += d * d
		if observed[i] == 0 {
			continue
		}
		mapeSum += math.Abs(d) / math.Abs(observed[i])
		mapeCount++
		biasSum += d
	}
	c.RMSE = math.Sqrt(sqSum / float64(len(observed)))
	if mapeCount > 0 {
		c.MAPE = mapeSum / float64(mapeCount)
		switch {
		case biasSum > 0:
			c.BiasDirection = "over-predict"
		case biasSum < 0:
			c.BiasDirection = "under-predict"
		default:
			c.BiasDirection = "neutral"
		}
	}

	// Pearson r needs N >= 3; a constant series has no correlation.
	if len(observed) >= 3 {
		if r := stat.Correlation(observed, simulated, nil); !math.IsNaN(r) {
			c.PearsonR = r
		}
	}

	c.Quality = qualityRating(c.MAPE, c.PearsonR)
	return c, nil
}

func sortedCopy(vals []float64) []float64 {
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)
	return s
}

func percentileFromSorted(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

func qualityRating(mape, pearsonR float64) string {
	if mape < 0.10 && pearsonR > 0.95 {
		return "excellent"
	}
	if mape < 0.20 && pearsonR > 0.85 {
		return "good"
	}
	if mape < 0.35 && pearsonR > 0.70 {
		return "fair"
	}
	return "poor"
}
