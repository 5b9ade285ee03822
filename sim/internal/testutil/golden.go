// Package testutil provides shared test infrastructure for the sird-sim
// packages: the golden trajectory dataset and float assertion helpers.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one simulation run with its expected diagnostics.
type GoldenTestCase struct {
	Name    string        `json:"name"`
	Params  GoldenParams  `json:"params"`
	Initial GoldenInitial `json:"initial"`
	Horizon float64       `json:"horizon"`
	DT      float64       `json:"dt"`
	Method  string        `json:"method"`
	Metrics GoldenMetrics `json:"metrics"`
}

// GoldenParams holds the SIRD rates of a golden run.
type GoldenParams struct {
	R float64 `json:"r"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// GoldenInitial holds the initial compartments of a golden run.
type GoldenInitial struct {
	S float64 `json:"S"`
	I float64 `json:"I"`
	R float64 `json:"R"`
	D float64 `json:"D"`
}

// GoldenMetrics represents the expected diagnostics of a golden run.
type GoldenMetrics struct {
	// Exact match
	Rows      int `json:"rows"`
	PeakIndex int `json:"peak_index"`

	// Deterministic floating-point values
	PeakInfected  float64 `json:"peak_infected"`
	HerdImmunity  float64 `json:"herd_immunity"`
	FinalS        float64 `json:"final_s"`
	FinalD        float64 `json:"final_d"`
	MaxTotalDrift float64 `json:"max_total_drift"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
