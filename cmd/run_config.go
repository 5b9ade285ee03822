package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sird-sim/sird-sim/sim"
	"github.com/sird-sim/sird-sim/sim/ode"
)

// RunConfig is the YAML description of a simulation run.
// All keys must be listed to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	Params       sim.Params        `yaml:"params"`
	Initial      *sim.InitialState `yaml:"initial,omitempty"`
	Horizon      float64           `yaml:"horizon"`
	DT           float64           `yaml:"dt"`
	Method       string            `yaml:"method"`
	BedsPerMille *float64          `yaml:"beds_per_mille,omitempty"`
}

// DefaultRunConfig simulates 100 days with daily RK4 steps.
func DefaultRunConfig() RunConfig {
	return RunConfig{Horizon: 100, DT: 1, Method: string(ode.MethodRK4)}
}

// ParseRunConfig decodes data over the defaults. Unknown keys are errors.
func ParseRunConfig(data []byte) (*RunConfig, error) {
	cfg := DefaultRunConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse run config: %w", err)
	}
	return &cfg, nil
}

// LoadRunConfig reads and parses a run config file.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run config: %w", err)
	}
	cfg, err := ParseRunConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks everything except the epidemic parameters, which
// sim.NewSimulator validates.
func (c *RunConfig) Validate() error {
	if _, err := ode.ParseMethod(c.Method); err != nil {
		return err
	}
	if c.Horizon < 0 || math.IsNaN(c.Horizon) || math.IsInf(c.Horizon, 0) {
		return fmt.Errorf("horizon must be finite and non-negative, got %v: %w", c.Horizon, sim.ErrConfig)
	}
	if c.DT <= 0 || math.IsNaN(c.DT) || math.IsInf(c.DT, 0) {
		return fmt.Errorf("dt must be finite and positive, got %v: %w", c.DT, sim.ErrConfig)
	}
	if c.Initial == nil {
		return fmt.Errorf("no initial state: set initial in the config or pass --table: %w", sim.ErrMissingData)
	}
	if err := c.Initial.Validate(); err != nil {
		return err
	}
	if c.BedsPerMille != nil && (*c.BedsPerMille < 0 || math.IsNaN(*c.BedsPerMille)) {
		return fmt.Errorf("beds_per_mille must be non-negative, got %v: %w", *c.BedsPerMille, sim.ErrConfig)
	}
	return nil
}

// Simulate resolves the configured run.
func (c *RunConfig) Simulate() (*sim.Trajectory, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m, _ := ode.ParseMethod(c.Method)
	s, err := sim.NewSimulator(c.Params)
	if err != nil {
		return nil, err
	}
	return s.Resolve(*c.Initial, c.Horizon, c.DT, m)
}
