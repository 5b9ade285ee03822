package sim

import (
	"fmt"
	"math"
)

// Params is the SIRD parameter set.
type Params struct {
	R float64 `yaml:"r" json:"r"` // contact rate
	A float64 `yaml:"a" json:"a"` // recovery rate
	B float64 `yaml:"b" json:"b"` // mortality rate
}

// R0 is the basic reproduction number r/(a+b). It is +Inf when a+b is zero.
func (p Params) R0() float64 {
	return p.R / (p.A + p.B)
}

// Validate checks that every rate is non-negative, r is in (0, 1] and
// R0 >= 1. The returned error names the failing constraint.
func (p Params) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{{"r", p.R}, {"a", p.A}, {"b", p.B}} {
		if v.val < 0 || math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNegativeRate, v.name, v.val)
		}
	}
	if p.R <= 0 || p.R > 1 {
		return fmt.Errorf("%w: r = %v", ErrContactRate, p.R)
	}
	if p.A+p.B <= 0 {
		return fmt.Errorf("%w: a+b = 0", ErrSubcritical)
	}
	if r0 := p.R0(); r0 < 1 {
		return fmt.Errorf("%w: R0 = %.4f", ErrSubcritical, r0)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("r=%.6g a=%.6g b=%.6g", p.R, p.A, p.B)
}
