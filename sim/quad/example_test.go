package quad_test

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/quad"
)

func ExampleSimpson() {
	// ∫0..2 x² dx sampled at h = 1
	v, err := quad.Simpson([]float64{0, 1, 4}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.4f\n", v)
	// Output: 2.6667
}
