package diff_test

import (
	"fmt"

	"github.com/sird-sim/sird-sim/sim/diff"
)

func ExampleFirstDerivative() {
	// y = x² at x = 0..5
	d, err := diff.FirstDerivative([]float64{0, 1, 4, 9, 16, 25}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: [1 2 4 6 8 9]
}
