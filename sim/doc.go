// Package sim provides the SIRD epidemic model: parameter validation,
// trajectory simulation, post-hoc analytics and observed-vs-simulated
// comparison.
//
// # Reading Guide
//
//   - params.go: the {r, a, b} parameter set and its validity rules
//   - simulator.go: the SIRD vector field and Resolve, which drives sim/ode
//   - trajectory.go: the (t, S, I, R, D) table returned by Resolve
//   - analyzer.go: peak detection, herd-immunity threshold, critical time, R0
//   - compare.go and calibrate.go: error metrics against observed series
//
// # Architecture
//
// The numerical building blocks live in sub-packages that depend only on
// sim/internal/errs:
//   - sim/diff/: finite-difference derivatives
//   - sim/quad/: quadrature rules
//   - sim/interp/: interpolation strategies
//   - sim/ode/: fixed-step Euler and RK4 integration
//   - sim/table/: the time-indexed compartment table
//
// sim/estimate/ recovers {r, a, b} from an observed table and is the only
// sub-package that imports sim itself.
//
// Every type in this package is immutable after construction. A Simulator
// or Analyzer may be shared across goroutines; each Resolve call allocates
// its own Trajectory.
package sim
