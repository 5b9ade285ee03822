// Package interp interpolates and extrapolates ordered (x, y) samples with
// non-uniform spacing.
//
// Five strategies are available and the caller always picks one explicitly,
// either through its constructor or through New with a Kind:
//
//   - Spline: natural cubic spline (tridiagonal solve), linear extrapolation
//   - Lagrange: full-degree polynomial, optionally resampled on Chebyshev nodes
//   - Newton: divided differences with Horner evaluation
//   - PolyFit: least-squares polynomial of a chosen degree on normalized data
//   - Linear: piecewise-linear with boundary-slope extrapolation
//
// Constructors copy and sort their input, so an Interpolator never aliases
// caller memory and is safe for concurrent use once built.
package interp
