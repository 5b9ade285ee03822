// Package diff estimates first and second derivatives of uniformly sampled
// sequences with finite-difference stencils.
//
// Interior points (2 <= i <= n-3) use the 5-point central stencils, exact for
// polynomials up to degree 4. The four boundary points fall back to
// lower-order formulas because a full 5-point stencil is unavailable there:
//
//	first derivative   i=0: forward,  i=1: 3-point central,
//	                   i=n-2: 3-point central, i=n-1: backward
//	second derivative  i=0,1: 3-point central at 1,
//	                   i=n-2,n-1: 3-point central at n-2
//
// Interior estimates are 4th-order accurate, boundary estimates 1st or 2nd
// order. Gradient offers the plain 2nd-order central scheme instead.
package diff
