// SPDX-License-Identifier: MIT

// Package ibeta inverts the regularized incomplete beta function
// I_x(a, b) with the solvers of package roots.
//
// Given shape parameters a, b > 0 and a probability z in [0, 1], Inverse
// returns x in [0, 1] such that I_x(a, b) = z (or 1 - I_x(a, b) = z when the
// complement is requested). The forward function and its logarithm of the
// beta function come from gonum's mathext; the derivatives are the beta
// density and its slope, so every solver in roots can be driven from the
// same Oracle:
//
//	Bisect   → Oracle.Value
//	Newton   → Oracle.FirstOrder
//	Halley   → Oracle.SecondOrder
//	Schroder → Oracle.SecondOrder
//
// Precision. The forward evaluation loses a few bits for large shape
// parameters, so the bit target passed to the solvers is
// 53 - BitsLost. BitsLost defaults to DefaultBitsLost(a, b) and can be
// overridden with WithBitsLost.
//
// Guards. The density is evaluated with 1-x replaced by 8·MinValue when x
// is exactly 1, and a density that underflows to zero is replaced by
// ±64·MinValue so that Newton steps stay finite and bracketed.
//
// Boundaries. z = 0 and z = 1 return 0 and 1 (swapped under the complement)
// without iterating.
//
// Errors:
//
//	ErrParameter     a or b not a finite positive number
//	ErrProbability   z outside [0, 1] or NaN
//	ErrUnknownMethod method not one of Bisect, Newton, Halley, Schroder
//	ErrNotConverged  the iteration budget ran out; the last estimate is still returned
package ibeta
