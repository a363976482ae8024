// SPDX-License-Identifier: MIT

// Package roots provides generic root-finding algorithms for caller-supplied
// scalar functions, a cancellation-free quadratic solver and a complex-plane
// Newton iteration for polynomial roots.
//
// Overview:
//
//   - EpsTolerance: convergence criterion parameterized by a bit-precision target.
//   - Bisect: derivative-free bracketing; returns the final bracket.
//   - NewtonRaphson: first-derivative iteration with bracket fallback.
//   - Halley: second-derivative (cubic) iteration with bracket fallback.
//   - Schroder: second-derivative iteration robust to small first derivatives.
//   - ComplexNewton: Newton over complex scalars with zero-derivative and stagnation guards.
//   - QuadraticRoots / ComplexQuadraticRoots: a·x² + b·x + c = 0 without catastrophic cancellation.
//
// Every solver is generic over scalar.Real (or scalar.Complex), so the same
// code runs on float64, float32 and arbitrary-precision big.Float values.
//
// Bracket fallback:
//
//	The derivative-based solvers keep a bracket [lo, hi] that is narrowed after
//	every evaluation using the sign of the latest function value. A proposed
//	step is rejected in favour of one bisection step when
//	  1. the derivative is zero or infinite, or the step is zero or not finite,
//	  2. the next iterate would leave [lo, hi],
//	  3. the step is more than half the size of the step two iterations back.
//	The iteration therefore never escapes the initial bracket.
//
// Iteration budget:
//
//	Each solver takes a maximum number of iterations and returns the number it
//	used. Running out of budget is not an error: the best estimate is returned
//	together with an iteration count equal to the budget.
//
// Errors (sentinels, match with errors.Is):
//
//   - ErrNilFunc, ErrInvalidIterations, ErrInvalidDigits: bad call parameters.
//   - ErrInvalidBracket: lo > hi.
//   - ErrGuessOutOfBracket: guess outside [lo, hi].
//   - ErrNoSignChange: the function has the same sign at both bracket ends (Bisect only).
//   - ErrNonFinite: NaN in the bracket, the guess or a function value.
//
// Concurrency:
//
//	All functions are pure and re-entrant; options are per call and there is no
//	package-level mutable state.
package roots
