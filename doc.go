// Package rootfind is a small toolbox for locating zeros of scalar
// functions: bracketed iterations for real roots, Newton for complex roots,
// and a cancellation-safe quadratic formula.
//
// 🚀 What is inside?
//
//	A generic, allocation-light library that brings together:
//		• Convergence: relative bit-precision tolerance (EpsTolerance)
//		• Bracketing: bisection with exact-zero and sign-change checks
//		• Derivative methods: Newton–Raphson, Halley, Schröder, each
//		  safeguarded by a shrinking bracket and bisection fallback
//		• Complex roots: Newton iteration with perturbation on zero derivatives
//		• Quadratics: real and complex roots without catastrophic cancellation
//		• Polynomials: Horner evaluation with the derivative in one pass
//		• Use case: inverse regularized incomplete beta on top of gonum
//
// ✨ Why rootfind?
//
//   - One algorithm, many number types – float32, float64, math/big
//     floats and their complex counterparts through the scalar package
//   - No surprises – invalid input is an error, numerical trouble is a
//     NaN or a best estimate, never a panic
//   - Observable – every iteration can be traced through log/slog or a hook
//   - Re-entrant – no package-level state; run as many solves in parallel
//     as you like
//
// Packages:
//
//	scalar/     — Field, Real and Complex capability sets + Float64, Float32,
//	              BigFloat, Complex128, Complex64, BigComplex
//	roots/      — EpsTolerance, Bisect, NewtonRaphson, Halley, Schroder,
//	              ComplexNewton, QuadraticRoots, ComplexQuadraticRoots
//	polynomial/ — Polynomial with Eval, EvalWithDerivative, Prime, NewtonFunc
//	ibeta/      — Inverse of I_x(a, b) with any of the four real solvers
//	cmd/rootfind — command-line front end
//	examples/   — runnable scenarios
//
// Quick example:
//
//	f := func(x scalar.Float64) (scalar.Float64, scalar.Float64) {
//		return x*x*x - 10, 3 * x * x
//	}
//	x, iters, err := roots.NewtonRaphson(f, 2, 1, 3, 52, 50)
//
//	go get github.com/katalvlaran/rootfind
package rootfind
