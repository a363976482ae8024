// Package polynomial evaluates dense univariate polynomials and their
// derivatives over any scalar.Field: float64, complex128, big.Float-backed
// reals and complexes.
//
// Coefficients are stored lowest degree first, so New(c0, c1, c2) is
// c0 + c1·x + c2·x². Evaluation uses Horner's scheme; EvalWithDerivative
// returns p(x) and p'(x) in a single pass, which is the pair a Newton
// iteration needs:
//
//	p, _ := polynomial.New[scalar.Complex128](1, 0, 1) // z² + 1
//	root, _ := roots.ComplexNewton[scalar.Complex128, scalar.Float64](p.NewtonFunc(), complex(1, 1), 0)
//
// A Polynomial is immutable once built and safe for concurrent use.
package polynomial
