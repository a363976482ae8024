// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

// NewtonRaphson finds a root of f in [lo, hi] starting from guess, using
// Newton steps x ← x - f(x)/f'(x) safeguarded by bisection.
//
// The bracket is narrowed after every evaluation so the iterate never leaves
// [lo, hi]. A step is replaced by bisection when f'(x) is zero or infinite,
// when it would leave the bracket or not move x at all, or when it fails to
// halve relative to the step two iterations earlier.
//
// Returns the root estimate and the number of iterations used; an iteration
// count equal to maxIter means the budget ran out before convergence.
//
// f is evaluated once at lo and at hi before iterating. When the two values
// have opposite signs the bracket is narrowed by sign, as in Bisect;
// otherwise (a double root, or a root at an end) the direction of each step
// decides which end moves.
//
// Errors: ErrNilFunc, ErrInvalidDigits, ErrInvalidIterations, ErrNonFinite
// (NaN inputs or a NaN function value at an iterate), ErrInvalidBracket and
// ErrGuessOutOfBracket.
func NewtonRaphson[T scalar.Real[T]](f Func1[T], guess, lo, hi T, digits, maxIter int, opts ...Option) (T, int, error) {
	if f == nil {
		return guess, 0, ErrNilFunc
	}

	return iterate("newton", newtonStep(f), guess, lo, hi, digits, maxIter, opts)
}

func newtonStep[T scalar.Real[T]](f Func1[T]) stepFunc[T] {
	return func(x T) (T, T, StepKind, bool) {
		f0, f1 := f(x)
		if f1.IsZero() || !scalar.IsFinite(f1) {
			return f0, f1, StepNewton, false
		}

		return f0, f0.Quo(f1), StepNewton, true
	}
}
