// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

// Halley finds a root of f in [lo, hi] starting from guess using Halley's
// third-order iteration
//
//	x ← x - 2·f·f' / (2·f'² - f·f'')
//
// with the same bracket discipline as NewtonRaphson.
//
// When the denominator 2·f'² - f·f'' is zero or has the opposite sign to f'²
// the step would amplify rather than damp, and the plain Newton step f/f' is
// used instead. A zero or infinite first derivative falls back to bisection.
//
// Near a double root convergence degrades to linear but remains bracketed.
func Halley[T scalar.Real[T]](f Func2[T], guess, lo, hi T, digits, maxIter int, opts ...Option) (T, int, error) {
	if f == nil {
		return guess, 0, ErrNilFunc
	}

	return iterate("halley", halleyStep(f), guess, lo, hi, digits, maxIter, opts)
}

func halleyStep[T scalar.Real[T]](f Func2[T]) stepFunc[T] {
	return func(x T) (T, T, StepKind, bool) {
		f0, f1, f2 := f(x)
		if f1.IsZero() || !scalar.IsFinite(f1) {
			return f0, f1, StepHalley, false
		}
		ratio := f0.Quo(f1)
		if f2.IsZero() || f2.IsNaN() {
			return f0, ratio, StepNewton, true
		}
		// (2·f1² - f0·f2) / f1², computed without squaring f1.
		den := ratio.FromFloat64(2).Sub(ratio.Mul(f2.Quo(f1)))
		if den.Sign() <= 0 || den.IsInf() {
			return f0, ratio, StepNewton, true
		}
		delta := ratio.Scale(2).Quo(den)
		if !scalar.IsFinite(delta) {
			return f0, ratio, StepNewton, true
		}

		return f0, delta, StepHalley, true
	}
}
