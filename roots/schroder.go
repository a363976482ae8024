// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

// schroderRatioLimit bounds |f/f'| relative to |x| for the second-order
// correction to be applied.
const schroderRatioLimit = 0.1

// Schroder finds a root of f in [lo, hi] starting from guess using
// Schröder's iteration
//
//	x ← x - r·(1 + r·f''/(2·f')),  r = f/f'
//
// with the same bracket discipline as NewtonRaphson.
//
// The correction is formed from the ratio r rather than from f'², so it stays
// finite when f' is small. It is only applied once r is small relative to x;
// far from the root, or when the corrected step would change direction, the
// plain Newton step r is used.
func Schroder[T scalar.Real[T]](f Func2[T], guess, lo, hi T, digits, maxIter int, opts ...Option) (T, int, error) {
	if f == nil {
		return guess, 0, ErrNilFunc
	}

	return iterate("schroder", schroderStep(f), guess, lo, hi, digits, maxIter, opts)
}

func schroderStep[T scalar.Real[T]](f Func2[T]) stepFunc[T] {
	return func(x T) (T, T, StepKind, bool) {
		f0, f1, f2 := f(x)
		if f1.IsZero() || !scalar.IsFinite(f1) {
			return f0, f1, StepSchroder, false
		}
		ratio := f0.Quo(f1)
		if x.IsZero() || f2.IsNaN() || ratio.Quo(x).Abs().Cmp(x.FromFloat64(schroderRatioLimit)) >= 0 {
			return f0, ratio, StepNewton, true
		}
		delta := ratio.Add(f2.Quo(f1.Scale(2)).Mul(ratio).Mul(ratio))
		if !scalar.IsFinite(delta) || delta.Sign() != ratio.Sign() {
			return f0, ratio, StepNewton, true
		}

		return f0, delta, StepSchroder, true
	}
}
