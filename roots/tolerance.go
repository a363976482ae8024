// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

const panicBitsInvalid = "roots: EpsTolerance: bits must be > 0"

// Tolerance reports whether two bracket endpoints, or two successive
// iterates, agree closely enough to stop.
type Tolerance[T any] func(a, b T) bool

// EpsTolerance returns the convergence criterion for a target of bits
// significant bits.
//
// Behavior highlights:
//   - a and b are converged when |a-b| ≤ 2^(1-bits)·min(|a|, |b|).
//   - bits above the scalar's digit count are clamped to it, so the factor
//     never drops below the type's epsilon.
//   - Near zero, where a relative test is meaningless (min(|a|,|b|) below the
//     smallest normalized value), a and b are converged once |a-b| is itself
//     no larger than the smallest normalized value.
//   - Equal values are always converged; NaN never is.
//
// Panics when bits <= 0.
func EpsTolerance[T scalar.Real[T]](bits int) Tolerance[T] {
	if bits <= 0 {
		panic(panicBitsInvalid)
	}

	return func(a, b T) bool {
		diff := a.Sub(b).Abs()
		if diff.IsZero() {
			return true
		}
		if diff.IsNaN() {
			return false
		}
		p := bits
		if d := a.Digits(); p > d {
			p = d
		}
		least := scalar.Min(a.Abs(), b.Abs())
		tiny := a.MinValue()
		if least.Cmp(tiny) < 0 {
			return diff.Cmp(tiny) <= 0
		}
		factor := a.Pow2(1 - p)

		return diff.Cmp(factor.Mul(least)) <= 0
	}
}
