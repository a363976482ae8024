// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"

	"github.com/katalvlaran/rootfind/scalar"
)

// Bisect narrows [lo, hi] around a sign change of f until tol accepts the
// endpoints or maxIter evaluations have been spent.
//
// Implementation:
//   - Stage 1: Validate inputs; evaluate f at both ends.
//   - Stage 2: An exact zero at an endpoint returns the degenerate bracket
//     [x, x] with zero iterations.
//   - Stage 3: Repeatedly evaluate f at the midpoint and keep the half whose
//     endpoints still straddle the sign change. A zero at the midpoint
//     collapses the bracket onto it.
//
// Returns:
//   - The final bracket (Lo ≤ Hi, still containing the sign change).
//   - The number of midpoint evaluations performed (≤ maxIter).
//
// Errors:
//   - ErrNilFunc if f or tol is nil.
//   - ErrInvalidIterations if maxIter ≤ 0.
//   - ErrNonFinite if lo, hi or any evaluated f value is NaN.
//   - ErrInvalidBracket if lo > hi.
//   - ErrNoSignChange if f(lo) and f(hi) share a sign.
//
// Complexity: O(min(maxIter, log2((hi-lo)/resolution))) evaluations of f.
func Bisect[T scalar.Real[T]](f Func[T], lo, hi T, tol Tolerance[T], maxIter int, opts ...Option) (Bracket[T], int, error) {
	var zero Bracket[T]
	if f == nil || tol == nil {
		return zero, 0, ErrNilFunc
	}
	if maxIter <= 0 {
		return zero, 0, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIter)
	}
	if lo.IsNaN() || hi.IsNaN() {
		return zero, 0, fmt.Errorf("%w: bracket [%v, %v]", ErrNonFinite, lo, hi)
	}
	if lo.Cmp(hi) > 0 {
		return zero, 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidBracket, lo, hi)
	}

	fLo, fHi := f(lo), f(hi)
	if fLo.IsNaN() || fHi.IsNaN() {
		return zero, 0, fmt.Errorf("%w: f at bracket ends", ErrNonFinite)
	}
	if fLo.IsZero() {
		return Bracket[T]{Lo: lo, Hi: lo}, 0, nil
	}
	if fHi.IsZero() {
		return Bracket[T]{Lo: hi, Hi: hi}, 0, nil
	}
	if scalar.SameSign(fLo, fHi) {
		return zero, 0, fmt.Errorf("%w: f(%v)=%v, f(%v)=%v", ErrNoSignChange, lo, fLo, hi, fHi)
	}

	cfg := gatherOptions(opts)
	var (
		iter int
		mid  T
		fMid T
	)
	for iter < maxIter && !tol(lo, hi) {
		mid = midpoint(lo, hi)
		// Adjacent representable values: the bracket cannot shrink further.
		if mid.Cmp(lo) == 0 || mid.Cmp(hi) == 0 {
			break
		}
		iter++
		fMid = f(mid)
		if fMid.IsNaN() {
			return Bracket[T]{Lo: lo, Hi: hi}, iter, fmt.Errorf("%w: f(%v)", ErrNonFinite, mid)
		}
		if fMid.IsZero() {
			lo, hi = mid, mid
		} else if scalar.SameSign(fMid, fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
		if cfg.tracing() {
			cfg.trace(Step{
				Solver:    "bisect",
				Iteration: iter,
				Kind:      StepBisect,
				X:         mid.Float64(),
				Delta:     hi.Sub(lo).Float64(),
				Lo:        lo.Float64(),
				Hi:        hi.Float64(),
			})
		}
	}

	return Bracket[T]{Lo: lo, Hi: hi}, iter, nil
}
