// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"

	"github.com/katalvlaran/rootfind/scalar"
)

// stepFunc evaluates the oracle at x and proposes a correction delta such
// that the next iterate is x - delta. ok is false when no derivative-based
// step exists (zero or non-finite derivative); f0 is always the function value.
type stepFunc[T any] func(x T) (f0, delta T, kind StepKind, ok bool)

// bracketState is the bracket [lo, hi] of one solve.
type bracketState[T scalar.Real[T]] struct {
	lo, hi T
	// sLo is the sign of f(lo) when the ends are known to straddle a sign
	// change, 0 otherwise.
	sLo int
}

// newBracketState evaluates f at both ends of [lo, hi]. A sign change is
// recorded when both values are non-zero and of opposite sign.
func newBracketState[T scalar.Real[T]](eval stepFunc[T], lo, hi T) bracketState[T] {
	b := bracketState[T]{lo: lo, hi: hi}
	fLo, _, _, _ := eval(lo)
	fHi, _, _, _ := eval(hi)
	if sl, sh := fLo.Sign(), fHi.Sign(); sl != 0 && sh != 0 && sl != sh {
		b.sLo = sl
	}

	return b
}

// narrow moves one end of the bracket onto x, where f(x) has sign s.
// With a known sign change the side follows from the signs, exactly as in
// bisection. Without one the direction of the proposed step decides; when
// that is unavailable too the bracket is left unchanged.
func (b *bracketState[T]) narrow(x T, s int, delta T, ok bool) {
	switch {
	case b.sLo != 0:
		if s == b.sLo {
			b.lo = x
		} else {
			b.hi = x
		}
	case ok && scalar.IsFinite(delta) && !delta.IsZero():
		// x - delta < x: the root lies below x.
		if delta.Sign() > 0 {
			b.hi = x
		} else {
			b.lo = x
		}
	}
}

// bisectFrom returns the midpoint of the wider of [lo, x] and [x, hi].
// After narrowing x is an end of the bracket, so this is the bracket midpoint.
func (b *bracketState[T]) bisectFrom(x T) T {
	if x.Sub(b.lo).Cmp(b.hi.Sub(x)) > 0 {
		return midpoint(b.lo, x)
	}

	return midpoint(x, b.hi)
}

func (b *bracketState[T]) contains(x T) bool {
	return x.Cmp(b.lo) >= 0 && x.Cmp(b.hi) <= 0
}

// iterate is the safeguarded driver shared by NewtonRaphson, Halley and
// Schroder. The bracket ends are evaluated once up front; then each
// iteration:
//  1. evaluates the oracle at x (an exact zero returns x),
//  2. narrows the bracket onto x using the sign of f(x),
//  3. takes x - delta unless the step is unusable or zero, leaves the bracket, or
//     is larger than half the step taken two iterations earlier, in which
//     case it bisects the narrowed bracket instead,
//  4. stops when two successive derivative-based iterates agree to digits
//     bits, when the bracket itself has converged, or when x stops moving.
func iterate[T scalar.Real[T]](solver string, step stepFunc[T], guess, lo, hi T, digits, maxIter int, opts []Option) (T, int, error) {
	if digits <= 0 {
		return guess, 0, fmt.Errorf("%w: got %d", ErrInvalidDigits, digits)
	}
	if maxIter <= 0 {
		return guess, 0, fmt.Errorf("%w: got %d", ErrInvalidIterations, maxIter)
	}
	if guess.IsNaN() || lo.IsNaN() || hi.IsNaN() {
		return guess, 0, fmt.Errorf("%w: guess %v in [%v, %v]", ErrNonFinite, guess, lo, hi)
	}
	if lo.Cmp(hi) > 0 {
		return guess, 0, fmt.Errorf("%w: [%v, %v]", ErrInvalidBracket, lo, hi)
	}
	if guess.Cmp(lo) < 0 || guess.Cmp(hi) > 0 {
		return guess, 0, fmt.Errorf("%w: %v not in [%v, %v]", ErrGuessOutOfBracket, guess, lo, hi)
	}

	cfg := gatherOptions(opts)
	tol := EpsTolerance[T](digits)
	br := newBracketState(step, lo, hi)

	x := guess
	prev1 := guess.MaxValue() // |step| one iteration back
	prev2 := prev1            // |step| two iterations back
	var (
		next, f0, delta T
		kind            StepKind
		ok, bisect      bool
	)
	for iter := 1; iter <= maxIter; iter++ {
		f0, delta, kind, ok = step(x)
		if f0.IsNaN() {
			return x, iter, fmt.Errorf("%w: f(%v)", ErrNonFinite, x)
		}
		if f0.IsZero() {
			return x, iter, nil
		}

		br.narrow(x, f0.Sign(), delta, ok)

		// f0 != 0 here, so a zero step would report x as a root.
		bisect = !ok || !scalar.IsFinite(delta) || delta.IsZero()
		if !bisect {
			next = x.Sub(delta)
			bisect = !br.contains(next) || delta.Scale(2).Abs().Cmp(prev2) > 0
		}
		if bisect {
			next = br.bisectFrom(x)
			delta = x.Sub(next)
			kind = StepBisect
			prev2, prev1 = delta.Abs().Scale(3), delta.Abs()
		} else {
			prev2, prev1 = prev1, delta.Abs()
		}

		if cfg.tracing() {
			cfg.trace(Step{
				Solver:    solver,
				Iteration: iter,
				Kind:      kind,
				X:         next.Float64(),
				Delta:     delta.Abs().Float64(),
				Lo:        br.lo.Float64(),
				Hi:        br.hi.Float64(),
			})
		}

		if next.Cmp(x) == 0 || (!bisect && tol(x, next)) || tol(br.lo, br.hi) {
			return next, iter, nil
		}
		x = next
	}

	return x, maxIter, nil
}
