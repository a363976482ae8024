// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

// Direction of the escape step taken when f'(z) vanishes: a unit vector
// rotated off both axes so that symmetric critical points are left.
const (
	perturbRe = 0.6
	perturbIm = -0.8
)

// ComplexNewton refines guess toward a root of f over the complex plane with
// Newton's iteration z ← z - f(z)/f'(z).
//
// Behavior highlights:
//   - f(z) == 0 returns z immediately.
//   - f'(z) == 0: z is displaced by √ε·max(|z|, 1) in a fixed direction and
//     the iteration continues from there, instead of dividing by zero.
//   - Convergence is relative for |z| > 1 and absolute below: the iteration
//     stops once |step| ≤ ε·max(|z|, 1), so a root of magnitude 1e20 is
//     resolved to full precision and a root at 0 still terminates.
//   - Stagnation: once steps are already below √ε·max(|z|, 1) and stop
//     shrinking, rounding noise dominates (the signature of a multiple root);
//     the current iterate is returned as converged.
//   - A NaN step returns the last finite iterate.
//
// maxIter <= 0 selects the significand width of R as budget. The returned
// count equals maxIter when the budget ran out; no error is reported, so a
// caller that must tell convergence from exhaustion checks |f(root)| itself.
func ComplexNewton[C scalar.Complex[C, R], R scalar.Real[R]](f ComplexFunc[C], guess C, maxIter int, opts ...Option) (C, int) {
	if f == nil {
		return guess, 0
	}
	cfg := gatherOptions(opts)

	re := guess.Real()
	eps := re.Epsilon()
	sqrtEps := eps.Sqrt()
	one := re.FromFloat64(1)
	if maxIter <= 0 {
		maxIter = re.Digits()
	}

	z := guess
	prev := re.MaxValue()
	var (
		f0, f1, step C
		size, scale  R
	)
	for iter := 1; iter <= maxIter; iter++ {
		f0, f1 = f(z)
		if f0.IsZero() {
			return z, iter
		}
		scale = scalar.Max(z.Abs(), one)
		if f1.IsZero() {
			h := scale.Mul(sqrtEps)
			z = z.Add(z.FromParts(h.Scale(perturbRe), h.Scale(perturbIm)))
			prev = re.MaxValue()
			if cfg.tracing() {
				cfg.trace(Step{Solver: "complex_newton", Iteration: iter, Kind: StepPerturb, X: z.Real().Float64(), Delta: h.Float64()})
			}
			continue
		}

		step = f0.Quo(f1)
		size = step.Abs()
		if size.IsNaN() || size.IsInf() {
			return z, iter
		}
		z = z.Sub(step)
		if cfg.tracing() {
			cfg.trace(Step{Solver: "complex_newton", Iteration: iter, Kind: StepNewton, X: z.Real().Float64(), Delta: size.Float64()})
		}

		scale = scalar.Max(z.Abs(), one)
		if size.Cmp(eps.Mul(scale)) <= 0 {
			return z, iter
		}
		if size.Cmp(prev) >= 0 && size.Cmp(sqrtEps.Mul(scale)) <= 0 {
			return z, iter
		}
		prev = size
	}

	return z, maxIter
}
