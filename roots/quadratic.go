// SPDX-License-Identifier: MIT

package roots

import (
	"github.com/katalvlaran/rootfind/scalar"
)

// QuadraticRoots returns the real roots of a·x² + b·x + c = 0 in ascending
// order.
//
// Implementation:
//   - a == 0 reduces to the linear case; both returned roots are -c/b.
//     When b == 0 as well the roots are (0, 0) if c == 0 and NaN otherwise.
//   - b == 0 returns ±√(-c/a) directly.
//   - Otherwise one root is formed as q/a with q = -(b + sign(b)·√Δ)/2,
//     which adds quantities of equal sign, and the other as c/q from the
//     product of the roots. Neither subtracts nearly equal values.
//   - When T implements scalar.FusedMultiplyAdder, Δ = b² - 4ac is computed
//     with Kahan's fused multiply-add scheme and is accurate to a few ulps
//     even when b² ≈ 4ac. Without it (e.g. scalar.BigFloat) Δ carries the
//     rounding error of the subtraction, which limits accuracy for nearly
//     double roots to about half the working precision.
//
// A negative discriminant yields a NaN pair; use ComplexQuadraticRoots for
// complex roots.
func QuadraticRoots[T scalar.Real[T]](a, b, c T) (T, T) {
	if a.IsZero() {
		if b.IsZero() {
			if c.IsZero() {
				return c, c
			}
			return c.NaN(), c.NaN()
		}
		x := c.Quo(b).Neg()
		return x, x
	}
	if b.IsZero() {
		sq := c.Quo(a).Neg()
		if sq.Sign() < 0 {
			return sq.NaN(), sq.NaN()
		}
		x := sq.Sqrt()
		return x.Neg(), x
	}

	disc := discriminant(a, b, c)
	if disc.Sign() < 0 || disc.IsNaN() {
		return disc.NaN(), disc.NaN()
	}
	s := disc.Sqrt()
	if b.Sign() < 0 {
		s = s.Neg()
	}
	q := b.Add(s).Scale(-0.5)
	x0, x1 := q.Quo(a), c.Quo(q)
	if x1.Cmp(x0) < 0 {
		return x1, x0
	}

	return x0, x1
}

// discriminant returns b² - 4ac, using fused multiply-adds when T has them:
//
//	w = 4ac, e = fma(-c, 4a, w) (the rounding error of w),
//	f = fma(b, b, -w), Δ = f + e.
func discriminant[T scalar.Real[T]](a, b, c T) T {
	a4 := a.Scale(4)
	w := a4.Mul(c)
	if _, ok := any(a).(scalar.FusedMultiplyAdder[T]); !ok {
		return b.Mul(b).Sub(w)
	}
	e := any(c.Neg()).(scalar.FusedMultiplyAdder[T]).FMA(a4, w)
	f := any(b).(scalar.FusedMultiplyAdder[T]).FMA(b, w.Neg())

	return f.Add(e)
}

// QuadraticRootsInt solves a quadratic with integer coefficients. The
// coefficients are promoted to float64 since the roots are generally not
// integers.
func QuadraticRootsInt(a, b, c int) (float64, float64) {
	x0, x1 := QuadraticRoots(scalar.Float64(a), scalar.Float64(b), scalar.Float64(c))

	return float64(x0), float64(x1)
}

// ComplexQuadraticRoots returns both complex roots of a·z² + b·z + c = 0,
// ordered by real part and then by imaginary part.
//
// The degenerate cases mirror QuadraticRoots; b == 0 returns ±√(-c/a) with
// the principal square root. Otherwise the square root of the discriminant is
// oriented so that Re(conj(b)·√Δ) ≥ 0, which makes b + √Δ free of
// cancellation, and the roots are q/a and c/q with q = -(b + √Δ)/2.
func ComplexQuadraticRoots[C scalar.Complex[C, R], R scalar.Real[R]](a, b, c C) (C, C) {
	if a.IsZero() {
		if b.IsZero() {
			if c.IsZero() {
				return c, c
			}
			nan := c.Real().NaN()
			return c.FromParts(nan, nan), c.FromParts(nan, nan)
		}
		z := c.Quo(b).Neg()
		return z, z
	}
	if b.IsZero() {
		z := c.Quo(a).Neg().Sqrt()
		return orderComplex[C, R](z.Neg(), z)
	}

	s := b.Mul(b).Sub(a.Mul(c).Scale(4)).Sqrt()
	// Re(conj(b)·s) < 0 means b and s point into opposite half-planes.
	if b.Conj().Mul(s).Real().Sign() < 0 {
		s = s.Neg()
	}
	q := b.Add(s).Scale(-0.5)

	return orderComplex[C, R](q.Quo(a), c.Quo(q))
}

func orderComplex[C scalar.Complex[C, R], R scalar.Real[R]](x, y C) (C, C) {
	switch d := y.Real().Cmp(x.Real()); {
	case d < 0:
		return y, x
	case d == 0 && y.Imag().Cmp(x.Imag()) < 0:
		return y, x
	}

	return x, y
}
