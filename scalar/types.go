// SPDX-License-Identifier: MIT

package scalar

// Field is the arithmetic shared by real and complex scalars.
// All methods are pure: the receiver and arguments are never mutated.
type Field[T any] interface {
	Add(y T) T
	Sub(y T) T
	Mul(y T) T
	Quo(y T) T
	Neg() T
	// Scale multiplies by a native constant (e.g. 0.5, 2, 4).
	Scale(k float64) T
	IsZero() bool
}

// Real is the capability set of an ordered real scalar.
//
// Limits (Epsilon, MinValue, MaxValue, Digits) and FromFloat64 are methods on
// a value rather than package functions so that a type whose precision is a
// runtime property (BigFloat) can answer for the precision of that value.
type Real[T any] interface {
	Field[T]
	Abs() T
	Sqrt() T
	// Cmp returns -1, 0 or +1. Comparisons involving NaN return 0.
	Cmp(y T) int
	// Sign returns -1, 0 or +1 (0 for NaN).
	Sign() int
	IsNaN() bool
	IsInf() bool
	// FromFloat64 converts v to T using the receiver's precision.
	FromFloat64(v float64) T
	Float64() float64
	NaN() T
	// Epsilon is the difference between 1 and the next representable value.
	Epsilon() T
	// MinValue is the smallest positive normalized value.
	MinValue() T
	MaxValue() T
	// Digits is the number of significand bits.
	Digits() int
	// Pow2 returns 2^exp using the receiver's precision.
	Pow2(exp int) T
}

// Complex is the capability set of a complex scalar with real parts of type R.
type Complex[C any, R Real[R]] interface {
	Field[C]
	Abs() R
	Real() R
	Imag() R
	// Sqrt returns the principal square root.
	Sqrt() C
	Conj() C
	// FromParts builds re + im·i using the receiver's precision.
	FromParts(re, im R) C
}

// FusedMultiplyAdder is implemented by scalars with a fused multiply-add:
// x.FMA(y, z) = x·y + z computed with a single rounding.
type FusedMultiplyAdder[T any] interface {
	FMA(y, z T) T
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite[T Real[T]](x T) bool { return !x.IsNaN() && !x.IsInf() }

// Min returns the smaller of a and b.
func Min[T Real[T]](a, b T) T {
	if b.Cmp(a) < 0 {
		return b
	}

	return a
}

// Max returns the larger of a and b.
func Max[T Real[T]](a, b T) T {
	if b.Cmp(a) > 0 {
		return b
	}

	return a
}

// SameSign reports whether a and b are both strictly positive or both strictly negative.
func SameSign[T Real[T]](a, b T) bool {
	sa, sb := a.Sign(), b.Sign()

	return sa != 0 && sa == sb
}
