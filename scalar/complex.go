// SPDX-License-Identifier: MIT

package scalar

import "math/cmplx"

// Complex128 is a native complex scalar with Float64 parts.
type Complex128 complex128

// Complex64 is a native complex scalar with Float32 parts.
type Complex64 complex64

var (
	_ Complex[Complex128, Float64] = Complex128(0)
	_ Complex[Complex64, Float32]  = Complex64(0)
)

func (z Complex128) Add(w Complex128) Complex128 { return z + w }
func (z Complex128) Sub(w Complex128) Complex128 { return z - w }
func (z Complex128) Mul(w Complex128) Complex128 { return z * w }
func (z Complex128) Quo(w Complex128) Complex128 { return z / w }
func (z Complex128) Neg() Complex128 { return -z }
func (z Complex128) Scale(k float64) Complex128 { return z * Complex128(complex(k, 0)) }
func (z Complex128) IsZero() bool { return z == 0 }
func (z Complex128) Abs() Float64 { return Float64(cmplx.Abs(complex128(z))) }
func (z Complex128) Real() Float64 { return Float64(real(z)) }
func (z Complex128) Imag() Float64 { return Float64(imag(z)) }
func (z Complex128) Sqrt() Complex128 { return Complex128(cmplx.Sqrt(complex128(z))) }
func (z Complex128) Conj() Complex128 { return Complex128(cmplx.Conj(complex128(z))) }

func (z Complex128) FromParts(re, im Float64) Complex128 {
	return Complex128(complex(float64(re), float64(im)))
}

func (z Complex64) Add(w Complex64) Complex64 { return z + w }
func (z Complex64) Sub(w Complex64) Complex64 { return z - w }
func (z Complex64) Mul(w Complex64) Complex64 { return z * w }
func (z Complex64) Quo(w Complex64) Complex64 { return z / w }
func (z Complex64) Neg() Complex64 { return -z }
func (z Complex64) Scale(k float64) Complex64 { return z * Complex64(complex(float32(k), 0)) }
func (z Complex64) IsZero() bool { return z == 0 }
func (z Complex64) Abs() Float32 { return Float32(cmplx.Abs(complex128(z))) }
func (z Complex64) Real() Float32 { return Float32(real(z)) }
func (z Complex64) Imag() Float32 { return Float32(imag(z)) }
func (z Complex64) Sqrt() Complex64 { return Complex64(cmplx.Sqrt(complex128(z))) }
func (z Complex64) Conj() Complex64 { return Complex64(complex(real(z), -imag(z))) }

func (z Complex64) FromParts(re, im Float32) Complex64 {
	return Complex64(complex(float32(re), float32(im)))
}

// BigComplex is an arbitrary-precision complex scalar made of two BigFloat parts.
// The zero value is 0 at DefaultBigPrecision.
type BigComplex struct {
	re, im BigFloat
}

var _ Complex[BigComplex, BigFloat] = BigComplex{}

// NewBigComplex returns re + im·i with prec bits per part. Panics if prec == 0.
func NewBigComplex(re, im float64, prec uint) BigComplex {
	return BigComplex{re: NewBigFloat(re, prec), im: NewBigFloat(im, prec)}
}

func (z BigComplex) Add(w BigComplex) BigComplex {
	return BigComplex{re: z.re.Add(w.re), im: z.im.Add(w.im)}
}

func (z BigComplex) Sub(w BigComplex) BigComplex {
	return BigComplex{re: z.re.Sub(w.re), im: z.im.Sub(w.im)}
}

// Mul returns (ac - bd) + (ad + bc)i.
func (z BigComplex) Mul(w BigComplex) BigComplex {
	a, b, c, d := z.re, z.im, w.re, w.im

	return BigComplex{
		re: a.Mul(c).Sub(b.Mul(d)),
		im: a.Mul(d).Add(b.Mul(c)),
	}
}

// Quo divides by |w|² directly; big.Float's exponent range makes the
// overflow-avoiding scaling used for native types unnecessary.
func (z BigComplex) Quo(w BigComplex) BigComplex {
	a, b, c, d := z.re, z.im, w.re, w.im
	den := c.Mul(c).Add(d.Mul(d))

	return BigComplex{
		re: a.Mul(c).Add(b.Mul(d)).Quo(den),
		im: b.Mul(c).Sub(a.Mul(d)).Quo(den),
	}
}

func (z BigComplex) Neg() BigComplex { return BigComplex{re: z.re.Neg(), im: z.im.Neg()} }
func (z BigComplex) Conj() BigComplex { return BigComplex{re: z.re, im: z.im.Neg()} }
func (z BigComplex) IsZero() bool { return z.re.IsZero() && z.im.IsZero() }
func (z BigComplex) Real() BigFloat { return z.re }
func (z BigComplex) Imag() BigFloat { return z.im }

func (z BigComplex) Scale(k float64) BigComplex {
	return BigComplex{re: z.re.Scale(k), im: z.im.Scale(k)}
}

func (z BigComplex) FromParts(re, im BigFloat) BigComplex {
	return BigComplex{re: re, im: im}
}

// Abs returns sqrt(re² + im²).
func (z BigComplex) Abs() BigFloat {
	return z.re.Mul(z.re).Add(z.im.Mul(z.im)).Sqrt()
}

// Sqrt returns the principal square root (non-negative real part).
func (z BigComplex) Sqrt() BigComplex {
	if z.IsZero() {
		return z
	}
	// t = sqrt((|z| + |re|)/2); the other part is im/(2t).
	t := z.Abs().Add(z.re.Abs()).Scale(0.5).Sqrt()
	u := z.im.Abs().Quo(t.Scale(2))
	if z.re.Sign() >= 0 {
		return BigComplex{re: t, im: z.im.Quo(t.Scale(2))}
	}
	if z.im.Sign() < 0 {
		t = t.Neg()
	}

	return BigComplex{re: u, im: t}
}

// String formats z as (re+imi).
func (z BigComplex) String() string {
	sep := "+"
	if z.im.Sign() < 0 {
		sep = ""
	}

	return "(" + z.re.String() + sep + z.im.String() + "i)"
}
