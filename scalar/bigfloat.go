// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// DefaultBigPrecision is the significand size, in bits, of a zero-value BigFloat.
const DefaultBigPrecision uint = 128

const panicBigPrecision = "scalar: BigFloat precision must be > 0"

// ErrParse is returned when a decimal string cannot be parsed into a BigFloat.
var ErrParse = errors.New("scalar: cannot parse number")

// BigFloat is an arbitrary-precision real scalar backed by math/big.Float.
//
// The zero value is 0 with DefaultBigPrecision bits. Results of binary
// operations carry the larger precision of the two operands. Values are
// immutable: every operation allocates its result.
type BigFloat struct {
	v   *big.Float
	nan bool
}

var _ Real[BigFloat] = BigFloat{}

// NewBigFloat returns v rounded to prec bits. Panics if prec == 0.
func NewBigFloat(v float64, prec uint) BigFloat {
	if prec == 0 {
		panic(panicBigPrecision)
	}
	if math.IsNaN(v) {
		return BigFloat{v: new(big.Float).SetPrec(prec), nan: true}
	}

	return BigFloat{v: new(big.Float).SetPrec(prec).SetFloat64(v)}
}

// ParseBigFloat parses a decimal (or hexadecimal) literal with prec bits. Panics if prec == 0.
func ParseBigFloat(s string, prec uint) (BigFloat, error) {
	if prec == 0 {
		panic(panicBigPrecision)
	}
	f, _, err := big.ParseFloat(s, 0, prec, big.ToNearestEven)
	if err != nil {
		return BigFloat{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	return BigFloat{v: f}, nil
}

// Big returns a copy of the underlying value (nil for NaN).
func (x BigFloat) Big() *big.Float {
	if x.nan {
		return nil
	}

	return new(big.Float).Copy(x.val())
}

// Prec returns the precision of x in bits.
func (x BigFloat) Prec() uint {
	if x.v == nil {
		return DefaultBigPrecision
	}

	return x.v.Prec()
}

// String formats x with enough decimal digits for its precision.
func (x BigFloat) String() string {
	if x.nan {
		return "NaN"
	}

	return x.val().Text('g', int(float64(x.Prec())*0.30103)+1)
}

func (x BigFloat) val() *big.Float {
	if x.v == nil {
		return new(big.Float).SetPrec(DefaultBigPrecision)
	}

	return x.v
}

func (x BigFloat) alloc(y BigFloat) *big.Float {
	p := x.Prec()
	if q := y.Prec(); q > p {
		p = q
	}

	return new(big.Float).SetPrec(p)
}

// apply runs op on a fresh result and turns big.ErrNaN panics into NaN.
func (x BigFloat) apply(y BigFloat, op func(z *big.Float)) (res BigFloat) {
	if x.nan || y.nan {
		return x.NaN()
	}
	z := x.alloc(y)
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(big.ErrNaN); !ok {
				panic(r)
			}
			res = BigFloat{v: z, nan: true}
		}
	}()
	op(z)

	return BigFloat{v: z}
}

func (x BigFloat) Add(y BigFloat) BigFloat {
	return x.apply(y, func(z *big.Float) { z.Add(x.val(), y.val()) })
}

func (x BigFloat) Sub(y BigFloat) BigFloat {
	return x.apply(y, func(z *big.Float) { z.Sub(x.val(), y.val()) })
}

func (x BigFloat) Mul(y BigFloat) BigFloat {
	return x.apply(y, func(z *big.Float) { z.Mul(x.val(), y.val()) })
}

func (x BigFloat) Quo(y BigFloat) BigFloat {
	return x.apply(y, func(z *big.Float) { z.Quo(x.val(), y.val()) })
}

func (x BigFloat) Neg() BigFloat {
	return x.apply(x, func(z *big.Float) { z.Neg(x.val()) })
}

func (x BigFloat) Abs() BigFloat {
	return x.apply(x, func(z *big.Float) { z.Abs(x.val()) })
}

func (x BigFloat) Scale(k float64) BigFloat {
	return x.Mul(x.FromFloat64(k))
}

// Sqrt returns the square root of x; NaN for negative x.
func (x BigFloat) Sqrt() BigFloat {
	if x.Sign() < 0 {
		return x.NaN()
	}
	if x.IsZero() {
		return x
	}

	return x.apply(x, func(z *big.Float) { z.Sqrt(x.val()) })
}

func (x BigFloat) IsZero() bool { return !x.nan && x.val().Sign() == 0 }
func (x BigFloat) IsNaN() bool  { return x.nan }
func (x BigFloat) IsInf() bool  { return !x.nan && x.val().IsInf() }

func (x BigFloat) Sign() int {
	if x.nan {
		return 0
	}

	return x.val().Sign()
}

func (x BigFloat) Cmp(y BigFloat) int {
	if x.nan || y.nan {
		return 0
	}

	return x.val().Cmp(y.val())
}

// FromFloat64 converts v using the precision of x.
func (x BigFloat) FromFloat64(v float64) BigFloat { return NewBigFloat(v, x.Prec()) }

// Float64 returns the nearest float64 (NaN for NaN).
func (x BigFloat) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := x.val().Float64()

	return f
}

func (x BigFloat) NaN() BigFloat {
	return BigFloat{v: new(big.Float).SetPrec(x.Prec()), nan: true}
}

// Epsilon returns 2^(1-prec).
func (x BigFloat) Epsilon() BigFloat { return x.Pow2(1 - int(x.Prec())) }

// MinValue returns the smallest positive normalized big.Float, 0.5·2^MinExp.
func (x BigFloat) MinValue() BigFloat { return x.Pow2(big.MinExp - 1) }

// MaxValue returns 2^(MaxExp-1); the exact largest finite value is not needed
// by any algorithm in this module.
func (x BigFloat) MaxValue() BigFloat { return x.Pow2(big.MaxExp - 1) }

func (x BigFloat) Digits() int { return int(x.Prec()) }

// Pow2 returns 2^exp exactly at the receiver's precision.
func (x BigFloat) Pow2(exp int) BigFloat {
	one := new(big.Float).SetPrec(x.Prec()).SetInt64(1)

	return BigFloat{v: new(big.Float).SetPrec(x.Prec()).SetMantExp(one, exp)}
}
