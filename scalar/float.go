// SPDX-License-Identifier: MIT

package scalar

import "math"

// Float64 is an IEEE-754 binary64 scalar.
type Float64 float64

// Float32 is an IEEE-754 binary32 scalar.
type Float32 float32

var (
	_ Real[Float64]               = Float64(0)
	_ Real[Float32]               = Float32(0)
	_ FusedMultiplyAdder[Float64] = Float64(0)
	_ FusedMultiplyAdder[Float32] = Float32(0)
)

// Limits of the native scalar types.
const (
	float64Epsilon  = 0x1p-52
	float64MinValue = 0x1p-1022
	float64Digits   = 53

	float32Epsilon  = 0x1p-23
	float32MinValue = 0x1p-126
	float32Digits   = 24
)

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Quo(y Float64) Float64 { return x / y }
func (x Float64) Neg() Float64 { return -x }
func (x Float64) Scale(k float64) Float64 { return x * Float64(k) }
func (x Float64) IsZero() bool { return x == 0 }
func (x Float64) Abs() Float64 { return Float64(math.Abs(float64(x))) }
func (x Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(x))) }
func (x Float64) Sign() int { return sign(float64(x)) }
func (x Float64) IsNaN() bool { return math.IsNaN(float64(x)) }
func (x Float64) IsInf() bool { return math.IsInf(float64(x), 0) }
func (x Float64) FromFloat64(v float64) Float64 { return Float64(v) }
func (x Float64) Float64() float64 { return float64(x) }
func (x Float64) NaN() Float64 { return Float64(math.NaN()) }
func (x Float64) Epsilon() Float64 { return float64Epsilon }
func (x Float64) MinValue() Float64 { return float64MinValue }
func (x Float64) MaxValue() Float64 { return math.MaxFloat64 }
func (x Float64) Digits() int { return float64Digits }
func (x Float64) Pow2(exp int) Float64 { return Float64(math.Ldexp(1, exp)) }

// Cmp compares x and y; NaN compares equal to everything.
func (x Float64) Cmp(y Float64) int { return cmp(float64(x), float64(y)) }

// FMA returns x*y + z with a single rounding.
func (x Float64) FMA(y, z Float64) Float64 {
	return Float64(math.FMA(float64(x), float64(y), float64(z)))
}

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Sub(y Float32) Float32 { return x - y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Quo(y Float32) Float32 { return x / y }
func (x Float32) Neg() Float32 { return -x }
func (x Float32) Scale(k float64) Float32 { return x * Float32(k) }
func (x Float32) IsZero() bool { return x == 0 }
func (x Float32) Abs() Float32 { return Float32(math.Abs(float64(x))) }
func (x Float32) Sign() int { return sign(float64(x)) }
func (x Float32) IsNaN() bool { return math.IsNaN(float64(x)) }
func (x Float32) IsInf() bool { return math.IsInf(float64(x), 0) }
func (x Float32) FromFloat64(v float64) Float32 { return Float32(v) }
func (x Float32) Float64() float64 { return float64(x) }
func (x Float32) NaN() Float32 { return Float32(math.NaN()) }
func (x Float32) Epsilon() Float32 { return float32Epsilon }
func (x Float32) MinValue() Float32 { return float32MinValue }
func (x Float32) MaxValue() Float32 { return math.MaxFloat32 }
func (x Float32) Digits() int { return float32Digits }
func (x Float32) Pow2(exp int) Float32 { return Float32(math.Ldexp(1, exp)) }

// Sqrt is correctly rounded: a float64 square root of a float32 input
// rounds to the same float32 as a native binary32 square root.
func (x Float32) Sqrt() Float32 { return Float32(math.Sqrt(float64(x))) }

// Cmp compares x and y; NaN compares equal to everything.
func (x Float32) Cmp(y Float32) int { return cmp(float64(x), float64(y)) }

// FMA returns x*y + z. The binary32 product is exact in binary64, but the sum
// is rounded to binary64 and then to binary32, so in rare halfway cases the
// result is one binary32 ulp away from a true fused multiply-add.
func (x Float32) FMA(y, z Float32) Float32 {
	return Float32(math.FMA(float64(x), float64(y), float64(z)))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
