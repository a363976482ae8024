// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/scalar"
)

func TestBigFloat_ZeroValue(t *testing.T) {
	var x scalar.BigFloat
	assert.True(t, x.IsZero())
	assert.Equal(t, scalar.DefaultBigPrecision, x.Prec())
	assert.Equal(t, int(scalar.DefaultBigPrecision), x.Digits())
	assert.Equal(t, 3.0, x.Add(x.FromFloat64(3)).Float64())
}

func TestBigFloat_Precision(t *testing.T) {
	x := scalar.NewBigFloat(1, 200)
	assert.Equal(t, 200, x.Digits())
	assert.Equal(t, math.Ldexp(1, -199), x.Epsilon().Float64())

	// Results take the larger precision of the operands.
	y := scalar.NewBigFloat(1, 64)
	assert.Equal(t, uint(200), y.Add(x).Prec())
	assert.Equal(t, uint(200), x.Add(y).Prec())

	// 1 + eps is representable, 1 + eps/2 is not.
	eps := x.Epsilon()
	assert.Equal(t, 1, x.Add(eps).Cmp(x))
	assert.Equal(t, 0, x.Add(eps.Scale(0.5)).Cmp(x))
}

func TestBigFloat_Pow2(t *testing.T) {
	x := scalar.NewBigFloat(1, 2000)
	tiny := x.Pow2(-1999)
	assert.Equal(t, 0, tiny.Cmp(x.Epsilon()))
	assert.Equal(t, uint(2000), tiny.Prec())
	assert.False(t, tiny.IsZero(), "below the float64 range but still exact")
	assert.Equal(t, 0.0, tiny.Float64())
	assert.Equal(t, 1024.0, x.Pow2(10).Float64())
}

func TestBigFloat_NaN(t *testing.T) {
	zero := scalar.NewBigFloat(0, 128)
	nan := zero.Quo(zero)
	require.True(t, nan.IsNaN(), "0/0 must be NaN, not a panic")
	assert.True(t, math.IsNaN(nan.Float64()))
	assert.Equal(t, "NaN", nan.String())

	inf := scalar.NewBigFloat(1, 128).Quo(zero)
	assert.True(t, inf.IsInf())
	assert.True(t, inf.Sub(inf).IsNaN())

	assert.True(t, scalar.NewBigFloat(-4, 128).Sqrt().IsNaN())
	assert.True(t, scalar.NewBigFloat(math.NaN(), 128).IsNaN())
	assert.True(t, nan.Add(scalar.NewBigFloat(1, 128)).IsNaN(), "NaN propagates")
	assert.Equal(t, 0, nan.Sign())
	assert.Equal(t, 0, nan.Cmp(zero))
	assert.False(t, nan.IsZero())
}

func TestBigFloat_Parse(t *testing.T) {
	x, err := scalar.ParseBigFloat("0.1", 256)
	require.NoError(t, err)
	assert.Equal(t, uint(256), x.Prec())
	assert.Equal(t, 0.1, x.Float64())

	_, err = scalar.ParseBigFloat("one", 256)
	assert.ErrorIs(t, err, scalar.ErrParse)
}

func TestBigFloat_PanicsOnZeroPrecision(t *testing.T) {
	assert.Panics(t, func() { scalar.NewBigFloat(1, 0) })
	assert.Panics(t, func() { _, _ = scalar.ParseBigFloat("1", 0) })
}

func TestBigFloat_Sqrt(t *testing.T) {
	two := scalar.NewBigFloat(2, 256)
	r := two.Sqrt()
	// r² agrees with 2 to the working precision.
	diff := r.Mul(r).Sub(two).Abs()
	assert.LessOrEqual(t, diff.Cmp(two.Epsilon().Scale(4)), 0)
	assert.True(t, two.FromFloat64(0).Sqrt().IsZero())
}

func TestBigComplex_Sqrt(t *testing.T) {
	cases := []struct {
		name           string
		re, im         float64
		wantRe, wantIm float64
	}{
		{"positive real", 4, 0, 2, 0},
		{"negative real", -4, 0, 0, 2},
		{"upper half", 3, 4, 2, 1},
		{"second quadrant", -3, 4, 1, 2},
		{"third quadrant", -3, -4, 1, -2},
		{"pure imaginary", 0, 2, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := scalar.NewBigComplex(tc.re, tc.im, 128).Sqrt()
			assert.InDelta(t, tc.wantRe, r.Real().Float64(), 1e-30)
			assert.InDelta(t, tc.wantIm, r.Imag().Float64(), 1e-30)
		})
	}
}

func TestBigComplex_Arithmetic(t *testing.T) {
	a := scalar.NewBigComplex(1, 2, 128)
	b := scalar.NewBigComplex(3, -1, 128)

	p := a.Mul(b) // (1+2i)(3-i) = 5+5i
	assert.Equal(t, 5.0, p.Real().Float64())
	assert.Equal(t, 5.0, p.Imag().Float64())

	q := p.Quo(b)
	assert.InDelta(t, 1.0, q.Real().Float64(), 1e-30)
	assert.InDelta(t, 2.0, q.Imag().Float64(), 1e-30)

	assert.Equal(t, 5.0, scalar.NewBigComplex(3, 4, 128).Abs().Float64())
	assert.Equal(t, "(1-2i)", a.Conj().String())
	assert.True(t, a.Sub(a).IsZero())
}
