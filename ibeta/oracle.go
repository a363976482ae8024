// SPDX-License-Identifier: MIT

package ibeta

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/rootfind/scalar"
)

// minValue is the smallest normal float64.
const minValue = 0x1p-1022

// Oracle evaluates g(x) = I_x(a, b) - z (or its complement) together with
// its first two derivatives. It is immutable and safe for concurrent use.
type Oracle struct {
	a, b       float64
	z          float64
	lbeta      float64
	complement bool
}

// NewOracle validates the parameters and precomputes log B(a, b).
func NewOracle(a, b, z float64, complement bool) (Oracle, error) {
	if !validParameter(a) || !validParameter(b) {
		return Oracle{}, fmt.Errorf("%w: a=%g b=%g", ErrParameter, a, b)
	}
	if !(z >= 0 && z <= 1) {
		return Oracle{}, fmt.Errorf("%w: z=%g", ErrProbability, z)
	}

	return Oracle{a: a, b: b, z: z, lbeta: mathext.Lbeta(a, b), complement: complement}, nil
}

// Value returns g(x). x must lie in [0, 1].
func (o Oracle) Value(x scalar.Float64) scalar.Float64 {
	return scalar.Float64(o.value(float64(x)))
}

// FirstOrder returns g(x) and g'(x).
func (o Oracle) FirstOrder(x scalar.Float64) (scalar.Float64, scalar.Float64) {
	f0, f1, _ := o.eval(float64(x))

	return scalar.Float64(f0), scalar.Float64(f1)
}

// SecondOrder returns g(x), g'(x) and g''(x).
func (o Oracle) SecondOrder(x scalar.Float64) (scalar.Float64, scalar.Float64, scalar.Float64) {
	f0, f1, f2 := o.eval(float64(x))

	return scalar.Float64(f0), scalar.Float64(f1), scalar.Float64(f2)
}

func (o Oracle) value(x float64) float64 {
	if o.complement {
		return mathext.RegIncBeta(o.b, o.a, 1-x) - o.z
	}

	return mathext.RegIncBeta(o.a, o.b, x) - o.z
}

func (o Oracle) eval(x float64) (f0, f1, f2 float64) {
	f0 = o.value(x)

	y := 1 - x
	if y == 0 && o.b >= 1 {
		// keeps f2 finite; for b < 1 the density at 1 is +Inf and stays so
		y = 8 * minValue
	}
	// beta density x^(a-1)·y^(b-1)/B(a, b) and its slope
	f1 = math.Exp(xlogy(o.a-1, x) + xlogy(o.b-1, y) - o.lbeta)
	f2 = f1 * ((o.a-1)/x - (o.b-1)/y)

	if o.complement {
		f1, f2 = -f1, -f2
	}
	if f1 == 0 {
		f1 = 64 * minValue
		if o.complement {
			f1 = -f1
		}
	}

	return f0, f1, f2
}

// xlogy returns p·log(x) with 0·log(0) = 0.
func xlogy(p, x float64) float64 {
	if p == 0 {
		return 0
	}

	return p * math.Log(x)
}
