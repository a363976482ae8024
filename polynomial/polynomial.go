package polynomial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rootfind/scalar"
)

// ErrEmpty is returned by New when no coefficient is supplied.
var ErrEmpty = errors.New("polynomial: no coefficients")

// Polynomial is c[0] + c[1]·x + … + c[n]·xⁿ with c[n] ≠ 0 unless n == 0.
type Polynomial[T scalar.Field[T]] struct {
	coeffs []T
}

// New builds a polynomial from coefficients ordered lowest degree first.
// Trailing (highest-degree) zeros are dropped; the zero polynomial keeps a
// single coefficient. The input slice is copied.
func New[T scalar.Field[T]](coeffs ...T) (*Polynomial[T], error) {
	if len(coeffs) == 0 {
		return nil, ErrEmpty
	}
	n := len(coeffs)
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	c := make([]T, n)
	copy(c, coeffs[:n])

	return &Polynomial[T]{coeffs: c}, nil
}

// Degree returns the index of the highest non-zero coefficient (0 for constants).
func (p *Polynomial[T]) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[T]) Coefficients() []T {
	out := make([]T, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Eval returns p(x) by Horner's scheme.
func (p *Polynomial[T]) Eval(x T) T {
	n := len(p.coeffs) - 1
	acc := p.coeffs[n]
	for k := n - 1; k >= 0; k-- {
		acc = acc.Mul(x).Add(p.coeffs[k])
	}

	return acc
}

// EvalWithDerivative returns p(x) and p'(x) in one Horner pass.
func (p *Polynomial[T]) EvalWithDerivative(x T) (T, T) {
	n := len(p.coeffs) - 1
	v := p.coeffs[n]
	d := v.Scale(0)
	for k := n - 1; k >= 0; k-- {
		d = d.Mul(x).Add(v)
		v = v.Mul(x).Add(p.coeffs[k])
	}

	return v, d
}

// Prime returns the derivative polynomial. The derivative of a constant is
// the zero polynomial.
func (p *Polynomial[T]) Prime() *Polynomial[T] {
	if len(p.coeffs) == 1 {
		return &Polynomial[T]{coeffs: []T{p.coeffs[0].Scale(0)}}
	}
	c := make([]T, len(p.coeffs)-1)
	for k := 1; k < len(p.coeffs); k++ {
		c[k-1] = p.coeffs[k].Scale(float64(k))
	}

	return &Polynomial[T]{coeffs: c}
}

// NewtonFunc returns x ↦ (p(x), p'(x)), the oracle shape expected by
// roots.NewtonRaphson and roots.ComplexNewton.
func (p *Polynomial[T]) NewtonFunc() func(x T) (T, T) {
	return p.EvalWithDerivative
}

// String formats p as "c0 + c1·x + c2·x^2".
func (p *Polynomial[T]) String() string {
	var sb strings.Builder
	for k, c := range p.coeffs {
		if k > 0 {
			sb.WriteString(" + ")
		}
		switch k {
		case 0:
			fmt.Fprintf(&sb, "%v", c)
		case 1:
			fmt.Fprintf(&sb, "%v·x", c)
		default:
			fmt.Fprintf(&sb, "%v·x^%d", c, k)
		}
	}

	return sb.String()
}
