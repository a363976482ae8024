// SPDX-License-Identifier: MIT

// Package scalar defines the numeric capability set the solvers in this module
// are generic over, together with ready-made scalar types.
//
// Overview:
//
//   - Field[T]: the arithmetic shared by every scalar kind (add, sub, mul, quo, neg, scale).
//   - Real[T]: ordered real scalars with comparison, sign, sqrt, NaN, epsilon,
//     smallest normalized value, largest finite value and digit count.
//   - Complex[C,R]: complex scalars whose parts are Real[R].
//   - FusedMultiplyAdder[T]: optional x·y+z with a single rounding.
//
// Concrete types:
//
//	Float64, Float32        native IEEE-754 (implement FusedMultiplyAdder)
//	BigFloat                arbitrary precision on top of math/big.Float
//	Complex128, Complex64   native complex
//	BigComplex              pair of BigFloat
//
// Constants such as 2, epsilon or the tolerance factor are produced from an
// existing value (x.FromFloat64(2), x.Epsilon()) so that arbitrary-precision
// values carry their precision into everything derived from them.
//
// Notes:
//
//   - math/big.Float has no NaN; BigFloat represents it explicitly and maps the
//     operations big.Float panics on (0/0, Inf-Inf, sqrt of a negative) to NaN.
//   - BigFloat does not provide FMA. Algorithms that benefit from fused
//     operations (the quadratic discriminant) fall back to plain arithmetic.
package scalar
