// SPDX-License-Identifier: MIT

package roots

import (
	"errors"

	"github.com/katalvlaran/rootfind/scalar"
)

var (
	// ErrNilFunc is returned when the function oracle (or tolerance) is nil.
	ErrNilFunc = errors.New("roots: function is nil")

	// ErrInvalidBracket indicates lo > hi.
	ErrInvalidBracket = errors.New("roots: bracket lower bound exceeds upper bound")

	// ErrNoSignChange indicates the function has the same sign at both ends of the bracket.
	ErrNoSignChange = errors.New("roots: function does not change sign over the bracket")

	// ErrGuessOutOfBracket indicates the initial guess lies outside [lo, hi].
	ErrGuessOutOfBracket = errors.New("roots: initial guess outside the bracket")

	// ErrInvalidDigits indicates a non-positive bit-precision target.
	ErrInvalidDigits = errors.New("roots: precision must be a positive number of bits")

	// ErrInvalidIterations indicates a non-positive iteration budget.
	ErrInvalidIterations = errors.New("roots: iteration budget must be positive")

	// ErrNonFinite indicates NaN in an input or in a function value.
	ErrNonFinite = errors.New("roots: NaN encountered")
)

// Func is the oracle of derivative-free solvers: x ↦ f(x).
type Func[T any] func(x T) T

// Func1 is the oracle of first-order solvers: x ↦ (f(x), f'(x)).
type Func1[T any] func(x T) (f0, f1 T)

// Func2 is the oracle of second-order solvers: x ↦ (f(x), f'(x), f''(x)).
type Func2[T any] func(x T) (f0, f1, f2 T)

// ComplexFunc is the oracle of ComplexNewton: z ↦ (f(z), f'(z)).
type ComplexFunc[C any] func(z C) (f0, f1 C)

// Bracket is a closed interval [Lo, Hi] containing a sign change of f.
type Bracket[T scalar.Real[T]] struct {
	Lo, Hi T
}

// Mid returns the midpoint of the bracket without overflow.
func (b Bracket[T]) Mid() T { return midpoint(b.Lo, b.Hi) }

// Width returns Hi - Lo.
func (b Bracket[T]) Width() T { return b.Hi.Sub(b.Lo) }

// StepKind names the kind of correction a solver applied in one iteration.
type StepKind int

const (
	// StepNewton is a plain Newton correction f/f'.
	StepNewton StepKind = iota
	// StepHalley is Halley's cubic correction.
	StepHalley
	// StepSchroder is Schröder's second-order correction.
	StepSchroder
	// StepBisect is a bisection of the current bracket.
	StepBisect
	// StepPerturb is the complex-plane escape from a zero derivative.
	StepPerturb
)

// String returns the lower-case name of k.
func (k StepKind) String() string {
	switch k {
	case StepNewton:
		return "newton"
	case StepHalley:
		return "halley"
	case StepSchroder:
		return "schroder"
	case StepBisect:
		return "bisect"
	case StepPerturb:
		return "perturb"
	default:
		return "unknown"
	}
}

// Step describes one iteration for tracing. Values are projected to float64.
type Step struct {
	Solver    string
	Iteration int
	Kind      StepKind
	X         float64 // iterate after the step (real part for ComplexNewton)
	Delta     float64 // magnitude of the correction
	Lo, Hi    float64 // bracket after narrowing (zero for ComplexNewton)
}

// midpoint returns the midpoint of [lo, hi]. (lo+hi)/2 cannot overflow when
// the signs differ and lo+(hi-lo)/2 cannot overflow when they agree.
func midpoint[T scalar.Real[T]](lo, hi T) T {
	if lo.Sign() != hi.Sign() {
		return lo.Add(hi).Scale(0.5)
	}

	return lo.Add(hi.Sub(lo).Scale(0.5))
}
