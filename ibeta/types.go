// SPDX-License-Identifier: MIT

package ibeta

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

var (
	// ErrParameter indicates a shape parameter that is not a finite positive number.
	ErrParameter = errors.New("ibeta: shape parameters must be finite and positive")

	// ErrProbability indicates a target probability outside [0, 1].
	ErrProbability = errors.New("ibeta: probability must lie in [0, 1]")

	// ErrUnknownMethod indicates an unsupported Method value or name.
	ErrUnknownMethod = errors.New("ibeta: unknown method")

	// ErrNotConverged is returned together with the last estimate when the
	// iteration budget is exhausted.
	ErrNotConverged = errors.New("ibeta: iteration budget exhausted")
)

// Method selects the root finder used by Inverse.
type Method int

const (
	Bisect   Method = iota // Bisect uses roots.Bisect on [0, 1].
	Newton                 // Newton uses roots.NewtonRaphson.
	Halley                 // Halley uses roots.Halley.
	Schroder               // Schroder uses roots.Schroder.
)

var methodNames = [...]string{
	Bisect:   "bisect",
	Newton:   "newton",
	Halley:   "halley",
	Schroder: "schroder",
}

// String returns the lower-case method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{Bisect, Newton, Halley, Schroder}
}

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

const (
	// DefaultGuess is the starting point of the derivative-based methods.
	DefaultGuess = 0.5

	// DefaultMaxIterations bounds every solver call.
	DefaultMaxIterations = 200

	// AutoBitsLost asks Inverse to derive the bits lost from (a, b).
	AutoBitsLost = -1

	float64Digits = 53
)

const (
	panicGuess         = "ibeta: WithGuess: guess must lie in [0, 1]"
	panicMaxIterations = "ibeta: WithMaxIterations: budget must be > 0"
	panicBitsLost      = "ibeta: WithBitsLost: bits must lie in [0, 53)"
)

// Option configures Inverse.
type Option func(*Options)

// Options holds the per-call configuration of Inverse.
type Options struct {
	// Guess is the starting point of Newton, Halley and Schroder. Ignored by Bisect.
	Guess float64

	// MaxIterations bounds the solver call.
	MaxIterations int

	// BitsLost is subtracted from 53 to obtain the bit target.
	// AutoBitsLost selects DefaultBitsLost(a, b).
	BitsLost int

	// Complement solves 1 - I_x(a, b) = z instead of I_x(a, b) = z.
	Complement bool

	// Logger, if non-nil, receives the solver trace at Debug level and a
	// Warn record when the budget is exhausted.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Guess = 0.5
//   - MaxIterations = 200
//   - BitsLost = AutoBitsLost
//   - no complement, no logger
func DefaultOptions() Options {
	return Options{
		Guess:         DefaultGuess,
		MaxIterations: DefaultMaxIterations,
		BitsLost:      AutoBitsLost,
	}
}

// WithGuess sets the starting point. Panics unless 0 ≤ g ≤ 1.
func WithGuess(g float64) Option {
	if !(g >= 0 && g <= 1) {
		panic(panicGuess)
	}

	return func(o *Options) { o.Guess = g }
}

// WithMaxIterations sets the iteration budget. Panics if n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterations)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithBitsLost overrides the bits-lost heuristic. Panics unless 0 ≤ n < 53.
func WithBitsLost(n int) Option {
	if n < 0 || n >= float64Digits {
		panic(panicBitsLost)
	}

	return func(o *Options) { o.BitsLost = n }
}

// WithComplement makes Inverse solve the upper tail 1 - I_x(a, b) = z.
func WithComplement() Option {
	return func(o *Options) { o.Complement = true }
}

// WithLogger routes solver tracing and warnings to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// DefaultBitsLost estimates how many bits the forward evaluation of
// I_x(a, b) loses: ceil(3·log10(max(a, b))) + 3, or 3 when the logarithm
// term is negative. The result is capped below 53.
func DefaultBitsLost(a, b float64) int {
	n := int(math.Ceil(3 * math.Log10(math.Max(a, b))))
	if n < 0 {
		return 3
	}
	n += 3
	if n >= float64Digits {
		n = float64Digits - 1
	}

	return n
}

func validParameter(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
