// SPDX-License-Identifier: MIT

package ibeta

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rootfind/roots"
	"github.com/katalvlaran/rootfind/scalar"
)

// Inverse returns x in [0, 1] with I_x(a, b) = z, computed with method.
//
// Returns the estimate and the iterations spent. When the budget is
// exhausted the estimate is returned together with ErrNotConverged.
func Inverse(method Method, a, b, z float64, opts ...Option) (float64, int, error) {
	cfg := gatherOptions(opts)

	o, err := NewOracle(a, b, z, cfg.Complement)
	if err != nil {
		return 0, 0, err
	}
	if method < Bisect || method > Schroder {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}

	switch {
	case z == 0:
		if cfg.Complement {
			return 1, 0, nil
		}
		return 0, 0, nil
	case z == 1:
		if cfg.Complement {
			return 0, 0, nil
		}
		return 1, 0, nil
	}

	lost := cfg.BitsLost
	if lost == AutoBitsLost {
		lost = DefaultBitsLost(a, b)
	}
	digits := float64Digits - lost

	var ropts []roots.Option
	if cfg.Logger != nil {
		ropts = append(ropts, roots.WithLogger(cfg.Logger))
	}

	var (
		x     scalar.Float64
		iters int
	)
	guess := scalar.Float64(cfg.Guess)
	switch method {
	case Bisect:
		var br roots.Bracket[scalar.Float64]
		br, iters, err = roots.Bisect(o.Value, 0, 1, roots.EpsTolerance[scalar.Float64](digits), cfg.MaxIterations, ropts...)
		x = br.Lo
	case Newton:
		x, iters, err = roots.NewtonRaphson(o.FirstOrder, guess, 0, 1, digits, cfg.MaxIterations, ropts...)
	case Halley:
		x, iters, err = roots.Halley(o.SecondOrder, guess, 0, 1, digits, cfg.MaxIterations, ropts...)
	case Schroder:
		x, iters, err = roots.Schroder(o.SecondOrder, guess, 0, 1, digits, cfg.MaxIterations, ropts...)
	}
	if err != nil {
		return float64(x), iters, fmt.Errorf("ibeta: %s a=%g b=%g z=%g: %w", method, a, b, z, err)
	}

	if iters >= cfg.MaxIterations {
		if cfg.Logger != nil {
			cfg.Logger.LogAttrs(context.Background(), slog.LevelWarn, "ibeta: budget exhausted",
				slog.String("method", method.String()),
				slog.Float64("a", a),
				slog.Float64("b", b),
				slog.Float64("z", z),
				slog.Float64("x", float64(x)),
				slog.Int("iterations", iters),
			)
		}
		return float64(x), iters, fmt.Errorf("%w: %s after %d iterations", ErrNotConverged, method, iters)
	}

	return float64(x), iters, nil
}
