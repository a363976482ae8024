// SPDX-License-Identifier: MIT

package roots

import (
	"context"
	"log/slog"
)

// Option configures optional solver behavior.
type Option func(*Options)

// Options holds per-call configuration. The zero value is valid.
type Options struct {
	// Logger, if non-nil, receives one Debug record per iteration.
	Logger *slog.Logger

	// OnStep, if non-nil, is invoked after every iteration.
	OnStep func(Step)
}

// DefaultOptions returns options with no logger and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithLogger routes per-iteration tracing to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep installs fn as a per-iteration hook.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (o *Options) trace(s Step) {
	if o.OnStep != nil {
		o.OnStep(s)
	}
	if o.Logger != nil && o.Logger.Enabled(context.Background(), slog.LevelDebug) {
		o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "roots: step",
			slog.String("solver", s.Solver),
			slog.Int("iter", s.Iteration),
			slog.String("kind", s.Kind.String()),
			slog.Float64("x", s.X),
			slog.Float64("delta", s.Delta),
			slog.Float64("lo", s.Lo),
			slog.Float64("hi", s.Hi),
		)
	}
}

func (o *Options) tracing() bool { return o.OnStep != nil || o.Logger != nil }
