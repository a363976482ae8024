// Command rootfind exposes the solvers of the rootfind module on the
// command line.
//
// Usage:
//
//	rootfind quadratic [-complex] A B C
//	rootfind ibeta [-method bisect|newton|halley|schroder|all] [-complement] [-bits-lost N] A B Z
//	rootfind poly [-guess RE+IMi] C0 C1 ... Cn
//
// Polynomial coefficients are complex literals, lowest degree first.
// A negative first argument reads as a flag; end the flags with "--":
//
//	rootfind quadratic -- -1 2 3
//
// Environment (prefix ROOTFIND_):
//
//	LOG_LEVEL       debug, info, warn or error (default info)
//	MAX_ITERATIONS  iteration budget of ibeta and poly (default 200)
//	NO_COLOR        disable colored log output
//
// Exit status is 2 on usage errors and 1 when a solver fails.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rootfind/ibeta"
	"github.com/katalvlaran/rootfind/polynomial"
	"github.com/katalvlaran/rootfind/roots"
	"github.com/katalvlaran/rootfind/scalar"
)

const (
	envPrefix = "ROOTFIND"
	methodAll = "all"
)

// errUsage marks errors caused by malformed command lines.
var errUsage = errors.New("usage")

type config struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	MaxIterations int    `envconfig:"MAX_ITERATIONS" default:"200"`
	NoColor       bool   `envconfig:"NO_COLOR" default:"false"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.MaxIterations <= 0 {
		return config{}, fmt.Errorf("failed to load config: %s_MAX_ITERATIONS must be positive, got %d", envPrefix, cfg.MaxIterations)
	}

	return cfg, nil
}

func newLogger(w io.Writer, cfg config) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("%w: log level %q", errUsage, cfg.LogLevel)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
	})), nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	err = run(os.Args[1:], cfg, os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, "rootfind:", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

func run(args []string, cfg config, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: rootfind quadratic|ibeta|poly [flags] [--] args...", errUsage)
	}

	logger, err := newLogger(stderr, cfg)
	if err != nil {
		return err
	}

	switch args[0] {
	case "quadratic":
		return runQuadratic(args[1:], stdout, stderr)
	case "ibeta":
		return runIbeta(args[1:], cfg, logger, stdout, stderr)
	case "poly":
		return runPoly(args[1:], cfg, logger, stdout, stderr)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string, want int) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if want >= 0 && fs.NArg() != want {
		return fmt.Errorf("%w: %s needs %d arguments, got %d", errUsage, fs.Name(), want, fs.NArg())
	}

	return nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, s)
		}
		out[i] = v
	}

	return out, nil
}

func parseComplexes(args []string) ([]scalar.Complex128, error) {
	out := make([]scalar.Complex128, len(args))
	for i, s := range args {
		v, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a complex number", errUsage, s)
		}
		out[i] = scalar.Complex128(v)
	}

	return out, nil
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }

func formatComplex(z scalar.Complex128) string {
	return strconv.FormatComplex(complex128(z), 'g', -1, 128)
}

func runQuadratic(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("quadratic", stderr)
	isComplex := fs.Bool("complex", false, "treat A B C as complex literals")
	if err := parseFlags(fs, args, 3); err != nil {
		return err
	}

	if *isComplex {
		c, err := parseComplexes(fs.Args())
		if err != nil {
			return err
		}
		r0, r1 := roots.ComplexQuadraticRoots[scalar.Complex128, scalar.Float64](c[0], c[1], c[2])
		_, err = fmt.Fprintln(stdout, formatComplex(r0), formatComplex(r1))
		return err
	}

	v, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}
	r0, r1 := roots.QuadraticRoots(scalar.Float64(v[0]), scalar.Float64(v[1]), scalar.Float64(v[2]))
	_, err = fmt.Fprintln(stdout, formatFloat(float64(r0)), formatFloat(float64(r1)))

	return err
}

func runIbeta(args []string, cfg config, logger *slog.Logger, stdout, stderr io.Writer) error {
	fs := newFlagSet("ibeta", stderr)
	method := fs.String("method", ibeta.Newton.String(), "bisect, newton, halley, schroder or all")
	complement := fs.Bool("complement", false, "solve 1 - I_x(a, b) = z")
	bitsLost := fs.Int("bits-lost", ibeta.AutoBitsLost, "bits lost by the forward evaluation (-1 derives it from a, b)")
	if err := parseFlags(fs, args, 3); err != nil {
		return err
	}

	methods := ibeta.Methods()
	if *method != methodAll {
		m, err := ibeta.ParseMethod(*method)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		methods = []ibeta.Method{m}
	}
	if *bitsLost != ibeta.AutoBitsLost && (*bitsLost < 0 || *bitsLost >= 53) {
		return fmt.Errorf("%w: -bits-lost must lie in [0, 53)", errUsage)
	}
	v, err := parseFloats(fs.Args())
	if err != nil {
		return err
	}

	opts := []ibeta.Option{ibeta.WithMaxIterations(cfg.MaxIterations), ibeta.WithLogger(logger)}
	if *complement {
		opts = append(opts, ibeta.WithComplement())
	}
	if *bitsLost != ibeta.AutoBitsLost {
		opts = append(opts, ibeta.WithBitsLost(*bitsLost))
	}

	if len(methods) == 1 {
		x, err := inverse(methods[0], v, opts, logger)
		if err != nil && !errors.Is(err, ibeta.ErrNotConverged) {
			return err
		}
		if _, werr := fmt.Fprintln(stdout, formatFloat(x)); werr != nil {
			return werr
		}
		return err
	}

	// every method concurrently; results are printed in declaration order
	xs := make([]float64, len(methods))
	var g errgroup.Group
	for i, m := range methods {
		g.Go(func() error {
			x, err := inverse(m, v, opts, logger)
			xs[i] = x
			return err
		})
	}
	err = g.Wait()
	if err != nil && !errors.Is(err, ibeta.ErrNotConverged) {
		return err
	}
	for i, m := range methods {
		if _, werr := fmt.Fprintf(stdout, "%s %s\n", m, formatFloat(xs[i])); werr != nil {
			return werr
		}
	}

	return err
}

func inverse(m ibeta.Method, v []float64, opts []ibeta.Option, logger *slog.Logger) (float64, error) {
	x, iters, err := ibeta.Inverse(m, v[0], v[1], v[2], opts...)
	logger.Debug("ibeta: done", "method", m.String(), "iterations", iters)

	return x, err
}

func runPoly(args []string, cfg config, logger *slog.Logger, stdout, stderr io.Writer) error {
	fs := newFlagSet("poly", stderr)
	guessLit := fs.String("guess", "1+1i", "starting point (complex literal)")
	if err := parseFlags(fs, args, -1); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%w: poly needs at least one coefficient", errUsage)
	}

	g, err := strconv.ParseComplex(*guessLit, 128)
	if err != nil {
		return fmt.Errorf("%w: -guess %q is not a complex number", errUsage, *guessLit)
	}
	coeffs, err := parseComplexes(fs.Args())
	if err != nil {
		return err
	}
	p, err := polynomial.New(coeffs...)
	if err != nil {
		return err
	}

	z, iters := roots.ComplexNewton[scalar.Complex128, scalar.Float64](
		p.NewtonFunc(), scalar.Complex128(g), cfg.MaxIterations, roots.WithLogger(logger))
	logger.Info("poly: done",
		"polynomial", p.String(),
		"iterations", iters,
		"residual", float64(p.Eval(z).Abs()),
	)
	_, err = fmt.Fprintln(stdout, formatComplex(z))

	return err
}
