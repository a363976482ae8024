package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rootfind/roots"
	"github.com/katalvlaran/rootfind/scalar"
)

// sinks to defeat dead-code elimination
var (
	sinkF f64
	sinkC c128
	sinkB roots.Bracket[f64]
)

func cbrt2(x f64) (f64, f64, f64) { return x*x*x - 2, 3 * x * x, 6 * x }

func BenchmarkBisect(b *testing.B) {
	tol := roots.EpsTolerance[f64](52)
	f := func(x f64) f64 { f0, _, _ := cbrt2(x); return f0 }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkB, _, _ = roots.Bisect(f, 0, 2, tol, 200)
	}
}

func BenchmarkNewtonRaphson(b *testing.B) {
	f := func(x f64) (f64, f64) { f0, f1, _ := cbrt2(x); return f0, f1 }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF, _, _ = roots.NewtonRaphson(f, 1, 0, 2, 52, 100)
	}
}

func BenchmarkHalley(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF, _, _ = roots.Halley(cbrt2, 1, 0, 2, 52, 100)
	}
}

func BenchmarkSchroder(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF, _, _ = roots.Schroder(cbrt2, 1, 0, 2, 52, 100)
	}
}

func BenchmarkHalley_BigFloat(b *testing.B) {
	two := scalar.NewBigFloat(2, 256)
	f := func(x scalar.BigFloat) (scalar.BigFloat, scalar.BigFloat, scalar.BigFloat) {
		return x.Mul(x).Sub(two), x.Scale(2), two
	}
	lo, hi, guess := two.FromFloat64(1), two, two.FromFloat64(1.5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = roots.Halley(f, guess, lo, hi, 250, 100)
	}
}

func BenchmarkComplexNewton(b *testing.B) {
	f := func(z c128) (c128, c128) { return z*z + 1, 2 * z }
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkC, _ = roots.ComplexNewton[c128, f64](f, complex(1, 1), 0)
	}
}

func BenchmarkQuadraticRoots(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkF, _ = roots.QuadraticRoots[f64](94906265.625, -189812534, 94906268.375)
	}
}

// TestSolvers_Concurrent runs every solver from many goroutines at once; the
// results must match the sequential ones exactly.
func TestSolvers_Concurrent(t *testing.T) {
	const workers = 16
	want, _, err := roots.Halley(cbrt2, 1, 0, 2, 52, 100)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([][3]f64, workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			n, _, err := roots.NewtonRaphson(func(x f64) (f64, f64) { f0, f1, _ := cbrt2(x); return f0, f1 }, 1, 0, 2, 52, 100)
			if err != nil {
				return err
			}
			h, _, err := roots.Halley(cbrt2, 1, 0, 2, 52, 100)
			if err != nil {
				return err
			}
			s, _, err := roots.Schroder(cbrt2, 1, 0, 2, 52, 100)
			if err != nil {
				return err
			}
			results[w] = [3]f64{n, h, s}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, r := range results {
		require.Equal(t, want, r[1])
		for _, v := range r {
			require.InEpsilon(t, math.Cbrt(2), float64(v), 1e-15)
		}
	}
}
