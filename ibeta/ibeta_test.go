// SPDX-License-Identifier: MIT

package ibeta_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	fscalar "gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/rootfind/ibeta"
	"github.com/katalvlaran/rootfind/scalar"
)

type shape struct{ a, b float64 }

var (
	shapes = []shape{
		{0.5, 0.5}, {1, 1}, {2, 3}, {5, 2}, {30, 40}, {100, 50}, {0.1, 10}, {10, 0.1}, {1000, 1000},
	}
	points = []float64{0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99}
)

// InverseSuite round-trips x → z = I_x(a, b) → x for one method.
type InverseSuite struct {
	suite.Suite
	method ibeta.Method
}

func (s *InverseSuite) forEach(complement bool, fn func(sh shape, x, z float64)) {
	for _, sh := range shapes {
		for _, x := range points {
			z := mathext.RegIncBeta(sh.a, sh.b, x)
			if complement {
				z = mathext.RegIncBeta(sh.b, sh.a, 1-x)
			}
			// the forward function cannot resolve x when z is this close to 1,
			// and subnormal-adjacent targets lose relative accuracy
			if 1-z <= 0.001 || z < 1e-100 {
				continue
			}
			fn(sh, x, z)
		}
	}
}

func (s *InverseSuite) TestRoundTrip() {
	s.forEach(false, func(sh shape, x, z float64) {
		got, iters, err := ibeta.Inverse(s.method, sh.a, sh.b, z)
		s.Require().NoError(err, "a=%g b=%g x=%g", sh.a, sh.b, x)
		s.Less(iters, ibeta.DefaultMaxIterations)
		s.True(fscalar.EqualWithinRel(got, x, 1e-7), "a=%g b=%g: want %g, got %g", sh.a, sh.b, x, got)
	})
}

func (s *InverseSuite) TestRoundTripComplement() {
	s.forEach(true, func(sh shape, x, z float64) {
		got, _, err := ibeta.Inverse(s.method, sh.a, sh.b, z, ibeta.WithComplement())
		s.Require().NoError(err, "a=%g b=%g x=%g", sh.a, sh.b, x)
		s.True(fscalar.EqualWithinRel(got, x, 1e-7), "a=%g b=%g: want %g, got %g", sh.a, sh.b, x, got)
	})
}

func (s *InverseSuite) TestAgainstReference() {
	for _, sh := range []shape{{0.5, 0.5}, {1, 1}, {2, 3}, {5, 2}, {30, 40}} {
		for _, z := range []float64{0.05, 0.25, 0.5, 0.75, 0.95} {
			want := mathext.InvRegIncBeta(sh.a, sh.b, z)
			got, _, err := ibeta.Inverse(s.method, sh.a, sh.b, z)
			s.Require().NoError(err)
			s.True(fscalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-6),
				"a=%g b=%g z=%g: want %g, got %g", sh.a, sh.b, z, want, got)
		}
	}
}

func (s *InverseSuite) TestBoundaries() {
	for _, sh := range shapes {
		x, iters, err := ibeta.Inverse(s.method, sh.a, sh.b, 0)
		s.NoError(err)
		s.Equal(0.0, x)
		s.Zero(iters)

		x, iters, err = ibeta.Inverse(s.method, sh.a, sh.b, 1)
		s.NoError(err)
		s.Equal(1.0, x)
		s.Zero(iters)

		x, _, err = ibeta.Inverse(s.method, sh.a, sh.b, 0, ibeta.WithComplement())
		s.NoError(err)
		s.Equal(1.0, x)

		x, _, err = ibeta.Inverse(s.method, sh.a, sh.b, 1, ibeta.WithComplement())
		s.NoError(err)
		s.Equal(0.0, x)
	}
}

func (s *InverseSuite) TestBudgetExhausted() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	x, iters, err := ibeta.Inverse(s.method, 2, 3, 0.3483, ibeta.WithMaxIterations(1), ibeta.WithLogger(logger))
	s.ErrorIs(err, ibeta.ErrNotConverged)
	s.Equal(1, iters)
	s.GreaterOrEqual(x, 0.0)
	s.LessOrEqual(x, 1.0)
	s.Contains(buf.String(), "ibeta: budget exhausted")
	s.Contains(buf.String(), "method="+s.method.String())
}

func (s *InverseSuite) TestGuessAtSingularEnd() {
	// the density is +Inf at the guess: 0 for a < 1, 1 for b < 1
	cases := []struct {
		sh    shape
		guess float64
	}{
		{shape{0.5, 2}, 0},
		{shape{2, 0.5}, 1},
	}
	for _, c := range cases {
		want := mathext.InvRegIncBeta(c.sh.a, c.sh.b, 0.3)
		x, iters, err := ibeta.Inverse(s.method, c.sh.a, c.sh.b, 0.3, ibeta.WithGuess(c.guess))
		s.Require().NoError(err, "a=%g b=%g", c.sh.a, c.sh.b)
		s.Greater(iters, 1)
		s.True(fscalar.EqualWithinRel(x, want, 1e-7), "a=%g b=%g: want %g, got %g", c.sh.a, c.sh.b, want, x)
		s.InDelta(0.3, mathext.RegIncBeta(c.sh.a, c.sh.b, x), 1e-9)
	}
}

func TestInverseSuites(t *testing.T) {
	for _, m := range ibeta.Methods() {
		t.Run(m.String(), func(t *testing.T) {
			suite.Run(t, &InverseSuite{method: m})
		})
	}
}

func TestInverse_MethodsAgree(t *testing.T) {
	for _, sh := range []shape{{2, 3}, {30, 40}, {0.5, 0.5}} {
		ref, _, err := ibeta.Inverse(ibeta.Bisect, sh.a, sh.b, 0.4)
		require.NoError(t, err)
		for _, m := range ibeta.Methods()[1:] {
			got, _, err := ibeta.Inverse(m, sh.a, sh.b, 0.4)
			require.NoError(t, err)
			assert.InEpsilon(t, ref, got, 1e-8, "%s a=%g b=%g", m, sh.a, sh.b)
		}
	}
}

func TestInverse_Validation(t *testing.T) {
	bad := []shape{{0, 1}, {1, 0}, {-1, 2}, {math.NaN(), 1}, {1, math.Inf(1)}}
	for _, sh := range bad {
		_, _, err := ibeta.Inverse(ibeta.Newton, sh.a, sh.b, 0.5)
		assert.ErrorIs(t, err, ibeta.ErrParameter, "a=%g b=%g", sh.a, sh.b)
	}

	for _, z := range []float64{-0.1, 1.1, math.NaN()} {
		_, _, err := ibeta.Inverse(ibeta.Newton, 2, 3, z)
		assert.ErrorIs(t, err, ibeta.ErrProbability, "z=%g", z)
	}

	_, _, err := ibeta.Inverse(ibeta.Method(9), 2, 3, 0.5)
	assert.ErrorIs(t, err, ibeta.ErrUnknownMethod)
}

func TestInverse_GuessAndBitsLost(t *testing.T) {
	want := 0.3
	z := mathext.RegIncBeta(2, 3, want)

	x, _, err := ibeta.Inverse(ibeta.Halley, 2, 3, z, ibeta.WithGuess(0.9))
	require.NoError(t, err)
	assert.InEpsilon(t, want, x, 1e-10)

	// fewer bits requested means a looser bracket, never more iterations
	_, full, err := ibeta.Inverse(ibeta.Bisect, 2, 3, z, ibeta.WithBitsLost(0))
	require.NoError(t, err)
	x, coarse, err := ibeta.Inverse(ibeta.Bisect, 2, 3, z, ibeta.WithBitsLost(33))
	require.NoError(t, err)
	assert.Less(t, coarse, full)
	assert.InDelta(t, want, x, 1e-5)
}

func TestInverse_LoggerReceivesSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := ibeta.Inverse(ibeta.Schroder, 5, 2, 0.25, ibeta.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "roots: step")
	assert.Contains(t, buf.String(), "solver=schroder")
	assert.NotContains(t, buf.String(), "budget exhausted")
}

func TestMethod_ParseAndString(t *testing.T) {
	for _, m := range ibeta.Methods() {
		got, err := ibeta.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	m, err := ibeta.ParseMethod(" Halley ")
	require.NoError(t, err)
	assert.Equal(t, ibeta.Halley, m)

	_, err = ibeta.ParseMethod("secant")
	assert.True(t, errors.Is(err, ibeta.ErrUnknownMethod))
	assert.Equal(t, "Method(9)", ibeta.Method(9).String())
}

func TestDefaultBitsLost(t *testing.T) {
	cases := []struct {
		a, b float64
		want int
	}{
		{0.5, 0.5, 3},
		{1, 1, 3},
		{2, 3, 5},
		{100, 50, 9},
		{1000, 1000, 12},
		{1e20, 1, 52},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ibeta.DefaultBitsLost(c.a, c.b), "a=%g b=%g", c.a, c.b)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "ibeta: WithGuess: guess must lie in [0, 1]", func() { ibeta.WithGuess(1.5) })
	assert.Panics(t, func() { ibeta.WithGuess(math.NaN()) })
	assert.PanicsWithValue(t, "ibeta: WithMaxIterations: budget must be > 0", func() { ibeta.WithMaxIterations(0) })
	assert.Panics(t, func() { ibeta.WithBitsLost(53) })
	assert.Panics(t, func() { ibeta.WithBitsLost(-1) })
	assert.NotPanics(t, func() { ibeta.WithGuess(0); ibeta.WithGuess(1); ibeta.WithBitsLost(52) })

	def := ibeta.DefaultOptions()
	assert.Equal(t, 0.5, def.Guess)
	assert.Equal(t, 200, def.MaxIterations)
	assert.Equal(t, ibeta.AutoBitsLost, def.BitsLost)
	assert.False(t, def.Complement)
	assert.Nil(t, def.Logger)
}

func TestOracle_Derivatives(t *testing.T) {
	o, err := ibeta.NewOracle(2, 3, 0, false)
	require.NoError(t, err)

	// I_0.3(2, 3) and the density 12·x·(1-x)² with slope 12·((1-x)² - 2x(1-x))
	f0, f1, f2 := o.SecondOrder(0.3)
	assert.InDelta(t, 0.3483, float64(f0), 1e-14)
	assert.InDelta(t, 1.764, float64(f1), 1e-12)
	assert.InDelta(t, 0.84, float64(f2), 1e-12)

	g0, g1 := o.FirstOrder(0.3)
	assert.Equal(t, f0, g0)
	assert.Equal(t, f1, g1)
	assert.Equal(t, f0, o.Value(0.3))

	c, err := ibeta.NewOracle(2, 3, 0, true)
	require.NoError(t, err)
	h0, h1, h2 := c.SecondOrder(0.3)
	assert.InDelta(t, 1-0.3483, float64(h0), 1e-14)
	assert.Equal(t, -f1, h1)
	assert.Equal(t, -f2, h2)
}

func TestOracle_Guards(t *testing.T) {
	minValue := scalar.Float64(0).MinValue()

	o, err := ibeta.NewOracle(100, 50, 0.5, false)
	require.NoError(t, err)
	_, f1 := o.FirstOrder(1e-5)
	assert.Equal(t, 64*minValue, f1)

	c, err := ibeta.NewOracle(100, 50, 0.5, true)
	require.NoError(t, err)
	_, f1 = c.FirstOrder(1e-5)
	assert.Equal(t, -64*minValue, f1)

	// at x = 1 the density is +Inf for b < 1 and finite otherwise
	u, err := ibeta.NewOracle(2, 0.5, 0.5, false)
	require.NoError(t, err)
	f0, f1 := u.FirstOrder(1)
	assert.Equal(t, scalar.Float64(0.5), f0)
	assert.True(t, math.IsInf(float64(f1), 1))

	for _, b := range []float64{1, 3} {
		v, err := ibeta.NewOracle(2, b, 0.5, false)
		require.NoError(t, err)
		_, g1, g2 := v.SecondOrder(1)
		assert.False(t, math.IsNaN(float64(g1)) || math.IsInf(float64(g1), 0), "b=%g", b)
		assert.False(t, math.IsNaN(float64(g2)), "b=%g", b)
	}

	w, err := ibeta.NewOracle(0.5, 2, 0.5, false)
	require.NoError(t, err)
	_, f1 = w.FirstOrder(0)
	assert.True(t, math.IsInf(float64(f1), 1))

	_, err = ibeta.NewOracle(1, 1, 2, false)
	assert.ErrorIs(t, err, ibeta.ErrProbability)
}
