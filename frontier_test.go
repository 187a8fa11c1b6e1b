package frontier

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/frontier/date"
	"gonum.org/v1/gonum/mat"
)

func TestScalingFor(t *testing.T) {
	monthly := ScalingFor(date.Monthly)
	closeTo(t, "monthly return scale", monthly.Return, 1200, 1e-12)
	closeTo(t, "monthly risk scale", monthly.Risk, math.Sqrt(12)*100, 1e-12)

	daily := ScalingFor(date.Daily)
	closeTo(t, "daily return scale", daily.Return, 25200, 1e-12)
	closeTo(t, "daily risk scale", daily.Risk, math.Sqrt(252)*100, 1e-12)
}

func frontierFixture(t *testing.T) (*Moments, *Portfolio, *Portfolio) {
	t.Helper()
	m := twoAssetMoments()
	mvp, err := MinimumVariance(m, nil)
	if err != nil {
		t.Fatalf("MinimumVariance: %v", err)
	}
	eff, err := EfficientReturn(m, mvp, 0.015, nil)
	if err != nil {
		t.Fatalf("EfficientReturn: %v", err)
	}
	return m, mvp, eff
}

func TestFrontierSweepSize(t *testing.T) {
	m, mvp, eff := frontierFixture(t)
	points, err := Frontier(m, mvp, eff, DefaultSweep(date.Monthly), nil)
	if err != nil {
		t.Fatalf("Frontier: %v", err)
	}
	count := 0
	for range points {
		count++
	}
	// −0.40 to 1.90 inclusive, step 0.01.
	if count != 231 {
		t.Errorf("sweep yielded %d points, want 231", count)
	}
}

// TestFrontierLinearReturn checks the two-fund interpolation property: the
// mixed portfolio's expected return is the linear interpolation of the two
// reference returns.
func TestFrontierLinearReturn(t *testing.T) {
	m, mvp, eff := frontierFixture(t)
	sweep := DefaultSweep(date.Monthly)
	points, err := Frontier(m, mvp, eff, sweep, nil)
	if err != nil {
		t.Fatalf("Frontier: %v", err)
	}
	for point := range points {
		c := point.Coefficient
		want := ((1-c)*mvp.Return + c*eff.Return) * sweep.Scale.Return
		closeTo(t, "return", float64(point.Return), want, 1e-9)
		if point.Risk < 0 {
			t.Fatalf("volatility %v at c=%v, must be non-negative", point.Risk, c)
		}
	}
}

func TestFrontierIsRestartable(t *testing.T) {
	m, mvp, eff := frontierFixture(t)
	points, err := Frontier(m, mvp, eff, Sweep{From: 0, To: 1, Step: 0.5, Scale: ScalingFor(date.Monthly)}, nil)
	if err != nil {
		t.Fatalf("Frontier: %v", err)
	}

	collect := func() []FrontierPoint {
		var out []FrontierPoint
		for p := range points {
			out = append(out, p)
		}
		return out
	}
	first, second := collect(), collect()
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("sweeps yielded %d and %d points, want 3 each", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("point %d differs between replays: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFrontierMinimumAtMVP(t *testing.T) {
	m, mvp, eff := frontierFixture(t)
	points, err := Frontier(m, mvp, eff, DefaultSweep(date.Monthly), nil)
	if err != nil {
		t.Fatalf("Frontier: %v", err)
	}
	best := FrontierPoint{Risk: Percent(math.Inf(1))}
	for p := range points {
		if p.Risk < best.Risk {
			best = p
		}
	}
	// The minimum-variance portfolio sits at c = 0 on the two-fund line.
	closeTo(t, "min-risk coefficient", best.Coefficient, 0, 1e-9)
}

func TestFrontierInvalidSweep(t *testing.T) {
	m, mvp, eff := frontierFixture(t)
	if _, err := Frontier(m, mvp, eff, Sweep{From: 0, To: 1, Step: 0}, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero step err = %v, want ErrInvalidInput", err)
	}
	if _, err := Frontier(m, mvp, eff, Sweep{From: 1, To: 0, Step: 0.1}, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("inverted range err = %v, want ErrInvalidInput", err)
	}
}

// nearSingularMoments builds Σ = I − (1−eps)·vvᵀ with v = (1,−1,0)/√2: the
// tiny eigendirection is orthogonal to both the all-ones vector and μ, so the
// closed forms stay well-behaved while the condition number is 1/eps.
func nearSingularMoments(eps float64) *Moments {
	return &Moments{
		Symbols: []string{"AAA", "BBB", "CCC"},
		Mean:    mat.NewVecDense(3, []float64{0.01, 0.01, 0.02}),
		Cov: mat.NewSymDense(3, []float64{
			0.5 + 0.5*eps, 0.5 - 0.5*eps, 0,
			0.5 - 0.5*eps, 0.5 + 0.5*eps, 0,
			0, 0, 1,
		}),
	}
}

// TestFrontierHonorsMaxCondition checks that the sweep gates Σ with the same
// options the reference portfolios were solved with: a covariance accepted by
// the solvers under a raised threshold must not be rejected by the sweep.
func TestFrontierHonorsMaxCondition(t *testing.T) {
	m := nearSingularMoments(1e-13) // condition number 1e13, above the default gate
	opts := &SolverOptions{MaxCondition: 1e16}

	mvp, err := MinimumVariance(m, opts)
	if err != nil {
		t.Fatalf("MinimumVariance: %v", err)
	}
	eff, err := EfficientReturn(m, mvp, 0.015, opts)
	if err != nil {
		t.Fatalf("EfficientReturn: %v", err)
	}

	// The default threshold still rejects it.
	if _, err := Frontier(m, mvp, eff, DefaultSweep(date.Monthly), nil); !errors.Is(err, ErrSingularCovariance) {
		t.Errorf("default gate err = %v, want ErrSingularCovariance", err)
	}

	points, err := Frontier(m, mvp, eff, DefaultSweep(date.Monthly), opts)
	if err != nil {
		t.Fatalf("Frontier with raised MaxCondition: %v", err)
	}
	count := 0
	for p := range points {
		count++
		if math.IsNaN(float64(p.Risk)) || p.Risk < 0 {
			t.Fatalf("volatility %v at c=%v, must be non-negative", p.Risk, p.Coefficient)
		}
	}
	if count != 231 {
		t.Errorf("sweep yielded %d points, want 231", count)
	}
}
