package frontier

import (
	"fmt"
	"iter"
	"math"

	"github.com/etnz/frontier/date"
	"gonum.org/v1/gonum/mat"
)

// FrontierPoint is one portfolio on the two-fund line: the mixing coefficient
// and the annualized moments of (1−c)·w_mvp + c·w_eff, expressed in percent.
type FrontierPoint struct {
	Coefficient float64
	Return      Percent
	Risk        Percent
}

// Scaling converts per-period moments into annualized percent figures.
// It is an explicit parameter of the sweep, never hardcoded.
type Scaling struct {
	Return float64 // multiplier applied to the per-period expected return
	Risk   float64 // multiplier applied to the per-period volatility
}

// ScalingFor derives the usual annualization convention from a period:
// expected return scales with the number of periods per year, volatility
// with its square root, both then expressed in percent.
func ScalingFor(p date.Period) Scaling {
	periods := float64(p.PerYear())
	return Scaling{Return: periods * 100, Risk: math.Sqrt(periods) * 100}
}

// Sweep describes the mixing-coefficient range of a frontier generation.
type Sweep struct {
	From, To float64 // inclusive bounds of the coefficient
	Step     float64 // strictly positive increment
	Scale    Scaling
}

// DefaultSweep spans −0.40 to 1.90 inclusive with step 0.01: coefficients in
// [0,1] interpolate between the two reference portfolios, the rest
// extrapolate beyond them.
func DefaultSweep(p date.Period) Sweep {
	return Sweep{From: -0.40, To: 1.90, Step: 0.01, Scale: ScalingFor(p)}
}

// Frontier generates the two-fund efficient frontier between the
// minimum-variance portfolio and a second efficient portfolio.
//
// By the two-fund separation theorem every portfolio on the returned line is
// mean-variance efficient. The sequence is lazy, finite and restartable:
// ranging over it again replays the sweep from the start.
//
// Volatility is computed through the Cholesky factor of Σ as ‖Lᵀw‖, which is
// non-negative by construction, so the sweep itself cannot hit a negative
// radicand. The factorization failure modes are reported up front, gated by
// the same opts the reference portfolios were solved with.
func Frontier(m *Moments, mvp, eff *Portfolio, sweep Sweep, opts *SolverOptions) (iter.Seq[FrontierPoint], error) {
	if sweep.Step <= 0 {
		return nil, fmt.Errorf("%w: sweep step %v must be positive", ErrInvalidInput, sweep.Step)
	}
	if sweep.To < sweep.From {
		return nil, fmt.Errorf("%w: empty sweep range [%v, %v]", ErrInvalidInput, sweep.From, sweep.To)
	}
	chol, err := factorize(m, opts)
	if err != nil {
		return nil, err
	}
	n := m.Cov.SymmetricDim()
	var factor mat.TriDense
	chol.UTo(&factor)

	steps := int(math.Floor((sweep.To-sweep.From)/sweep.Step + 0.5))

	return func(yield func(FrontierPoint) bool) {
		w := mat.NewVecDense(n, nil)
		lw := mat.NewVecDense(n, nil)
		for i := 0; i <= steps; i++ {
			c := sweep.From + float64(i)*sweep.Step
			// w = (1−c)·w_mvp + c·w_eff
			w.ScaleVec(1-c, mvp.weights())
			w.AddScaledVec(w, c, eff.weights())

			lw.MulVec(&factor, w)
			point := FrontierPoint{
				Coefficient: c,
				Return:      Percent(mat.Dot(w, m.Mean) * sweep.Scale.Return),
				Risk:        Percent(mat.Norm(lw, 2) * sweep.Scale.Risk),
			}
			if !yield(point) {
				return
			}
		}
	}, nil
}
