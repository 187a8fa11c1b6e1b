package frontier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultMaxCondition is the condition number above which the covariance
// matrix is treated as numerically singular.
const DefaultMaxCondition = 1e12

// degenerateTolerance bounds |E − D²/C| relative to E below which the
// two-constraint solve has no unique solution (collinear returns).
const degenerateTolerance = 1e-12

// SolverOptions tunes the closed-form solvers. The zero value selects the
// defaults.
type SolverOptions struct {
	// MaxCondition overrides DefaultMaxCondition when positive.
	MaxCondition float64
}

func (o *SolverOptions) maxCondition() float64 {
	if o != nil && o.MaxCondition > 0 {
		return o.MaxCondition
	}
	return DefaultMaxCondition
}

// Portfolio is a fully invested weight vector together with its per-period
// moments. Weights sum to 1; negative entries are short positions.
type Portfolio struct {
	Symbols []string
	Weights []float64
	Return  float64 // per-period expected return, wᵀμ
	Risk    float64 // per-period volatility, sqrt(wᵀΣw)
}

// weights returns the weight vector as a gonum vector, without copying.
func (p *Portfolio) weights() *mat.VecDense {
	return mat.NewVecDense(len(p.Weights), p.Weights)
}

// factorize runs the symmetric-positive-definite factorization of Σ, the
// single gate through which every solve goes, so that a singular or
// ill-conditioned covariance surfaces as ErrSingularCovariance instead of a
// generic solver failure downstream.
func factorize(m *Moments, opts *SolverOptions) (*mat.Cholesky, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(m.Cov); !ok {
		return nil, fmt.Errorf("%w: covariance is not positive definite", ErrSingularCovariance)
	}
	if cond := chol.Cond(); cond > opts.maxCondition() {
		return nil, fmt.Errorf("%w: condition number %.3g exceeds %.3g", ErrSingularCovariance, cond, opts.maxCondition())
	}
	return &chol, nil
}

// volatility computes sqrt(wᵀΣw), failing with ErrNumericDomain on a
// negative radicand instead of silently producing NaN.
func volatility(w *mat.VecDense, cov *mat.SymDense) (float64, error) {
	variance := mat.Inner(w, cov, w)
	if variance < 0 || math.IsNaN(variance) {
		return 0, fmt.Errorf("%w: negative or non-finite portfolio variance %v", ErrNumericDomain, variance)
	}
	return math.Sqrt(variance), nil
}

// newPortfolio derives the per-period moments of a weight vector.
func newPortfolio(m *Moments, w *mat.VecDense) (*Portfolio, error) {
	risk, err := volatility(w, m.Cov)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, w.Len())
	copy(weights, w.RawVector().Data)
	return &Portfolio{
		Symbols: m.Symbols,
		Weights: weights,
		Return:  mat.Dot(w, m.Mean),
		Risk:    risk,
	}, nil
}

// MinimumVariance computes the unique lowest-variance fully invested
// portfolio, the closed-form solution
//
//	w = Σ⁻¹1 / (1ᵀΣ⁻¹1)
//
// to minimizing wᵀΣw subject to 1ᵀw = 1. The resulting weights sum to 1 up
// to floating-point tolerance.
func MinimumVariance(m *Moments, opts *SolverOptions) (*Portfolio, error) {
	chol, err := factorize(m, opts)
	if err != nil {
		return nil, err
	}

	n := m.Cov.SymmetricDim()
	ones := onesVec(n)
	sigmaInvOnes := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(sigmaInvOnes, ones); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	w := mat.NewVecDense(n, nil)
	w.ScaleVec(1/mat.Dot(ones, sigmaInvOnes), sigmaInvOnes)
	return newPortfolio(m, w)
}

// EfficientReturn computes the minimum-variance portfolio achieving exactly
// the target per-period expected return, with the closed two-constraint form
//
//	C = 1ᵀΣ⁻¹1,  D = 1ᵀΣ⁻¹μ,  E = μᵀΣ⁻¹μ
//	λ = 2(μ̄ − D/C) / (E − D²/C)
//	w = w_mvp + (λ/2)·(Σ⁻¹μ − (D/C)·Σ⁻¹1)
//
// A target below the minimum-variance return is legal: the formula stays
// well-defined and simply lands on the inefficient branch of the parabola.
// It fails with ErrDegenerateFrontier when E − D²/C vanishes.
func EfficientReturn(m *Moments, mvp *Portfolio, target float64, opts *SolverOptions) (*Portfolio, error) {
	chol, err := factorize(m, opts)
	if err != nil {
		return nil, err
	}

	n := m.Cov.SymmetricDim()
	ones := onesVec(n)
	sigmaInvOnes := mat.NewVecDense(n, nil)
	sigmaInvMean := mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(sigmaInvOnes, ones); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}
	if err := chol.SolveVecTo(sigmaInvMean, m.Mean); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}

	c := mat.Dot(ones, sigmaInvOnes)
	d := mat.Dot(ones, sigmaInvMean)
	e := mat.Dot(m.Mean, sigmaInvMean)

	denominator := e - d*d/c
	// The threshold scales with |E| because a difference below tol·|E| is
	// under the cancellation noise of the two terms and carries no
	// significant digits. A covariance ill-conditioned enough to inflate E
	// past a meaningful scale is rejected by factorize above, which runs
	// with the same opts on every path, including the frontier sweep.
	if math.Abs(denominator) <= degenerateTolerance*math.Max(math.Abs(e), 1) {
		return nil, fmt.Errorf("%w: E − D²/C = %v", ErrDegenerateFrontier, denominator)
	}
	lambda := 2 * (target - d/c) / denominator

	// direction = Σ⁻¹μ − (D/C)·Σ⁻¹1
	direction := mat.NewVecDense(n, nil)
	direction.AddScaledVec(sigmaInvMean, -d/c, sigmaInvOnes)

	w := mat.NewVecDense(n, nil)
	w.AddScaledVec(mvp.weights(), lambda/2, direction)
	return newPortfolio(m, w)
}

func onesVec(n int) *mat.VecDense {
	ones := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		ones.SetVec(i, 1)
	}
	return ones
}
