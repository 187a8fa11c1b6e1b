package frontier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Moments holds the sample estimates computed from a return matrix: the
// column-wise mean vector μ and the sample covariance matrix Σ with the
// unbiased (T−1) divisor. Σ is symmetric by construction.
type Moments struct {
	Symbols []string
	Mean    *mat.VecDense // N
	Cov     *mat.SymDense // N×N
}

// EstimateMoments computes the sample moments of a return matrix.
//
// It fails with ErrInvalidInput when the matrix is too small for the
// estimates to be defined, and with ErrNumericDomain if a non-finite value
// appears in the returns.
func EstimateMoments(r *ReturnMatrix) (*Moments, error) {
	t, n := r.Dims()
	if t < 2 {
		return nil, fmt.Errorf("%w: %d period(s), covariance needs at least 2", ErrInvalidInput, t)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: %d instrument(s), need at least 2", ErrInvalidInput, n)
	}

	mean := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		col := r.Column(j)
		for _, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite return in column %s", ErrNumericDomain, r.symbols[j])
			}
		}
		mean.SetVec(j, stat.Mean(col, nil))
	}

	cov := mat.NewSymDense(n, nil)
	stat.CovarianceMatrix(cov, r.data, nil)

	return &Moments{Symbols: r.Symbols(), Mean: mean, Cov: cov}, nil
}
