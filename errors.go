package frontier

import "errors"

// The error taxonomy of the computational core. All are local computation
// failures raised at the point of detection; none are retried internally.
// Callers match them with errors.Is.
var (
	// ErrInvalidInput reports an empty or too-small dataset: no observations,
	// fewer than two periods, or fewer than two instruments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSingularCovariance reports a covariance matrix that is not positive
	// definite, or whose condition number exceeds the solver threshold.
	ErrSingularCovariance = errors.New("singular covariance")

	// ErrDegenerateFrontier reports a vanishing denominator in the
	// two-constraint solve, typically caused by collinear return series.
	ErrDegenerateFrontier = errors.New("degenerate frontier")

	// ErrNumericDomain reports a negative radicand under a square root or a
	// NaN/Inf propagating through the computation.
	ErrNumericDomain = errors.New("numeric domain error")
)
