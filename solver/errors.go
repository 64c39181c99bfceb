package solver

import "errors"

var (
	// ErrNilModel indicates a nil *utility.Model was passed to a solver.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrCoincidentEndpoints indicates a degenerate constraint: the two
	// endpoints coincide and define no line.
	ErrCoincidentEndpoints = errors.New("solver: degenerate constraint: endpoints coincide")

	// ErrNonFinite indicates a NaN or ±Inf constraint endpoint.
	ErrNonFinite = errors.New("solver: constraint endpoint is NaN or Inf")

	// ErrSingular indicates the stationary-point linear system has no
	// unique solution. Given upstream validation (positive total weight,
	// distinct endpoints) this cannot occur; it is surfaced defensively
	// instead of returning a spurious or infinite point.
	ErrSingular = errors.New("solver: stationary-point system is singular")
)
