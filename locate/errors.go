package locate

import "errors"

var (
	// ErrNoAmenities indicates a request with an empty amenity list,
	// rejected before any projection work.
	ErrNoAmenities = errors.New("locate: request has no amenities")

	// ErrNonFiniteResult indicates a planar solution with a NaN or ±Inf
	// coordinate reached the result mapper. Defensive: the solvers never
	// produce one for validated input.
	ErrNonFiniteResult = errors.New("locate: planar solution is NaN or Inf")
)
