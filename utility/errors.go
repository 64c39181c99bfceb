package utility

import "errors"

var (
	// ErrNoAmenities indicates an empty amenity set; the disutility
	// would be identically zero and every point optimal.
	ErrNoAmenities = errors.New("utility: amenity set must be non-empty")

	// ErrNegativeWeight indicates a weight below zero. Weights are
	// disutility multipliers; a negative one inverts convexity.
	ErrNegativeWeight = errors.New("utility: amenity weight must be non-negative")

	// ErrNonFinite indicates a NaN or ±Inf coordinate or weight.
	ErrNonFinite = errors.New("utility: coordinate or weight is NaN or Inf")

	// ErrZeroTotalWeight indicates all weights are zero, which would
	// make the gradient-zero system singular downstream.
	ErrZeroTotalWeight = errors.New("utility: total weight must be positive")
)
