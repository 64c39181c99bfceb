// Package utility models the weighted squared-distance disutility
//
//	U(x, y) = Σ wᵢ · [(x − xᵢ)² + (y − yᵢ)²]
//
// over a fixed set of amenities in local planar coordinates (km).
//
// The model exposes the cost both numerically (Evaluate, GradientAt)
// and in closed symbolic form: because U is a sum of independent
// quadratics, each partial derivative is an affine function of a single
// unknown,
//
//	∂U/∂x = 2W·x − 2Sx     ∂U/∂y = 2W·y − 2Sy
//
// with W = Σwᵢ, Sx = Σwᵢxᵢ, Sy = Σwᵢyᵢ. Gradient returns these as
// LinearTerm coefficient pairs, which is exactly what the solvers in
// package solver consume to assemble their stationary-point systems —
// no numeric differentiation, no iteration.
//
// Validation (eager, at NewModel):
//
//	– ErrNoAmenities     if the amenity set is empty.
//	– ErrNegativeWeight  if any weight is negative (a negative weight
//	                     would make the problem non-convex).
//	– ErrNonFinite       if any coordinate or weight is NaN or ±Inf.
//	– ErrZeroTotalWeight if all weights are zero (gradient system would
//	                     be singular).
//
// A valid Model is strictly convex (Hessian 2W·I with W > 0), so every
// solve downstream has exactly one minimizer. Models are immutable and
// safe for concurrent reads.
//
// Complexity: NewModel is O(n); Evaluate and GradientAt are O(n);
// Gradient is O(1) (sums are precomputed).
package utility
