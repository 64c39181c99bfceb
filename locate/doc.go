// Package locate is the end-to-end facade: it takes geodetic input,
// runs the full optimization pipeline, and reports the optimum back in
// geodetic coordinates.
//
// Pipeline (one straight-line pass, no shared state):
//
//	origin, amenities ──geo.ToPlanar──▶ planar amenities
//	planar amenities ──utility.NewModel──▶ cost model
//	model ──solver.Minimize──▶ (x*, y*)                    unconstrained
//	model + street ──solver.MinimizeOnLine──▶ (x*, y*), λ  constrained
//	(x*, y*) ──MapResult──▶ lat/lon
//
// Solve runs one scenario; WithStreet restricts the optimum to the line
// through two geodetic street endpoints. MapResult is the explicit
// inverse-mapping step, exposed separately so projection correctness
// and optimization correctness can be verified independently.
//
// SolveBatch evaluates many independent scenarios concurrently. Every
// run constructs its own origin, model and solver state, so scenarios
// share nothing; results are returned in input order.
//
// Errors: sentinel errors from geo, utility and solver propagate
// unchanged (match with errors.Is); locate adds ErrNoAmenities for an
// empty request and ErrNonFiniteResult for a non-finite planar solution
// reaching the mapper.
//
// Complexity: Solve is O(n) in the number of amenities; SolveBatch is
// O(Σnᵢ) work distributed over the requested workers.
package locate
