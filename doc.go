// Package geopt finds the optimal location in a small geographic area —
// the point minimizing a weighted sum of squared distances to a set of
// amenities, optionally restricted to a street line.
//
// 🚀 What is geopt?
//
//	A small, deterministic library for residential/site location choice:
//		• Coordinate bridge: geodetic (lat/lon, degrees) ↔ local planar (km)
//		  via a tangent-plane approximation anchored at a reference origin
//		• Cost model: weighted squared-distance disutility with an analytic
//		  gradient in closed form
//		• Unconstrained optimum: gradient-zero system solved exactly
//		• Constrained optimum: Lagrange multiplier stationary point on a
//		  line (slope-intercept or vertical form), solved exactly
//		• Result mapping: planar optimum back to lat/lon for reporting
//
// ✨ Why choose geopt?
//
//   - Exact — every solve is closed-form linear algebra, never iterative
//   - Fail-fast — all invalid input rejected eagerly with sentinel errors
//   - Pure Go — no cgo, no numeric dependencies
//   - Safe to parallelize — every value is immutable once constructed
//
// The module is organized into four library packages plus a thin driver:
//
//	geo/     — GeoPoint, PlanarPoint, Origin and the two projections
//	utility/ — the weighted squared-distance cost model
//	solver/  — line constraints, gradient-zero and Lagrange solvers
//	locate/  — end-to-end facade, result mapping, batch evaluation
//	cmd/     — geopt CLI: solve a YAML scenario and print the optima
//
// Quick sketch:
//
//	origin, amenities ──geo──▶ planar points ──utility──▶ model
//	model ──solver──▶ (x*, y*) [+ λ] ──locate──▶ lat/lon result
//
// See locate's examples for the full end-to-end flow.
package geopt
