// Package solver finds the stationary points of a weighted squared-
// distance disutility, unconstrained or restricted to a line, in closed
// form.
//
// Both solvers assemble their equations from the model's symbolic
// gradient (utility.LinearTerm coefficients) and hand the resulting
// square system to one shared exact Gaussian-elimination kernel with
// partial pivoting — no iteration, no tolerance-driven convergence.
//
//   - Minimize solves the 2×2 gradient-zero system
//     ∂U/∂x = 0, ∂U/∂y = 0.
//     For this model the solution is the weighted centroid, but it is
//     derived by solving the system, not by applying the centroid
//     formula, so the unconstrained and constrained paths share one
//     mechanism (and the tests pin the two against each other).
//
//   - MinimizeOnLine builds the Lagrangian L(x,y,λ) = U(x,y) − λ·g(x,y)
//     for an affine constraint g(x,y) = a·x + b·y + c and solves the
//     3×3 stationary-point system
//     ∂L/∂x = 0, ∂L/∂y = 0, g = 0
//     for (x, y, λ). A vertical street segment enters through its
//     (a,b,c) = (1, 0, −x₀) coefficients, so no undefined slope is ever
//     divided by. λ = 0 simply means the line passes through the
//     unconstrained optimum; it is a valid result, not an error.
//
// Constraints are built with NewLineThrough from two distinct planar
// endpoints and expose both the slope-intercept view (for reporting)
// and the general affine coefficients (for the solver).
//
// Errors (sentinel):
//
//	– ErrNilModel             if a solver receives a nil model.
//	– ErrCoincidentEndpoints  if a constraint's endpoints coincide.
//	– ErrNonFinite            if a constraint endpoint is NaN or ±Inf.
//	– ErrSingular             if the stationary-point system is singular.
//	                          Unreachable for inputs that passed model and
//	                          constraint validation; surfaced defensively
//	                          so a bug can never return NaN/Inf silently.
//
// Complexity: Minimize is O(1); MinimizeOnLine is O(1) (fixed 3×3
// elimination); NewLineThrough is O(1).
package solver
