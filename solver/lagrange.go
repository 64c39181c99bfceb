package solver

import (
	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/utility"
)

// MinimizeOnLine finds the minimizer of the model restricted to the
// constraint line, together with the Lagrange multiplier λ.
//
// It forms the Lagrangian L(x, y, λ) = U(x, y) − λ·g(x, y) and solves
// the stationary-point system
//
//	∂L/∂x = 2W·x − 2Sx − λ·a = 0
//	∂L/∂y = 2W·y − 2Sy − λ·b = 0
//	∂L/∂λ = 0  ⇔  a·x + b·y + k = 0
//
// as one 3×3 linear system in (x, y, λ), using the constraint's general
// affine coefficients (a, b, k). A vertical street enters as
// (1, 0, −x₀) — direct substitution of x = x₀, never a division by an
// undefined slope. The system is linear because U is quadratic and g is
// affine, so the solve is exact.
//
// λ = 0 means the line passes through the unconstrained optimum; that
// is a valid outcome, not an error.
//
// Errors: ErrNilModel; ErrSingular defensively — for a model with
// positive total weight and a constraint with distinct endpoints the
// Lagrangian of a strictly convex quadratic on an affine line has
// exactly one stationary point.
//
// Complexity: O(1) — fixed 3×3 elimination.
func MinimizeOnLine(m *utility.Model, c LineConstraint) (geo.PlanarPoint, float64, error) {
	if m == nil {
		return geo.PlanarPoint{}, 0, ErrNilModel
	}

	// 1) Symbolic ingredients: gradient terms and constraint coefficients.
	gx, gy := m.Gradient()
	a, b, k := c.Coefficients()

	// 2) Assemble the stationary-point system A·[x y λ]ᵀ = rhs.
	sys := [][]float64{
		{gx.Coeff, 0, -a},
		{0, gy.Coeff, -b},
		{a, b, 0},
	}
	rhs := []float64{-gx.Const, -gy.Const, -k}

	// 3) Exact solve for (x, y, λ).
	sol, err := solveLinear(sys, rhs)
	if err != nil {
		return geo.PlanarPoint{}, 0, err
	}

	return geo.PlanarPoint{X: sol[0], Y: sol[1]}, sol[2], nil
}
