package solver

import (
	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/utility"
)

// Minimize finds the unique unconstrained minimizer of the model by
// solving the gradient-zero system
//
//	∂U/∂x = 2W·x − 2Sx = 0
//	∂U/∂y = 2W·y − 2Sy = 0
//
// as a 2×2 linear system. For this cost the solution equals the
// weighted centroid (Sx/W, Sy/W); it is nevertheless derived through
// the same elimination kernel the constrained solver uses, so both
// paths exercise one mechanism.
//
// Errors: ErrNilModel; ErrSingular defensively (unreachable for a model
// that passed utility.NewModel, whose total weight is positive).
//
// Complexity: O(1).
func Minimize(m *utility.Model) (geo.PlanarPoint, error) {
	if m == nil {
		return geo.PlanarPoint{}, ErrNilModel
	}

	// 1) Fetch the symbolic gradient: gx(x) = Coeff·x + Const, same for y.
	gx, gy := m.Gradient()

	// 2) Assemble gradient-zero as A·[x y]ᵀ = rhs. The off-diagonal
	//    terms are zero because the quadratics are axis-separable.
	a := [][]float64{
		{gx.Coeff, 0},
		{0, gy.Coeff},
	}
	rhs := []float64{-gx.Const, -gy.Const}

	// 3) Exact solve.
	sol, err := solveLinear(a, rhs)
	if err != nil {
		return geo.PlanarPoint{}, err
	}

	return geo.PlanarPoint{X: sol[0], Y: sol[1]}, nil
}
