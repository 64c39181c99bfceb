package solver_test

import (
	"fmt"

	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/solver"
	"github.com/katalvlaran/geopt/utility"
)

// ExampleMinimize finds the weight-centroid of three amenities by
// solving the gradient-zero system.
func ExampleMinimize() {
	model, err := utility.NewModel([]utility.Amenity{
		{Point: geo.PlanarPoint{X: 0, Y: 0}, Weight: 1},
		{Point: geo.PlanarPoint{X: 2, Y: 0}, Weight: 1},
		{Point: geo.PlanarPoint{X: 1, Y: 3}, Weight: 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best, err := solver.Minimize(model)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("x=%.4f y=%.4f\n", best.X, best.Y)
	// Output:
	// x=1.0000 y=1.5000
}

// ExampleMinimizeOnLine restricts a single-amenity problem to a street
// one kilometer north of the x-axis: the optimum is the orthogonal
// projection of the amenity onto the street, with a nonzero multiplier.
func ExampleMinimizeOnLine() {
	model, err := utility.NewModel([]utility.Amenity{
		{Point: geo.PlanarPoint{X: 3, Y: 2}, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	street, err := solver.NewLineThrough(
		geo.PlanarPoint{X: 0, Y: 1},
		geo.PlanarPoint{X: 10, Y: 1},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	best, lambda, err := solver.MinimizeOnLine(model, street)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("x=%.4f y=%.4f lambda=%.4f\n", best.X, best.Y, lambda)
	// Output:
	// x=3.0000 y=1.0000 lambda=-2.0000
}
