package solver_test

import (
	"testing"

	"github.com/katalvlaran/geopt/geo"
	"github.com/katalvlaran/geopt/solver"
	"github.com/katalvlaran/geopt/utility"
)

func benchModel(b *testing.B) *utility.Model {
	b.Helper()
	m, err := utility.NewModel([]utility.Amenity{
		{Point: geo.PlanarPoint{X: -0.62, Y: -0.10}, Weight: 1},
		{Point: geo.PlanarPoint{X: -0.28, Y: -0.91}, Weight: 2},
		{Point: geo.PlanarPoint{X: 0.35, Y: -0.40}, Weight: 3},
	})
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkMinimize measures the 2×2 gradient-zero solve.
func BenchmarkMinimize(b *testing.B) {
	m := benchModel(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Minimize(m)
	}
}

// BenchmarkMinimizeOnLine measures the 3×3 Lagrange solve.
func BenchmarkMinimizeOnLine(b *testing.B) {
	m := benchModel(b)
	c, err := solver.NewLineThrough(
		geo.PlanarPoint{X: -0.52, Y: -0.33},
		geo.PlanarPoint{X: -0.22, Y: -0.29},
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = solver.MinimizeOnLine(m, c)
	}
}
