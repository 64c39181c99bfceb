package utility

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geopt/geo"
)

// Amenity pairs a planar location with its disutility weight.
// Weight 0 is legal (the amenity contributes nothing); negative is not.
type Amenity struct {
	Point  geo.PlanarPoint // location in km, relative to the run's origin
	Weight float64         // w ≥ 0; weights need not sum to 1
}

// LinearTerm is an affine function of one unknown: f(t) = Coeff·t + Const.
// It is the closed symbolic form in which the model hands its partial
// derivatives to the solvers.
type LinearTerm struct {
	Coeff float64 // multiplier of the unknown
	Const float64 // constant part
}

// At evaluates the term at t.
func (lt LinearTerm) At(t float64) float64 { return lt.Coeff*t + lt.Const }

// Model is the validated weighted squared-distance cost function.
// Immutable after NewModel; safe for concurrent reads.
type Model struct {
	amenities []Amenity // defensive copy of the input
	totalW    float64   // W  = Σ wᵢ, strictly positive
	sumWX     float64   // Sx = Σ wᵢ·xᵢ
	sumWY     float64   // Sy = Σ wᵢ·yᵢ
}

// NewModel validates the amenity set and precomputes the weighted sums
// that define the analytic gradient.
//
// Validation order (first failure wins, with the offending index in the
// wrapped message): emptiness, finiteness, negativity, zero total weight.
//
// Complexity: O(n) time, O(n) space for the defensive copy.
func NewModel(amenities []Amenity) (*Model, error) {
	// 1) The set must be non-empty.
	if len(amenities) == 0 {
		return nil, ErrNoAmenities
	}

	// 2) Per-amenity validation and sum accumulation in one pass.
	var totalW, sumWX, sumWY float64
	for i, a := range amenities {
		if !a.Point.IsFinite() || math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
			return nil, fmt.Errorf("amenity %d: %w", i, ErrNonFinite)
		}
		if a.Weight < 0 {
			return nil, fmt.Errorf("amenity %d: weight %v: %w", i, a.Weight, ErrNegativeWeight)
		}
		totalW += a.Weight
		sumWX += a.Weight * a.Point.X
		sumWY += a.Weight * a.Point.Y
	}

	// 3) Σwᵢ > 0 guarantees a positive-definite Hessian downstream.
	if totalW <= 0 {
		return nil, ErrZeroTotalWeight
	}

	// 4) Copy the slice so later caller mutation cannot alias the model.
	own := make([]Amenity, len(amenities))
	copy(own, amenities)

	return &Model{amenities: own, totalW: totalW, sumWX: sumWX, sumWY: sumWY}, nil
}

// Evaluate returns U(x, y) = Σ wᵢ[(x−xᵢ)² + (y−yᵢ)²].
//
// Complexity: O(n).
func (m *Model) Evaluate(x, y float64) float64 {
	var u, dx, dy float64
	for _, a := range m.amenities {
		dx = x - a.Point.X
		dy = y - a.Point.Y
		u += a.Weight * (dx*dx + dy*dy)
	}

	return u
}

// GradientAt returns (∂U/∂x, ∂U/∂y) evaluated at (x, y).
//
// Complexity: O(1) — uses the precomputed sums.
func (m *Model) GradientAt(x, y float64) (gx, gy float64) {
	gxTerm, gyTerm := m.Gradient()

	return gxTerm.At(x), gyTerm.At(y)
}

// Gradient returns the closed-form partial derivatives as affine terms:
//
//	∂U/∂x = 2W·x − 2Sx      ∂U/∂y = 2W·y − 2Sy
//
// Each term depends on a single unknown because the quadratics are
// axis-separable. This is the form the solvers assemble equations from.
//
// Complexity: O(1).
func (m *Model) Gradient() (gx, gy LinearTerm) {
	gx = LinearTerm{Coeff: 2 * m.totalW, Const: -2 * m.sumWX}
	gy = LinearTerm{Coeff: 2 * m.totalW, Const: -2 * m.sumWY}

	return gx, gy
}

// TotalWeight returns W = Σ wᵢ (strictly positive for a valid model).
func (m *Model) TotalWeight() float64 { return m.totalW }

// WeightedSums returns (Σ wᵢ·xᵢ, Σ wᵢ·yᵢ).
func (m *Model) WeightedSums() (sx, sy float64) { return m.sumWX, m.sumWY }

// Len returns the number of amenities in the model.
func (m *Model) Len() int { return len(m.amenities) }
