package solver

import (
	"github.com/katalvlaran/geopt/geo"
)

// lineForm discriminates the two representations of a street line.
type lineForm int

const (
	// slopeIntercept represents y = m·x + b.
	slopeIntercept lineForm = iota

	// verticalLine represents x = x₀ (slope undefined).
	verticalLine
)

// LineConstraint is an affine equality constraint g(x, y) = 0 built from
// two distinct planar endpoints of a street segment. Immutable value.
//
// For a non-vertical segment the stored form is slope-intercept,
// g(x,y) = y − m·x − b. A vertical segment (x₁ = x₂) is stored as the
// fixed-x form g(x,y) = x − x₀. Coefficients unifies both as
// a·x + b·y + c, which is what the Lagrange solver consumes.
type LineConstraint struct {
	form      lineForm
	slope     float64 // m, valid only for slopeIntercept
	intercept float64 // b, valid only for slopeIntercept
	fixedX    float64 // x₀, valid only for verticalLine
}

// NewLineThrough builds the constraint through p1 and p2.
//
// Errors: ErrNonFinite if either endpoint has a NaN/Inf coordinate,
// ErrCoincidentEndpoints if p1 == p2.
//
// Complexity: O(1).
func NewLineThrough(p1, p2 geo.PlanarPoint) (LineConstraint, error) {
	// 1) Finiteness before any arithmetic.
	if !p1.IsFinite() || !p2.IsFinite() {
		return LineConstraint{}, ErrNonFinite
	}

	// 2) Two coincident endpoints define no line.
	if p1.X == p2.X && p1.Y == p2.Y {
		return LineConstraint{}, ErrCoincidentEndpoints
	}

	// 3) Vertical segment: slope undefined, switch to the fixed-x form
	//    instead of dividing by zero.
	if p1.X == p2.X {
		return LineConstraint{form: verticalLine, fixedX: p1.X}, nil
	}

	// 4) General segment: m = Δy/Δx, b = y₁ − m·x₁.
	m := (p2.Y - p1.Y) / (p2.X - p1.X)

	return LineConstraint{
		form:      slopeIntercept,
		slope:     m,
		intercept: p1.Y - m*p1.X,
	}, nil
}

// Residual evaluates g(x, y); it is zero exactly on the line.
//
// Complexity: O(1).
func (c LineConstraint) Residual(x, y float64) float64 {
	if c.form == verticalLine {
		return x - c.fixedX
	}

	return y - c.slope*x - c.intercept
}

// Coefficients returns (a, b, k) of the general affine form
// g(x, y) = a·x + b·y + k. Slope-intercept yields (−m, 1, −b); the
// vertical form yields (1, 0, −x₀).
//
// Complexity: O(1).
func (c LineConstraint) Coefficients() (a, b, k float64) {
	if c.form == verticalLine {
		return 1, 0, -c.fixedX
	}

	return -c.slope, 1, -c.intercept
}

// Vertical reports whether the constraint is in the fixed-x form.
func (c LineConstraint) Vertical() bool { return c.form == verticalLine }

// Slope returns (m, true) for a slope-intercept constraint and
// (0, false) for a vertical one.
func (c LineConstraint) Slope() (float64, bool) {
	if c.form == verticalLine {
		return 0, false
	}

	return c.slope, true
}

// Intercept returns (b, true) for a slope-intercept constraint and
// (0, false) for a vertical one.
func (c LineConstraint) Intercept() (float64, bool) {
	if c.form == verticalLine {
		return 0, false
	}

	return c.intercept, true
}

// FixedX returns (x₀, true) for a vertical constraint and (0, false)
// otherwise.
func (c LineConstraint) FixedX() (float64, bool) {
	if c.form != verticalLine {
		return 0, false
	}

	return c.fixedX, true
}
